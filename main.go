package main

import (
	"github.com/joho/godotenv"

	"github.com/iCodeCoolStuff/gcalendar/cmd"
)

func main() {
	// Optional .env for GCALENDAR_CONFIG and friends; absence is fine.
	_ = godotenv.Load()
	cmd.Execute()
}
