package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iCodeCoolStuff/gcalendar/internal/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to Google Calendar",
	Long:  `Login to Google Calendar and save the authentication token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Authenticating calendar account...")
		return auth.GetTokenFromWeb()
	},
}

func init() {
	RootCmd.AddCommand(loginCmd)
}
