package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iCodeCoolStuff/gcalendar/internal/config"
	"github.com/iCodeCoolStuff/gcalendar/internal/dates"
	"github.com/iCodeCoolStuff/gcalendar/internal/schedule"
)

// Exit codes, one per failure kind.
const (
	exitInvalidDate  = 1
	exitCancelled    = 2
	exitNothingFound = 3
	exitFileNotFound = 4
)

var RootCmd = &cobra.Command{
	Use:   "gcalendar",
	Short: "Save a day's Google Calendar events and replay them onto other dates",
	Long: `A CLI tool to snapshot one day's Google Calendar events into a reusable
schedule file and apply that schedule to other dates, keeping each
event's time of day and duration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and maps failures to their exit codes.
// This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, dates.ErrInvalidDateExpression),
		errors.Is(err, dates.ErrInvalidRange):
		return exitInvalidDate
	case errors.Is(err, schedule.ErrCancelled):
		return exitCancelled
	case errors.Is(err, schedule.ErrNoEventsFound):
		return exitNothingFound
	case errors.Is(err, schedule.ErrScheduleNotFound):
		return exitFileNotFound
	default:
		return 1
	}
}

func loadConfig() (*config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// newClient builds the backend-connected client used by commands that
// talk to the calendar.
func newClient() (*schedule.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return schedule.NewClient(cfg)
}

// newStore builds just the schedule file store, for commands that never
// touch the backend.
func newStore() (*schedule.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return &schedule.Store{Dir: cfg.SchedulesDir}, nil
}
