package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iCodeCoolStuff/gcalendar/internal/schedule"
)

var saveCmd = &cobra.Command{
	Use:   "save <day> <schedule>",
	Short: "Save a day's events to a schedule file",
	Long: `Save the events of the given day (e.g. "today", "friday", "2019-3-8")
to a schedule file in the schedules directory.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		path := client.Store.Path(args[1])
		if _, err := os.Stat(path); err == nil {
			if !client.Confirm(fmt.Sprintf("%s already exists. Overwrite?", path)) {
				fmt.Println("Aborted.")
				return schedule.ErrCancelled
			}
		}

		return client.SaveSchedule(args[0], args[1])
	},
}

func init() {
	RootCmd.AddCommand(saveCmd)
}
