package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/api/calendar/v3"

	"github.com/iCodeCoolStuff/gcalendar/internal/schedule"
)

var listCmd = &cobra.Command{
	Use:   "list <name>",
	Short: "List the events of a day or of a saved schedule",
	Long: `List events for the given day expression, or with --file the contents
of the named schedule file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		isFile, err := cmd.Flags().GetBool("file")
		if err != nil {
			return err
		}

		var events []*calendar.Event
		if isFile {
			store, err := newStore()
			if err != nil {
				return err
			}
			events, err = store.Load(args[0])
			if err != nil {
				return err
			}
		} else {
			client, err := newClient()
			if err != nil {
				return err
			}
			events, err = client.ListDay(args[0])
			if err != nil {
				return err
			}
		}

		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}
		for _, ev := range events {
			printEvent(ev)
		}
		return nil
	},
}

func printEvent(ev *calendar.Event) {
	summary := schedule.Summary(ev)
	switch {
	case ev.Start != nil && ev.Start.DateTime != "" && ev.End != nil && ev.End.DateTime != "":
		fmt.Printf("%s - %s  %s\n", ev.Start.DateTime, ev.End.DateTime, summary)
	case ev.Start != nil && ev.Start.Date != "":
		fmt.Printf("%s (all day)  %s\n", ev.Start.Date, summary)
	default:
		fmt.Println(summary)
	}
}

func init() {
	listCmd.Flags().BoolP("file", "f", false, "Treat <name> as a schedule file instead of a day")
	RootCmd.AddCommand(listCmd)
}
