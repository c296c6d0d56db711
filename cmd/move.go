package cmd

import (
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <day> <newday>",
	Short: "Move a day's events onto another day",
	Long: `Relocate every event of <day> onto <newday>, preserving times of day.
The originals are removed only after all events have been inserted.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		return client.MoveSchedule(args[0], args[1])
	},
}

func init() {
	RootCmd.AddCommand(moveCmd)
}
