package cmd

import (
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <schedule> <day>",
	Short: "Upload a saved schedule onto a day",
	Long: `Load a schedule file and insert its events on the given day, shifted so
each event keeps its time of day. With --until, the schedule is applied
to every day from <day> through the given date.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		until, err := cmd.Flags().GetString("until")
		if err != nil {
			return err
		}
		confirm, err := cmd.Flags().GetBool("confirm")
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		return client.UploadSchedule(args[0], args[1], until, confirm)
	},
}

func init() {
	uploadCmd.Flags().StringP("until", "u", "", "Apply the schedule to every day up to and including this date")
	uploadCmd.Flags().BoolP("confirm", "c", false, "Ask before deleting events already on a target day")
	RootCmd.AddCommand(uploadCmd)
}
