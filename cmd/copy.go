package cmd

import (
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy <day> <newday>",
	Short: "Copy a day's events onto another day",
	Long: `Copy every event of <day> onto <newday>, preserving times of day. With
--until, the events are copied to every day from <newday> through the
given date; the source day itself is skipped.`,
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
		return client.CopySchedule(args[0], args[1], until, confirm)
	},
}

func init() {
	copyCmd.Flags().StringP("until", "u", "", "Copy to every day up to and including this date")
	copyCmd.Flags().BoolP("confirm", "c", false, "Ask before deleting events already on a target day")
	RootCmd.AddCommand(copyCmd)
}
