package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a day's events or a saved schedule file",
	Long: `Delete every event on the given day after confirmation, or with --file
remove the named schedule file from the schedules directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		isFile, err := cmd.Flags().GetBool("file")
		if err != nil {
			return err
		}

		if isFile {
			store, err := newStore()
			if err != nil {
				return err
			}
			if err := store.Remove(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", store.Path(args[0]))
			return nil
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		return client.ClearDay(args[0])
	},
}

func init() {
	deleteCmd.Flags().BoolP("file", "f", false, "Treat <name> as a schedule file instead of a day")
	RootCmd.AddCommand(deleteCmd)
}
