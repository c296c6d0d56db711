package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var schedulesCmd = &cobra.Command{
	Use:     "schedules",
	Aliases: []string{"list_schedules"},
	Short:   "List the saved schedule files",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore()
		if err != nil {
			return err
		}

		names, err := store.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No schedules found.")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(schedulesCmd)
}
