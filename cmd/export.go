package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iCodeCoolStuff/gcalendar/internal/ics"
)

var exportCmd = &cobra.Command{
	Use:   "export <schedule>",
	Short: "Export a saved schedule as an iCalendar file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		store, err := newStore()
		if err != nil {
			return err
		}
		events, err := store.Load(args[0])
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(args[0], ".json")
		if out == "" {
			out = name + ".ics"
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %q: %w", out, err)
		}
		defer f.Close()

		if err := ics.Export(name, events, f); err != nil {
			return err
		}
		fmt.Printf("Exported %s to %s\n", args[0], out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output path (defaults to <schedule>.ics)")
	RootCmd.AddCommand(exportCmd)
}
