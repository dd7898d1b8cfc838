package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every registered puzzle",
	Args:  cobra.NoArgs,
	RunE:  listPuzzles,
}

func listPuzzles(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	for _, s := range registry.All() {
		parts := "2 parts"
		if s.Part2 == nil {
			parts = "1 part"
		}
		if _, err := fmt.Fprintf(w, "%s  %-32s %s\n", s.Key(), s.Title, parts); err != nil {
			return err
		}
	}
	return nil
}
