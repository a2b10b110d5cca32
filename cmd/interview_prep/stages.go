package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep/internal/types"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List interview stages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, s := range types.Stages() {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s.Slug(), s); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stagesCmd)
}
