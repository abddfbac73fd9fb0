package main

import (
	"github.com/spf13/cobra"

	"github.com/muzzletov/tagpath/internal/batch"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Answer queries from the line protocol on stdin (the default)",
	Args:  cobra.NoArgs,
	RunE:  runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	return batch.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), batch.Options{
		ParseOptions: parseOptions(),
		Logger:       logs,
	})
}
