package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <file|url|-> <a.b~attr>...",
	Short: "Answer queries against a document file, URL or stdin",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(cmd, args[0])
	if err != nil {
		return err
	}

	for _, q := range args[1:] {
		fmt.Fprintln(cmd.OutOrStdout(), doc.Resolve(q))
	}
	return nil
}
