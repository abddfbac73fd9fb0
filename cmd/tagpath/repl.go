package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/muzzletov/tagpath/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl <file|url>",
	Short: "Query a document interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	// the prompt owns stdin
	if args[0] == "-" {
		return errors.New("repl reads its document from a file or URL, not stdin")
	}

	doc, err := loadDocument(cmd, args[0])
	if err != nil {
		return err
	}

	return repl.New(doc, cmd.OutOrStdout()).Run(cmd.Context())
}
