package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/muzzletov/tagpath"
	"github.com/muzzletov/tagpath/internal/config"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file|url|->",
	Short: "Write the parsed tree as json, yaml or cbor",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringP("format", "f", "json", "Output format (json, yaml, cbor)")
	dumpCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	_ = viper.BindPFlag(config.KeyFormat, dumpCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	format, err := tagpath.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd, args[0])
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	if err := tagpath.Encode(w, doc, format); err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}
