package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muzzletov/tagpath"
	"github.com/muzzletov/tagpath/internal/styles"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file|url|->",
	Short: "Print the tag tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().Bool("trace", false, "Print [ Enter ] / [ Exit ] lines instead of an indented tree")

	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(cmd, args[0])
	if err != nil {
		return err
	}

	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		writeTrace(cmd.OutOrStdout(), doc)
		return nil
	}
	writeTree(cmd.OutOrStdout(), doc)
	return nil
}

func writeTrace(w io.Writer, doc *tagpath.Document) {
	doc.Walk(func(t *tagpath.Tag, _ int) {
		fmt.Fprintf(w, "[ Enter ] %s\n", t.Name)
	}, func(t *tagpath.Tag, _ int) {
		fmt.Fprintf(w, "[ Exit ] %s\n", t.Name)
	})
}

func writeTree(w io.Writer, doc *tagpath.Document) {
	doc.Walk(func(t *tagpath.Tag, depth int) {
		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(styles.TagStyle.Render(t.Name))

		names := make([]string, 0, len(t.Attributes))
		for name := range t.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			sb.WriteString(" ")
			sb.WriteString(styles.AttrNameStyle.Render(name))
			sb.WriteString("=")
			sb.WriteString(styles.AttrValueStyle.Render(fmt.Sprintf("%q", t.Attributes[name])))
		}
		fmt.Fprintln(w, sb.String())
	}, nil)
}
