// Package repl is an interactive query shell over a parsed document.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/muzzletov/tagpath"
	"github.com/muzzletov/tagpath/internal/styles"
)

// Shell answers queries typed at the prompt.
type Shell struct {
	doc *tagpath.Document
	out io.Writer
}

// New creates a shell writing its answers to out.
func New(doc *tagpath.Document, out io.Writer) *Shell {
	return &Shell{doc: doc, out: out}
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tagpath> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	// answers must go through readline so they do not clobber the prompt
	s.out = rl.Stdout()
	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil
		}

		if s.Handle(line) {
			return nil
		}
	}
}

// Handle executes one input line and reports whether the shell should exit.
func (s *Shell) Handle(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	// anything with a '~' is a query, even if it starts like a command
	if strings.Contains(input, "~") {
		fmt.Fprintln(s.out, s.doc.Resolve(input))
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "find", "f":
		s.cmdFind(args)
	case "attrs", "a":
		s.cmdAttrs(args)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintln(s.out, styles.ErrorStyle.Render("unknown command: "+cmd))
	}

	return false
}

func (s *Shell) cmdFind(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: find <tag>")
		return
	}

	for _, t := range s.doc.FindAll(0, args[0]) {
		fmt.Fprintln(s.out, strings.TrimSuffix(strings.TrimPrefix(s.doc.PathOf(t.ID), tagpath.RootName+"."), "."))
	}
}

func (s *Shell) cmdAttrs(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: attrs <a.b.c>")
		return
	}

	q, _ := tagpath.ParseQuery(args[0] + "~")
	t, ok := s.doc.Find(q.Path)
	if !ok {
		fmt.Fprintln(s.out, tagpath.NotFound)
		return
	}

	names := make([]string, 0, len(t.Attributes))
	for name := range t.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(s.out, "%s=%q\n", name, t.Attributes[name])
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, styles.DimStyle.Render(`Queries:
  a.b.c~attr        print the attribute value or "Not Found!"
Commands:
  find <tag>        list the paths of every tag with that name
  attrs <a.b.c>     list the attributes of the tag at a path
  help              show this help
  quit              leave the shell`))
}
