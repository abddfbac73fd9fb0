// tagpath parses tag markup and answers "a.b~attr" queries against it.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/muzzletov/tagpath"
	"github.com/muzzletov/tagpath/internal/styles"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	os.Exit(report(err))
}

// report prints err and returns the exit status. Syntax errors keep the
// classic two line diagnostic on stdout.
func report(err error) int {
	if err == nil {
		return exitSuccess
	}

	var se *tagpath.SyntaxError
	if errors.As(err, &se) {
		fmt.Fprintln(os.Stdout, se.Diagnostic())
		return exitFailure
	}

	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("Error: "+err.Error()))
	return exitFailure
}
