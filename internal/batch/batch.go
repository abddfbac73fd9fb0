// Package batch implements the line oriented stdin protocol: a header with
// the number of document lines and queries, the document, then one query
// per line. Each query gets exactly one answer line.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/muzzletov/tagpath"
	"github.com/muzzletov/tagpath/internal/logger"
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 << 20

var (
	ErrHeader     = errors.New("header must be two non-negative integers: <lines> <queries>")
	ErrShortInput = errors.New("input ended early")
)

// Header is the first input line.
type Header struct {
	Lines   int
	Queries int
}

// ParseHeader reads "L Q".
func ParseHeader(line string) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Header{}, fmt.Errorf("%w: got %q", ErrHeader, line)
	}

	lines, err := strconv.Atoi(fields[0])
	if err != nil || lines < 0 {
		return Header{}, fmt.Errorf("%w: got %q", ErrHeader, line)
	}

	queries, err := strconv.Atoi(fields[1])
	if err != nil || queries < 0 {
		return Header{}, fmt.Errorf("%w: got %q", ErrHeader, line)
	}

	return Header{Lines: lines, Queries: queries}, nil
}

// Options configures a batch run.
type Options struct {
	ParseOptions []tagpath.Option
	Logger       *logger.Logger
}

// Run executes the whole protocol. A malformed document is returned as an
// error wrapping *tagpath.SyntaxError before any answer is written.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading header: %w", err)
		}
		return fmt.Errorf("%w: missing header", ErrShortInput)
	}

	header, err := ParseHeader(sc.Text())
	if err != nil {
		return err
	}

	var body strings.Builder
	for i := 0; i < header.Lines; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading document: %w", err)
			}
			return fmt.Errorf("%w: expected %d document lines, got %d", ErrShortInput, header.Lines, i)
		}
		body.WriteString(strings.TrimSuffix(sc.Text(), "\r"))
	}

	start := time.Now()
	doc, err := tagpath.ParseString(body.String(), opts.ParseOptions...)
	if err != nil {
		var se *tagpath.SyntaxError
		if errors.As(err, &se) {
			log.SyntaxFailed("stdin", se.Offset, err)
		}
		return fmt.Errorf("parsing document: %w", err)
	}
	log.DocumentLoaded("stdin", doc.Size(), doc.Len()-1, time.Since(start))

	out := bufio.NewWriter(w)
	defer out.Flush()

	misses := 0
	for i := 0; i < header.Queries; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading query %d: %w", i+1, err)
			}
			return fmt.Errorf("%w: expected %d queries, got %d", ErrShortInput, header.Queries, i)
		}

		answer := doc.Resolve(strings.TrimSuffix(sc.Text(), "\r"))
		if answer == tagpath.NotFound {
			misses++
		}

		if _, err := fmt.Fprintln(out, answer); err != nil {
			return fmt.Errorf("writing answer: %w", err)
		}
	}
	log.QueriesAnswered(header.Queries, misses)

	return out.Flush()
}
