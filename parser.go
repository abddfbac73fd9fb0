package tagpath

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// DefaultMaxDepth bounds tag nesting so hostile input cannot exhaust the stack.
const DefaultMaxDepth = 10000

type Option func(p *parser)

// WithStrictClosing makes a closing tag whose name differs from its
// opening tag a syntax error. By default the closing name is read and
// ignored.
func WithStrictClosing() Option {
	return func(p *parser) {
		p.strict = true
	}
}

func WithMaxDepth(depth int) Option {
	return func(p *parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(p *parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

type parser struct {
	body     []byte
	pos      int
	depth    int
	maxDepth int
	strict   bool
	doc      *Document
	logger   *log.Logger
}

// Parse builds the tag tree of body. On malformed input it returns a
// *SyntaxError and no document.
func Parse(body []byte, opts ...Option) (*Document, error) {
	p := &parser{
		body:     body,
		maxDepth: DefaultMaxDepth,
		logger:   log.New(io.Discard),
		doc:      newDocument(len(body)),
	}

	for _, opt := range opts {
		opt(p)
	}

	if err := p.parseDocument(); err != nil {
		p.logger.Debug("parse failed", "offset", p.pos, "err", err)
		return nil, err
	}

	p.logger.Debug("parsed document", "bytes", len(body), "tags", p.doc.Len()-1)

	return p.doc, nil
}

func ParseString(body string, opts ...Option) (*Document, error) {
	return Parse([]byte(body), opts...)
}

func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	body, err := io.ReadAll(r)

	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	return Parse(body, opts...)
}

func (p *parser) inBound(index int) bool {
	return index < len(p.body)
}

func (p *parser) skipWhitespace() {
	for p.inBound(p.pos) {
		r, n := utf8.DecodeRune(p.body[p.pos:])

		if !unicode.IsSpace(r) {
			return
		}

		p.pos += n
	}
}

func (p *parser) got() string {
	if !p.inBound(p.pos) {
		return "EOF"
	}

	r, _ := utf8.DecodeRune(p.body[p.pos:])

	return strconv.QuoteRune(r)
}

func (p *parser) fail(expected string) *SyntaxError {
	return &SyntaxError{
		Offset:    p.pos,
		Expected:  expected,
		Got:       p.got(),
		Remaining: string(p.body[p.pos:]),
	}
}

func (p *parser) matchLiteral(ch byte) error {
	p.skipWhitespace()

	if !p.inBound(p.pos) || p.body[p.pos] != ch {
		return p.fail(strconv.QuoteRune(rune(ch)))
	}

	p.pos++

	return nil
}

func isIdentifierRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (p *parser) readIdentifier() (string, error) {
	p.skipWhitespace()
	start := p.pos

	for p.inBound(p.pos) {
		r, n := utf8.DecodeRune(p.body[p.pos:])

		if !isIdentifierRune(r) {
			break
		}

		p.pos += n
	}

	if start == p.pos {
		return "", p.fail("identifier")
	}

	return string(p.body[start:p.pos]), nil
}

func (p *parser) readQuotedString() (string, error) {
	if err := p.matchLiteral('"'); err != nil {
		return "", err
	}

	start := p.pos
	end := bytes.IndexByte(p.body[start:], '"')

	if end == -1 {
		// report the opening quote, the end of input says nothing useful
		return "", &SyntaxError{
			Offset:    start - 1,
			Expected:  `closing '"'`,
			Got:       "EOF",
			Remaining: string(p.body[start-1:]),
		}
	}

	p.pos = start + end + 1

	return string(p.body[start : start+end]), nil
}

func (p *parser) parseAttribute(id TagID) error {
	name, err := p.readIdentifier()

	if err != nil {
		return err
	}

	if err = p.matchLiteral('='); err != nil {
		return err
	}

	value, err := p.readQuotedString()

	if err != nil {
		return err
	}

	p.doc.tags[id].Attributes[name] = value

	return nil
}

// atClosingTag reports whether the cursor sits on "<" followed, after
// optional whitespace, by "/". The cursor does not move.
func (p *parser) atClosingTag() bool {
	if !p.inBound(p.pos) || p.body[p.pos] != '<' {
		return false
	}

	index := p.pos + 1

	for p.inBound(index) {
		r, n := utf8.DecodeRune(p.body[index:])

		if !unicode.IsSpace(r) {
			return r == '/'
		}

		index += n
	}

	return false
}

func (p *parser) parseElement(parent TagID) error {
	p.skipWhitespace()

	if !p.inBound(p.pos) || p.atClosingTag() {
		return nil
	}

	offset := p.pos

	if err := p.matchLiteral('<'); err != nil {
		return err
	}

	name, err := p.readIdentifier()

	if err != nil {
		return err
	}

	if p.depth >= p.maxDepth {
		return &SyntaxError{
			Offset:    offset,
			Expected:  fmt.Sprintf("at most %d nested tags", p.maxDepth),
			Got:       strconv.Quote(name),
			Remaining: string(p.body[offset:]),
		}
	}

	p.depth++
	id := p.doc.add(parent, name, offset).ID

	for {
		p.skipWhitespace()

		if !p.inBound(p.pos) {
			return p.fail("'>'")
		}

		if p.body[p.pos] == '>' {
			break
		}

		if err = p.parseAttribute(id); err != nil {
			return err
		}
	}

	p.pos++

	for {
		p.skipWhitespace()

		if !p.inBound(p.pos) || p.atClosingTag() {
			break
		}

		if err = p.parseElement(id); err != nil {
			return err
		}
	}

	if err = p.parseTagEnd(name); err != nil {
		return err
	}

	p.doc.tags[id].Offset.End = p.pos
	p.depth--

	return nil
}

func (p *parser) parseTagEnd(name string) error {
	p.skipWhitespace()
	offset := p.pos

	if err := p.matchLiteral('<'); err != nil {
		return err
	}

	if err := p.matchLiteral('/'); err != nil {
		return err
	}

	closing, err := p.readIdentifier()

	if err != nil {
		return err
	}

	if p.strict && closing != name {
		return &SyntaxError{
			Offset:    offset,
			Expected:  strconv.Quote("</" + name + ">"),
			Got:       strconv.Quote("</" + closing + ">"),
			Remaining: string(p.body[offset:]),
		}
	}

	return p.matchLiteral('>')
}

func (p *parser) parseDocument() error {
	for {
		p.skipWhitespace()

		if !p.inBound(p.pos) {
			return nil
		}

		if p.atClosingTag() {
			return &SyntaxError{
				Offset:    p.pos,
				Expected:  "start tag",
				Got:       "closing tag",
				Remaining: string(p.body[p.pos:]),
			}
		}

		if err := p.parseElement(0); err != nil {
			return err
		}
	}
}
