package tagpath

import (
	"errors"
	"strings"
)

// NotFound is returned by Resolve for any query it cannot answer.
const NotFound = "Not Found!"

const (
	attributeSeparator = '~'
	segmentSeparator   = '.'
)

var ErrMissingSeparator = errors.New("query has no '~' before the attribute name")

// Query is a parsed "a.b.c~attr" lookup.
type Query struct {
	Path      []string
	Attribute string
	Raw       string
}

// ParseQuery splits query at its first '~'. Empty path segments are
// dropped, so "a..b~x" addresses a.b.
func ParseQuery(query string) (Query, error) {
	index := strings.IndexByte(query, attributeSeparator)

	if index == -1 {
		return Query{Raw: query}, ErrMissingSeparator
	}

	q := Query{
		Attribute: query[index+1:],
		Raw:       query,
	}

	for _, segment := range strings.Split(query[:index], string(segmentSeparator)) {
		if segment != "" {
			q.Path = append(q.Path, segment)
		}
	}

	return q, nil
}

func (q Query) String() string {
	return strings.Join(q.Path, string(segmentSeparator)) + string(attributeSeparator) + q.Attribute
}

// Find descends from the root, taking the first child named after each
// segment in turn.
func (d *Document) Find(path []string) (*Tag, bool) {
	current := d.Root()

	for _, segment := range path {
		next := d.firstChild(current, segment)

		if next == nil {
			return nil, false
		}

		current = next
	}

	return current, true
}

func (d *Document) firstChild(t *Tag, name string) *Tag {
	for _, c := range t.Children {
		if d.tags[c].Name == name {
			return &d.tags[c]
		}
	}

	return nil
}

func (d *Document) Lookup(path []string, attribute string) (string, bool) {
	t, ok := d.Find(path)

	if !ok {
		return "", false
	}

	return t.Attr(attribute)
}

// Execute answers q, returning NotFound when either the path or the
// attribute is missing.
func (d *Document) Execute(q Query) string {
	if value, ok := d.Lookup(q.Path, q.Attribute); ok {
		return value
	}

	return NotFound
}

// Resolve parses and answers a raw query line.
func (d *Document) Resolve(query string) string {
	q, err := ParseQuery(query)

	if err != nil {
		return NotFound
	}

	return d.Execute(q)
}
