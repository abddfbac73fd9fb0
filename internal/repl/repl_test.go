package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muzzletov/tagpath"
)

func newShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()

	doc, err := tagpath.ParseString(`<a k="v" j="w"><b value="hello"></b><c><b value="deep"></b></c></a>`)
	require.NoError(t, err)

	var out bytes.Buffer
	return New(doc, &out), &out
}

func TestHandleQuery(t *testing.T) {
	s, out := newShell(t)

	assert.False(t, s.Handle("a.b~value"))
	assert.False(t, s.Handle("  a.x~value  "))
	assert.Equal(t, "hello\nNot Found!\n", out.String())
}

func TestHandleFind(t *testing.T) {
	s, out := newShell(t)

	s.Handle("find b")
	assert.Equal(t, "a.b\na.c.b\n", out.String())

	out.Reset()
	s.Handle("find")
	assert.Contains(t, out.String(), "usage")
}

func TestHandleAttrs(t *testing.T) {
	s, out := newShell(t)

	s.Handle("attrs a")
	assert.Equal(t, "j=\"w\"\nk=\"v\"\n", out.String())

	out.Reset()
	s.Handle("attrs a.zz")
	assert.Equal(t, tagpath.NotFound+"\n", out.String())
}

func TestHandleCommands(t *testing.T) {
	s, out := newShell(t)

	assert.False(t, s.Handle(""))
	assert.Empty(t, out.String())

	assert.False(t, s.Handle("help"))
	assert.Contains(t, out.String(), "find <tag>")

	out.Reset()
	assert.False(t, s.Handle("bogus"))
	assert.Contains(t, out.String(), "unknown command: bogus")

	assert.True(t, s.Handle("quit"))
	assert.True(t, s.Handle("EXIT"))
}
