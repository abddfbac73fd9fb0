package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.ErrorLevel, ParseLevel(" ERROR "))
	assert.Equal(t, log.WarnLevel, ParseLevel("nonsense"))
	assert.Equal(t, log.WarnLevel, ParseLevel(""))
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.DocumentLoaded("stdin", 10, 2, time.Millisecond)
	assert.Empty(t, buf.String())

	l.SyntaxFailed("stdin", 3, errors.New("boom"))
	assert.Contains(t, buf.String(), "syntax error")
	assert.Contains(t, buf.String(), "boom")
}

func TestDebugHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.DebugLevel)

	l.DocumentLoaded("doc.tag", 10, 2, time.Millisecond)
	l.QueriesAnswered(4, 1)

	out := buf.String()
	assert.Contains(t, out, "document loaded")
	assert.Contains(t, out, "doc.tag")
	assert.Contains(t, out, "queries answered")
}
