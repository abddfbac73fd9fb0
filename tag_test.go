package tagpath

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathOf(t *testing.T) {
	doc, err := ParseString(`<a><b><c></c></b></a>`)
	require.NoError(t, err)

	c, ok := doc.Find([]string{"a", "b", "c"})
	require.True(t, ok)

	assert.Equal(t, "/.a.b.c.", doc.PathOf(c.ID))
	assert.Equal(t, "/.", doc.PathOf(0))
	assert.Equal(t, "", doc.PathOf(TagID(99)))
}

func TestTagOutOfRange(t *testing.T) {
	doc, err := ParseString(`<a></a>`)
	require.NoError(t, err)

	assert.Nil(t, doc.Tag(-1))
	assert.Nil(t, doc.Tag(2))
	assert.NotNil(t, doc.Tag(1))
	assert.Nil(t, doc.Children(5))
}

func TestFindAll(t *testing.T) {
	doc, err := ParseString(`<a><i n="1"></i><b><i n="2"></i></b></a><i n="3"></i>`)
	require.NoError(t, err)

	tags := doc.FindAll(0, "i")
	require.Len(t, tags, 3)

	values := make([]string, 0, len(tags))
	for _, tag := range tags {
		values = append(values, tag.Attributes["n"])
	}
	assert.Equal(t, []string{"1", "2", "3"}, values)
}

func TestWalk(t *testing.T) {
	doc, err := ParseString(`<a><b></b></a><c></c>`)
	require.NoError(t, err)

	var sb strings.Builder
	doc.Walk(func(tag *Tag, depth int) {
		fmt.Fprintf(&sb, "+%s%d ", tag.Name, depth)
	}, func(tag *Tag, depth int) {
		fmt.Fprintf(&sb, "-%s ", tag.Name)
	})

	assert.Equal(t, "+/0 +a1 +b2 -b -a +c1 -c -/ ", sb.String())
}

func TestAttr(t *testing.T) {
	tag := &Tag{Attributes: map[string]string{"k": "v"}}

	v, ok := tag.Attr("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = tag.Attr("missing")
	assert.False(t, ok)
}
