package tagpath

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotSource = `<a x="1"><b value="hello" other="o"></b><b value="second"></b></a><c></c>`

func TestSnapshot(t *testing.T) {
	doc, err := ParseString(snapshotSource)
	require.NoError(t, err)

	n := doc.Snapshot()
	assert.Equal(t, RootName, n.Name)
	assert.Nil(t, n.Attributes)
	require.Len(t, n.Children, 2)
	assert.Equal(t, "a", n.Children[0].Name)
	require.Len(t, n.Children[0].Children, 2)
	assert.Equal(t, "hello", n.Children[0].Children[0].Attributes["value"])
	assert.Empty(t, n.Children[1].Children)

	// the snapshot is a copy
	n.Children[0].Attributes["x"] = "changed"
	assert.Equal(t, "1", doc.Resolve("a~x"))
}

func TestEncodeDecodeAnswersSameQueries(t *testing.T) {
	doc, err := ParseString(snapshotSource)
	require.NoError(t, err)

	queries := []string{"a~x", "a.b~value", "a.b~other", "a.b~none", "c~x", "q~x"}

	for _, format := range []Format{FormatJSON, FormatYAML, FormatCBOR} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, doc, format))

			n, err := DecodeSnapshot(&buf, format)
			require.NoError(t, err)

			for _, raw := range queries {
				q, err := ParseQuery(raw)
				require.NoError(t, err)
				assert.Equal(t, doc.Execute(q), n.Resolve(q), raw)
			}
		})
	}
}

func TestEncodeCBORDeterministic(t *testing.T) {
	doc, err := ParseString(`<a z="1" y="2" x="3" w="4"></a>`)
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, Encode(&first, doc, FormatCBOR))
	require.NoError(t, Encode(&second, doc, FormatCBOR))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestEncodeJSONShape(t *testing.T) {
	doc, err := ParseString(`<a k="v"></a>`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc, FormatJSON))
	assert.JSONEq(t, `{"name":"/","children":[{"name":"a","attributes":{"k":"v"}}]}`, buf.String())
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "yaml", "cbor"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)

	doc, err := ParseString(`<a></a>`)
	require.NoError(t, err)
	assert.Error(t, Encode(&bytes.Buffer{}, doc, Format("xml")))

	_, err = DecodeSnapshot(&bytes.Buffer{}, Format("xml"))
	assert.Error(t, err)
}

func TestDecodeSnapshotInvalid(t *testing.T) {
	_, err := DecodeSnapshot(bytes.NewBufferString("{not json"), FormatJSON)
	assert.Error(t, err)
}
