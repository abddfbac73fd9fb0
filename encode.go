package tagpath

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format selects a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML, FormatCBOR:
		return f, nil
	}

	return "", fmt.Errorf("unknown format %q (want json, yaml or cbor)", s)
}

// Node is a nested, self-contained copy of a tag and its subtree.
type Node struct {
	Name       string            `json:"name" yaml:"name" cbor:"1,keyasint"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty" cbor:"2,keyasint,omitempty"`
	Children   []*Node           `json:"children,omitempty" yaml:"children,omitempty" cbor:"3,keyasint,omitempty"`
}

var (
	snapshotEncMode cbor.EncMode
	snapshotDecMode cbor.DecMode
)

func init() {
	var err error

	// canonical map order keeps snapshots of the same tree byte identical
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	snapshotEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	snapshotDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// Snapshot copies the document into a Node tree rooted at the synthetic root.
func (d *Document) Snapshot() *Node {
	return d.snapshot(0)
}

func (d *Document) snapshot(id TagID) *Node {
	t := &d.tags[id]
	n := &Node{Name: t.Name}

	if len(t.Attributes) > 0 {
		n.Attributes = make(map[string]string, len(t.Attributes))

		for k, v := range t.Attributes {
			n.Attributes[k] = v
		}
	}

	for _, c := range t.Children {
		n.Children = append(n.Children, d.snapshot(c))
	}

	return n
}

// Encode writes the snapshot of d to w.
func Encode(w io.Writer, d *Document, format Format) error {
	n := d.Snapshot()

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(n)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(n); err != nil {
			return err
		}

		return enc.Close()
	case FormatCBOR:
		return snapshotEncMode.NewEncoder(w).Encode(n)
	}

	return fmt.Errorf("unknown format %q", format)
}

// DecodeSnapshot reads a Node tree previously written by Encode.
func DecodeSnapshot(r io.Reader, format Format) (*Node, error) {
	var n Node
	var err error

	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&n)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&n)
	case FormatCBOR:
		err = snapshotDecMode.NewDecoder(r).Decode(&n)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	if err != nil {
		return nil, fmt.Errorf("decoding %s snapshot: %w", format, err)
	}

	return &n, nil
}

// Resolve answers q against the snapshot the same way Document.Execute does.
func (n *Node) Resolve(q Query) string {
	current := n

	for _, segment := range q.Path {
		var next *Node

		for _, c := range current.Children {
			if c.Name == segment {
				next = c
				break
			}
		}

		if next == nil {
			return NotFound
		}

		current = next
	}

	if value, ok := current.Attributes[q.Attribute]; ok {
		return value
	}

	return NotFound
}
