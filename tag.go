package tagpath

import "strings"

// RootName is the name of the synthetic root every document starts with.
const RootName = "/"

// TagID addresses a tag inside its Document.
type TagID int

// NoTag is the parent of the root.
const NoTag TagID = -1

type Offset struct {
	Start int
	End   int
}

type Tag struct {
	ID         TagID
	Name       string
	Parent     TagID
	Children   []TagID
	Attributes map[string]string
	Offset     Offset
}

// Attr returns the value of the named attribute.
func (t *Tag) Attr(name string) (string, bool) {
	v, ok := t.Attributes[name]
	return v, ok
}

func (t *Tag) IsRoot() bool {
	return t.Parent == NoTag
}

// Document owns every tag of one parsed input. Tag 0 is the root.
// A Document is never mutated once Parse returns it.
type Document struct {
	tags []Tag
	size int
}

func newDocument(size int) *Document {
	d := &Document{size: size}
	d.tags = append(d.tags, Tag{
		ID:         0,
		Name:       RootName,
		Parent:     NoTag,
		Attributes: make(map[string]string),
		Offset:     Offset{0, size},
	})

	return d
}

func (d *Document) add(parent TagID, name string, start int) *Tag {
	id := TagID(len(d.tags))
	d.tags = append(d.tags, Tag{
		ID:         id,
		Name:       name,
		Parent:     parent,
		Attributes: make(map[string]string),
		Offset:     Offset{start, -1},
	})
	d.tags[parent].Children = append(d.tags[parent].Children, id)

	return &d.tags[id]
}

func (d *Document) Root() *Tag {
	return &d.tags[0]
}

// Tag returns the tag with the given id or nil when id is out of range.
func (d *Document) Tag(id TagID) *Tag {
	if id < 0 || int(id) >= len(d.tags) {
		return nil
	}

	return &d.tags[id]
}

// Len is the number of tags including the root.
func (d *Document) Len() int {
	return len(d.tags)
}

// Size is the length in bytes of the parsed source.
func (d *Document) Size() int {
	return d.size
}

func (d *Document) Children(id TagID) []*Tag {
	t := d.Tag(id)

	if t == nil {
		return nil
	}

	children := make([]*Tag, 0, len(t.Children))

	for _, c := range t.Children {
		children = append(children, &d.tags[c])
	}

	return children
}

// PathOf renders the ancestry of a tag as a dotted string starting at the
// root, e.g. "/.a.b.".
func (d *Document) PathOf(id TagID) string {
	var names []string

	for t := d.Tag(id); t != nil; t = d.Tag(t.Parent) {
		names = append(names, t.Name)
	}

	var sb strings.Builder

	for i := len(names) - 1; i >= 0; i-- {
		sb.WriteString(names[i])
		sb.WriteByte('.')
	}

	return sb.String()
}

// FindAll collects every descendant of id named name, depth first.
func (d *Document) FindAll(id TagID, name string) []*Tag {
	t := d.Tag(id)

	if t == nil {
		return nil
	}

	tags := make([]*Tag, 0)

	for _, c := range t.Children {
		child := &d.tags[c]

		if child.Name == name {
			tags = append(tags, child)
		}

		tags = append(tags, d.FindAll(c, name)...)
	}

	return tags
}

// Walk visits the tree depth first. enter is called before a tag's
// children, exit after them. Either may be nil.
func (d *Document) Walk(enter func(t *Tag, depth int), exit func(t *Tag, depth int)) {
	d.walk(0, 0, enter, exit)
}

func (d *Document) walk(id TagID, depth int, enter func(*Tag, int), exit func(*Tag, int)) {
	t := &d.tags[id]

	if enter != nil {
		enter(t, depth)
	}

	for _, c := range t.Children {
		d.walk(c, depth+1, enter, exit)
	}

	if exit != nil {
		exit(t, depth)
	}
}
