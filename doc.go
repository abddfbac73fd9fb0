// Package tagpath parses a small tag markup and answers attribute queries
// against the resulting tree.
//
// A document is a sequence of elements:
//
//	<a x="1"><b value="hello"></b></a>
//
// Attribute values are quoted strings taken verbatim, there is no
// escaping. Queries name a path of tags from the top level down,
// separated by '.', then '~' and the attribute:
//
//	doc, err := tagpath.ParseString(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Resolve("a.b~value")) // hello
//	fmt.Println(doc.Resolve("a.c~value")) // Not Found!
//
// At each step the first child with a matching name wins. A missing tag
// and a missing attribute both yield NotFound.
package tagpath
