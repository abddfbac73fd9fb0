package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/muzzletov/tagpath"
)

const inventory = `
<store name="north">
	<shelf id="s1" label="tools">
		<item sku="hammer-01" price="12.50"></item>
		<item sku="saw-02" price="23.00"></item>
	</shelf>
	<shelf id="s2" label="paint"></shelf>
</store>`

func queryInventory() {
	doc, err := tagpath.ParseString(inventory)

	if err != nil {
		log.Fatal(err.Error())
	}

	for _, q := range []string{
		"store~name",
		"store.shelf~label",
		"store.shelf.item~sku",
		"store.shelf.item~color",
		"store.cellar~name",
	} {
		fmt.Printf("%-24s %s\n", q, doc.Resolve(q))
	}
}

// fetchRemote parses a document served over http and answers one query.
func fetchRemote(url string, query string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := tagpath.NewClient().FetchParse(ctx, url)

	if err != nil {
		log.Fatal(err.Error())
	}

	fmt.Println(doc.Resolve(query))
}

func main() {
	queryInventory()

	if len(os.Args) == 3 {
		fetchRemote(os.Args[1], os.Args[2])
	}
}
