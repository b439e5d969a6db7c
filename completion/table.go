package completion

import (
	"context"
	"strings"
)

// TablePrefix is the text that must precede the cursor for table methods.
const TablePrefix = "table."

var tableMethods = []struct {
	name string
	doc  string
}{
	{"insert", "Inserts an element into a list at the specified position."},
	{"remove", "Removes the element at the specified position from a list."},
	{"extend", "Extends a list by appending elements from another list."},
	{"clear", ""},
	{"concat", ""},
	{"find", ""},
	{"len", ""},
}

// TableMethodProvider offers table method names after "table.".
type TableMethodProvider struct{}

func (TableMethodProvider) Provide(ctx context.Context, req Request) ([]Suggestion, bool) {
	if !strings.HasSuffix(req.LinePrefix(), TablePrefix) {
		return nil, false
	}

	items := make([]Suggestion, 0, len(tableMethods))
	for _, m := range tableMethods {
		item := Suggestion{Label: m.name, Kind: KindMethod}
		if m.doc != "" {
			item.Documentation = &Markdown{Value: m.doc}
		}
		items = append(items, item)
	}
	return items, true
}
