package completion

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(items []Suggestion) []string {
	return lo.Map(items, func(s Suggestion, _ int) string { return s.Label })
}

func lineRequest(line string) Request {
	return Request{
		LanguageID: LanguageID,
		Text:       line,
		Position:   Position{Line: 0, Character: uint32(len(line))},
	}
}

func TestFixedProvider_AlwaysFourSuggestions(t *testing.T) {
	ctx := context.Background()

	for _, line := range []string{"", "hello", "foo.table.", "table"} {
		t.Run(line, func(t *testing.T) {
			items, ok := FixedProvider{}.Provide(ctx, lineRequest(line))
			require.True(t, ok)
			assert.Equal(t, []string{"Hello World!", "Good part of the day", "table", "new"}, labels(items))
		})
	}
}

func TestFixedProvider_Items(t *testing.T) {
	items, _ := FixedProvider{}.Provide(context.Background(), Request{})
	require.Len(t, items, 4)

	plain := items[0]
	assert.Nil(t, plain.Insert)
	assert.Equal(t, "Hello World!", plain.InsertText())
	assert.False(t, plain.HasDocumentation())

	snippet := items[1]
	assert.IsType(t, Snippet(""), snippet.Insert)
	assert.Equal(t, "Good ${1|morning,afternoon,evening|}. It is ${1}, right?", snippet.InsertText())
	require.NotNil(t, snippet.Documentation)
	assert.Equal(t, "Inserts a snippet that lets you select [link](http://example.com/a/b/c/x.ts).",
		snippet.Documentation.Resolved())

	table := items[2]
	assert.Equal(t, []string{"."}, table.CommitCharacters)
	assert.True(t, table.HasDocumentation())

	keyword := items[3]
	assert.Equal(t, KindKeyword, keyword.Kind)
	assert.Equal(t, PlainText("new "), keyword.Insert)
	assert.Equal(t, "new ", keyword.InsertText())
	require.NotNil(t, keyword.Command)
	assert.Equal(t, TriggerSuggestCommand, keyword.Command.ID)
	assert.Equal(t, "editor.action.triggerSuggest", keyword.Command.ID)
}

func TestTableMethodProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("after table dot", func(t *testing.T) {
		items, ok := TableMethodProvider{}.Provide(ctx, lineRequest("foo.table."))
		require.True(t, ok)
		assert.Equal(t, []string{"insert", "remove", "extend", "clear", "concat", "find", "len"}, labels(items))
		for _, item := range items {
			assert.Equal(t, KindMethod, item.Kind, item.Label)
		}
	})

	t.Run("documentation only on first three", func(t *testing.T) {
		items, _ := TableMethodProvider{}.Provide(ctx, lineRequest("table."))
		documented := lo.Filter(items, func(s Suggestion, _ int) bool { return s.HasDocumentation() })
		assert.Equal(t, []string{"insert", "remove", "extend"}, labels(documented))
	})

	tests := []struct {
		name string
		req  Request
	}{
		{"no trailing dot", lineRequest("table")},
		{"empty line", lineRequest("")},
		{"dot elsewhere", lineRequest("table.x")},
		{"cursor before dot", Request{Text: "table.", Position: Position{Character: 5}}},
		{"other line", Request{Text: "table.\nfoo", Position: Position{Line: 1, Character: 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, ok := TableMethodProvider{}.Provide(ctx, tt.req)
			assert.False(t, ok)
			assert.Nil(t, items)
		})
	}
}

func TestProviders_Idempotent(t *testing.T) {
	ctx := context.Background()
	req := lineRequest("x = table.")

	for _, p := range []Provider{FixedProvider{}, TableMethodProvider{}} {
		first, ok1 := p.Provide(ctx, req)
		second, ok2 := p.Provide(ctx, req)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, first, second)

		// Results are fresh values: mutating one does not leak into the next call.
		first[0].Label = "mutated"
		third, _ := p.Provide(ctx, req)
		assert.Equal(t, second, third)
	}
}

func TestMarkdown_Resolved(t *testing.T) {
	tests := []struct {
		name string
		md   Markdown
		want string
	}{
		{"no base", Markdown{Value: "see [x](x.ts)"}, "see [x](x.ts)"},
		{"relative", Markdown{Value: "[a](../d.md)", BaseURI: "http://example.com/a/b/c/"}, "[a](http://example.com/a/b/d.md)"},
		{"absolute untouched", Markdown{Value: "[a](https://go.dev)", BaseURI: "http://example.com/"}, "[a](https://go.dev)"},
		{"no links", Markdown{Value: "plain `code`", BaseURI: "http://example.com/"}, "plain `code`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.md.Resolved())
		})
	}
}
