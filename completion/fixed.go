package completion

import "context"

// FixedProvider offers the same four example suggestions on every request.
type FixedProvider struct{}

func (FixedProvider) Provide(ctx context.Context, req Request) ([]Suggestion, bool) {
	return []Suggestion{
		{
			Label: "Hello World!",
		},
		{
			Label:  "Good part of the day",
			Insert: Snippet("Good ${1|morning,afternoon,evening|}. It is ${1}, right?"),
			Documentation: &Markdown{
				Value:   "Inserts a snippet that lets you select [link](x.ts).",
				BaseURI: "http://example.com/a/b/c/",
			},
		},
		{
			// Typing "." accepts "table" and then opens the method list.
			Label:            "table",
			CommitCharacters: []string{"."},
			Documentation:    &Markdown{Value: "Press `.` to get `console.`"},
		},
		{
			Label:  "new",
			Kind:   KindKeyword,
			Insert: PlainText("new "),
			Command: &Command{
				ID:    TriggerSuggestCommand,
				Title: "Re-trigger completions...",
			},
		},
	}, true
}
