// Package completion holds the static completion providers for the Fluxar
// language and the registry that hosts them.
//
// Providers are pure: every call builds a fresh result from the request alone,
// and the only two outcomes are a list of suggestions or no suggestions.
package completion

import (
	"net/url"
	"regexp"
)

// TriggerSuggestCommand asks the editor to re-open the suggestion list.
const TriggerSuggestCommand = "editor.action.triggerSuggest"

// Kind is the category tag an editor uses to pick an icon.
// The zero value means no kind was set.
type Kind int

const (
	KindNone Kind = iota
	KindText
	KindMethod
	KindKeyword
	KindSnippet
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMethod:
		return "method"
	case KindKeyword:
		return "keyword"
	case KindSnippet:
		return "snippet"
	default:
		return "none"
	}
}

// Insert is the text inserted when a suggestion is accepted.
// It is either PlainText or Snippet.
type Insert interface {
	Text() string
	isInsert()
}

// PlainText is inserted verbatim.
type PlainText string

func (p PlainText) Text() string { return string(p) }
func (PlainText) isInsert()      {}

// Snippet is a template with tab stops and choices, e.g. ${1|a,b|}.
type Snippet string

func (s Snippet) Text() string { return string(s) }
func (Snippet) isInsert()      {}

// Markdown is documentation shown next to a suggestion.
// Relative link targets are resolved against BaseURI when it is set.
type Markdown struct {
	Value   string
	BaseURI string
}

var markdownLink = regexp.MustCompile(`\]\(([^)\s]+)\)`)

// Resolved returns Value with relative link targets made absolute.
func (m Markdown) Resolved() string {
	if m.BaseURI == "" {
		return m.Value
	}
	base, err := url.Parse(m.BaseURI)
	if err != nil {
		return m.Value
	}
	return markdownLink.ReplaceAllStringFunc(m.Value, func(link string) string {
		target := markdownLink.FindStringSubmatch(link)[1]
		ref, err := url.Parse(target)
		if err != nil || ref.IsAbs() {
			return link
		}
		return "](" + base.ResolveReference(ref).String() + ")"
	})
}

// Command is executed by the editor after the suggestion is inserted.
type Command struct {
	ID    string
	Title string
}

// Suggestion is a single completion candidate.
// Nil fields are absent and are left out when sent to the editor.
type Suggestion struct {
	Label            string
	Kind             Kind
	Insert           Insert
	Documentation    *Markdown
	CommitCharacters []string
	Command          *Command
}

// InsertText returns the text the editor inserts, falling back to the label.
func (s Suggestion) InsertText() string {
	if s.Insert == nil {
		return s.Label
	}
	return s.Insert.Text()
}

// HasDocumentation reports whether the suggestion carries non-empty docs.
func (s Suggestion) HasDocumentation() bool {
	return s.Documentation != nil && s.Documentation.Value != ""
}
