package langserver

import (
	"github.com/samber/lo"
	"github.com/teranos/fluxar-ls/completion"
	"github.com/teranos/fluxar-ls/internal/util"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// toCompletionItems converts suggestions to LSP completion items
func toCompletionItems(items []completion.Suggestion) []protocol.CompletionItem {
	return lo.Map(items, func(s completion.Suggestion, _ int) protocol.CompletionItem {
		return toCompletionItem(s)
	})
}

func toCompletionItem(s completion.Suggestion) protocol.CompletionItem {
	item := protocol.CompletionItem{
		Label: s.Label,
		Kind:  mapCompletionKind(s.Kind),
	}

	switch insert := s.Insert.(type) {
	case completion.Snippet:
		item.InsertText = util.Ptr(insert.Text())
		item.InsertTextFormat = util.Ptr(protocol.InsertTextFormatSnippet)
	case completion.PlainText:
		item.InsertText = util.Ptr(insert.Text())
		item.InsertTextFormat = util.Ptr(protocol.InsertTextFormatPlainText)
	}

	if s.Documentation != nil {
		item.Documentation = protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: s.Documentation.Resolved(),
		}
	}

	if len(s.CommitCharacters) > 0 {
		item.CommitCharacters = append([]string(nil), s.CommitCharacters...)
	}

	if s.Command != nil {
		item.Command = &protocol.Command{
			Title:   s.Command.Title,
			Command: s.Command.ID,
		}
	}

	return item
}

// mapCompletionKind maps our completion kinds to LSP CompletionItemKind.
// KindNone maps to nil so the client picks its own default icon.
func mapCompletionKind(kind completion.Kind) *protocol.CompletionItemKind {
	switch kind {
	case completion.KindText:
		return util.Ptr(protocol.CompletionItemKindText)
	case completion.KindMethod:
		return util.Ptr(protocol.CompletionItemKindMethod)
	case completion.KindKeyword:
		return util.Ptr(protocol.CompletionItemKindKeyword)
	case completion.KindSnippet:
		return util.Ptr(protocol.CompletionItemKindSnippet)
	default:
		return nil
	}
}

// triggerCharacter returns the typed character that caused a completion
// request, or "" for any other invocation.
func triggerCharacter(ctx *protocol.CompletionContext) string {
	if ctx == nil || ctx.TriggerKind != protocol.CompletionTriggerKindTriggerCharacter || ctx.TriggerCharacter == nil {
		return ""
	}
	return *ctx.TriggerCharacter
}
