package completion

import (
	"strings"
	"unicode/utf16"
)

// Position is a zero-based cursor location. Character counts UTF-16 code
// units, which is how LSP clients address columns.
type Position struct {
	Line      uint32
	Character uint32
}

// Request is the read-only context of a completion call.
type Request struct {
	URI        string
	LanguageID string
	Text       string
	Position   Position

	// TriggerCharacter is set when typing that character caused the request.
	TriggerCharacter string
}

// Line returns the full text of the cursor's line, or "" past the end.
func (r Request) Line() string {
	line := r.Position.Line
	text := r.Text
	for ; line > 0; line-- {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			return ""
		}
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			i++
		}
		text = text[i+1:]
	}
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	return text
}

// LinePrefix returns the cursor's line from its start up to the cursor.
// A cursor past the end of the line is clamped to the line end.
func (r Request) LinePrefix() string {
	line := r.Line()
	units := int(r.Position.Character)
	for i, ch := range line {
		if units <= 0 {
			return line[:i]
		}
		units -= utf16.RuneLen(ch)
	}
	return line
}
