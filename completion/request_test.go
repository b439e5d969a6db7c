package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequest_LinePrefix(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  Position
		want string
	}{
		{"single line end", "foo.table.", Position{0, 10}, "foo.table."},
		{"mid line", "foo.table.bar", Position{0, 10}, "foo.table."},
		{"start", "foo", Position{0, 0}, ""},
		{"past end clamps", "foo", Position{0, 99}, "foo"},
		{"second line", "a\nx.table.", Position{1, 8}, "x.table."},
		{"crlf", "a\r\nb.table.\r\nc", Position{1, 8}, "b.table."},
		{"line past end", "a\nb", Position{5, 1}, ""},
		{"utf16 columns", "é𝄞table.", Position{0, 9}, "é𝄞table."},
		{"utf16 partial", "𝄞table.", Position{0, 2}, "𝄞"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{Text: tt.text, Position: tt.pos}
			assert.Equal(t, tt.want, req.LinePrefix())
		})
	}
}

func TestRequest_Line(t *testing.T) {
	req := Request{Text: "one\ntwo\rthree\r\nfour", Position: Position{Line: 2}}
	assert.Equal(t, "three", req.Line())

	req.Position.Line = 3
	assert.Equal(t, "four", req.Line())
}
