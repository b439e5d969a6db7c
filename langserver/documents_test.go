package langserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentCache_OpenUpdateClose(t *testing.T) {
	c := NewDocumentCache(10)

	assert.Empty(t, c.Open(Document{URI: "file:///a.fsc", LanguageID: "fluxar", Version: 1, Text: "one"}))

	doc, ok := c.Get("file:///a.fsc")
	require.True(t, ok)
	assert.Equal(t, "one", doc.Text)

	assert.True(t, c.Update("file:///a.fsc", "two", 2))
	doc, _ = c.Get("file:///a.fsc")
	assert.Equal(t, "two", doc.Text)
	assert.Equal(t, int32(2), doc.Version)
	assert.Equal(t, "fluxar", doc.LanguageID, "update keeps the language")

	assert.False(t, c.Update("file:///missing.fsc", "x", 1))

	assert.True(t, c.Close("file:///a.fsc"))
	assert.False(t, c.Close("file:///a.fsc"))
	_, ok = c.Get("file:///a.fsc")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestDocumentCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewDocumentCache(2)

	c.Open(Document{URI: "a"})
	c.Open(Document{URI: "b"})

	// Touch "a" so "b" becomes the oldest
	_, _ = c.Get("a")

	evicted := c.Open(Document{URI: "c"})
	assert.Equal(t, "b", evicted)
	assert.Equal(t, 2, c.Len())

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestDocumentCache_ReopenDoesNotEvict(t *testing.T) {
	c := NewDocumentCache(1)

	c.Open(Document{URI: "a", Text: "old"})
	assert.Empty(t, c.Open(Document{URI: "a", Text: "new"}))

	doc, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "new", doc.Text)
}

func TestDocumentCache_GetReturnsCopy(t *testing.T) {
	c := NewDocumentCache(1)
	c.Open(Document{URI: "a", Text: "text"})

	doc, _ := c.Get("a")
	doc.Text = "changed"

	again, _ := c.Get("a")
	assert.Equal(t, "text", again.Text)
}
