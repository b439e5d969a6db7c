package langserver

import (
	"container/list"
	"sync"
)

// Document is an open text document as last synced by the client
type Document struct {
	URI        string
	LanguageID string
	Version    int32
	Text       string
}

// DocumentCache holds open documents with LRU eviction at a fixed bound.
// A client that never closes documents cannot grow it without limit.
type DocumentCache struct {
	max       int
	documents map[string]*list.Element // URI → list element holding *Document
	lruList   *list.List               // front is most recently used
	mu        sync.Mutex
}

// NewDocumentCache creates a cache holding at most max documents
func NewDocumentCache(max int) *DocumentCache {
	if max <= 0 {
		max = 1
	}
	return &DocumentCache{
		max:       max,
		documents: make(map[string]*list.Element),
		lruList:   list.New(),
	}
}

// Open stores doc, replacing any previous content for its URI. When the cache
// is full the least recently used document is evicted and its URI returned.
func (c *DocumentCache) Open(doc Document) (evicted string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.documents[doc.URI]; exists {
		c.lruList.MoveToFront(elem)
		*elem.Value.(*Document) = doc
		return ""
	}

	if len(c.documents) >= c.max {
		if oldest := c.lruList.Back(); oldest != nil {
			old := oldest.Value.(*Document)
			c.lruList.Remove(oldest)
			delete(c.documents, old.URI)
			evicted = old.URI
		}
	}

	entry := doc
	c.documents[doc.URI] = c.lruList.PushFront(&entry)
	return evicted
}

// Update replaces the text of an open document. It reports false when the
// URI is not open.
func (c *DocumentCache) Update(uri, text string, version int32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.documents[uri]
	if !exists {
		return false
	}
	c.lruList.MoveToFront(elem)
	doc := elem.Value.(*Document)
	doc.Text = text
	doc.Version = version
	return true
}

// Close forgets a document. It reports whether the URI was open.
func (c *DocumentCache) Close(uri string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.documents[uri]
	if !exists {
		return false
	}
	c.lruList.Remove(elem)
	delete(c.documents, uri)
	return true
}

// Get returns a copy of an open document and marks it recently used.
func (c *DocumentCache) Get(uri string) (Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.documents[uri]
	if !exists {
		return Document{}, false
	}
	c.lruList.MoveToFront(elem)
	return *elem.Value.(*Document), true
}

// Len returns the number of open documents
func (c *DocumentCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.documents)
}
