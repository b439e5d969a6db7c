// Package langserver serves the Fluxar completion providers to editors over
// the Language Server Protocol, on stdio or a WebSocket.
package langserver

import (
	"context"
	"sync"

	"github.com/teranos/fluxar-ls/completion"
	"github.com/teranos/fluxar-ls/internal/util"
	"github.com/teranos/fluxar-ls/logger"
	"github.com/teranos/fluxar-ls/manifest"
	"github.com/teranos/fluxar-ls/version"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"
	"go.uber.org/zap"
)

// ServerName is reported to clients in the initialize result
const ServerName = "Fluxar Language Server"

// Options configure one client session
type Options struct {
	LanguageID   string
	MaxDocuments int
	Manifest     *manifest.Manifest
	Logger       *zap.SugaredLogger
	Debug        bool // glsp protocol tracing
	LogText      bool // log full document text on open and change
}

func (o Options) withDefaults() Options {
	if o.LanguageID == "" {
		o.LanguageID = completion.LanguageID
	}
	if o.MaxDocuments <= 0 {
		o.MaxDocuments = 100
	}
	if o.Manifest == nil {
		o.Manifest = manifest.Default()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}
	return o
}

// Handler implements the LSP methods for one client session.
// The completion providers are activated on initialize and disposed on
// shutdown, or on Close when the client goes away without shutting down.
type Handler struct {
	opts      Options
	registry  *completion.Registry
	documents *DocumentCache
	logger    *zap.SugaredLogger

	mu        sync.Mutex
	extension *completion.Extension
}

// NewHandler creates a handler for one client session
func NewHandler(opts Options) *Handler {
	opts = opts.withDefaults()
	return &Handler{
		opts:      opts,
		registry:  completion.NewRegistry(opts.Logger.Named("completion")),
		documents: NewDocumentCache(opts.MaxDocuments),
		logger:    opts.Logger,
	}
}

// Protocol returns the glsp protocol handler wired to h
func (h *Handler) Protocol() *protocol.Handler {
	return &protocol.Handler{
		Initialize:             h.Initialize,
		Initialized:            h.Initialized,
		Shutdown:               h.Shutdown,
		Exit:                   h.Exit,
		SetTrace:               h.SetTrace,
		TextDocumentDidOpen:    h.TextDocumentDidOpen,
		TextDocumentDidChange:  h.TextDocumentDidChange,
		TextDocumentDidClose:   h.TextDocumentDidClose,
		TextDocumentCompletion: h.TextDocumentCompletion,
	}
}

// Server returns a glsp server for this session
func (h *Handler) Server() *glspserver.Server {
	return glspserver.NewServer(h.Protocol(), ServerName, h.opts.Debug)
}

// Close deactivates the providers if the client never sent shutdown
func (h *Handler) Close() {
	h.deactivate()
}

func (h *Handler) activate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.extension == nil {
		h.extension = completion.Activate(h.registry, h.opts.LanguageID, h.logger)
	}
}

func (h *Handler) deactivate() {
	h.mu.Lock()
	ext := h.extension
	h.extension = nil
	h.mu.Unlock()

	if ext != nil {
		ext.Deactivate()
	}
}

// Initialize handles LSP initialize request
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.activate()

	h.logger.Infow("LSP client initializing",
		"client", params.ClientInfo,
		logger.FieldLanguage, h.opts.LanguageID,
		"trigger_characters", h.registry.TriggerCharacters(),
	)

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities := protocol.ServerCapabilities{
		CompletionProvider: &protocol.CompletionOptions{
			TriggerCharacters: h.registry.TriggerCharacters(),
		},
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose: util.Ptr(true),
			Change:    &syncKind,
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    ServerName,
			Version: util.Ptr(version.Get().ServerVersion()),
		},
	}, nil
}

// Initialized is called after client receives InitializeResult
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.logger.Infow("LSP client initialized successfully")
	return nil
}

// Shutdown handles LSP shutdown request
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	h.logger.Infow("LSP client shutting down", "open_documents", h.documents.Len())
	h.deactivate()
	return nil
}

// Exit handles the exit notification
func (h *Handler) Exit(ctx *glsp.Context) error {
	h.logger.Debugw("LSP client exit")
	return nil
}

// SetTrace handles $/setTrace notifications
func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// languageFor picks the language of a document. Clients that don't know the
// language send their own id (often "plaintext"); the manifest's file
// extensions then decide. Any language the manifest contributes is served
// under the configured id, which is what the providers are registered for.
func (h *Handler) languageFor(uri, clientLanguageID string) string {
	if clientLanguageID == h.opts.LanguageID {
		return clientLanguageID
	}
	if _, ok := h.opts.Manifest.Language(clientLanguageID); ok {
		return h.opts.LanguageID
	}
	if _, ok := h.opts.Manifest.LanguageForURI(uri); ok {
		return h.opts.LanguageID
	}
	return clientLanguageID
}

// TextDocumentDidOpen handles document open notifications
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := Document{
		URI:        uri,
		LanguageID: h.languageFor(uri, params.TextDocument.LanguageID),
		Version:    params.TextDocument.Version,
		Text:       params.TextDocument.Text,
	}

	if evicted := h.documents.Open(doc); evicted != "" {
		h.logger.Infow("Document cache limit reached, evicted oldest document",
			"evicted_uri", evicted,
			"new_uri", uri,
			"cache_size", h.documents.Len(),
		)
	}

	h.logger.Debugw("Document opened",
		logger.FieldURI, uri,
		logger.FieldLanguage, doc.LanguageID,
		"length", len(doc.Text),
	)
	h.logText(uri, doc.Text)
	return nil
}

// TextDocumentDidChange handles document change notifications
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	docVersion := params.TextDocument.Version

	// Full document sync: the last whole-document change wins
	for _, change := range params.ContentChanges {
		textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
		if !ok {
			h.logger.Warnw("Ignoring incremental change; server uses full sync", logger.FieldURI, uri)
			continue
		}
		if !h.documents.Update(uri, textChange.Text, docVersion) {
			// Document not in cache (evicted or never opened), add it
			h.documents.Open(Document{
				URI:        uri,
				LanguageID: h.languageFor(uri, ""),
				Version:    docVersion,
				Text:       textChange.Text,
			})
		}
		h.logText(uri, textChange.Text)
	}

	h.logger.Debugw("Document changed", logger.FieldURI, uri, "changes", len(params.ContentChanges))
	return nil
}

// logText dumps a document's full text when the server runs at -vvvv
func (h *Handler) logText(uri, text string) {
	if h.opts.LogText {
		h.logger.Debugw("Document text", logger.FieldURI, uri, "text", text)
	}
}

// TextDocumentDidClose handles document close notifications
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	h.documents.Close(uri)

	h.logger.Debugw("Document closed", logger.FieldURI, uri)
	return nil
}

// TextDocumentCompletion asks the registered providers for suggestions.
// No suggestions is answered with null, not an empty list.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (result any, err error) {
	// Panic recovery: a provider panic must not take the session down
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorw("Panic in completion handler",
				"panic", r,
				logger.FieldURI, params.TextDocument.URI,
			)
			result = nil
			err = nil
		}
	}()

	uri := string(params.TextDocument.URI)
	doc, ok := h.documents.Get(uri)
	if !ok {
		h.logger.Debugw("Completion for unknown document", logger.FieldURI, uri)
		return nil, nil
	}

	req := completion.Request{
		URI:        uri,
		LanguageID: doc.LanguageID,
		Text:       doc.Text,
		Position: completion.Position{
			Line:      params.Position.Line,
			Character: params.Position.Character,
		},
		TriggerCharacter: triggerCharacter(params.Context),
	}

	items, found := h.registry.Complete(context.Background(), req)

	h.logger.Debugw("LSP completion",
		logger.FieldURI, uri,
		"line", req.Position.Line,
		"character", req.Position.Character,
		"trigger", req.TriggerCharacter,
		logger.FieldCount, len(items),
	)

	if !found {
		return nil, nil
	}
	return toCompletionItems(items), nil
}
