package langserver

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/teranos/fluxar-ls/errors"
	"github.com/teranos/fluxar-ls/logger"
)

// WebSocketPath is where the LSP WebSocket endpoint is mounted
const WebSocketPath = "/lsp"

// originChecker accepts requests without an Origin header (editors, tests)
// and browser origins whose scheme and host equal an allowed entry; only the
// port may differ. An entry without a host, such as "vscode-webview://",
// matches on scheme alone.
func originChecker(allowed []string) func(r *http.Request) bool {
	type origin struct{ scheme, host string }

	entries := make([]origin, 0, len(allowed))
	for _, entry := range allowed {
		u, err := url.Parse(entry)
		if err != nil || u.Scheme == "" {
			continue
		}
		entries = append(entries, origin{scheme: strings.ToLower(u.Scheme), host: strings.ToLower(u.Hostname())})
	}

	return func(r *http.Request) bool {
		header := r.Header.Get("Origin")
		if header == "" {
			return true
		}
		u, err := url.Parse(header)
		if err != nil {
			return false
		}
		scheme, host := strings.ToLower(u.Scheme), strings.ToLower(u.Hostname())
		for _, e := range entries {
			if e.scheme == scheme && (e.host == "" || e.host == host) {
				return true
			}
		}
		return false
	}
}

// NewWebSocketHandler returns an http.Handler that upgrades each request to
// a WebSocket and serves one LSP session on it with its own providers.
func NewWebSocketHandler(opts Options, allowedOrigins []string) http.Handler {
	opts = opts.withDefaults()
	upgrader := websocket.Upgrader{CheckOrigin: originChecker(allowedOrigins)}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithSession(r.Context(), uuid.NewString())
		log := opts.Logger.With(logger.FieldsFromContext(ctx)...).With(logger.FieldRemote, r.RemoteAddr)

		log.Infow("GLSP WebSocket connection request")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Errorw("Failed to upgrade WebSocket", logger.FieldError, err)
			return
		}

		sessionOpts := opts
		sessionOpts.Logger = log
		h := NewHandler(sessionOpts)
		defer h.Close()

		log.Infow("Serving GLSP over WebSocket")

		// Blocks until the connection closes
		h.Server().ServeWebSocket(conn)

		log.Infow("GLSP WebSocket connection closed")
	})
}

// ServeWebSocket listens on addr and serves LSP sessions at WebSocketPath
// until ctx is cancelled.
func ServeWebSocket(ctx context.Context, addr string, opts Options, allowedOrigins []string) error {
	opts = opts.withDefaults()

	mux := http.NewServeMux()
	mux.Handle(WebSocketPath, NewWebSocketHandler(opts, allowedOrigins))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		opts.Logger.Infow("Serving LSP over WebSocket", logger.FieldAddress, addr, "path", WebSocketPath)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return errors.Wrapf(err, "websocket server on %s", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "websocket server shutdown")
		}
		return nil
	}
}
