package langserver

import "github.com/teranos/fluxar-ls/logger"

// ServeStdio serves one client on stdin/stdout until the stream closes.
func ServeStdio(opts Options) error {
	h := NewHandler(opts)
	defer h.Close()

	h.logger.Infow("Serving LSP over stdio", logger.FieldLanguage, h.opts.LanguageID)
	return h.Server().RunStdio()
}
