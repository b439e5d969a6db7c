package completion

import (
	"github.com/teranos/fluxar-ls/logger"
	"go.uber.org/zap"
)

// LanguageID is the language the providers are registered for by default.
const LanguageID = "fluxar"

// Extension is one activation of the Fluxar completion providers.
type Extension struct {
	languageID    string
	subscriptions Subscriptions
	logger        *zap.SugaredLogger
}

// Activate registers the fixed provider and the table method provider for
// languageID. The table provider also fires when "." is typed.
func Activate(registry *Registry, languageID string, log *zap.SugaredLogger) *Extension {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	ext := &Extension{languageID: languageID, logger: log}

	ext.subscriptions.Add(
		registry.Register(languageID, FixedProvider{}),
		registry.Register(languageID, TableMethodProvider{}, "."),
	)

	log.Infow("Completion providers activated",
		logger.FieldLanguage, languageID,
		"providers", ext.subscriptions.Len(),
	)
	return ext
}

// LanguageID returns the language this extension serves.
func (e *Extension) LanguageID() string {
	return e.languageID
}

// Deactivate disposes all registrations made by Activate.
func (e *Extension) Deactivate() {
	n := e.subscriptions.Len()
	e.subscriptions.Dispose()
	e.logger.Infow("Completion providers deactivated", logger.FieldLanguage, e.languageID, "released", n)
}
