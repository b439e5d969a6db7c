package am

import (
	"github.com/teranos/fluxar-ls/errors"
	"go.uber.org/zap/zapcore"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Language.ID == "" {
		return errors.NewInvalidConfigError("language.id cannot be empty")
	}

	switch c.Server.Transport {
	case TransportStdio, TransportWebSocket, TransportBoth:
	default:
		return errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedTransport, "server.transport %q", c.Server.Transport),
			"valid transports are stdio, websocket and both",
		)
	}

	if c.Server.ServesWebSocket() && c.Server.Address == "" {
		return errors.NewInvalidConfigError("server.address cannot be empty when serving websocket")
	}

	if c.Server.MaxDocuments <= 0 {
		return errors.NewInvalidConfigError("server.max_documents must be > 0, got %d", c.Server.MaxDocuments)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.NewInvalidConfigError("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}

	return nil
}
