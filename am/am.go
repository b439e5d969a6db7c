// Package am holds the fluxar-ls configuration ("I am").
//
// Sources, lowest to highest precedence: defaults, /etc/fluxar/am.toml,
// ~/.fluxar/am.toml, the nearest am.toml above the working directory,
// an explicit --config file, then FLUXAR_* environment variables.
package am

// Config represents the fluxar-ls configuration
type Config struct {
	Language LanguageConfig `mapstructure:"language"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// LanguageConfig selects the language the completion providers register for
type LanguageConfig struct {
	ID string `mapstructure:"id"`
}

// ServerConfig configures the language server transports
type ServerConfig struct {
	Transport      string   `mapstructure:"transport"`       // stdio, websocket or both
	Address        string   `mapstructure:"address"`         // WebSocket listen address
	AllowedOrigins []string `mapstructure:"allowed_origins"` // Origin prefixes accepted on the WebSocket endpoint
	MaxDocuments   int      `mapstructure:"max_documents"`   // Open documents cached per client before LRU eviction
}

// LogConfig configures logging
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Transport names
const (
	TransportStdio     = "stdio"
	TransportWebSocket = "websocket"
	TransportBoth      = "both"
)

// Defaults
const (
	DefaultLanguageID   = "fluxar"
	DefaultAddress      = "127.0.0.1:7491"
	DefaultMaxDocuments = 100
	DefaultLogLevel     = "info"
)

// ServesStdio reports whether the stdio transport is enabled
func (s ServerConfig) ServesStdio() bool {
	return s.Transport == TransportStdio || s.Transport == TransportBoth
}

// ServesWebSocket reports whether the WebSocket transport is enabled
func (s ServerConfig) ServesWebSocket() bool {
	return s.Transport == TransportWebSocket || s.Transport == TransportBoth
}
