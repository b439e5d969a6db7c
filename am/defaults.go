package am

import (
	"fmt"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("language.id", DefaultLanguageID)

	v.SetDefault("server.transport", TransportStdio)
	v.SetDefault("server.address", DefaultAddress)
	v.SetDefault("server.allowed_origins", defaultAllowedOrigins())
	v.SetDefault("server.max_documents", DefaultMaxDocuments)

	v.SetDefault("log.json", false)
	v.SetDefault("log.level", DefaultLogLevel)
}

// BindEnvVars binds configuration keys whose env names don't follow the prefix rule
func BindEnvVars(v *viper.Viper) {
	// Common across language servers; lets editors pass a level without knowing our prefix
	v.BindEnv("log.level", "FLUXAR_LOG_LEVEL", "LSP_LOG_LEVEL")
}

func defaultAllowedOrigins() []string {
	return []string{
		"http://localhost",
		"https://localhost",
		"http://127.0.0.1",
		"https://127.0.0.1",
		"vscode-webview://",
	}
}

// GetAllowedOrigins returns the allowed WebSocket origins
func (c *Config) GetAllowedOrigins() []string {
	if len(c.Server.AllowedOrigins) == 0 {
		return defaultAllowedOrigins()
	}
	return c.Server.AllowedOrigins
}

// GetMaxDocuments returns the per-client document cache bound
func (c *Config) GetMaxDocuments() int {
	if c.Server.MaxDocuments <= 0 {
		return DefaultMaxDocuments
	}
	return c.Server.MaxDocuments
}

// GetLanguageID returns the language the providers register for
func (c *Config) GetLanguageID() string {
	if c.Language.ID == "" {
		return DefaultLanguageID
	}
	return c.Language.ID
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Language: %s, Server: {Transport: %s, Address: %s}, Log: {Level: %s}}",
		c.Language.ID, c.Server.Transport, c.Server.Address, c.Log.Level)
}
