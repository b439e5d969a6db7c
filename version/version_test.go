package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	info := Info{Version: "dev", CommitHash: "abcdef123", BuildTime: "now"}
	assert.Equal(t, "fluxar-ls dev (commit abcdef123, built now)", info.String())
	assert.Equal(t, "dev+abcdef1", info.ServerVersion())

	info.Version = "0.1.0"
	assert.Equal(t, "fluxar-ls 0.1.0 (commit abcdef123, built now)", info.String())
	assert.Equal(t, "0.1.0", info.ServerVersion())
}

func TestGet_Platform(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.Platform)
	assert.NotEmpty(t, info.GoVersion)
}
