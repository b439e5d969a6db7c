package langserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/fluxar-ls/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func dialLSP(t *testing.T, origin string) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	testServer := httptest.NewServer(NewWebSocketHandler(Options{}, []string{"http://localhost"}))
	t.Cleanup(testServer.Close)

	wsURL := "ws" + strings.TrimPrefix(testServer.URL, "http")
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	return websocket.DefaultDialer.Dial(wsURL, header)
}

func call(t *testing.T, conn *websocket.Conn, id int, method string, params any) map[string]any {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
		"params":  params,
	}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var response map[string]any
	require.NoError(t, conn.ReadJSON(&response))
	require.Equal(t, float64(id), response["id"])
	require.Nil(t, response["error"], "unexpected error response")
	return response
}

func notify(t *testing.T, conn *websocket.Conn, method string, params any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
	}))
}

// TestWebSocket_Lifecycle runs initialize → didOpen → completion → shutdown
// over a real WebSocket connection.
func TestWebSocket_Lifecycle(t *testing.T) {
	conn, _, err := dialLSP(t, "")
	require.NoError(t, err)
	defer conn.Close()

	initResponse := call(t, conn, 1, "initialize", map[string]any{
		"processId":    nil,
		"clientInfo":   map[string]any{"name": "TestClient", "version": "1.0"},
		"capabilities": map[string]any{},
	})
	result := initResponse["result"].(map[string]any)
	capabilities := result["capabilities"].(map[string]any)
	completionProvider := capabilities["completionProvider"].(map[string]any)
	assert.Equal(t, []any{"."}, completionProvider["triggerCharacters"])

	notify(t, conn, "initialized", map[string]any{})
	notify(t, conn, "textDocument/didOpen", map[string]any{
		"textDocument": map[string]any{
			"uri":        "file:///work/main.fsc",
			"languageId": "fluxar",
			"version":    1,
			"text":       "x = foo.table.",
		},
	})

	completionResponse := call(t, conn, 2, "textDocument/completion", map[string]any{
		"textDocument": map[string]any{"uri": "file:///work/main.fsc"},
		"position":     map[string]any{"line": 0, "character": 14},
		"context":      map[string]any{"triggerKind": 2, "triggerCharacter": "."},
	})
	items := completionResponse["result"].([]any)
	require.Len(t, items, 7)
	first := items[0].(map[string]any)
	assert.Equal(t, "insert", first["label"])
	assert.Equal(t, float64(2), first["kind"], "method kind")
	assert.Equal(t, "markdown", first["documentation"].(map[string]any)["kind"])
	last := items[6].(map[string]any)
	assert.Equal(t, "len", last["label"])
	assert.NotContains(t, last, "documentation")

	noneResponse := call(t, conn, 3, "textDocument/completion", map[string]any{
		"textDocument": map[string]any{"uri": "file:///work/main.fsc"},
		"position":     map[string]any{"line": 0, "character": 3},
		"context":      map[string]any{"triggerKind": 2, "triggerCharacter": "."},
	})
	assert.Contains(t, noneResponse, "result")
	assert.Nil(t, noneResponse["result"])

	call(t, conn, 4, "shutdown", nil)
}

func TestWebSocket_RejectsForeignOrigin(t *testing.T) {
	for _, origin := range []string{"http://evil.example", "http://localhost.evil.example"} {
		t.Run(origin, func(t *testing.T) {
			_, resp, err := dialLSP(t, origin)
			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		})
	}
}

func TestWebSocket_LogsCarrySessionAndRemote(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	testServer := httptest.NewServer(NewWebSocketHandler(Options{Logger: zap.New(core).Sugar()}, nil))
	defer testServer.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(testServer.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	requests := logs.FilterMessage("GLSP WebSocket connection request").All()
	require.Len(t, requests, 1)
	fields := requests[0].ContextMap()
	assert.NotEmpty(t, fields[logger.FieldSession])
	assert.NotEmpty(t, fields[logger.FieldRemote])
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"http://localhost", "https://127.0.0.1", "vscode-webview://"})

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://localhost", true},
		{"http://localhost:5173", true},
		{"HTTP://LocalHost:5173", true},
		{"https://127.0.0.1:8443", true},
		{"vscode-webview://1a2b3c", true},
		{"http://localhost.evil.example", false},
		{"http://localhost.evil.example:5173", false},
		{"http://evil.example/?http://localhost", false},
		{"https://localhost", false},
		{"http://127.0.0.1", false},
		{"null", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, WebSocketPath, nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, check(r))
		})
	}
}

func TestWebSocket_AcceptsAllowedOrigin(t *testing.T) {
	conn, _, err := dialLSP(t, "http://localhost:5173")
	require.NoError(t, err)
	conn.Close()
}
