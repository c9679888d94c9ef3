// file: internal/server/router.go
package server

import (
	"net/http"
)

// NewRouter assembles the relay's route table. The MCP handler routes its
// own GET/POST split internally.
func NewRouter(notifyHandler http.Handler, mcpHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /agent/notify", notifyHandler)
	mux.Handle("/mcp", mcpHandler)
	return mux
}
