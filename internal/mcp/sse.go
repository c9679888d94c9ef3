// file: internal/mcp/sse.go
package mcp

import (
	"net/http"
	"time"

	"github.com/dkoosis/agentrelay/internal/httputils"
	"github.com/google/uuid"
)

// handleSSE opens the keep-alive stream. The stream never carries data
// payloads: it exists so clients using the HTTP Stream transport can hold a
// channel open. It ends when the client disconnects or the listener is
// torn down, taking the request context with it.
func (h *Handler) handleSSE(w http.ResponseWriter, r *http.Request) {
	if !h.gate.Listening() {
		httputils.WriteMessage(w, http.StatusServiceUnavailable, "Server is not listening")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	connID := uuid.New().String()
	logger := h.logger.WithField("conn_id", connID)
	logger.Debug("SSE stream opened.", "remote", r.RemoteAddr)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			logger.Debug("SSE stream closed.")
			return
		case <-ticker.C:
			// Comment-only event; clients ignore it beyond resetting timeouts.
			if _, err := w.Write([]byte(": keep-alive\n\n")); err != nil {
				logger.Debug("SSE write failed, closing stream.", "error", err)
				return
			}
			flusher.Flush()
		}
	}
}
