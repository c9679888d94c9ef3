// file: internal/server/handlers.go
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dkoosis/agentrelay/internal/httputils"
	"github.com/dkoosis/agentrelay/internal/logging"
	"github.com/dkoosis/agentrelay/internal/notify"
	"github.com/dkoosis/agentrelay/internal/relayerr"
)

// NotifyRequest is the body of the plain notify endpoint.
type NotifyRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Agent   string `json:"agent"`
}

// NotifyHandler serves POST /agent/notify: the envelope-free path for
// automation agents that just want a notification out.
type NotifyHandler struct {
	gate       *Gate
	dispatcher *notify.Dispatcher
	logger     logging.Logger
}

// NewNotifyHandler creates the plain notify endpoint handler.
func NewNotifyHandler(gate *Gate, dispatcher *notify.Dispatcher, logger logging.Logger) *NotifyHandler {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	return &NotifyHandler{
		gate:       gate,
		dispatcher: dispatcher,
		logger:     logger.WithField("component", "notify_handler"),
	}
}

// ServeHTTP handles one notify request. Unlike the MCP tool path, no
// content length cap is enforced here; the dispatcher's hard truncation
// still bounds what reaches the platform.
func (h *NotifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.gate.Listening() {
		h.logger.Debug("Rejected notify request.", "error", relayerr.NewGateClosed())
		httputils.WriteMessage(w, http.StatusServiceUnavailable, "Server is not listening")
		return
	}

	var payload NotifyRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputils.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	title := strings.TrimSpace(payload.Title)
	content := strings.TrimSpace(payload.Content)
	agent := strings.TrimSpace(payload.Agent)

	if title == "" || content == "" || agent == "" {
		httputils.WriteMessage(w, http.StatusBadRequest, "'title', 'content', and 'agent' are required")
		return
	}

	if err := h.dispatcher.Dispatch(r.Context(), title, content, agent); err != nil {
		// The failure detail stays in the log; callers get a generic message.
		h.logger.Error("Notification dispatch failed.", "error", err, "agent", agent)
		httputils.WriteMessage(w, http.StatusInternalServerError, "Failed to dispatch notification")
		return
	}

	httputils.WriteMessage(w, http.StatusOK, "Notification dispatched")
}
