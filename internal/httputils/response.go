// Package httputils provides small JSON response helpers shared by the
// relay's HTTP handlers.
// file: internal/httputils/response.go
package httputils

import (
	"encoding/json"
	"net/http"

	"github.com/dkoosis/agentrelay/internal/logging"
)

var logger = logging.GetLogger("httputils")

// WriteJSON writes data as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are gone; all that is left to do is log.
		logger.Error("Failed to encode JSON response.", "error", err, "data_type", data)
	}
}

// WriteMessage writes a {"message": ...} JSON body with the given status.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}
