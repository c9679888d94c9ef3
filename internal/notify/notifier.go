// Package notify turns untrusted notification requests into a bounded OS
// notification plus a best-effort sound. It owns field validation, the body
// construction rules, and the Notifier collaborator boundary.
// file: internal/notify/notifier.go
package notify

import (
	"github.com/dkoosis/agentrelay/internal/logging"
)

// PermissionState describes the OS notification permission for this process.
type PermissionState int

// Possible permission states, mirroring what desktop platforms report.
const (
	// PermissionGranted means notifications will be shown.
	PermissionGranted PermissionState = iota
	// PermissionPrompt means the OS has not asked the user yet.
	PermissionPrompt
	// PermissionDenied means the user refused notifications for this app.
	PermissionDenied
)

// String returns the state name for logs.
func (p PermissionState) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionPrompt:
		return "prompt"
	case PermissionDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// Notifier is the collaborator that actually shows desktop notifications.
// Implementations wrap a platform toolkit; tests substitute fakes.
type Notifier interface {
	// Show displays a notification with the given title and body.
	Show(title, body string) error

	// PermissionState reports the OS-level notification permission.
	PermissionState() (PermissionState, error)

	// RequestPermission asks the OS to prompt the user for permission.
	RequestPermission() error
}

// EnsurePermission checks the notification permission up front and requests
// it when the OS has not prompted yet. Everything here is best-effort: a
// denied or unreadable state is logged, never fatal.
func EnsurePermission(notifier Notifier, logger logging.Logger) {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}

	state, err := notifier.PermissionState()
	if err != nil {
		logger.Warn("Unable to read notification permission state.", "error", err)
		return
	}

	switch state {
	case PermissionGranted:
	case PermissionPrompt:
		if err := notifier.RequestPermission(); err != nil {
			logger.Warn("Notification permission request failed.", "error", err)
		}
	case PermissionDenied:
		logger.Warn("Notification permission is denied for this app.")
	}
}
