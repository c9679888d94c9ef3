// file: internal/notify/beeep_notifier.go
package notify

import (
	"github.com/cockroachdb/errors"
	"github.com/gen2brain/beeep"
)

// appName is the name desktop environments display for the relay's notifications.
const appName = "Agent Relay"

// DesktopNotifier shows notifications through the host desktop environment.
type DesktopNotifier struct{}

// NewDesktopNotifier creates the production Notifier.
func NewDesktopNotifier() *DesktopNotifier {
	beeep.AppName = appName
	return &DesktopNotifier{}
}

// Show displays a desktop notification.
func (n *DesktopNotifier) Show(title, body string) error {
	if err := beeep.Notify(title, body, ""); err != nil {
		return errors.Wrap(err, "desktop notification failed")
	}
	return nil
}

// PermissionState reports the notification permission. The desktop backends
// beeep wraps (D-Bus, Windows toasts, osascript) have no queryable
// permission API, so the state is reported as granted and a refusal
// surfaces as a Show error instead.
func (n *DesktopNotifier) PermissionState() (PermissionState, error) {
	return PermissionGranted, nil
}

// RequestPermission is a no-op for the same reason.
func (n *DesktopNotifier) RequestPermission() error {
	return nil
}
