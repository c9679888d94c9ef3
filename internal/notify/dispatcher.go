// file: internal/notify/dispatcher.go
package notify

import (
	"context"
	"fmt"

	"github.com/dkoosis/agentrelay/internal/logging"
	"github.com/dkoosis/agentrelay/internal/relayerr"
)

// SoundPlayer plays the notification sound. Play must return immediately;
// implementations do the blocking audio work on their own goroutine.
type SoundPlayer interface {
	Play()
}

// Dispatcher turns a validated notification into side effects: the OS
// notification first, then the best-effort sound.
type Dispatcher struct {
	notifier Notifier
	sound    SoundPlayer
	logger   logging.Logger
}

// NewDispatcher creates a Dispatcher. A nil sound player disables sound.
func NewDispatcher(notifier Notifier, sound SoundPlayer, logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	return &Dispatcher{
		notifier: notifier,
		sound:    sound,
		logger:   logger.WithField("component", "dispatcher"),
	}
}

// Dispatch shows a notification titled title with body "{agent}: {content}",
// hard-truncated to MaxBodyChars characters. Truncation counts runes so a
// multi-byte character is never split. The sound task is scheduled only
// after the notification was shown, and its outcome never affects the
// returned error: sound is best-effort.
func (d *Dispatcher) Dispatch(ctx context.Context, title, content, agent string) error {
	body := fmt.Sprintf("%s: %s", agent, content)
	if runes := []rune(body); len(runes) > MaxBodyChars {
		body = string(runes[:MaxBodyChars])
	}

	if err := d.notifier.Show(title, body); err != nil {
		return relayerr.NewDispatchFailed(err)
	}

	d.logger.WithContext(ctx).Debug("Notification dispatched.", "title", title, "agent", agent, "body_chars", len([]rune(body)))

	if d.sound != nil {
		d.sound.Play()
	}
	return nil
}
