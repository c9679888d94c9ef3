// Package tray is the control surface for the relay: start/stop listening
// and rebinding the listener. The concrete tray UI lives behind the
// Controller interface so the core never depends on a UI toolkit; headless
// and test builds use the no-op controller.
// file: internal/tray/tray.go
package tray

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dkoosis/agentrelay/internal/config"
	"github.com/dkoosis/agentrelay/internal/logging"
	"github.com/dkoosis/agentrelay/internal/server"
)

// Controller runs a platform control surface (tray icon, menu) until the
// context is cancelled.
type Controller interface {
	Run(ctx context.Context) error
}

// NoopController is the control surface for headless builds and tests.
type NoopController struct{}

// Run blocks until the context is cancelled.
func (NoopController) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// Actions are the operations a control surface can invoke. They are the
// only writers of the listening gate.
type Actions struct {
	gate    *server.Gate
	store   *config.Store
	manager *server.Manager
	logger  logging.Logger
}

// NewActions wires the control-surface operations.
func NewActions(gate *server.Gate, store *config.Store, manager *server.Manager, logger logging.Logger) *Actions {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	return &Actions{
		gate:    gate,
		store:   store,
		manager: manager,
		logger:  logger.WithField("component", "tray_actions"),
	}
}

// StartListening opens the gate.
func (a *Actions) StartListening() {
	a.gate.Open()
	a.logger.Info("Listening enabled.")
}

// StopListening closes the gate. The listener keeps its port; handlers
// answer 503 until listening is enabled again.
func (a *Actions) StopListening() {
	a.gate.Close()
	a.logger.Info("Listening disabled.")
}

// Listening reports the gate position, for menu state.
func (a *Actions) Listening() bool {
	return a.gate.Listening()
}

// Binding returns the active listener settings.
func (a *Actions) Binding() config.Settings {
	return a.store.Current()
}

// UpdateBinding validates and applies new listener settings, persists them,
// and restarts the listener on the new binding. When persistence fails the
// settings stay applied in memory but no restart happens; the caller gets
// the error and can retry the save.
func (a *Actions) UpdateBinding(ctx context.Context, settings config.Settings) error {
	if err := a.store.Update(settings); err != nil {
		return errors.Wrap(err, "failed to update listener settings")
	}
	return a.manager.Restart(ctx, a.store.Current())
}
