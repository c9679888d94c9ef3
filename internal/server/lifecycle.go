// file: internal/server/lifecycle.go
package server

import (
	"context"

	"github.com/dkoosis/agentrelay/internal/logging"
	"github.com/looplab/fsm"
)

// Listener lifecycle states. The machine loops stopped, starting, running,
// stopping, stopped; a failed bind short-circuits starting back to stopped.
const (
	stateStopped  = "stopped"
	stateStarting = "starting"
	stateRunning  = "running"
	stateStopping = "stopping"
)

// Lifecycle events.
const (
	eventStart      = "start"
	eventStarted    = "started"
	eventBindFailed = "bind_failed"
	eventStop       = "stop"
	eventStopped    = "stopped_done"
)

// lifecycle tracks the listener's state machine. The manager serializes all
// transitions under its handle mutex, so the machine itself needs no extra
// locking beyond what looplab/fsm provides.
type lifecycle struct {
	machine *fsm.FSM
	logger  logging.Logger
}

// newLifecycle builds the machine in the stopped state.
func newLifecycle(logger logging.Logger) *lifecycle {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	l := &lifecycle{logger: logger.WithField("component", "listener_lifecycle")}

	l.machine = fsm.NewFSM(
		stateStopped,
		fsm.Events{
			{Name: eventStart, Src: []string{stateStopped}, Dst: stateStarting},
			{Name: eventStarted, Src: []string{stateStarting}, Dst: stateRunning},
			{Name: eventBindFailed, Src: []string{stateStarting}, Dst: stateStopped},
			{Name: eventStop, Src: []string{stateRunning, stateStarting}, Dst: stateStopping},
			{Name: eventStopped, Src: []string{stateStopping}, Dst: stateStopped},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				l.logger.Debug("Listener state transition.", "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
	return l
}

// fire triggers a transition. An illegal transition indicates a manager bug;
// it is logged and otherwise ignored so the listener keeps serving.
func (l *lifecycle) fire(ctx context.Context, event string) {
	if err := l.machine.Event(ctx, event); err != nil {
		l.logger.Error("Invalid listener state transition.", "event", event, "state", l.machine.Current(), "error", err)
	}
}

// state returns the current lifecycle state.
func (l *lifecycle) state() string {
	return l.machine.Current()
}
