// file: internal/server/manager.go
package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dkoosis/agentrelay/internal/config"
	"github.com/dkoosis/agentrelay/internal/logging"
	"github.com/dkoosis/agentrelay/internal/relayerr"
)

// readHeaderTimeout bounds how long a connection may dribble its headers.
const readHeaderTimeout = 10 * time.Second

// listenerHandle is the opaque handle to one running listener task.
type listenerHandle struct {
	server   *http.Server
	listener net.Listener
	addr     string
	// done closes when the serve loop has exited.
	done chan struct{}
}

// Manager owns the lifecycle of the network listener. At most one listener
// is live at a time; the handle slot is guarded by a mutex held across the
// whole abort+spawn sequence so concurrent restarts serialize and aborts
// and spawns never interleave.
type Manager struct {
	mu        sync.Mutex
	handle    *listenerHandle
	handler   http.Handler
	lifecycle *lifecycle
	logger    logging.Logger
}

// NewManager creates a Manager serving the given handler.
func NewManager(handler http.Handler, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	logger = logger.WithField("component", "listener_manager")
	return &Manager{
		handler:   handler,
		lifecycle: newLifecycle(logger),
		logger:    logger,
	}
}

// Start binds a listener on the settings' address and begins serving. A
// bind failure is logged and returned; the attempt is abandoned without
// retry and no listener is left running.
func (m *Manager) Start(ctx context.Context, settings config.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.abortLocked(ctx)
	return m.spawnLocked(ctx, settings)
}

// Restart aborts the current listener unconditionally, then binds and
// spawns a new one. The abort happens even if the new bind later fails:
// a failed restart may leave the service down until the next successful
// one. In-flight requests on the old listener may see connection resets.
func (m *Manager) Restart(ctx context.Context, settings config.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger.Info("Restarting listener.", "bind_address", settings.BindAddress, "port", settings.Port)
	m.abortLocked(ctx)
	return m.spawnLocked(ctx, settings)
}

// Stop aborts the current listener, if any.
func (m *Manager) Stop(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.abortLocked(ctx)
}

// BoundAddr returns the address the live listener is bound to. ok is false
// when no listener is running.
func (m *Manager) BoundAddr() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.handle == nil {
		return "", false
	}
	return m.handle.listener.Addr().String(), true
}

// State returns the lifecycle state, for diagnostics and tests.
func (m *Manager) State() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lifecycle.state()
}

// spawnLocked binds and starts serving. Callers hold m.mu.
func (m *Manager) spawnLocked(ctx context.Context, settings config.Settings) error {
	m.lifecycle.fire(ctx, eventStart)

	addr := settings.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		m.lifecycle.fire(ctx, eventBindFailed)
		bindErr := relayerr.NewBindFailed(addr, err)
		m.logger.Error("HTTP server failed to bind.", "addr", addr, "error", err)
		return bindErr
	}

	srv := &http.Server{
		Handler:           m.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		if serveErr := srv.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			m.logger.Error("HTTP server error.", "addr", addr, "error", serveErr)
		}
	}()

	m.handle = &listenerHandle{server: srv, listener: ln, addr: addr, done: done}
	m.lifecycle.fire(ctx, eventStarted)
	m.logger.Info("Listener started.", "addr", ln.Addr().String())
	return nil
}

// abortLocked tears the current listener down immediately, without waiting
// for in-flight requests to drain. Callers hold m.mu.
func (m *Manager) abortLocked(ctx context.Context) {
	if m.handle == nil {
		return
	}
	m.lifecycle.fire(ctx, eventStop)

	// Close, not Shutdown: abort is immediate and connection
	// resets on the old listener are accepted.
	if err := m.handle.server.Close(); err != nil {
		m.logger.Warn("Error closing previous listener.", "addr", m.handle.addr, "error", err)
	}
	<-m.handle.done

	m.lifecycle.fire(ctx, eventStopped)
	m.logger.Info("Listener stopped.", "addr", m.handle.addr)
	m.handle = nil
}
