// file: cmd/server/run.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"

	"github.com/dkoosis/agentrelay/internal/config"
	"github.com/dkoosis/agentrelay/internal/logging"
	"github.com/dkoosis/agentrelay/internal/mcp"
	"github.com/dkoosis/agentrelay/internal/notify"
	"github.com/dkoosis/agentrelay/internal/server"
	"github.com/dkoosis/agentrelay/internal/sound"
	"github.com/dkoosis/agentrelay/internal/tray"
)

var runLogger = logging.GetLogger("run")

// runServer wires the relay together and blocks until a shutdown signal
// arrives. The listener starts immediately with the gate open; the control
// surface can close the gate or rebind without restarting the process.
// bindAddr and bindPort, when set, override the stored binding for this
// run only; they are never persisted.
func runServer(configPath, bindAddr string, bindPort int) error {
	runLogger.Info("Starting agent relay", "version", Version, "config_path", configPath)

	store := config.NewStore(configPath, runLogger)
	settings := store.Current()
	if bindAddr != "" {
		settings.BindAddress = bindAddr
	}
	if bindPort != 0 {
		settings.Port = bindPort
	}
	if err := settings.Validate(); err != nil {
		return errors.Wrap(err, "runServer: binding overrides are invalid")
	}
	runLogger.Info("Settings loaded", "bind_address", settings.BindAddress, "port", settings.Port)

	notifier := notify.NewDesktopNotifier()
	notify.EnsurePermission(notifier, runLogger)

	player := sound.NewPlayer(runLogger)
	dispatcher := notify.NewDispatcher(notifier, player, runLogger)

	gate := server.NewGate(true)

	mcpHandler, err := mcp.NewHandler(gate, dispatcher, Version, runLogger)
	if err != nil {
		return errors.Wrap(err, "runServer: failed to create MCP handler")
	}
	notifyHandler := server.NewNotifyHandler(gate, dispatcher, runLogger)
	router := server.NewRouter(notifyHandler, mcpHandler)

	manager := server.NewManager(router, runLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx, settings); err != nil {
		return errors.Wrap(err, "runServer: initial listener start failed")
	}
	if addr, ok := manager.BoundAddr(); ok {
		runLogger.Info("Listener bound", "addr", addr)
	}

	actions := tray.NewActions(gate, store, manager, runLogger)
	binding := actions.Binding()
	runLogger.Info("Control surface ready", "listening", actions.Listening(), "binding", binding.Addr())

	var controller tray.Controller = tray.NoopController{}
	controllerDone := make(chan error, 1)
	go func() {
		controllerDone <- controller.Run(ctx)
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-signals:
		runLogger.Info("Received shutdown signal", "signal", sig.String())
	case err := <-controllerDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			runLogger.Error("Control surface exited with error", "error", err)
		}
	}

	cancel()
	manager.Stop(context.Background())
	runLogger.Info("Agent relay stopped")
	return nil
}
