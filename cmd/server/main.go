// Package main implements the Agent Relay server binary.
// file: cmd/server/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dkoosis/agentrelay/internal/config"
	"github.com/dkoosis/agentrelay/internal/logging"
)

// Version information (populated at build time).
var Version = "dev"

func main() {
	var (
		configPath  string
		logLevel    string
		bindAddr    string
		bindPort    int
		showVersion bool
	)

	flag.StringVar(&configPath, "config", config.DefaultPath(), "Path to the settings file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&bindAddr, "addr", "", "Override the bind address for this run")
	flag.IntVar(&bindPort, "port", 0, "Override the bind port for this run")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("agent-relay %s\n", Version)
		return
	}

	logging.InitLogging(logging.LogLevel(logLevel), os.Stderr)

	if err := runServer(configPath, bindAddr, bindPort); err != nil {
		logging.GetLogger("main").Error("Server exited with error", "error", fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
}
