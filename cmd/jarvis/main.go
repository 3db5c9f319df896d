// Package main is the entry point for the Jarvis CLI.
// Jarvis CLI provides command-line access to the Jarvis chat platform:
// conversations with AI assistants, bot management, and a prompt library.
package main

import (
	"os"
	"path/filepath"

	"github.com/jarvis-chat/jarvis-cli/internal/cmd"
	"github.com/jarvis-chat/jarvis-cli/internal/config"
	"github.com/jarvis-chat/jarvis-cli/internal/log"
)

func main() {
	if logger := setupLogging(); logger != nil {
		log.SetDefaultLogger(logger)
		defer logger.Close()
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging initializes the file logger. Failures are swallowed: the
// CLI works fine without diagnostics.
func setupLogging() *log.Logger {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	logger, err := log.New(log.Config{
		Level:    os.Getenv("JARVIS_LOG_LEVEL"),
		FilePath: filepath.Join(homeDir, config.ConfigDirName, "logs", "jarvis.log"),
	})
	if err != nil {
		return nil
	}

	return logger
}
