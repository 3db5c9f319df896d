// Package cmd provides the command-line interface for the Jarvis CLI.
// It contains all cobra commands and their implementations.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jarvis-chat/jarvis-cli/internal/api"
	"github.com/jarvis-chat/jarvis-cli/internal/di"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"
)

// RootCommand represents the root CLI command
type RootCommand struct {
	container *di.Container
	cmd       *cobra.Command

	// Subcommands
	loginCmd   *LoginCommand
	logoutCmd  *LogoutCommand
	signupCmd  *SignupCommand
	chatsCmd   *ChatsCommand
	botsCmd    *BotsCommand
	promptsCmd *PromptsCommand
	whoamiCmd  *WhoamiCommand
	statusCmd  *StatusCommand
}

// NewRootCommand creates a new root command
func NewRootCommand() *RootCommand {
	r := &RootCommand{}

	r.cmd = &cobra.Command{
		Use:   "jarvis",
		Short: "Jarvis CLI - Command line interface for the Jarvis chat platform",
		Long: `Jarvis CLI is a command-line tool for interacting with the Jarvis chat platform.

Jarvis lets you chat with AI assistants, manage your own bots, and keep a
library of reusable prompts.

To get started, run:
  jarvis login       - Authenticate with your Jarvis account
  jarvis chats list  - View your conversations`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.initialize()
		},
	}

	// Global flags
	r.cmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json)")

	// Initialize subcommands (will be wired after container init)
	r.loginCmd = NewLoginCommand(r)
	r.logoutCmd = NewLogoutCommand(r)
	r.signupCmd = NewSignupCommand(r)
	r.chatsCmd = NewChatsCommand(r)
	r.botsCmd = NewBotsCommand(r)
	r.promptsCmd = NewPromptsCommand(r)
	r.whoamiCmd = NewWhoamiCommand(r)
	r.statusCmd = NewStatusCommand(r)

	// Add subcommands
	r.cmd.AddCommand(r.loginCmd.Command())
	r.cmd.AddCommand(r.logoutCmd.Command())
	r.cmd.AddCommand(r.signupCmd.Command())
	r.cmd.AddCommand(r.chatsCmd.Command())
	r.cmd.AddCommand(r.botsCmd.Command())
	r.cmd.AddCommand(r.promptsCmd.Command())
	r.cmd.AddCommand(r.whoamiCmd.Command())
	r.cmd.AddCommand(r.statusCmd.Command())

	return r
}

// initialize sets up the DI container
func (r *RootCommand) initialize() error {
	// Skip if container is already set (e.g., for testing)
	if r.container != nil {
		return nil
	}

	var err error
	r.container, err = di.NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return nil
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Container returns the DI container
func (r *RootCommand) Container() *di.Container {
	return r.container
}

// SetContainer sets a custom container (for testing)
func (r *RootCommand) SetContainer(c *di.Container) {
	r.container = c
}

// Execute is the main entry point for the CLI
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		var authErr *api.AuthError
		if errors.As(err, &authErr) {
			fmt.Fprintln(os.Stderr, "Run 'jarvis login' to sign in again.")
		}
	}
	return err
}

// ExitWithError prints an error message and exits with code 1
func ExitWithError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(1)
}

// outputFormat resolves the global output flag for a subcommand
func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format, _ = cmd.Root().PersistentFlags().GetString("output")
	}
	return format
}
