package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// StatusCommand represents the status command
type StatusCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewStatusCommand creates a new status command
func NewStatusCommand(root *RootCommand) *StatusCommand {
	s := &StatusCommand{
		root: root,
	}

	s.cmd = &cobra.Command{
		Use:   "status",
		Short: "Check API connectivity and session state",
		Long: `Check whether the Jarvis API is reachable and report the local
session state, including when the stored access token expires.

Example:
  jarvis status`,
		RunE: s.Run,
	}

	return s
}

// Command returns the underlying cobra command
func (s *StatusCommand) Command() *cobra.Command {
	return s.cmd
}

// Run executes the status command
func (s *StatusCommand) Run(cmd *cobra.Command, args []string) error {
	statusService := s.root.Container().StatusService()

	status, err := statusService.Check(cmd.Context())
	if err != nil {
		return err
	}

	if outputFormat(cmd) == "json" {
		return outputJSON(status)
	}

	if status.APIReachable {
		fmt.Printf("API:      reachable (%s)\n", status.Latency.Round(time.Millisecond))
	} else {
		fmt.Println("API:      unreachable")
	}

	if !status.LoggedIn {
		fmt.Println("Session:  not logged in")
		return nil
	}

	fmt.Println("Session:  logged in")
	if !status.TokenExpiresAt.IsZero() {
		if time.Now().After(status.TokenExpiresAt) {
			fmt.Printf("Token:    expired at %s (will refresh on next call)\n", status.TokenExpiresAt.Format(time.RFC822))
		} else {
			fmt.Printf("Token:    valid until %s\n", status.TokenExpiresAt.Format(time.RFC822))
		}
	}

	return nil
}
