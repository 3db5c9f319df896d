package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// WhoamiCommand represents the whoami command
type WhoamiCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewWhoamiCommand creates a new whoami command
func NewWhoamiCommand(root *RootCommand) *WhoamiCommand {
	w := &WhoamiCommand{
		root: root,
	}

	w.cmd = &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Long: `Show the profile and remaining token quota of the signed-in account.

Example:
  jarvis whoami`,
		RunE: w.Run,
	}

	return w
}

// Command returns the underlying cobra command
func (w *WhoamiCommand) Command() *cobra.Command {
	return w.cmd
}

// Run executes the whoami command
func (w *WhoamiCommand) Run(cmd *cobra.Command, args []string) error {
	container := w.root.Container()

	profile, err := container.UserService().CurrentUser(cmd.Context())
	if err != nil {
		return err
	}

	if outputFormat(cmd) == "json" {
		return outputJSON(profile)
	}

	fmt.Printf("User:     %s\n", profile.Username)
	fmt.Printf("Email:    %s\n", profile.Email)
	fmt.Printf("ID:       %s\n", profile.ID)
	if len(profile.Roles) > 0 {
		fmt.Printf("Roles:    %s\n", strings.Join(profile.Roles, ", "))
	}

	// Quota is informative; don't fail whoami if it can't be fetched
	if usage, err := container.UserService().Usage(cmd.Context()); err == nil {
		if usage.Unlimited {
			fmt.Println("Tokens:   unlimited")
		} else {
			fmt.Printf("Tokens:   %d of %d remaining\n", usage.AvailableTokens, usage.TotalTokens)
		}
	}

	return nil
}
