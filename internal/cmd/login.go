package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// LoginCommand represents the login command
type LoginCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	browser bool
}

// NewLoginCommand creates a new login command
func NewLoginCommand(root *RootCommand) *LoginCommand {
	l := &LoginCommand{
		root: root,
	}

	l.cmd = &cobra.Command{
		Use:   "login",
		Short: "Authenticate with Jarvis",
		Long: `Authenticate with the Jarvis chat platform.

By default you are prompted for your email and password. With --browser a
browser window opens to sign in with Google instead. After successful
authentication, your credentials are stored locally.

Examples:
  jarvis login
  jarvis login --browser`,
		RunE: l.Run,
	}

	l.cmd.Flags().BoolVar(&l.browser, "browser", false, "Sign in with Google via the browser")

	return l
}

// Command returns the underlying cobra command
func (l *LoginCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the login command
func (l *LoginCommand) Run(cmd *cobra.Command, args []string) error {
	authService := l.root.Container().AuthService()

	if l.browser {
		if err := authService.LoginWithBrowser(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("✓ Successfully logged in to Jarvis!")
		return nil
	}

	var email string
	if err := survey.AskOne(&survey.Input{
		Message: "Email:",
	}, &email, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var password string
	if err := survey.AskOne(&survey.Password{
		Message: "Password:",
	}, &password, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	if err := authService.Login(cmd.Context(), email, password); err != nil {
		return err
	}

	fmt.Println("✓ Successfully logged in to Jarvis!")
	return nil
}
