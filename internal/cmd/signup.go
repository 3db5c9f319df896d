package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// SignupCommand represents the signup command
type SignupCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	resendTo string
}

// NewSignupCommand creates a new signup command
func NewSignupCommand(root *RootCommand) *SignupCommand {
	s := &SignupCommand{
		root: root,
	}

	s.cmd = &cobra.Command{
		Use:   "signup",
		Short: "Create a new Jarvis account",
		Long: `Create a new Jarvis account with an email and password.

The server sends a verification email to the address you sign up with.
Use --resend-verification to request that email again.

Examples:
  jarvis signup
  jarvis signup --resend-verification you@example.com`,
		RunE: s.Run,
	}

	s.cmd.Flags().StringVar(&s.resendTo, "resend-verification", "", "Resend the verification email to this address")

	return s
}

// Command returns the underlying cobra command
func (s *SignupCommand) Command() *cobra.Command {
	return s.cmd
}

// Run executes the signup command
func (s *SignupCommand) Run(cmd *cobra.Command, args []string) error {
	authService := s.root.Container().AuthService()

	if s.resendTo != "" {
		if err := authService.ResendVerification(cmd.Context(), s.resendTo); err != nil {
			return err
		}
		fmt.Printf("✓ Verification email sent to %s\n", s.resendTo)
		return nil
	}

	var email string
	if err := survey.AskOne(&survey.Input{
		Message: "Email:",
	}, &email, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var username string
	if err := survey.AskOne(&survey.Input{
		Message: "Username:",
	}, &username, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var password string
	if err := survey.AskOne(&survey.Password{
		Message: "Password:",
	}, &password, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	if err := authService.Signup(cmd.Context(), email, password, username); err != nil {
		return err
	}

	fmt.Println("✓ Account created! Check your inbox for a verification email.")
	return nil
}
