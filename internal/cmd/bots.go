package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
	"github.com/spf13/cobra"
)

// BotsCommand represents the bots command group
type BotsCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	// Subcommands
	listCmd   *BotsListCommand
	getCmd    *BotsGetCommand
	createCmd *BotsCreateCommand
	updateCmd *BotsUpdateCommand
	deleteCmd *BotsDeleteCommand
	askCmd    *BotsAskCommand
}

// NewBotsCommand creates a new bots command
func NewBotsCommand(root *RootCommand) *BotsCommand {
	b := &BotsCommand{
		root: root,
	}

	b.cmd = &cobra.Command{
		Use:   "bots",
		Short: "Manage Jarvis bots",
		Long: `Manage your Jarvis bots.

Bots are custom assistants with their own instructions. Use subcommands
to list, create, update, delete, or chat with your bots.`,
	}

	// Initialize subcommands
	b.listCmd = NewBotsListCommand(b)
	b.getCmd = NewBotsGetCommand(b)
	b.createCmd = NewBotsCreateCommand(b)
	b.updateCmd = NewBotsUpdateCommand(b)
	b.deleteCmd = NewBotsDeleteCommand(b)
	b.askCmd = NewBotsAskCommand(b)

	// Add subcommands
	b.cmd.AddCommand(b.listCmd.Command())
	b.cmd.AddCommand(b.getCmd.Command())
	b.cmd.AddCommand(b.createCmd.Command())
	b.cmd.AddCommand(b.updateCmd.Command())
	b.cmd.AddCommand(b.deleteCmd.Command())
	b.cmd.AddCommand(b.askCmd.Command())

	return b
}

// Command returns the underlying cobra command
func (b *BotsCommand) Command() *cobra.Command {
	return b.cmd
}

// Root returns the parent root command
func (b *BotsCommand) Root() *RootCommand {
	return b.root
}

// BotsListCommand represents the bots list command
type BotsListCommand struct {
	parent *BotsCommand
	cmd    *cobra.Command

	query string
}

// NewBotsListCommand creates a new bots list command
func NewBotsListCommand(parent *BotsCommand) *BotsListCommand {
	l := &BotsListCommand{
		parent: parent,
	}

	l.cmd = &cobra.Command{
		Use:   "list",
		Short: "List bots",
		Long: `List your Jarvis bots.

Examples:
  jarvis bots list
  jarvis bots list -q support
  jarvis bots list -o json`,
		RunE: l.Run,
	}

	l.cmd.Flags().StringVarP(&l.query, "query", "q", "", "Filter bots by name")

	return l
}

// Command returns the underlying cobra command
func (l *BotsListCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the bots list command
func (l *BotsListCommand) Run(cmd *cobra.Command, args []string) error {
	botService := l.parent.Root().Container().BotService()

	bots, err := botService.ListBots(cmd.Context(), l.query)
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return outputJSON(bots)
	default:
		return l.outputTable(bots)
	}
}

// outputTable outputs bots in table format
func (l *BotsListCommand) outputTable(bots []iface.Bot) error {
	if len(bots) == 0 {
		fmt.Println("No bots found.")
		fmt.Println("\nCreate one with: jarvis bots create")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, bot := range bots {
		description := bot.Description
		if len(description) > 50 {
			description = description[:47] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", bot.ID, bot.Name, description)
	}
	return w.Flush()
}

// BotsGetCommand represents the bots get command
type BotsGetCommand struct {
	parent *BotsCommand
	cmd    *cobra.Command
}

// NewBotsGetCommand creates a new bots get command
func NewBotsGetCommand(parent *BotsCommand) *BotsGetCommand {
	g := &BotsGetCommand{
		parent: parent,
	}

	g.cmd = &cobra.Command{
		Use:   "get <bot-id>",
		Short: "Show bot details",
		Args:  cobra.ExactArgs(1),
		RunE:  g.Run,
	}

	return g
}

// Command returns the underlying cobra command
func (g *BotsGetCommand) Command() *cobra.Command {
	return g.cmd
}

// Run executes the bots get command
func (g *BotsGetCommand) Run(cmd *cobra.Command, args []string) error {
	botService := g.parent.Root().Container().BotService()

	bot, err := botService.GetBot(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return outputJSON(bot)
	default:
		fmt.Printf("ID:           %s\n", bot.ID)
		fmt.Printf("Name:         %s\n", bot.Name)
		fmt.Printf("Description:  %s\n", bot.Description)
		fmt.Printf("Instructions: %s\n", bot.Instructions)
		return nil
	}
}

// BotsCreateCommand represents the bots create command
type BotsCreateCommand struct {
	parent *BotsCommand
	cmd    *cobra.Command
}

// NewBotsCreateCommand creates a new bots create command
func NewBotsCreateCommand(parent *BotsCommand) *BotsCreateCommand {
	c := &BotsCreateCommand{
		parent: parent,
	}

	c.cmd = &cobra.Command{
		Use:   "create",
		Short: "Create a new bot",
		Long: `Create a new bot interactively.

You are prompted for a name, an optional description, and the
instructions the bot follows when answering.

Example:
  jarvis bots create`,
		RunE: c.Run,
	}

	return c
}

// Command returns the underlying cobra command
func (c *BotsCreateCommand) Command() *cobra.Command {
	return c.cmd
}

// Run executes the bots create command
func (c *BotsCreateCommand) Run(cmd *cobra.Command, args []string) error {
	botService := c.parent.Root().Container().BotService()

	var name string
	if err := survey.AskOne(&survey.Input{
		Message: "Bot name:",
	}, &name, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var description string
	if err := survey.AskOne(&survey.Input{
		Message: "Description (optional):",
	}, &description); err != nil {
		return err
	}

	var instructions string
	if err := survey.AskOne(&survey.Multiline{
		Message: "Instructions:",
	}, &instructions); err != nil {
		return err
	}

	bot, err := botService.CreateBot(cmd.Context(), &iface.CreateBotInput{
		Name:         name,
		Description:  description,
		Instructions: instructions,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Bot %q created successfully (ID: %s)\n", bot.Name, bot.ID)
	return nil
}

// BotsUpdateCommand represents the bots update command
type BotsUpdateCommand struct {
	parent *BotsCommand
	cmd    *cobra.Command

	name         string
	description  string
	instructions string
}

// NewBotsUpdateCommand creates a new bots update command
func NewBotsUpdateCommand(parent *BotsCommand) *BotsUpdateCommand {
	u := &BotsUpdateCommand{
		parent: parent,
	}

	u.cmd = &cobra.Command{
		Use:   "update <bot-id>",
		Short: "Update a bot",
		Long: `Update a bot's name, description, or instructions.

Only the fields you pass as flags are changed.

Examples:
  jarvis bots update bot-123 --name "Support Bot"
  jarvis bots update bot-123 --instructions "Answer politely."`,
		Args: cobra.ExactArgs(1),
		RunE: u.Run,
	}

	u.cmd.Flags().StringVar(&u.name, "name", "", "New bot name")
	u.cmd.Flags().StringVar(&u.description, "description", "", "New description")
	u.cmd.Flags().StringVar(&u.instructions, "instructions", "", "New instructions")

	return u
}

// Command returns the underlying cobra command
func (u *BotsUpdateCommand) Command() *cobra.Command {
	return u.cmd
}

// Run executes the bots update command
func (u *BotsUpdateCommand) Run(cmd *cobra.Command, args []string) error {
	if u.name == "" && u.description == "" && u.instructions == "" {
		return fmt.Errorf("nothing to update: pass --name, --description, or --instructions")
	}

	botService := u.parent.Root().Container().BotService()

	bot, err := botService.UpdateBot(cmd.Context(), args[0], &iface.UpdateBotInput{
		Name:         u.name,
		Description:  u.description,
		Instructions: u.instructions,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Bot %q updated successfully\n", bot.Name)
	return nil
}

// BotsDeleteCommand represents the bots delete command
type BotsDeleteCommand struct {
	parent *BotsCommand
	cmd    *cobra.Command

	yes bool
}

// NewBotsDeleteCommand creates a new bots delete command
func NewBotsDeleteCommand(parent *BotsCommand) *BotsDeleteCommand {
	d := &BotsDeleteCommand{
		parent: parent,
	}

	d.cmd = &cobra.Command{
		Use:   "delete <bot-id>",
		Short: "Delete a bot",
		Args:  cobra.ExactArgs(1),
		RunE:  d.Run,
	}

	d.cmd.Flags().BoolVarP(&d.yes, "yes", "y", false, "Skip the confirmation prompt")

	return d
}

// Command returns the underlying cobra command
func (d *BotsDeleteCommand) Command() *cobra.Command {
	return d.cmd
}

// Run executes the bots delete command
func (d *BotsDeleteCommand) Run(cmd *cobra.Command, args []string) error {
	botService := d.parent.Root().Container().BotService()
	botID := args[0]

	if !d.yes {
		var confirmed bool
		if err := survey.AskOne(&survey.Confirm{
			Message: fmt.Sprintf("Delete bot %s?", botID),
		}, &confirmed); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := botService.DeleteBot(cmd.Context(), botID); err != nil {
		return err
	}

	fmt.Printf("✓ Bot %s deleted successfully\n", botID)
	return nil
}

// BotsAskCommand represents the bots ask command
type BotsAskCommand struct {
	parent *BotsCommand
	cmd    *cobra.Command
}

// NewBotsAskCommand creates a new bots ask command
func NewBotsAskCommand(parent *BotsCommand) *BotsAskCommand {
	a := &BotsAskCommand{
		parent: parent,
	}

	a.cmd = &cobra.Command{
		Use:   "ask <bot-id> <message>",
		Short: "Send a preview message to a bot",
		Long: `Send a message to one of your bots and print its answer.

Example:
  jarvis bots ask bot-123 "How do I reset my password?"`,
		Args: cobra.MinimumNArgs(2),
		RunE: a.Run,
	}

	return a
}

// Command returns the underlying cobra command
func (a *BotsAskCommand) Command() *cobra.Command {
	return a.cmd
}

// Run executes the bots ask command
func (a *BotsAskCommand) Run(cmd *cobra.Command, args []string) error {
	botService := a.parent.Root().Container().BotService()

	answer, err := botService.AskBot(cmd.Context(), args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	fmt.Print(renderAnswer(answer, 0))
	return nil
}
