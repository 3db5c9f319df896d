package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
	"github.com/spf13/cobra"
)

// PromptsCommand represents the prompts command group
type PromptsCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	// Subcommands
	listCmd       *PromptsListCommand
	createCmd     *PromptsCreateCommand
	updateCmd     *PromptsUpdateCommand
	deleteCmd     *PromptsDeleteCommand
	favoriteCmd   *PromptsFavoriteCommand
	unfavoriteCmd *PromptsFavoriteCommand
}

// NewPromptsCommand creates a new prompts command
func NewPromptsCommand(root *RootCommand) *PromptsCommand {
	p := &PromptsCommand{
		root: root,
	}

	p.cmd = &cobra.Command{
		Use:   "prompts",
		Short: "Manage the Jarvis prompt library",
		Long: `Manage your Jarvis prompt library.

Prompts are reusable message templates. Use subcommands to browse public
prompts, maintain your own, and mark favorites.`,
	}

	// Initialize subcommands
	p.listCmd = NewPromptsListCommand(p)
	p.createCmd = NewPromptsCreateCommand(p)
	p.updateCmd = NewPromptsUpdateCommand(p)
	p.deleteCmd = NewPromptsDeleteCommand(p)
	p.favoriteCmd = NewPromptsFavoriteCommand(p, true)
	p.unfavoriteCmd = NewPromptsFavoriteCommand(p, false)

	// Add subcommands
	p.cmd.AddCommand(p.listCmd.Command())
	p.cmd.AddCommand(p.createCmd.Command())
	p.cmd.AddCommand(p.updateCmd.Command())
	p.cmd.AddCommand(p.deleteCmd.Command())
	p.cmd.AddCommand(p.favoriteCmd.Command())
	p.cmd.AddCommand(p.unfavoriteCmd.Command())

	return p
}

// Command returns the underlying cobra command
func (p *PromptsCommand) Command() *cobra.Command {
	return p.cmd
}

// Root returns the parent root command
func (p *PromptsCommand) Root() *RootCommand {
	return p.root
}

// PromptsListCommand represents the prompts list command
type PromptsListCommand struct {
	parent *PromptsCommand
	cmd    *cobra.Command

	query    string
	category string
	public   bool
	private  bool
	offset   int
	limit    int
}

// NewPromptsListCommand creates a new prompts list command
func NewPromptsListCommand(parent *PromptsCommand) *PromptsListCommand {
	l := &PromptsListCommand{
		parent: parent,
	}

	l.cmd = &cobra.Command{
		Use:   "list",
		Short: "List prompts",
		Long: `List prompts in the library.

Examples:
  jarvis prompts list
  jarvis prompts list -q writing --public
  jarvis prompts list --private -o json`,
		RunE: l.Run,
	}

	l.cmd.Flags().StringVarP(&l.query, "query", "q", "", "Filter prompts by text")
	l.cmd.Flags().StringVar(&l.category, "category", "", "Filter prompts by category")
	l.cmd.Flags().BoolVar(&l.public, "public", false, "Only public prompts")
	l.cmd.Flags().BoolVar(&l.private, "private", false, "Only your private prompts")
	l.cmd.Flags().IntVar(&l.offset, "offset", 0, "Pagination offset")
	l.cmd.Flags().IntVar(&l.limit, "limit", 20, "Maximum prompts to return")

	return l
}

// Command returns the underlying cobra command
func (l *PromptsListCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the prompts list command
func (l *PromptsListCommand) Run(cmd *cobra.Command, args []string) error {
	if l.public && l.private {
		return fmt.Errorf("--public and --private are mutually exclusive")
	}

	promptService := l.parent.Root().Container().PromptService()

	input := &iface.ListPromptsInput{
		Query:    l.query,
		Category: l.category,
		Offset:   l.offset,
		Limit:    l.limit,
	}
	if l.public {
		isPublic := true
		input.IsPublic = &isPublic
	}
	if l.private {
		isPublic := false
		input.IsPublic = &isPublic
	}

	prompts, err := promptService.ListPrompts(cmd.Context(), input)
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return outputJSON(prompts)
	default:
		return l.outputTable(prompts)
	}
}

// outputTable outputs prompts in table format
func (l *PromptsListCommand) outputTable(prompts []iface.Prompt) error {
	if len(prompts) == 0 {
		fmt.Println("No prompts found.")
		fmt.Println("\nCreate one with: jarvis prompts create")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tVISIBILITY\tFAVORITE")
	for _, prompt := range prompts {
		visibility := "private"
		if prompt.IsPublic {
			visibility = "public"
		}
		favorite := ""
		if prompt.IsFavorite {
			favorite = "★"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", prompt.ID, prompt.Title, prompt.Category, visibility, favorite)
	}
	return w.Flush()
}

// PromptsCreateCommand represents the prompts create command
type PromptsCreateCommand struct {
	parent *PromptsCommand
	cmd    *cobra.Command

	public bool
}

// NewPromptsCreateCommand creates a new prompts create command
func NewPromptsCreateCommand(parent *PromptsCommand) *PromptsCreateCommand {
	c := &PromptsCreateCommand{
		parent: parent,
	}

	c.cmd = &cobra.Command{
		Use:   "create",
		Short: "Create a new prompt",
		Long: `Create a new prompt interactively.

Example:
  jarvis prompts create
  jarvis prompts create --public`,
		RunE: c.Run,
	}

	c.cmd.Flags().BoolVar(&c.public, "public", false, "Make the prompt publicly visible")

	return c
}

// Command returns the underlying cobra command
func (c *PromptsCreateCommand) Command() *cobra.Command {
	return c.cmd
}

// Run executes the prompts create command
func (c *PromptsCreateCommand) Run(cmd *cobra.Command, args []string) error {
	promptService := c.parent.Root().Container().PromptService()

	var title string
	if err := survey.AskOne(&survey.Input{
		Message: "Title:",
	}, &title, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var content string
	if err := survey.AskOne(&survey.Multiline{
		Message: "Content:",
	}, &content, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var category string
	if err := survey.AskOne(&survey.Input{
		Message: "Category (optional):",
	}, &category); err != nil {
		return err
	}

	prompt, err := promptService.CreatePrompt(cmd.Context(), &iface.CreatePromptInput{
		Title:    title,
		Content:  content,
		Category: category,
		IsPublic: c.public,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Prompt %q created successfully (ID: %s)\n", prompt.Title, prompt.ID)
	return nil
}

// PromptsUpdateCommand represents the prompts update command
type PromptsUpdateCommand struct {
	parent *PromptsCommand
	cmd    *cobra.Command

	title    string
	content  string
	category string
}

// NewPromptsUpdateCommand creates a new prompts update command
func NewPromptsUpdateCommand(parent *PromptsCommand) *PromptsUpdateCommand {
	u := &PromptsUpdateCommand{
		parent: parent,
	}

	u.cmd = &cobra.Command{
		Use:   "update <prompt-id>",
		Short: "Update a prompt",
		Long: `Update a prompt's title, content, or category.

Only the fields you pass as flags are changed.

Example:
  jarvis prompts update prompt-123 --title "Better title"`,
		Args: cobra.ExactArgs(1),
		RunE: u.Run,
	}

	u.cmd.Flags().StringVar(&u.title, "title", "", "New title")
	u.cmd.Flags().StringVar(&u.content, "content", "", "New content")
	u.cmd.Flags().StringVar(&u.category, "category", "", "New category")

	return u
}

// Command returns the underlying cobra command
func (u *PromptsUpdateCommand) Command() *cobra.Command {
	return u.cmd
}

// Run executes the prompts update command
func (u *PromptsUpdateCommand) Run(cmd *cobra.Command, args []string) error {
	if u.title == "" && u.content == "" && u.category == "" {
		return fmt.Errorf("nothing to update: pass --title, --content, or --category")
	}

	promptService := u.parent.Root().Container().PromptService()

	prompt, err := promptService.UpdatePrompt(cmd.Context(), args[0], &iface.UpdatePromptInput{
		Title:    u.title,
		Content:  u.content,
		Category: u.category,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Prompt %q updated successfully\n", prompt.Title)
	return nil
}

// PromptsDeleteCommand represents the prompts delete command
type PromptsDeleteCommand struct {
	parent *PromptsCommand
	cmd    *cobra.Command

	yes bool
}

// NewPromptsDeleteCommand creates a new prompts delete command
func NewPromptsDeleteCommand(parent *PromptsCommand) *PromptsDeleteCommand {
	d := &PromptsDeleteCommand{
		parent: parent,
	}

	d.cmd = &cobra.Command{
		Use:   "delete <prompt-id>",
		Short: "Delete a prompt",
		Args:  cobra.ExactArgs(1),
		RunE:  d.Run,
	}

	d.cmd.Flags().BoolVarP(&d.yes, "yes", "y", false, "Skip the confirmation prompt")

	return d
}

// Command returns the underlying cobra command
func (d *PromptsDeleteCommand) Command() *cobra.Command {
	return d.cmd
}

// Run executes the prompts delete command
func (d *PromptsDeleteCommand) Run(cmd *cobra.Command, args []string) error {
	promptService := d.parent.Root().Container().PromptService()
	promptID := args[0]

	if !d.yes {
		var confirmed bool
		if err := survey.AskOne(&survey.Confirm{
			Message: fmt.Sprintf("Delete prompt %s?", promptID),
		}, &confirmed); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := promptService.DeletePrompt(cmd.Context(), promptID); err != nil {
		return err
	}

	fmt.Printf("✓ Prompt %s deleted successfully\n", promptID)
	return nil
}

// PromptsFavoriteCommand represents the prompts favorite/unfavorite commands
type PromptsFavoriteCommand struct {
	parent   *PromptsCommand
	cmd      *cobra.Command
	favorite bool
}

// NewPromptsFavoriteCommand creates a favorite or unfavorite command
func NewPromptsFavoriteCommand(parent *PromptsCommand, favorite bool) *PromptsFavoriteCommand {
	f := &PromptsFavoriteCommand{
		parent:   parent,
		favorite: favorite,
	}

	use, short := "favorite <prompt-id>", "Mark a prompt as a favorite"
	if !favorite {
		use, short = "unfavorite <prompt-id>", "Remove a prompt from favorites"
	}

	f.cmd = &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE:  f.Run,
	}

	return f
}

// Command returns the underlying cobra command
func (f *PromptsFavoriteCommand) Command() *cobra.Command {
	return f.cmd
}

// Run executes the favorite/unfavorite command
func (f *PromptsFavoriteCommand) Run(cmd *cobra.Command, args []string) error {
	promptService := f.parent.Root().Container().PromptService()
	promptID := args[0]

	if f.favorite {
		if err := promptService.FavoritePrompt(cmd.Context(), promptID); err != nil {
			return err
		}
		fmt.Printf("✓ Prompt %s added to favorites\n", promptID)
		return nil
	}

	if err := promptService.UnfavoritePrompt(cmd.Context(), promptID); err != nil {
		return err
	}
	fmt.Printf("✓ Prompt %s removed from favorites\n", promptID)
	return nil
}
