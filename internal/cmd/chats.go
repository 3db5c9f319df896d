package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/AlecAivazis/survey/v2"
	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
	"github.com/spf13/cobra"
)

// ChatsCommand represents the chats command group
type ChatsCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	// Subcommands
	listCmd   *ChatsListCommand
	showCmd   *ChatsShowCommand
	sendCmd   *ChatsSendCommand
	deleteCmd *ChatsDeleteCommand
}

// NewChatsCommand creates a new chats command
func NewChatsCommand(root *RootCommand) *ChatsCommand {
	c := &ChatsCommand{
		root: root,
	}

	c.cmd = &cobra.Command{
		Use:   "chats",
		Short: "Manage Jarvis conversations",
		Long: `Manage your Jarvis conversations.

Use subcommands to list conversations, read a transcript, send messages,
or delete a conversation.`,
	}

	// Initialize subcommands
	c.listCmd = NewChatsListCommand(c)
	c.showCmd = NewChatsShowCommand(c)
	c.sendCmd = NewChatsSendCommand(c)
	c.deleteCmd = NewChatsDeleteCommand(c)

	// Add subcommands
	c.cmd.AddCommand(c.listCmd.Command())
	c.cmd.AddCommand(c.showCmd.Command())
	c.cmd.AddCommand(c.sendCmd.Command())
	c.cmd.AddCommand(c.deleteCmd.Command())

	return c
}

// Command returns the underlying cobra command
func (c *ChatsCommand) Command() *cobra.Command {
	return c.cmd
}

// Root returns the parent root command
func (c *ChatsCommand) Root() *RootCommand {
	return c.root
}

// ChatsListCommand represents the chats list command
type ChatsListCommand struct {
	parent *ChatsCommand
	cmd    *cobra.Command

	assistantID string
}

// NewChatsListCommand creates a new chats list command
func NewChatsListCommand(parent *ChatsCommand) *ChatsListCommand {
	l := &ChatsListCommand{
		parent: parent,
	}

	l.cmd = &cobra.Command{
		Use:   "list",
		Short: "List conversations",
		Long: `List your Jarvis conversations.

Examples:
  jarvis chats list
  jarvis chats list -a gpt-4o-mini
  jarvis chats list -o json`,
		RunE: l.Run,
	}

	l.cmd.Flags().StringVarP(&l.assistantID, "assistant", "a", "", "Filter by assistant ID")

	return l
}

// Command returns the underlying cobra command
func (l *ChatsListCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the chats list command
func (l *ChatsListCommand) Run(cmd *cobra.Command, args []string) error {
	chatService := l.parent.Root().Container().ChatService()

	conversations, err := chatService.ListConversations(cmd.Context(), l.assistantID)
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return outputJSON(conversations)
	default:
		return l.outputTable(conversations)
	}
}

// outputTable outputs conversations in table format
func (l *ChatsListCommand) outputTable(conversations []iface.Conversation) error {
	if len(conversations) == 0 {
		fmt.Println("No conversations found.")
		fmt.Println("\nStart one with: jarvis chats send \"your message\"")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCREATED")
	for _, conv := range conversations {
		title := conv.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", conv.ID, title, conv.CreatedAt.Format(time.RFC822))
	}
	return w.Flush()
}

// ChatsShowCommand represents the chats show command
type ChatsShowCommand struct {
	parent *ChatsCommand
	cmd    *cobra.Command
}

// NewChatsShowCommand creates a new chats show command
func NewChatsShowCommand(parent *ChatsCommand) *ChatsShowCommand {
	s := &ChatsShowCommand{
		parent: parent,
	}

	s.cmd = &cobra.Command{
		Use:   "show <conversation-id>",
		Short: "Show a conversation transcript",
		Long: `Show the message history of a conversation.

Examples:
  jarvis chats show conv-123
  jarvis chats show conv-123 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: s.Run,
	}

	return s
}

// Command returns the underlying cobra command
func (s *ChatsShowCommand) Command() *cobra.Command {
	return s.cmd
}

// Run executes the chats show command
func (s *ChatsShowCommand) Run(cmd *cobra.Command, args []string) error {
	chatService := s.parent.Root().Container().ChatService()

	messages, err := chatService.GetMessages(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return outputJSON(messages)
	default:
		if len(messages) == 0 {
			fmt.Println("No messages in this conversation.")
			return nil
		}
		fmt.Print(renderTranscript(messages))
		return nil
	}
}

// ChatsSendCommand represents the chats send command
type ChatsSendCommand struct {
	parent *ChatsCommand
	cmd    *cobra.Command

	conversationID string
	assistantID    string
	assistantModel string
}

// NewChatsSendCommand creates a new chats send command
func NewChatsSendCommand(parent *ChatsCommand) *ChatsSendCommand {
	s := &ChatsSendCommand{
		parent: parent,
	}

	s.cmd = &cobra.Command{
		Use:   "send <message>",
		Short: "Send a chat message",
		Long: `Send a message to Jarvis.

Without -c a new conversation is started; with -c the message continues
an existing conversation.

Examples:
  jarvis chats send "What is the capital of France?"
  jarvis chats send -c conv-123 "And its population?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: s.Run,
	}

	s.cmd.Flags().StringVarP(&s.conversationID, "conversation", "c", "", "Continue an existing conversation")
	s.cmd.Flags().StringVarP(&s.assistantID, "assistant", "a", "", "Assistant ID to answer the message")
	s.cmd.Flags().StringVar(&s.assistantModel, "model", "", "Assistant model type")

	return s
}

// Command returns the underlying cobra command
func (s *ChatsSendCommand) Command() *cobra.Command {
	return s.cmd
}

// Run executes the chats send command
func (s *ChatsSendCommand) Run(cmd *cobra.Command, args []string) error {
	chatService := s.parent.Root().Container().ChatService()

	result, err := chatService.SendMessage(cmd.Context(), &iface.SendMessageInput{
		ConversationID: s.conversationID,
		Content:        strings.Join(args, " "),
		AssistantID:    s.assistantID,
		AssistantModel: s.assistantModel,
	})
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return outputJSON(result)
	default:
		if s.conversationID == "" {
			fmt.Printf("Started conversation %s\n\n", result.ConversationID)
		}
		fmt.Print(renderAnswer(result.Answer, result.RemainingUsage))
		return nil
	}
}

// ChatsDeleteCommand represents the chats delete command
type ChatsDeleteCommand struct {
	parent *ChatsCommand
	cmd    *cobra.Command

	yes bool
}

// NewChatsDeleteCommand creates a new chats delete command
func NewChatsDeleteCommand(parent *ChatsCommand) *ChatsDeleteCommand {
	d := &ChatsDeleteCommand{
		parent: parent,
	}

	d.cmd = &cobra.Command{
		Use:   "delete <conversation-id>",
		Short: "Delete a conversation",
		Long: `Delete a conversation and its message history.

Examples:
  jarvis chats delete conv-123
  jarvis chats delete conv-123 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: d.Run,
	}

	d.cmd.Flags().BoolVarP(&d.yes, "yes", "y", false, "Skip the confirmation prompt")

	return d
}

// Command returns the underlying cobra command
func (d *ChatsDeleteCommand) Command() *cobra.Command {
	return d.cmd
}

// Run executes the chats delete command
func (d *ChatsDeleteCommand) Run(cmd *cobra.Command, args []string) error {
	chatService := d.parent.Root().Container().ChatService()
	conversationID := args[0]

	if !d.yes {
		var confirmed bool
		if err := survey.AskOne(&survey.Confirm{
			Message: fmt.Sprintf("Delete conversation %s?", conversationID),
		}, &confirmed); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := chatService.DeleteConversation(cmd.Context(), conversationID); err != nil {
		return err
	}

	fmt.Printf("✓ Conversation %s deleted successfully\n", conversationID)
	return nil
}

// outputJSON writes a value as indented JSON to stdout
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
