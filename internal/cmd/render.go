package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
)

var (
	queryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	timestampStyle = lipgloss.NewStyle().
			Faint(true)
)

// renderTranscript formats a conversation's message history for the terminal
func renderTranscript(messages []iface.Message) string {
	var b strings.Builder

	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		if !msg.CreatedAt.IsZero() {
			b.WriteString(timestampStyle.Render(msg.CreatedAt.Format(time.RFC822)))
			b.WriteString("\n")
		}
		b.WriteString(queryStyle.Render("You: "))
		b.WriteString(msg.Query)
		b.WriteString("\n")
		b.WriteString(answerStyle.Render("Jarvis: "))
		b.WriteString(msg.Answer)
		b.WriteString("\n")
	}

	return b.String()
}

// renderAnswer formats a single assistant reply
func renderAnswer(answer string, remainingUsage int) string {
	var b strings.Builder
	b.WriteString(answerStyle.Render("Jarvis: "))
	b.WriteString(answer)
	b.WriteString("\n")
	if remainingUsage > 0 {
		b.WriteString(timestampStyle.Render(fmt.Sprintf("(%d tokens remaining)", remainingUsage)))
		b.WriteString("\n")
	}
	return b.String()
}
