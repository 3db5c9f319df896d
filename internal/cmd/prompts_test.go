package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
)

func TestPromptsListCommand(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		promptService *MockPromptService
		wantErr       bool
		wantOutput    []string
	}{
		{
			name: "list prompts",
			args: []string{"prompts", "list"},
			promptService: &MockPromptService{
				ListPromptsFunc: func(ctx context.Context, input *iface.ListPromptsInput) ([]iface.Prompt, error) {
					return []iface.Prompt{
						{ID: "p1", Title: "Summarize", Category: "writing", IsPublic: true},
						{ID: "p2", Title: "Review my code", Category: "coding", IsFavorite: true},
					}, nil
				},
			},
			wantOutput: []string{"p1", "Summarize", "public", "p2", "Review my code", "★"},
		},
		{
			name: "empty list",
			args: []string{"prompts", "list"},
			promptService: &MockPromptService{
				ListPromptsFunc: func(ctx context.Context, input *iface.ListPromptsInput) ([]iface.Prompt, error) {
					return nil, nil
				},
			},
			wantOutput: []string{"No prompts found."},
		},
		{
			name: "public filter is forwarded",
			args: []string{"prompts", "list", "--public"},
			promptService: &MockPromptService{
				ListPromptsFunc: func(ctx context.Context, input *iface.ListPromptsInput) ([]iface.Prompt, error) {
					if input.IsPublic == nil || !*input.IsPublic {
						return nil, errors.New("expected public filter")
					}
					return []iface.Prompt{{ID: "p1", Title: "Shared", IsPublic: true}}, nil
				},
			},
			wantOutput: []string{"p1", "Shared"},
		},
		{
			name: "private filter is forwarded",
			args: []string{"prompts", "list", "--private"},
			promptService: &MockPromptService{
				ListPromptsFunc: func(ctx context.Context, input *iface.ListPromptsInput) ([]iface.Prompt, error) {
					if input.IsPublic == nil || *input.IsPublic {
						return nil, errors.New("expected private filter")
					}
					return []iface.Prompt{{ID: "p2", Title: "Mine"}}, nil
				},
			},
			wantOutput: []string{"p2", "Mine", "private"},
		},
		{
			name:    "public and private are mutually exclusive",
			args:    []string{"prompts", "list", "--public", "--private"},
			wantErr: true,
		},
		{
			name: "query and pagination are forwarded",
			args: []string{"prompts", "list", "-q", "review", "--offset", "10", "--limit", "5"},
			promptService: &MockPromptService{
				ListPromptsFunc: func(ctx context.Context, input *iface.ListPromptsInput) ([]iface.Prompt, error) {
					if input.Query != "review" || input.Offset != 10 || input.Limit != 5 {
						return nil, errors.New("unexpected filters")
					}
					return []iface.Prompt{{ID: "p3", Title: "Review my code"}}, nil
				},
			},
			wantOutput: []string{"p3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := testContainer(nil, nil, nil, tt.promptService, nil, nil)

			output, err := executeCommand(t, container, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, want := range tt.wantOutput {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q\ngot: %s", want, output)
				}
			}
		})
	}
}

func TestPromptsDeleteCommand(t *testing.T) {
	t.Run("delete with --yes", func(t *testing.T) {
		deleted := ""
		promptService := &MockPromptService{
			DeletePromptFunc: func(ctx context.Context, id string) error {
				deleted = id
				return nil
			},
		}
		container := testContainer(nil, nil, nil, promptService, nil, nil)

		output, err := executeCommand(t, container, "prompts", "delete", "p1", "-y")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != "p1" {
			t.Errorf("expected p1 to be deleted, got %q", deleted)
		}
		if !strings.Contains(output, "deleted successfully") {
			t.Errorf("output missing confirmation: %s", output)
		}
	})
}

func TestPromptsFavoriteCommands(t *testing.T) {
	t.Run("favorite", func(t *testing.T) {
		favorited := ""
		promptService := &MockPromptService{
			FavoritePromptFunc: func(ctx context.Context, id string) error {
				favorited = id
				return nil
			},
		}
		container := testContainer(nil, nil, nil, promptService, nil, nil)

		output, err := executeCommand(t, container, "prompts", "favorite", "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if favorited != "p1" {
			t.Errorf("expected p1 to be favorited, got %q", favorited)
		}
		if !strings.Contains(output, "added to favorites") {
			t.Errorf("output missing confirmation: %s", output)
		}
	})

	t.Run("unfavorite", func(t *testing.T) {
		unfavorited := ""
		promptService := &MockPromptService{
			UnfavoritePromptFunc: func(ctx context.Context, id string) error {
				unfavorited = id
				return nil
			},
		}
		container := testContainer(nil, nil, nil, promptService, nil, nil)

		output, err := executeCommand(t, container, "prompts", "unfavorite", "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if unfavorited != "p1" {
			t.Errorf("expected p1 to be unfavorited, got %q", unfavorited)
		}
		if !strings.Contains(output, "removed from favorites") {
			t.Errorf("output missing confirmation: %s", output)
		}
	})

	t.Run("favorite error", func(t *testing.T) {
		promptService := &MockPromptService{
			FavoritePromptFunc: func(ctx context.Context, id string) error {
				return errors.New("not found")
			},
		}
		container := testContainer(nil, nil, nil, promptService, nil, nil)

		_, err := executeCommand(t, container, "prompts", "favorite", "p1")
		if err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestPromptsUpdateCommand(t *testing.T) {
	t.Run("update title", func(t *testing.T) {
		promptService := &MockPromptService{
			UpdatePromptFunc: func(ctx context.Context, id string, input *iface.UpdatePromptInput) (*iface.Prompt, error) {
				if id != "p1" {
					return nil, errors.New("unexpected prompt: " + id)
				}
				if input.Title != "New title" {
					return nil, errors.New("unexpected title: " + input.Title)
				}
				return &iface.Prompt{ID: id, Title: input.Title}, nil
			},
		}
		container := testContainer(nil, nil, nil, promptService, nil, nil)

		output, err := executeCommand(t, container, "prompts", "update", "p1", "--title", "New title")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output, "updated successfully") {
			t.Errorf("output missing confirmation: %s", output)
		}
	})
}
