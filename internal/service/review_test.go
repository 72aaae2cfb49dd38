package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ryo246912/coderabbit-github-parser/internal/github"
	"github.com/ryo246912/coderabbit-github-parser/internal/models"
)

func testBotComments() []models.ParsedReviewComment {
	return []models.ParsedReviewComment{
		github.CreateTestBotComment(1, "a.go", 10, models.ParsedBotComment{Type: models.TypeIssue, Severity: models.SeverityCritical, Title: "Nil dereference"}),
		github.CreateTestBotComment(2, "b.go", 20, models.ParsedBotComment{Type: models.TypeSuggestion, Severity: models.SeverityMinor, Title: "Rename", Suggestion: "x := 1"}),
		github.CreateTestBotComment(3, "c.go", 30, models.ParsedBotComment{Type: models.TypeIssue, Severity: models.SeverityMinor, Title: "Leak"}),
		github.CreateTestBotComment(4, "d.go", 40, models.ParsedBotComment{Type: models.TypeOther, Severity: models.SeverityInfo, Title: "Verify"}),
	}
}

// TestReviewService_CodeRabbitComments tests type and severity filtering
func TestReviewService_CodeRabbitComments(t *testing.T) {
	tests := []struct {
		name        string
		filter      models.BotFilter
		mockError   error
		expectedIDs []int64
		expectError bool
	}{
		{
			name:        "no filter",
			filter:      models.BotFilter{},
			expectedIDs: []int64{1, 2, 3, 4},
		},
		{
			name:        "all keyword",
			filter:      models.BotFilter{Type: "all", Severity: "all"},
			expectedIDs: []int64{1, 2, 3, 4},
		},
		{
			name:        "type only",
			filter:      models.BotFilter{Type: "issue"},
			expectedIDs: []int64{1, 3},
		},
		{
			name:        "severity only",
			filter:      models.BotFilter{Severity: "minor"},
			expectedIDs: []int64{2, 3},
		},
		{
			name:        "type and severity",
			filter:      models.BotFilter{Type: "issue", Severity: "minor"},
			expectedIDs: []int64{3},
		},
		{
			name:        "nothing matches",
			filter:      models.BotFilter{Severity: "major"},
			expectedIDs: []int64{},
		},
		{
			name:        "API error",
			mockError:   github.NewAPIError("failed"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &github.MockClient{
				BotComments:      testBotComments(),
				BotCommentsError: tt.mockError,
			}
			service := NewReviewService(client, log.New(io.Discard))

			comments, err := service.CodeRabbitComments(context.Background(), "42", "octo/widgets", tt.filter)

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error but got none")
				}
				if !strings.Contains(err.Error(), "failed to get CodeRabbit comments") {
					t.Errorf("Error %q should mention the fetch", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if len(comments) != len(tt.expectedIDs) {
				t.Fatalf("Expected %d comments, got %d", len(tt.expectedIDs), len(comments))
			}
			for i, id := range tt.expectedIDs {
				if comments[i].ID != id {
					t.Errorf("comments[%d].ID = %d, want %d", i, comments[i].ID, id)
				}
			}
			if client.LastIdentifier != "42" || client.LastRepo != "octo/widgets" {
				t.Errorf("client called with (%q, %q)", client.LastIdentifier, client.LastRepo)
			}
		})
	}
}

func TestReviewService_WriteCurrentReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "review-comments")
	client := &github.MockClient{
		CurrentPR:   &models.PullRequestSummary{Number: 12, Title: "Add parser", State: models.PRStateOpen},
		BotComments: testBotComments(),
	}
	service := NewReviewService(client, log.New(io.Discard))

	report, err := service.WriteCurrentReport(context.Background(), dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if report.Path != filepath.Join(dir, "pr12.md") {
		t.Errorf("Path = %q", report.Path)
	}
	if report.Count != 4 {
		t.Errorf("Count = %d, want 4", report.Count)
	}
	if report.PullRequest.Title != "Add parser" {
		t.Errorf("PullRequest.Title = %q", report.PullRequest.Title)
	}
	if client.LastIdentifier != "12" || client.LastRepo != "" {
		t.Errorf("client called with (%q, %q)", client.LastIdentifier, client.LastRepo)
	}

	data, err := os.ReadFile(report.Path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# CodeRabbit Review Comments - PR #12\n") {
		t.Errorf("unexpected report header: %q", strings.SplitN(content, "\n", 2)[0])
	}
	if got := strings.Count(content, "\n### "); got != 4 {
		t.Errorf("report has %d comment sections, want 4", got)
	}
}

func TestReviewService_WriteCurrentReport_Errors(t *testing.T) {
	tests := []struct {
		name           string
		client         *github.MockClient
		expectNotFound bool
		errorContains  string
	}{
		{
			name:           "no current PR",
			client:         &github.MockClient{},
			expectNotFound: true,
		},
		{
			name:          "current PR lookup fails",
			client:        &github.MockClient{CurrentPRError: github.NewAPIError("boom")},
			errorContains: "failed to get current PR",
		},
		{
			name: "comment fetch fails",
			client: &github.MockClient{
				CurrentPR:        &models.PullRequestSummary{Number: 3},
				BotCommentsError: github.NewAPIError("boom"),
			},
			errorContains: "failed to get CodeRabbit comments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			service := NewReviewService(tt.client, log.New(io.Discard))

			_, err := service.WriteCurrentReport(context.Background(), dir)
			if err == nil {
				t.Fatal("Expected error but got none")
			}
			if tt.expectNotFound && !errors.Is(err, github.ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
			if tt.errorContains != "" && !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("Error %q should contain %q", err.Error(), tt.errorContains)
			}
			if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
				t.Errorf("directory %s should not be created on error", dir)
			}
		})
	}
}
