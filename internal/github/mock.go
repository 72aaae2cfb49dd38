package github

import (
	"context"
	"fmt"
	"time"

	"github.com/ryo246912/coderabbit-github-parser/internal/models"
)

// MockClient implements GitHubClient for testing
type MockClient struct {
	// Control test behavior
	PullRequests      []models.PullRequestSummary
	PullRequestsError error
	CurrentPR         *models.PullRequestSummary
	CurrentPRError    error
	Comments          []models.Comment
	CommentsError     error
	BotComments       []models.ParsedReviewComment
	BotCommentsError  error

	// Track method calls
	ListPullRequestsCalled      bool
	GetCurrentPullRequestCalled bool
	GetAllCommentsCalled        bool
	GetParsedBotCommentsCalled  bool

	// Store call arguments for verification
	LastListOptions models.ListOptions
	LastIdentifier  string
	LastRepo        string
}

// ListPullRequests mocks gh pr list
func (m *MockClient) ListPullRequests(ctx context.Context, opts models.ListOptions) ([]models.PullRequestSummary, error) {
	m.ListPullRequestsCalled = true
	m.LastListOptions = opts
	return m.PullRequests, m.PullRequestsError
}

// GetCurrentPullRequest mocks gh pr view
func (m *MockClient) GetCurrentPullRequest(ctx context.Context) (*models.PullRequestSummary, error) {
	m.GetCurrentPullRequestCalled = true
	return m.CurrentPR, m.CurrentPRError
}

// ResolvePullRequestNumber parses numeric identifiers only
func (m *MockClient) ResolvePullRequestNumber(ctx context.Context, identifier, repo string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(identifier, "%d", &n); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, identifier)
	}
	return n, nil
}

// GetAllComments mocks the merged comment fetch
func (m *MockClient) GetAllComments(ctx context.Context, identifier, repo string) ([]models.Comment, error) {
	m.GetAllCommentsCalled = true
	m.LastIdentifier = identifier
	m.LastRepo = repo
	return m.Comments, m.CommentsError
}

// GetParsedBotComments mocks the CodeRabbit comment fetch
func (m *MockClient) GetParsedBotComments(ctx context.Context, identifier, repo string) ([]models.ParsedReviewComment, error) {
	m.GetParsedBotCommentsCalled = true
	m.LastIdentifier = identifier
	m.LastRepo = repo
	return m.BotComments, m.BotCommentsError
}

// Reset clears all tracking data for fresh test
func (m *MockClient) Reset() {
	m.ListPullRequestsCalled = false
	m.GetCurrentPullRequestCalled = false
	m.GetAllCommentsCalled = false
	m.GetParsedBotCommentsCalled = false
	m.LastListOptions = models.ListOptions{}
	m.LastIdentifier = ""
	m.LastRepo = ""
}

// Helper functions for creating test data
func CreateTestPRs(count int) []models.PullRequestSummary {
	prs := make([]models.PullRequestSummary, count)
	for i := 0; i < count; i++ {
		prs[i] = models.PullRequestSummary{
			Number: i + 1,
			Title:  fmt.Sprintf("Test PR #%d", i+1),
			State:  models.PRStateOpen,
			Author: models.Author{Login: fmt.Sprintf("user%d", i+1)},
		}
	}
	return prs
}

// CreateTestBotComment builds a parsed CodeRabbit comment anchored at path:line
func CreateTestBotComment(id int64, path string, line int, parsed models.ParsedBotComment) models.ParsedReviewComment {
	l := line
	return models.ParsedReviewComment{
		ReviewComment: models.ReviewComment{
			ID:        id,
			User:      models.User{Login: "coderabbitai[bot]", Type: "Bot"},
			Path:      path,
			Line:      &l,
			CreatedAt: time.Date(2025, 1, 1, 12, 0, int(id), 0, time.UTC),
		},
		Parsed: parsed,
	}
}

// NewAPIError is a generic error helper for testing error conditions
func NewAPIError(message string) error {
	return fmt.Errorf("API error: %s", message)
}
