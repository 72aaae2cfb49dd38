package github

import (
	"context"

	"github.com/ryo246912/coderabbit-github-parser/internal/models"
)

// GitHubClient defines the interface for GitHub operations
type GitHubClient interface {
	ListPullRequests(ctx context.Context, opts models.ListOptions) ([]models.PullRequestSummary, error)
	GetCurrentPullRequest(ctx context.Context) (*models.PullRequestSummary, error)
	ResolvePullRequestNumber(ctx context.Context, identifier, repo string) (int, error)
	GetAllComments(ctx context.Context, identifier, repo string) ([]models.Comment, error)
	GetParsedBotComments(ctx context.Context, identifier, repo string) ([]models.ParsedReviewComment, error)
}

// Ensure Client implements GitHubClient interface
var _ GitHubClient = (*Client)(nil)
