package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/ryo246912/coderabbit-github-parser/internal/github"
	"github.com/ryo246912/coderabbit-github-parser/internal/models"
	"github.com/ryo246912/coderabbit-github-parser/internal/ui"
)

// ReviewService contains the CodeRabbit report logic
type ReviewService struct {
	client github.GitHubClient
	logger *log.Logger
}

// NewReviewService creates a new service instance
func NewReviewService(client github.GitHubClient, logger *log.Logger) *ReviewService {
	return &ReviewService{
		client: client,
		logger: logger.With("module", "review"),
	}
}

// Report describes a Markdown report written to disk
type Report struct {
	Path        string
	PullRequest models.PullRequestSummary
	Count       int
}

// CodeRabbitComments returns the parsed CodeRabbit comments of a PR that pass filter
func (s *ReviewService) CodeRabbitComments(ctx context.Context, identifier, repo string, filter models.BotFilter) ([]models.ParsedReviewComment, error) {
	s.logger.Debug("Getting CodeRabbit comments", "identifier", identifier, "repo", repo, "type", filter.Type, "severity", filter.Severity)

	comments, err := s.client.GetParsedBotComments(ctx, identifier, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get CodeRabbit comments: %w", err)
	}
	return FilterBotComments(comments, filter), nil
}

// WriteCurrentReport renders the CodeRabbit report for the current branch's PR
// into <dir>/pr<N>.md, creating dir when needed.
func (s *ReviewService) WriteCurrentReport(ctx context.Context, dir string) (*Report, error) {
	pr, err := s.client.GetCurrentPullRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current PR: %w", err)
	}
	if pr == nil {
		return nil, fmt.Errorf("%w: make sure you are on a branch with an associated pull request", github.ErrNotFound)
	}
	s.logger.Debug("Found current PR", "prNumber", pr.Number)

	identifier := strconv.Itoa(pr.Number)
	comments, err := s.CodeRabbitComments(ctx, identifier, "", models.BotFilter{})
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	var buf bytes.Buffer
	ui.RenderBotCommentMarkdown(&buf, identifier, comments)

	path := filepath.Join(dir, fmt.Sprintf("pr%d.md", pr.Number))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.logger.Debug("Wrote review report", "path", path, "comments", len(comments))

	return &Report{Path: path, PullRequest: *pr, Count: len(comments)}, nil
}

// FilterBotComments keeps the comments matching filter, preserving order
func FilterBotComments(comments []models.ParsedReviewComment, filter models.BotFilter) []models.ParsedReviewComment {
	filtered := make([]models.ParsedReviewComment, 0, len(comments))
	for _, c := range comments {
		if filter.Match(c.Parsed) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
