package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cli/go-gh/v2/pkg/repository"

	"github.com/ryo246912/coderabbit-github-parser/internal/coderabbit"
	"github.com/ryo246912/coderabbit-github-parser/internal/models"
	"github.com/ryo246912/coderabbit-github-parser/internal/shell"
)

const (
	defaultHost   = "github.com"
	summaryFields = "number,title,state,author"
)

var (
	// ErrMalformedResponse is returned when gh prints JSON of an unexpected shape
	ErrMalformedResponse = errors.New("malformed response from gh")
	// ErrNotFound is returned when a pull request cannot be resolved
	ErrNotFound = errors.New("pull request not found")
	// ErrInvalidIdentifier is returned for identifiers gh would read as a flag
	ErrInvalidIdentifier = errors.New("invalid pull request identifier")
)

// Client talks to GitHub through the gh CLI
type Client struct {
	runner shell.Runner
	logger *log.Logger
}

func NewClient(runner shell.Runner, logger *log.Logger) *Client {
	return &Client{
		runner: runner,
		logger: logger.With("module", "github"),
	}
}

// ListPullRequests runs gh pr list with the given filters
func (c *Client) ListPullRequests(ctx context.Context, opts models.ListOptions) ([]models.PullRequestSummary, error) {
	c.logger.Debug("Getting PR list", "options", opts)

	cmd := shell.NewCommand("gh", "pr", "list").
		Flag("--app", opts.App).
		Flag("--assignee", opts.Assignee).
		Flag("--author", opts.Author).
		Flag("--base", opts.Base).
		Bool("--draft", opts.Draft).
		Flag("--head", opts.Head).
		Flags("--label", opts.Labels).
		Int("--limit", opts.Limit).
		Flag("--search", opts.Search).
		Flag("--state", string(opts.State)).
		Flag("--repo", opts.Repo).
		Flag("--json", summaryFields)

	out, err := c.run(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	var prs []models.PullRequestSummary
	if err := decodeArrays(out, &prs); err != nil {
		return nil, fmt.Errorf("failed to decode pull request list: %w", err)
	}
	return prs, nil
}

// GetCurrentPullRequest returns the PR associated with the checked out branch.
// It returns nil without an error when gh cannot find one.
func (c *Client) GetCurrentPullRequest(ctx context.Context) (*models.PullRequestSummary, error) {
	c.logger.Debug("Getting current PR")

	out, err := c.run(ctx, shell.NewCommand("gh", "pr", "view").Flag("--json", summaryFields))
	if err != nil {
		var execErr *shell.ExecutionError
		if errors.As(err, &execErr) {
			c.logger.Info("No pull request for the current branch", "err", execErr)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to view current pull request: %w", err)
	}

	var pr models.PullRequestSummary
	if err := decodeObject(out, &pr); err != nil {
		return nil, fmt.Errorf("failed to decode current pull request: %w", err)
	}
	return &pr, nil
}

// ResolvePullRequestNumber turns a PR number, URL or branch name into a number.
// Numeric identifiers are returned without calling gh.
func (c *Client) ResolvePullRequestNumber(ctx context.Context, identifier, repo string) (int, error) {
	if err := validateIdentifier(identifier); err != nil {
		return 0, err
	}
	if n, err := strconv.Atoi(strings.TrimSpace(identifier)); err == nil {
		return n, nil
	}

	c.logger.Debug("Resolving PR number", "identifier", identifier, "repo", repo)
	cmd := shell.NewCommand("gh", "pr", "view").
		Arg(identifier).
		Flag("--repo", repo).
		Flag("--json", "number")

	out, err := c.run(ctx, cmd)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve pull request %q: %w", identifier, err)
	}

	var resp struct {
		Number int `json:"number"`
	}
	if err := decodeObject(out, &resp); err != nil {
		return 0, fmt.Errorf("failed to decode pull request %q: %w", identifier, err)
	}
	if resp.Number == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, identifier)
	}
	return resp.Number, nil
}

// GetConversationComments fetches PR-level comments
func (c *Client) GetConversationComments(ctx context.Context, identifier, repo string) ([]models.ConversationComment, error) {
	if err := validateIdentifier(identifier); err != nil {
		return nil, err
	}
	cmd := shell.NewCommand("gh", "pr", "view").
		Arg(identifier).
		Flag("--repo", repo).
		Flag("--json", "comments")

	out, err := c.run(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation comments: %w", err)
	}

	var resp struct {
		Comments *[]models.ConversationComment `json:"comments"`
	}
	if err := decodeObject(out, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode conversation comments: %w", err)
	}
	if resp.Comments == nil {
		return nil, fmt.Errorf("%w: missing comments array", ErrMalformedResponse)
	}
	return *resp.Comments, nil
}

// GetReviewComments fetches line-level review comments
func (c *Client) GetReviewComments(ctx context.Context, identifier, repo string) ([]models.ReviewComment, error) {
	number, err := c.ResolvePullRequestNumber(ctx, identifier, repo)
	if err != nil {
		return nil, err
	}

	endpoint, hostname, err := reviewCommentsEndpoint(repo, number)
	if err != nil {
		return nil, err
	}

	cmd := shell.NewCommand("gh", "api").
		Arg(endpoint).
		Flag("--hostname", hostname).
		Bool("--paginate", true)

	out, err := c.run(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch review comments: %w", err)
	}

	var comments []models.ReviewComment
	if err := decodeArrays(out, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode review comments: %w", err)
	}
	return comments, nil
}

// GetAllComments returns conversation and review comments ordered by creation time
func (c *Client) GetAllComments(ctx context.Context, identifier, repo string) ([]models.Comment, error) {
	c.logger.Debug("Getting PR comments", "identifier", identifier, "repo", repo)

	conversation, err := c.GetConversationComments(ctx, identifier, repo)
	if err != nil {
		return nil, err
	}
	review, err := c.GetReviewComments(ctx, identifier, repo)
	if err != nil {
		return nil, err
	}

	return MergeComments(conversation, review), nil
}

// GetParsedBotComments returns the CodeRabbit review comments that parse.
// Comments that do not match the CodeRabbit format are logged and skipped.
func (c *Client) GetParsedBotComments(ctx context.Context, identifier, repo string) ([]models.ParsedReviewComment, error) {
	review, err := c.GetReviewComments(ctx, identifier, repo)
	if err != nil {
		return nil, err
	}

	parsed := make([]models.ParsedReviewComment, 0, len(review))
	for _, rc := range review {
		if !coderabbit.IsBotComment(rc.User.Login) {
			continue
		}
		p, ok := coderabbit.Parse(rc.Body)
		if !ok {
			c.logger.Warn("Skipping CodeRabbit comment", "id", rc.ID, "url", rc.HTMLURL, "err", coderabbit.ErrParseRejected)
			continue
		}
		parsed = append(parsed, models.ParsedReviewComment{ReviewComment: rc, Parsed: p})
	}

	c.logger.Debug("Parsed CodeRabbit comments", "total", len(review), "parsed", len(parsed))
	return parsed, nil
}

// MergeComments tags both streams as Comment and sorts them by creation time.
// Comments created at the same instant keep conversation-then-review order.
func MergeComments(conversation []models.ConversationComment, review []models.ReviewComment) []models.Comment {
	merged := make([]models.Comment, 0, len(conversation)+len(review))
	for _, c := range conversation {
		merged = append(merged, c)
	}
	for _, c := range review {
		merged = append(merged, c)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Created().Before(merged[j].Created())
	})
	return merged
}

func (c *Client) run(ctx context.Context, cmd *shell.Command) ([]byte, error) {
	res, err := c.runner.Run(ctx, cmd.String())
	if err != nil {
		return nil, err
	}
	return res.Stdout, nil
}

// validateIdentifier rejects empty identifiers and ones starting with "-",
// which gh would parse as a flag even when quoted.
func validateIdentifier(identifier string) error {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" || strings.HasPrefix(trimmed, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, identifier)
	}
	return nil
}

// reviewCommentsEndpoint builds the REST path for a PR's review comments.
// Without a repo gh fills in {owner}/{repo} from the current directory.
func reviewCommentsEndpoint(repo string, number int) (string, string, error) {
	if repo == "" {
		return fmt.Sprintf("repos/{owner}/{repo}/pulls/%d/comments", number), "", nil
	}

	r, err := repository.Parse(repo)
	if err != nil {
		return "", "", fmt.Errorf("invalid repository %q: %w", repo, err)
	}
	hostname := ""
	if r.Host != "" && r.Host != defaultHost {
		hostname = r.Host
	}
	return fmt.Sprintf("repos/%s/%s/pulls/%d/comments", r.Owner, r.Name, number), hostname, nil
}

// decodeArrays decodes one JSON array, or several concatenated arrays as
// printed by gh api --paginate, into out.
func decodeArrays[T any](data []byte, out *[]T) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return fmt.Errorf("%w: expected a JSON array", ErrMalformedResponse)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	items := []T{}
	for {
		var page []T
		err := dec.Decode(&page)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		items = append(items, page...)
	}
	*out = items
	return nil
}

func decodeObject(data []byte, out any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: expected a JSON object", ErrMalformedResponse)
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
