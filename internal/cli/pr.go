package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryo246912/coderabbit-github-parser/internal/models"
	"github.com/ryo246912/coderabbit-github-parser/internal/service"
	"github.com/ryo246912/coderabbit-github-parser/internal/ui"
)

const (
	formatTable    = "table"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

var (
	commentFormats    = []string{formatTable, formatJSON}
	coderabbitFormats = []string{formatTable, formatJSON, formatMarkdown}
	stateValues       = []string{"open", "closed", "merged", "all"}
	typeValues        = []string{"issue", "suggestion", models.FilterAll}
	severityValues    = []string{"critical", "major", "minor", "info", models.FilterAll}
)

const repoUsage = "Select another repository using [HOST/]OWNER/REPO format"

func newPRListCommand(a *app) *cobra.Command {
	var opts models.ListOptions
	var state string

	cmd := &cobra.Command{
		Use:   "pr:list",
		Short: "list the PRs for this repo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oneOf("state", state, stateValues); err != nil {
				return err
			}
			if opts.Limit < 0 {
				return fmt.Errorf("invalid --limit %d: must not be negative", opts.Limit)
			}
			opts.State = models.PRState(state)

			a.Logger.Debug("fetching list of PRs", "options", opts)
			prs, err := a.client.ListPullRequests(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to fetch PR list: %w", err)
			}
			a.Logger.Debug("fetched list of PRs", "count", len(prs))

			ui.RenderPullRequestTable(cmd.OutOrStdout(), prs)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&state, "state", "s", "all", "Filter by state: {open|closed|merged|all}")
	f.StringVarP(&opts.Author, "author", "a", "", "Filter by author")
	f.StringVar(&opts.Assignee, "assignee", "", "Filter by assignee")
	f.StringVarP(&opts.Base, "base", "B", "", "Filter by base branch")
	f.StringVarP(&opts.Head, "head", "H", "", "Filter by head branch")
	f.StringArrayVar(&opts.Labels, "label", nil, "Filter by label (repeatable)")
	f.IntVarP(&opts.Limit, "limit", "L", 0, "Maximum number of items to fetch")
	f.StringVarP(&opts.Search, "search", "S", "", "Search pull requests with query")
	f.BoolVar(&opts.Draft, "draft", false, "Filter by draft state")
	f.StringVar(&opts.App, "app", "", "Filter by GitHub App author")
	f.StringVarP(&opts.Repo, "repo", "R", a.Config.Repo, repoUsage)
	return cmd
}

func newPRCommentsCommand(a *app) *cobra.Command {
	var repo, format string

	cmd := &cobra.Command{
		Use:   "pr:comments <number|url|branch>",
		Short: "list all comments of a PR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := resolveFormat(cmd, format, a.Config.Format, commentFormats)
			if err != nil {
				return err
			}

			identifier := args[0]
			a.Logger.Debug("Getting PR comments", "prIdentifier", identifier, "repo", repo, "format", outFormat)
			comments, err := a.client.GetAllComments(cmd.Context(), identifier, repo)
			if err != nil {
				return fmt.Errorf("failed to get comments for PR %s: %w", identifier, err)
			}

			if outFormat == formatJSON {
				return ui.RenderJSON(cmd.OutOrStdout(), comments, a.Output.Colorize)
			}
			ui.RenderCommentTable(cmd.OutOrStdout(), comments, a.Output.Width)
			return nil
		},
	}

	cmd.Flags().StringVarP(&repo, "repo", "R", a.Config.Repo, repoUsage)
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table or json")
	return cmd
}

func newPRCodeRabbitCommand(a *app) *cobra.Command {
	var repo, format string
	var filter models.BotFilter

	cmd := &cobra.Command{
		Use:   "pr:coderabbit <number|url|branch>",
		Short: "list parsed CodeRabbit review comments of a PR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := resolveFormat(cmd, format, a.Config.Format, coderabbitFormats)
			if err != nil {
				return err
			}
			if err := oneOf("type", filter.Type, typeValues); err != nil {
				return err
			}
			if err := oneOf("severity", filter.Severity, severityValues); err != nil {
				return err
			}

			identifier := args[0]
			reviews := service.NewReviewService(a.client, a.Logger)
			comments, err := reviews.CodeRabbitComments(cmd.Context(), identifier, repo, filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch outFormat {
			case formatJSON:
				return ui.RenderJSON(out, comments, a.Output.Colorize)
			case formatMarkdown:
				ui.RenderBotCommentMarkdown(out, identifier, comments)
			default:
				ui.RenderBotCommentTable(out, comments)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&repo, "repo", "R", a.Config.Repo, repoUsage)
	f.StringVarP(&format, "format", "f", formatTable, "Output format: table, json, or markdown")
	f.StringVarP(&filter.Type, "type", "t", models.FilterAll, "Filter by comment type: issue, suggestion, or all")
	f.StringVarP(&filter.Severity, "severity", "s", models.FilterAll, "Filter by severity: critical, major, minor, info, or all")
	return cmd
}
