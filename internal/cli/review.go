package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryo246912/coderabbit-github-parser/internal/service"
)

func newReviewCurrentCommand(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "review:current",
		Short: "Generate CodeRabbit review comments for the current PR branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Logger.Debug("Getting current PR and generating review comments", "dir", dir)

			reviews := service.NewReviewService(a.client, a.Logger)
			report, err := reviews.WriteCurrentReport(cmd.Context(), dir)
			if err != nil {
				return fmt.Errorf("failed to generate review comments: %w", err)
			}

			a.Logger.Info("✅ CodeRabbit review comments saved to: " + report.Path)
			a.Logger.Info(fmt.Sprintf("📋 Found PR #%d: %s", report.PullRequest.Number, report.PullRequest.Title))
			a.Logger.Info(fmt.Sprintf("💬 Generated analysis for %d active CodeRabbit comments", report.Count))
			a.Logger.Info("📖 Next steps:")
			a.Logger.Info("   1. Review the comments in: " + report.Path)
			a.Logger.Info("   2. Install the prompt template with: cgp install:template")
			a.Logger.Info("   3. Call ClaudeCode: /coderabbit-review " + report.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", a.Config.ReviewDir, "Directory the report is written to")
	return cmd
}
