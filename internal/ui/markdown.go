package ui

import (
	"fmt"
	"io"

	"github.com/ryo246912/coderabbit-github-parser/internal/models"
)

// RenderBotCommentMarkdown writes the CodeRabbit report consumed by AI agents
func RenderBotCommentMarkdown(w io.Writer, prIdentifier string, comments []models.ParsedReviewComment) {
	fmt.Fprintf(w, "# CodeRabbit Review Comments - PR #%s\n\n", prIdentifier)

	if len(comments) == 0 {
		fmt.Fprint(w, "No CodeRabbit comments found matching the criteria.\n\n")
		return
	}

	s := Summarize(comments)
	fmt.Fprint(w, "## Summary\n\n")
	fmt.Fprintf(w, "- **Total comments**: %d\n", s.Total)
	fmt.Fprintf(w, "- **By type**: %s\n", s.TypeCounts())
	fmt.Fprintf(w, "- **By severity**: %s\n", s.SeverityCounts())
	fmt.Fprintf(w, "- **With code suggestions**: %d/%d\n\n", s.WithSuggestions, s.Total)

	fmt.Fprint(w, "## Comments\n\n")
	for i, c := range comments {
		p := c.Parsed
		fmt.Fprintf(w, "### %d. %s\n", i+1, p.Title)
		fmt.Fprintf(w, "**Location**: `%s`  \n", locationOrReview(c.ReviewComment))
		fmt.Fprintf(w, "**Type**: %s | **Severity**: %s\n\n", TypeBadge(p.Type), SeverityBadge(p.Severity))
		fmt.Fprintf(w, "%s\n\n", p.Description)

		if p.Suggestion != "" {
			fmt.Fprint(w, "<details>\n<summary>📝 Code Suggestion</summary>\n\n")
			fmt.Fprintf(w, "```suggestion\n%s\n```\n\n", p.Suggestion)
			fmt.Fprint(w, "</details>\n\n")
		}
		if p.AIPrompt != "" {
			fmt.Fprint(w, "<details>\n<summary>🤖 AI Prompt</summary>\n\n")
			fmt.Fprintf(w, "```\n%s\n```\n\n", p.AIPrompt)
			fmt.Fprint(w, "</details>\n\n")
		}

		fmt.Fprint(w, "---\n\n")
	}
}
