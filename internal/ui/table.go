package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ryo246912/coderabbit-github-parser/internal/models"
)

const (
	defaultTerminalWidth = 120
	authorWidth          = 12
	botLocationWidth     = 25
	botTitleWidth        = 60
	dateLayout           = "2006-01-02"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// RenderPullRequestTable prints the pr:list table
func RenderPullRequestTable(w io.Writer, prs []models.PullRequestSummary) {
	t := newTable("Author", "Number", "Title", "State")
	for _, pr := range prs {
		t.Row(pr.Author.Login, strconv.Itoa(pr.Number), pr.Title, string(pr.State))
	}
	fmt.Fprintln(w, t.String())
}

// CommentColumnWidths derives preview and location widths from the terminal width
func CommentColumnWidths(terminalWidth int) (preview, location int) {
	if terminalWidth <= 0 {
		terminalWidth = defaultTerminalWidth
	}
	available := max(30, terminalWidth-40)
	preview = min(50, available*6/10)
	location = min(20, available*4/10)
	return preview, location
}

// RenderCommentTable prints the pr:comments table followed by per-kind totals
func RenderCommentTable(w io.Writer, comments []models.Comment, terminalWidth int) {
	if len(comments) == 0 {
		fmt.Fprintln(w, "No comments found for this PR.")
		return
	}

	previewWidth, locationWidth := CommentColumnWidths(terminalWidth)
	t := newTable("Type", "Author", "Created", "Location", "Comment Preview")

	var conversation, review int
	for _, c := range comments {
		var icon, location string
		switch v := c.(type) {
		case models.ConversationComment:
			conversation++
			icon, location = "💬", "Conversation"
		case models.ReviewComment:
			review++
			icon, location = "📝", v.Location()
			if location == "" {
				location = "Review"
			}
		}
		t.Row(
			icon,
			Truncate(c.AuthorLogin(), authorWidth),
			c.Created().Local().Format(dateLayout),
			Truncate(location, locationWidth),
			Truncate(Flatten(c.Text()), previewWidth),
		)
	}
	fmt.Fprintln(w, t.String())

	fmt.Fprintf(w, "\nTotal comments: %d\n", len(comments))
	fmt.Fprintf(w, "💬 Conversation: %d | 📝 Review: %d\n", conversation, review)
}

// RenderBotCommentTable prints the pr:coderabbit table followed by summary counts
func RenderBotCommentTable(w io.Writer, comments []models.ParsedReviewComment) {
	if len(comments) == 0 {
		fmt.Fprintln(w, "No CodeRabbit comments found matching the criteria.")
		return
	}

	t := newTable("Severity", "Type", "File:Line", "Title", "Has Suggestion")
	for _, c := range comments {
		suggestion := "❌"
		if c.Parsed.HasSuggestion() {
			suggestion = "✅"
		}
		t.Row(
			SeverityEmoji(c.Parsed.Severity)+" "+string(c.Parsed.Severity),
			TypeEmoji(c.Parsed.Type)+" "+string(c.Parsed.Type),
			Truncate(locationOrReview(c.ReviewComment), botLocationWidth),
			Truncate(c.Parsed.Title, botTitleWidth),
			suggestion,
		)
	}
	fmt.Fprintln(w, t.String())

	s := Summarize(comments)
	fmt.Fprintf(w, "\nTotal CodeRabbit comments: %d\n", s.Total)
	fmt.Fprintf(w, "By type: %s\n", s.TypeCounts())
	fmt.Fprintf(w, "By severity: %s\n", s.SeverityCounts())
	fmt.Fprintf(w, "With code suggestions: %d/%d\n", s.WithSuggestions, s.Total)
}

func locationOrReview(c models.ReviewComment) string {
	if loc := c.Location(); loc != "" {
		return loc
	}
	return "Review"
}
