package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ryo246912/coderabbit-github-parser/internal/models"
)

func TestCommentColumnWidths(t *testing.T) {
	tests := []struct {
		width        int
		wantPreview  int
		wantLocation int
	}{
		{width: 0, wantPreview: 48, wantLocation: 20},
		{width: 120, wantPreview: 48, wantLocation: 20},
		{width: 200, wantPreview: 50, wantLocation: 20},
		{width: 60, wantPreview: 18, wantLocation: 12},
	}
	for _, tt := range tests {
		preview, location := CommentColumnWidths(tt.width)
		if preview != tt.wantPreview || location != tt.wantLocation {
			t.Errorf("CommentColumnWidths(%d) = (%d, %d), want (%d, %d)",
				tt.width, preview, location, tt.wantPreview, tt.wantLocation)
		}
	}
}

func TestRenderCommentTable(t *testing.T) {
	line := 8
	created := time.Date(2025, 2, 3, 12, 0, 0, 0, time.UTC)
	comments := []models.Comment{
		models.ConversationComment{Author: models.CommentAuthor{Login: "alice"}, Body: "Looks\n\ngood", CreatedAt: created},
		models.ReviewComment{User: models.User{Login: "coderabbitai[bot]"}, Body: strings.Repeat("long ", 30), Path: "cmd/main.go", Line: &line, CreatedAt: created},
		models.ReviewComment{User: models.User{Login: "bob"}, Body: "nit", CreatedAt: created},
	}

	var buf bytes.Buffer
	RenderCommentTable(&buf, comments, 120)
	out := buf.String()

	assert.Contains(t, out, "Comment Preview")
	assert.Contains(t, out, "Looks good")
	assert.Contains(t, out, "Conversation")
	assert.Contains(t, out, "cmd/main.go:8")
	assert.Contains(t, out, "coderabbi...")
	assert.Contains(t, out, "Review")
	assert.Contains(t, out, strings.Repeat("long ", 9)+"...")
	assert.Contains(t, out, "Total comments: 3\n")
	assert.Contains(t, out, "💬 Conversation: 1 | 📝 Review: 2\n")
}

func TestRenderCommentTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderCommentTable(&buf, nil, 120)
	assert.Equal(t, "No comments found for this PR.\n", buf.String())
}

func TestRenderBotCommentTable(t *testing.T) {
	longTitle := strings.Repeat("abcdefghij", 7)
	comments := []models.ParsedReviewComment{
		botComment(1, "a.go", intPtr(3), models.ParsedBotComment{Type: models.TypeIssue, Severity: models.SeverityMajor, Title: longTitle, Suggestion: "x"}),
		botComment(2, "", nil, models.ParsedBotComment{Type: models.TypeOther, Severity: models.SeverityInfo, Title: "Short"}),
	}

	var buf bytes.Buffer
	RenderBotCommentTable(&buf, comments)
	out := buf.String()

	assert.Contains(t, out, "Has Suggestion")
	assert.Contains(t, out, "🟠 major")
	assert.Contains(t, out, "a.go:3")
	assert.Contains(t, out, longTitle[:57]+"...")
	assert.NotContains(t, out, longTitle[:58])
	assert.Contains(t, out, "✅")
	assert.Contains(t, out, "❌")
	assert.Contains(t, out, "Total CodeRabbit comments: 2\n")
	assert.Contains(t, out, "By type: issue: 1, other: 1\n")
	assert.Contains(t, out, "By severity: major: 1, info: 1\n")
	assert.Contains(t, out, "With code suggestions: 1/2\n")
}

func TestRenderPullRequestTable(t *testing.T) {
	var buf bytes.Buffer
	RenderPullRequestTable(&buf, []models.PullRequestSummary{
		{Number: 12, Title: "Add parser", State: models.PRStateOpen, Author: models.Author{Login: "octocat"}},
	})
	out := buf.String()
	for _, want := range []string{"Author", "Number", "octocat", "12", "Add parser", "open"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	err := RenderJSON(&buf, map[string]any{"number": 1, "labels": []string{"bug"}}, false)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\n  \"labels\": [\n    \"bug\"\n  ],\n")
	assert.Contains(t, buf.String(), "\"number\": 1")
}
