package ui

import (
	"fmt"
	"strings"

	"github.com/ryo246912/coderabbit-github-parser/internal/models"
)

// Summary counts parsed CodeRabbit comments
type Summary struct {
	Total           int
	ByType          map[models.CommentType]int
	BySeverity      map[models.Severity]int
	WithSuggestions int
}

func Summarize(comments []models.ParsedReviewComment) Summary {
	s := Summary{
		Total:      len(comments),
		ByType:     make(map[models.CommentType]int),
		BySeverity: make(map[models.Severity]int),
	}
	for _, c := range comments {
		s.ByType[c.Parsed.Type]++
		s.BySeverity[c.Parsed.Severity]++
		if c.Parsed.HasSuggestion() {
			s.WithSuggestions++
		}
	}
	return s
}

// TypeCounts formats "issue: 2, suggestion: 1" in a fixed order, skipping zero counts
func (s Summary) TypeCounts() string {
	parts := make([]string, 0, len(models.CommentTypes))
	for _, t := range models.CommentTypes {
		if n := s.ByType[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", t, n))
		}
	}
	return strings.Join(parts, ", ")
}

// SeverityCounts formats "critical: 1, minor: 3" from most to least severe
func (s Summary) SeverityCounts() string {
	parts := make([]string, 0, len(models.Severities))
	for _, sev := range models.Severities {
		if n := s.BySeverity[sev]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", sev, n))
		}
	}
	return strings.Join(parts, ", ")
}

func SeverityEmoji(s models.Severity) string {
	switch s {
	case models.SeverityCritical:
		return "🔴"
	case models.SeverityMajor:
		return "🟠"
	case models.SeverityMinor:
		return "🟡"
	}
	return "🔵"
}

func TypeEmoji(t models.CommentType) string {
	switch t {
	case models.TypeIssue:
		return "⚠️"
	case models.TypeSuggestion:
		return "💡"
	}
	return "📝"
}

// SeverityBadge is the emoji and capitalized label used in reports
func SeverityBadge(s models.Severity) string {
	switch s {
	case models.SeverityCritical:
		return "🔴 Critical"
	case models.SeverityMajor:
		return "🟠 Major"
	case models.SeverityMinor:
		return "🟡 Minor"
	}
	return "🔵 Info"
}

func TypeBadge(t models.CommentType) string {
	switch t {
	case models.TypeIssue:
		return "⚠️ Issue"
	case models.TypeSuggestion:
		return "💡 Suggestion"
	}
	return "📝 Other"
}
