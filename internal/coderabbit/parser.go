// Package coderabbit extracts structured fields from CodeRabbit review comments.
//
// A CodeRabbit review comment looks like:
//
//	_⚠️ Potential issue_ | _🟠 Major_
//
//	**Title of the issue**
//
//	Description...
//
//	<details><summary>📝 Committable suggestion</summary>
//	```suggestion
//	code here
//	```
//	</details>
//	<details><summary>🤖 Prompt for AI Agents</summary>
//	```
//	AI prompt text
//	```
//	</details>
//	<!-- This is an auto-generated comment by CodeRabbit -->
package coderabbit

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ryo246912/coderabbit-github-parser/internal/models"
)

// Marker is present in every comment body CodeRabbit generates
const Marker = "<!-- This is an auto-generated comment by CodeRabbit -->"

// NoTitle is used when the body has no bold span
const NoTitle = "No title found"

// ErrParseRejected marks a bot comment whose body does not have the expected structure
var ErrParseRejected = errors.New("comment does not match the CodeRabbit format")

var botLogins = []string{"coderabbitai[bot]", "coderabbitai"}

var (
	headerPattern     = regexp.MustCompile(`^_([^_]*)_\s*\|\s*_([^_]*)_`)
	titlePattern      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	suggestionPattern = regexp.MustCompile("(?s)```suggestion\n(.*?)\n```")
	aiPromptPattern   = regexp.MustCompile("(?s)<summary>🤖 Prompt for AI Agents</summary>\\s*```\\s*(.*?)\\s*```\\s*</details>")
	blankRunPattern   = regexp.MustCompile(`\n\n+`)
)

const detailsTag = "<details>"

// IsBotComment reports whether login is one of CodeRabbit's accounts
func IsBotComment(login string) bool {
	for _, l := range botLogins {
		if login == l {
			return true
		}
	}
	return false
}

// Parse converts a CodeRabbit comment body into a ParsedBotComment.
// It returns false when the body lacks the marker or the type/severity header.
func Parse(body string) (models.ParsedBotComment, bool) {
	if !strings.Contains(body, Marker) {
		return models.ParsedBotComment{}, false
	}

	rawType, rawSeverity, ok := extractHeader(body)
	if !ok {
		return models.ParsedBotComment{}, false
	}

	title := extractTitle(body)
	return models.ParsedBotComment{
		Type:        classifyType(rawType),
		Severity:    classifySeverity(rawSeverity),
		Title:       title,
		Description: extractDescription(body, title),
		Suggestion:  extractSuggestion(body),
		AIPrompt:    extractAIPrompt(body),
		RawEmoji:    strings.TrimSpace(rawType),
		RawSeverity: strings.TrimSpace(rawSeverity),
	}, true
}

// extractHeader finds the first "_<type>_ | _<severity>_" line
func extractHeader(body string) (string, string, bool) {
	for _, line := range strings.Split(body, "\n") {
		m := headerPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if m[1] == "" || m[2] == "" {
			return "", "", false
		}
		return m[1], m[2], true
	}
	return "", "", false
}

func classifyType(raw string) models.CommentType {
	switch {
	case strings.Contains(raw, "issue"):
		return models.TypeIssue
	case strings.Contains(raw, "suggestion"), strings.Contains(raw, "Refactor"):
		return models.TypeSuggestion
	}
	return models.TypeOther
}

func classifySeverity(raw string) models.Severity {
	switch {
	case strings.Contains(raw, "Critical"), strings.Contains(raw, "🔴"):
		return models.SeverityCritical
	case strings.Contains(raw, "Major"), strings.Contains(raw, "🟠"):
		return models.SeverityMajor
	case strings.Contains(raw, "Minor"), strings.Contains(raw, "🟡"):
		return models.SeverityMinor
	}
	return models.SeverityInfo
}

func extractTitle(body string) string {
	m := titlePattern.FindStringSubmatch(body)
	if m == nil {
		return NoTitle
	}
	return m[1]
}

// extractDescription returns the text between "**title**" and the first <details> tag.
// The start offset is located by searching for the title text, so an earlier bold
// span with the same text shifts it. When <details> comes first the bounds are
// swapped and the text between the tag and the title end is returned.
func extractDescription(body, title string) string {
	start := strings.Index(body, "**"+title+"**") + len(title) + 4
	start = min(max(start, 0), len(body))
	for start < len(body) && !utf8.RuneStart(body[start]) {
		start++
	}

	end := strings.Index(body, detailsTag)
	if end < 0 {
		end = len(body)
	}
	if end < start {
		start, end = end, start
	}

	description := strings.TrimSpace(body[start:end])
	description = blankRunPattern.ReplaceAllString(description, "\n")
	description = strings.TrimPrefix(description, "\n")
	return strings.TrimSuffix(description, "\n")
}

func extractSuggestion(body string) string {
	m := suggestionPattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractAIPrompt captures only the first AI agent prompt section
func extractAIPrompt(body string) string {
	m := aiPromptPattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
