package models

// CommentType classifies a CodeRabbit comment by its header
type CommentType string

const (
	TypeIssue      CommentType = "issue"
	TypeSuggestion CommentType = "suggestion"
	TypeOther      CommentType = "other"
)

// CommentTypes lists the types in report order
var CommentTypes = []CommentType{TypeIssue, TypeSuggestion, TypeOther}

// Severity of a CodeRabbit comment
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
	SeverityInfo     Severity = "info"
)

// Severities lists the severities from most to least severe
var Severities = []Severity{SeverityCritical, SeverityMajor, SeverityMinor, SeverityInfo}

// FilterAll disables a type or severity filter
const FilterAll = "all"

// ParsedBotComment is the structured form of a CodeRabbit review comment body.
// Suggestion and AIPrompt are empty when the body carries no such block.
type ParsedBotComment struct {
	Type        CommentType `json:"type"`
	Severity    Severity    `json:"severity"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Suggestion  string      `json:"suggestion,omitempty"`
	AIPrompt    string      `json:"aiPrompt,omitempty"`
	RawEmoji    string      `json:"rawEmoji"`
	RawSeverity string      `json:"rawSeverity"`
}

// HasSuggestion reports whether a committable suggestion was found
func (p ParsedBotComment) HasSuggestion() bool {
	return p.Suggestion != ""
}

// BotFilter narrows parsed comments by type and severity. Empty or "all" matches everything.
type BotFilter struct {
	Type     string
	Severity string
}

// Match reports whether p passes the filter
func (f BotFilter) Match(p ParsedBotComment) bool {
	if f.Type != "" && f.Type != FilterAll && string(p.Type) != f.Type {
		return false
	}
	if f.Severity != "" && f.Severity != FilterAll && string(p.Severity) != f.Severity {
		return false
	}
	return true
}
