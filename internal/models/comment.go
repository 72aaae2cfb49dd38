package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// CommentKind discriminates the two comment streams of a pull request
type CommentKind string

const (
	KindConversation CommentKind = "conversation"
	KindReview       CommentKind = "review"
)

// Comment is either a ConversationComment or a ReviewComment.
// The unexported method keeps the set of variants closed.
type Comment interface {
	Kind() CommentKind
	Created() time.Time
	AuthorLogin() string
	Text() string
	isComment()
}

// CommentAuthor is the author block of a conversation comment
type CommentAuthor struct {
	Login string `json:"login"`
}

// ConversationComment is a PR-level comment as returned by gh pr view --json comments
type ConversationComment struct {
	ID                  string        `json:"id"`
	Author              CommentAuthor `json:"author"`
	AuthorAssociation   string        `json:"authorAssociation"`
	Body                string        `json:"body"`
	CreatedAt           time.Time     `json:"createdAt"`
	IncludesCreatedEdit bool          `json:"includesCreatedEdit"`
	IsMinimized         bool          `json:"isMinimized"`
	MinimizedReason     string        `json:"minimizedReason"`
	URL                 string        `json:"url"`
}

func (c ConversationComment) Kind() CommentKind   { return KindConversation }
func (c ConversationComment) Created() time.Time  { return c.CreatedAt }
func (c ConversationComment) AuthorLogin() string { return c.Author.Login }
func (c ConversationComment) Text() string        { return c.Body }
func (ConversationComment) isComment()            {}

// MarshalJSON adds the kind tag
func (c ConversationComment) MarshalJSON() ([]byte, error) {
	type plain ConversationComment
	return json.Marshal(struct {
		Kind CommentKind `json:"kind"`
		plain
	}{KindConversation, plain(c)})
}

// ReviewComment is a line-level review comment from the pulls comments REST endpoint
type ReviewComment struct {
	ID                  int64     `json:"id"`
	User                User      `json:"user"`
	Body                string    `json:"body"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	Path                string    `json:"path"`
	Line                *int      `json:"line"`
	OriginalLine        *int      `json:"original_line,omitempty"`
	DiffHunk            string    `json:"diff_hunk"`
	AuthorAssociation   string    `json:"author_association"`
	HTMLURL             string    `json:"html_url"`
	InReplyToID         *int64    `json:"in_reply_to_id,omitempty"`
	PullRequestReviewID int64     `json:"pull_request_review_id,omitempty"`
	CommitID            string    `json:"commit_id,omitempty"`
}

func (c ReviewComment) Kind() CommentKind   { return KindReview }
func (c ReviewComment) Created() time.Time  { return c.CreatedAt }
func (c ReviewComment) AuthorLogin() string { return c.User.Login }
func (c ReviewComment) Text() string        { return c.Body }
func (ReviewComment) isComment()            {}

// MarshalJSON adds the kind tag
func (c ReviewComment) MarshalJSON() ([]byte, error) {
	type plain ReviewComment
	return json.Marshal(struct {
		Kind CommentKind `json:"kind"`
		plain
	}{KindReview, plain(c)})
}

// Location returns "path:line", "path", or "" when the comment has no file anchor
func (c ReviewComment) Location() string {
	switch {
	case c.Path != "" && c.Line != nil:
		return c.Path + ":" + strconv.Itoa(*c.Line)
	case c.Path != "":
		return c.Path
	case c.Line != nil:
		return strconv.Itoa(*c.Line)
	}
	return ""
}

// ParsedReviewComment is a CodeRabbit review comment with its parsed body attached
type ParsedReviewComment struct {
	ReviewComment
	Parsed ParsedBotComment `json:"parsed"`
}

// MarshalJSON flattens the review comment and appends the parsed record
func (c ParsedReviewComment) MarshalJSON() ([]byte, error) {
	type plain ReviewComment
	return json.Marshal(struct {
		Kind CommentKind `json:"kind"`
		plain
		Parsed ParsedBotComment `json:"parsed"`
	}{KindReview, plain(c.ReviewComment), c.Parsed})
}
