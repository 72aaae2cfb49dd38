package models

import (
	"encoding/json"
	"strings"
)

// PRState is the lifecycle state of a pull request
type PRState string

const (
	PRStateOpen   PRState = "open"
	PRStateClosed PRState = "closed"
	PRStateMerged PRState = "merged"
	// PRStateAll is only meaningful as a list filter
	PRStateAll PRState = "all"
)

// UnmarshalJSON accepts the upper case states gh reports
func (s *PRState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = PRState(strings.ToLower(raw))
	return nil
}

// Valid reports whether s is usable as a list filter
func (s PRState) Valid() bool {
	switch s {
	case PRStateOpen, PRStateClosed, PRStateMerged, PRStateAll:
		return true
	}
	return false
}

// Author is the author block returned by gh pr list/view
type Author struct {
	Login string `json:"login"`
	ID    string `json:"id"`
	IsBot bool   `json:"is_bot"`
	Name  string `json:"name"`
}

// PullRequestSummary represents PR metadata
type PullRequestSummary struct {
	Number int     `json:"number"`
	Title  string  `json:"title"`
	State  PRState `json:"state"`
	Author Author  `json:"author"`
}

// ListOptions mirrors the gh pr list filters. Zero values are left out of the command.
type ListOptions struct {
	State    PRState
	Author   string
	Assignee string
	Base     string
	Head     string
	Labels   []string
	Limit    int
	Search   string
	Draft    bool
	App      string
	Repo     string
}

// User represents a GitHub user as returned by the REST API
type User struct {
	Login string `json:"login"`
	Type  string `json:"type"`
}
