package github

import (
	"fmt"
	"time"
)

// Owner is the account that owns a repository.
type Owner struct {
	Login string `json:"login"`
}

// Repository represents a GitHub repository and its lifecycle timestamps.
type Repository struct {
	Name      string    `json:"name"`
	FullName  string    `json:"full_name"` // owner/name
	Owner     Owner     `json:"owner"`
	Fork      bool      `json:"fork"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	PushedAt  time.Time `json:"pushed_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Event names a repository timestamp.
type Event string

const (
	EventCreated Event = "created"
	EventPushed  Event = "pushed"
	EventUpdated Event = "updated"
)

// ParseEvent validates an event name.
func ParseEvent(s string) (Event, error) {
	switch e := Event(s); e {
	case EventCreated, EventPushed, EventUpdated:
		return e, nil
	default:
		return "", fmt.Errorf("invalid event %q: must be one of created, pushed, or updated", s)
	}
}

// Timestamp returns the time at which event last happened.
func (r Repository) Timestamp(event Event) time.Time {
	switch event {
	case EventCreated:
		return r.CreatedAt
	case EventUpdated:
		return r.UpdatedAt
	default:
		return r.PushedAt
	}
}

// ListOptions selects which of an owner's repositories ListRepos returns.
type ListOptions struct {
	Forks    bool
	Archived bool
}
