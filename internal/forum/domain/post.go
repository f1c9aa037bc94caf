package domain

import "time"

type Post struct {
	ID             string
	ThreadID       string
	AuthorID       string
	Body           string
	IsFlagged      bool
	ModerationNote string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PostView struct {
	ID             string
	ThreadID       string
	Body           string
	Author         AuthorRef
	IsFlagged      bool
	ModerationNote string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FlaggedView is a flagged post with its author and parent thread inlined.
type FlaggedView struct {
	ID             string
	Body           string
	ModerationNote string
	Author         AuthorRef
	Thread         ThreadRef
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
