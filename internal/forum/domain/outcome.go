package domain

import (
	"fmt"
	"strings"
)

// ResolveAction is the moderator's decision on a flagged post.
type ResolveAction uint8

const (
	ResolveApprove ResolveAction = iota
	ResolveRemove
)

// ParseResolveAction treats "remove" as removal and anything else as
// approval.
func ParseResolveAction(s string) ResolveAction {
	if strings.EqualFold(strings.TrimSpace(s), "remove") {
		return ResolveRemove
	}
	return ResolveApprove
}

func (a ResolveAction) String() string {
	switch a {
	case ResolveRemove:
		return "remove"
	case ResolveApprove:
		return "approve"
	}
	return "approve"
}

// Resolution is the outcome of resolving a flagged post.
type Resolution struct {
	PostID string
	Action ResolveAction
	Note   string
}

func (r Resolution) Message() string {
	if r.Action == ResolveRemove {
		return "Post removed"
	}
	return "Post approved and flag cleared"
}

// LockToggle is the outcome of flipping a thread lock.
type LockToggle struct {
	ThreadID string
	Locked   bool
}

func (l LockToggle) Message() string {
	if l.Locked {
		return "Thread locked"
	}
	return "Thread unlocked"
}

// RoleChange is the outcome of a role update. Changed is false when the
// target already held the requested role and nothing was written.
type RoleChange struct {
	UserID   string
	Username string
	Role     Role
	Changed  bool
}

func (c RoleChange) Message() string {
	if !c.Changed {
		return fmt.Sprintf("%s is already a %s", c.Username, c.Role)
	}
	return fmt.Sprintf("%s is now a %s", c.Username, c.Role)
}

// FlagOutcome is the outcome of flagging a post.
type FlagOutcome struct {
	PostID   string
	ThreadID string
}

func (FlagOutcome) Message() string {
	return "Post flagged for moderator review"
}
