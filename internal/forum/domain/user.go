package domain

import "time"

type User struct {
	ID           string
	Username     string // trimmed and lowercased
	PasswordHash string // argon2 encoded, never leaves the service layer
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSummary is the outward projection of a user without credentials.
type UserSummary struct {
	ID        string
	Username  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthorRef is the minimal author projection inlined into read models.
type AuthorRef struct {
	ID       string
	Username string
	Role     Role
}

// Actor is the authenticated caller on whose behalf an operation runs. A
// zero Actor is anonymous.
type Actor struct {
	ID       string
	Username string
	Role     Role
}

func (a Actor) Ref() AuthorRef {
	return AuthorRef{ID: a.ID, Username: a.Username, Role: a.Role}
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u User) Actor() Actor {
	return Actor{ID: u.ID, Username: u.Username, Role: u.Role}
}
