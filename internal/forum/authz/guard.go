// Package authz holds the role predicates consulted before any forum
// operation runs. It has no state and performs no I/O.
package authz

import (
	"fmt"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
)

// Requirement is the tier an action category needs.
type Requirement uint8

const (
	Authenticated Requirement = iota
	Moderator
	Super
)

func (r Requirement) String() string {
	switch r {
	case Authenticated:
		return "authenticated"
	case Moderator:
		return "moderator"
	case Super:
		return "super"
	}
	return "unknown"
}

// IsAuthenticated reports whether a role is present at all.
func IsAuthenticated(role domain.Role) bool {
	return role.Valid()
}

func IsModerator(role domain.Role) bool {
	return role.CanModerate()
}

func IsSuper(role domain.Role) bool {
	return role.CanManageRoles()
}

// Allows reports whether role satisfies req.
func Allows(role domain.Role, req Requirement) bool {
	switch req {
	case Authenticated:
		return IsAuthenticated(role)
	case Moderator:
		return IsModerator(role)
	case Super:
		return IsSuper(role)
	}
	return false
}

// Check returns nil when role satisfies req. A missing role yields
// domain.ErrUnauthenticated, an insufficient one domain.ErrAuthorization.
func Check(role domain.Role, req Requirement) error {
	if !IsAuthenticated(role) {
		return domain.ErrUnauthenticated
	}
	if !Allows(role, req) {
		return fmt.Errorf("%w: %s role required", domain.ErrAuthorization, req)
	}
	return nil
}
