package domain

import (
	"strings"
)

// Role is the closed set of privilege tiers. The zero value RoleNone
// represents an anonymous caller and is never persisted.
type Role uint8

const (
	RoleNone Role = iota
	RoleMember
	RoleModerator
	RoleSuper
)

// ParseRole maps the storage/wire form onto a Role. Anything outside the
// enumerated set is ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "member":
		return RoleMember, nil
	case "moderator":
		return RoleModerator, nil
	case "super":
		return RoleSuper, nil
	default:
		return RoleNone, ErrInvalidRole
	}
}

func (r Role) String() string {
	switch r {
	case RoleMember:
		return "member"
	case RoleModerator:
		return "moderator"
	case RoleSuper:
		return "super"
	case RoleNone:
		return ""
	}
	return ""
}

// Valid reports whether r may be stored on a user record.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleModerator, RoleSuper:
		return true
	case RoleNone:
		return false
	}
	return false
}

// CanModerate reports whether the tier may resolve flags and lock threads.
func (r Role) CanModerate() bool {
	switch r {
	case RoleModerator, RoleSuper:
		return true
	case RoleNone, RoleMember:
		return false
	}
	return false
}

// CanManageRoles reports whether the tier may change other users' roles.
func (r Role) CanManageRoles() bool {
	switch r {
	case RoleSuper:
		return true
	case RoleNone, RoleMember, RoleModerator:
		return false
	}
	return false
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
