package model

import "strings"

// Role is a user's capability level.
type Role string

// Roles.
const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is an account allowed to use the store. Passwords are kept only as a hash.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// IsAdmin reports whether the user may perform mutating actions.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ParseRole parses a role name case-insensitively.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(s)) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

// RoleAtLeast checks if role meets or exceeds the minimum required role.
func RoleAtLeast(role, minimum Role) bool {
	levels := map[Role]int{
		RoleAdmin: 2,
		RoleUser:  1,
	}
	return levels[role] >= levels[minimum] && levels[minimum] > 0
}
