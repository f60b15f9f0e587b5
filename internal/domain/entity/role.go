// Package entity contains the core business objects of the project.
package entity

// Role is an optional tag attached to an account.
// The zero value means "no role" and, when used as a filter, "any role".
type Role string

const (
	// RoleNone is the absence of a role tag.
	RoleNone Role = ""
	// RoleAdmin marks an administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsZero reports whether no role is set.
func (r Role) IsZero() bool {
	return r == RoleNone
}
