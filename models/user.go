package models

import (
	"slices"
	"time"
)

// User represents an account entity used for authentication and ownership
// scoping. It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique, stable user identifier.
	// Used during authentication and as the JWT subject.
	Username string `json:"username"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name,omitempty"`

	// HashedPassword is the bcrypt digest of the user's password.
	// The plaintext is never stored; comparison goes through a one-way
	// verification function only. Never serialized.
	HashedPassword string `json:"-"`

	// APIKey is an optional long-lived secondary credential that resolves
	// directly to the user without a password check. Unique among users
	// when present. Never serialized.
	APIKey string `json:"-"`

	// UserGroups is the set of group identifiers the user belongs to.
	// A dataset is visible to the user iff its owner is in this set.
	UserGroups []string `json:"user_groups,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// CurrentGroup returns the group identifier used as the ownership scope for
// write operations in a single request. A user may belong to many groups but
// a given request acts within exactly one; by default that is the first
// configured group.
func (u User) CurrentGroup() string {
	if len(u.UserGroups) == 0 {
		return ""
	}
	return u.UserGroups[0]
}

// MemberOf reports whether group is one of the user's groups.
func (u User) MemberOf(group string) bool {
	return slices.Contains(u.UserGroups, group)
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
