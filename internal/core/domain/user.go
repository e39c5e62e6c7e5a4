package domain

import "time"

const (
	RoleDeveloper = "Developer"
	RoleAdmin     = "Admin"
)

// ValidRole reports whether role is one of the roles accepted at registration.
func ValidRole(role string) bool {
	return role == RoleDeveloper || role == RoleAdmin
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the verified {id, role} pair extracted from a token by the
// auth middleware. It is the only caller information handlers see.
type Identity struct {
	ID   string
	Role string
}

// CanModify is the ownership predicate: the creator of an entity or any
// Admin may mutate it.
func (i Identity) CanModify(creatorID string) bool {
	return i.ID == creatorID || i.Role == RoleAdmin
}
