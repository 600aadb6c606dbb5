package model

import "time"

// User roles. A manager can administer servidor records; a common user can
// only consult them. Role checks are not enforced on any endpoint yet.
const (
	RoleManager = "manager"
	RoleCommon  = "common"
)

// User represents an authenticated account.
// PasswordHash is never serialized in responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
