package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleRequester Role = "requester"
	RoleApprover  Role = "approver"
)

// Account is a registered identity. PasswordHash is a bcrypt hash and is
// never serialized.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateAccountInput struct {
	Username   string
	Password   string
	AccessCode string
}

// NormalizeUsername is the single definition of identity equality:
// lower-cased and trimmed.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
