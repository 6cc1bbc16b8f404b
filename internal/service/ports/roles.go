package ports

import "github.com/flavioscarvalho/agendamento-servico/internal/domain"

// RoleResolver answers who may arbitrate booking requests. The static
// configured-handle implementation lives in internal/auth; anything that
// can map an identity to a role can replace it.
type RoleResolver interface {
	Resolve(username string) domain.Role
	IsApprover(username string) bool
}
