package auth

import (
	"testing"

	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStaticRoleResolver(t *testing.T) {
	r := NewStaticRoleResolver([]string{"admin", " Diretor ", "COORDENADORA"})

	assert.Equal(t, domain.RoleApprover, r.Resolve("admin"))
	assert.Equal(t, domain.RoleApprover, r.Resolve("diretor"))
	assert.Equal(t, domain.RoleApprover, r.Resolve("Coordenadora "))
	assert.Equal(t, domain.RoleRequester, r.Resolve("ana.paula"))

	assert.True(t, r.IsApprover("DIRETOR"))
	assert.False(t, r.IsApprover("ana.paula"))
}

func TestStaticRoleResolver_Empty(t *testing.T) {
	r := NewStaticRoleResolver(nil)

	assert.False(t, r.IsApprover("admin"))
}
