package auth

import "github.com/flavioscarvalho/agendamento-servico/internal/domain"

// StaticRoleResolver resolves roles from a configured approver handle
// set. It sits behind ports.RoleResolver so the booking service never
// depends on how approvers are actually determined.
type StaticRoleResolver struct {
	approvers map[string]struct{}
}

func NewStaticRoleResolver(approverUsernames []string) *StaticRoleResolver {
	approvers := make(map[string]struct{}, len(approverUsernames))
	for _, u := range approverUsernames {
		approvers[domain.NormalizeUsername(u)] = struct{}{}
	}
	return &StaticRoleResolver{approvers: approvers}
}

func (r *StaticRoleResolver) Resolve(username string) domain.Role {
	if _, ok := r.approvers[domain.NormalizeUsername(username)]; ok {
		return domain.RoleApprover
	}
	return domain.RoleRequester
}

func (r *StaticRoleResolver) IsApprover(username string) bool {
	return r.Resolve(username) == domain.RoleApprover
}
