package ports

import (
	"context"

	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
)

type AccountRepo interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
}
