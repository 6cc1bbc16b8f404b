package ports

import (
	"context"

	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.BookingRequest) error
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.BookingRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status, notes string) error
	TransitionStatus(ctx context.Context, id int64, from, to domain.Status, notes string) error
	CountByStatus(ctx context.Context) (domain.StatusCounts, error)
}
