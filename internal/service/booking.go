package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
	"github.com/flavioscarvalho/agendamento-servico/internal/schema"
	"github.com/flavioscarvalho/agendamento-servico/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingService owns the approval state machine. The repository stores
// whatever it is told; which transitions are legal and who may invoke
// them is decided here.
type BookingService struct {
	repo   ports.BookingRepo
	roles  ports.RoleResolver
	caps   *schema.Capabilities
	logger logger.Logger
	now    func() time.Time
}

func NewBookingService(
	repo ports.BookingRepo,
	roles ports.RoleResolver,
	caps *schema.Capabilities,
	log logger.Logger,
) *BookingService {
	return &BookingService{
		repo:   repo,
		roles:  roles,
		caps:   caps,
		logger: log,
		now:    time.Now,
	}
}

func (s *BookingService) Submit(ctx context.Context, input domain.CreateBookingInput) (*domain.BookingRequest, error) {
	if err := validateBookingInput(input); err != nil {
		return nil, err
	}

	today := s.now().Truncate(24 * time.Hour)
	if input.Date.Truncate(24 * time.Hour).Before(today) {
		return nil, fmt.Errorf("%w: date must not precede today", domain.ErrValidation)
	}

	booking := &domain.BookingRequest{
		Date:      input.Date,
		Subject:   input.Subject,
		Equipment: input.Equipment,
		Slot:      input.Slot,
		Shift:     input.Shift,
		Room:      input.Room,
		Requester: domain.NormalizeUsername(input.Requester),
		Status:    domain.StatusPending,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking request submitted",
		logger.Int64("booking_id", booking.ID),
		logger.String("requester", booking.Requester),
		logger.String("room", booking.Room),
	)

	return booking, nil
}

// Decide moves a pending request into a terminal state on behalf of an
// approver. Re-deciding to the status the request already has is a
// no-op; deciding to the other terminal state is refused.
func (s *BookingService) Decide(ctx context.Context, actor string, id int64, to domain.Status, notes string) error {
	if !s.roles.IsApprover(actor) {
		return domain.ErrNotApprover
	}
	if !to.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, to)
	}
	if !domain.CanTransition(domain.StatusPending, to) {
		return fmt.Errorf("%w: pending → %s", domain.ErrInvalidTransition, to)
	}

	err := s.repo.TransitionStatus(ctx, id, domain.StatusPending, to, notes)
	if err == nil {
		s.logger.Info("booking request decided",
			logger.Int64("booking_id", id),
			logger.String("status", string(to)),
			logger.String("approver", actor),
		)
		return nil
	}

	if errors.Is(err, domain.ErrAlreadyDecided) {
		current, getErr := s.repo.GetByID(ctx, id)
		if getErr == nil && current.Status == to {
			// Same decision twice, e.g. a double-click. Nothing to do.
			return nil
		}
		return err
	}

	return fmt.Errorf("decide booking: %w", err)
}

// AmendNotes rewrites the notes of a request without changing its
// status. Notes only exist alongside the approval workflow, so this is
// approver-only and unavailable until the notes column is present.
func (s *BookingService) AmendNotes(ctx context.Context, actor string, id int64, notes string) error {
	if !s.roles.IsApprover(actor) {
		return domain.ErrNotApprover
	}
	if !s.caps.HasNotes() {
		return domain.ErrApprovalUnavailable
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, id, current.Status, notes); err != nil {
		return fmt.Errorf("amend notes: %w", err)
	}

	return nil
}

// List returns bookings matching the filter. Non-approvers only ever see
// their own requests regardless of what they ask for.
func (s *BookingService) List(ctx context.Context, actor string, filter domain.ListFilter) ([]*domain.BookingRequest, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return []*domain.BookingRequest{}, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, filter.Status)
	}

	if !s.roles.IsApprover(actor) {
		filter.Requester = domain.NormalizeUsername(actor)
	}

	return s.repo.List(ctx, filter)
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	return s.repo.GetByID(ctx, id)
}

// CountByStatus feeds dashboard widgets; a failing store yields all
// zeros rather than an error, with the failure only logged.
func (s *BookingService) CountByStatus(ctx context.Context) domain.StatusCounts {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("count by status failed",
			logger.String("error", err.Error()),
		)
		return domain.StatusCounts{}
	}
	return counts
}

func validateBookingInput(input domain.CreateBookingInput) error {
	switch {
	case input.Date.IsZero():
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	case input.Subject == "":
		return fmt.Errorf("%w: subject is required", domain.ErrValidation)
	case len(input.Equipment) == 0:
		return fmt.Errorf("%w: at least one equipment item is required", domain.ErrValidation)
	case input.Slot == "":
		return fmt.Errorf("%w: slot is required", domain.ErrValidation)
	case input.Shift == "":
		return fmt.Errorf("%w: shift is required", domain.ErrValidation)
	case input.Room == "":
		return fmt.Errorf("%w: room is required", domain.ErrValidation)
	case domain.NormalizeUsername(input.Requester) == "":
		return fmt.Errorf("%w: requester is required", domain.ErrValidation)
	}
	return nil
}
