package scheduler

import (
	"context"
	"time"

	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type statusCounter interface {
	CountByStatus(ctx context.Context) domain.StatusCounts
}

// Scheduler periodically re-counts the booking backlog and raises a log
// alert while requests are waiting on an approver.
type Scheduler struct {
	bookingService statusCounter
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService statusCounter,
	interval time.Duration,
	log logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         log,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	counts := s.bookingService.CountByStatus(ctx)
	if counts.Pending > 0 {
		s.logger.Warn("booking requests awaiting approval",
			logger.Int("pending", counts.Pending),
			logger.Int("total", counts.Total()),
		)
	}
}
