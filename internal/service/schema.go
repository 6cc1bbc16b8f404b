package service

import (
	"context"

	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
	"github.com/flavioscarvalho/agendamento-servico/internal/schema"
	"github.com/wb-go/wbf/logger"
)

// SchemaService exposes the operator-facing schema operations: upgrading
// a legacy database to the workflow shape and the destructive repair
// rebuild. Both refresh the shared capability flags afterwards so the
// repositories pick the new mode up without a restart.
type SchemaService struct {
	migrator  *schema.Migrator
	bootstrap *schema.Bootstrap
	ins       *schema.Introspector
	caps      *schema.Capabilities
	logger    logger.Logger
}

func NewSchemaService(
	migrator *schema.Migrator,
	bootstrap *schema.Bootstrap,
	ins *schema.Introspector,
	caps *schema.Capabilities,
	log logger.Logger,
) *SchemaService {
	return &SchemaService{
		migrator:  migrator,
		bootstrap: bootstrap,
		ins:       ins,
		caps:      caps,
		logger:    log,
	}
}

// MigrateWorkflow adds the approval workflow columns to a deployed
// booking table. Idempotent; a failed column is reported, not fatal, and
// the system simply keeps running in legacy mode for that capability.
func (s *SchemaService) MigrateWorkflow(ctx context.Context) []schema.MigrationResult {
	results := []schema.MigrationResult{
		s.migrator.AddColumnIfMissing(ctx, schema.TableBookings, schema.ColumnStatus, "TEXT", string(domain.StatusPending)),
		s.migrator.AddColumnIfMissing(ctx, schema.TableBookings, schema.ColumnNotes, "TEXT", ""),
	}

	s.caps.Refresh(ctx, s.ins)
	s.logger.Info("workflow migration finished",
		logger.Any("results", results),
		logger.Any("workflow_mode", s.caps.HasStatus()),
	)

	return results
}

// Repair runs the backup-rebuild-restore procedure. The confirm flag is
// the operator's explicit acknowledgement that non-canonical columns are
// discarded.
func (s *SchemaService) Repair(ctx context.Context, confirm bool) error {
	if !confirm {
		return domain.ErrRepairNotConfirmed
	}

	if err := s.bootstrap.RepairBookings(ctx); err != nil {
		return err
	}

	s.caps.Refresh(ctx, s.ins)
	return nil
}

// Capabilities reports the current operating mode for dashboards.
func (s *SchemaService) Capabilities() (hasStatus, hasNotes bool) {
	return s.caps.HasStatus(), s.caps.HasNotes()
}
