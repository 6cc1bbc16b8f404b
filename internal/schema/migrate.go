package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

type MigrationOutcome string

const (
	OutcomeAdded          MigrationOutcome = "added"
	OutcomeAlreadyPresent MigrationOutcome = "already_present"
	OutcomeFailed         MigrationOutcome = "failed"
)

// MigrationResult reports what a single AddColumnIfMissing attempt did.
// Err is set only when Outcome is OutcomeFailed.
type MigrationResult struct {
	Table   string           `json:"table"`
	Column  string           `json:"column"`
	Outcome MigrationOutcome `json:"outcome"`
	Err     string           `json:"error,omitempty"`
}

// Defaults that are engine functions or keywords and must be emitted
// without quotes. Quoting one of these breaks the DDL; not quoting a
// plain literal breaks it the other way.
var unquotedDefaults = map[string]struct{}{
	"CURRENT_TIMESTAMP": {},
	"NOW()":             {},
	"CURRENT_DATE":      {},
}

// Migrator adds columns to live tables without ever destroying data.
// Every DDL statement is committed on its own; a failed attempt leaves
// the table exactly as it was, and callers keep running in legacy mode.
type Migrator struct {
	db  *dbpg.DB
	ins *Introspector
	log logger.Logger
}

func NewMigrator(db *dbpg.DB, ins *Introspector, log logger.Logger) *Migrator {
	return &Migrator{db: db, ins: ins, log: log}
}

// AddColumnIfMissing is idempotent: on a table that already has the
// column it issues no DDL at all. When the defaulted form fails it
// retries exactly once without the DEFAULT clause, which survives a
// class of permission and syntax edge cases, then gives up.
func (m *Migrator) AddColumnIfMissing(ctx context.Context, table, column, colType, defaultValue string) MigrationResult {
	res := MigrationResult{Table: table, Column: column}

	if m.ins.ColumnExists(ctx, table, column) {
		res.Outcome = OutcomeAlreadyPresent
		return res
	}

	ddl := addColumnDDL(table, column, colType, defaultValue)
	_, err := m.db.Master.ExecContext(ctx, ddl)
	if err == nil {
		m.log.Info("column added",
			logger.String("table", table),
			logger.String("column", column),
		)
		res.Outcome = OutcomeAdded
		return res
	}

	m.log.Warn("defaulted column add failed, retrying without default",
		logger.String("table", table),
		logger.String("column", column),
		logger.String("error", err.Error()),
	)

	if defaultValue != "" {
		bare := addColumnDDL(table, column, colType, "")
		if _, retryErr := m.db.Master.ExecContext(ctx, bare); retryErr == nil {
			m.log.Info("column added without default",
				logger.String("table", table),
				logger.String("column", column),
			)
			res.Outcome = OutcomeAdded
			return res
		} else {
			err = retryErr
		}
	}

	m.log.Error("column add failed",
		logger.String("table", table),
		logger.String("column", column),
		logger.String("error", err.Error()),
	)
	res.Outcome = OutcomeFailed
	res.Err = err.Error()
	return res
}

func addColumnDDL(table, column, colType, defaultValue string) string {
	ddl := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %q %s`, table, column, colType)
	if defaultValue == "" {
		return ddl
	}
	if _, fn := unquotedDefaults[strings.ToUpper(defaultValue)]; fn {
		return fmt.Sprintf(`%s DEFAULT %s`, ddl, defaultValue)
	}
	return fmt.Sprintf(`%s DEFAULT '%s'`, ddl, defaultValue)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
