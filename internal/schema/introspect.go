package schema

import (
	"context"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

// Introspector answers structural questions against the live catalog.
// It never propagates errors: an unanswerable question is treated the same
// as "not there", which is the only safe assumption for callers that are
// about to reference a column in SQL.
type Introspector struct {
	db  *dbpg.DB
	log logger.Logger
}

func NewIntrospector(db *dbpg.DB, log logger.Logger) *Introspector {
	return &Introspector{db: db, log: log}
}

func (i *Introspector) ColumnExists(ctx context.Context, table, column string) bool {
	query := `SELECT 1
			  FROM information_schema.columns
			  WHERE table_schema = 'public'
			    AND table_name = $1
			    AND column_name = $2`

	var one int
	err := i.db.Master.QueryRowContext(ctx, query, table, column).Scan(&one)
	if err != nil {
		if !isNoRows(err) {
			i.log.Warn("column introspection failed, assuming absent",
				logger.String("table", table),
				logger.String("column", column),
				logger.String("error", err.Error()),
			)
		}
		return false
	}

	return true
}

func (i *Introspector) TableExists(ctx context.Context, table string) bool {
	for _, t := range i.ListTables(ctx) {
		if t == table {
			return true
		}
	}
	return false
}

// ListTables returns the table names of the public schema. On failure it
// returns an empty list, consistent with ColumnExists.
func (i *Introspector) ListTables(ctx context.Context) []string {
	query := `SELECT table_name
			  FROM information_schema.tables
			  WHERE table_schema = 'public'`

	rows, err := i.db.Master.QueryContext(ctx, query)
	if err != nil {
		i.log.Warn("table introspection failed",
			logger.String("error", err.Error()),
		)
		return nil
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil
		}
		tables = append(tables, name)
	}
	if rows.Err() != nil {
		return nil
	}

	return tables
}
