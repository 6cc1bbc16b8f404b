package schema

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	TableAccounts = "accounts"
	TableBookings = "booking_requests"

	ColumnStatus = "status"
	ColumnNotes  = "notes"
)

const createAccountsDDL = `
	CREATE TABLE accounts (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

// Canonical shape. New installs get the workflow columns from day one;
// only databases created before the approval workflow existed can lack
// status and notes.
const createBookingsDDL = `
	CREATE TABLE booking_requests (
		id SERIAL PRIMARY KEY,
		date DATE NOT NULL,
		subject TEXT,
		equipment TEXT,
		slot TEXT,
		shift TEXT,
		room TEXT,
		requester TEXT,
		status TEXT DEFAULT 'Pending',
		notes TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

// bookingCommonColumns are the columns shared by every historical shape
// of booking_requests. The repair procedure restores only these.
const bookingCommonColumns = `date, subject, equipment, slot, shift, room, requester, created_at`

// Bootstrap ensures the base tables exist before first use. It never
// drops or alters a table that is already there; healing an existing
// table is the Migrator's job, rebuilding a broken one is RepairBookings'.
type Bootstrap struct {
	db  *dbpg.DB
	ins *Introspector
	log logger.Logger
}

func NewBootstrap(db *dbpg.DB, ins *Introspector, log logger.Logger) *Bootstrap {
	return &Bootstrap{db: db, ins: ins, log: log}
}

func (b *Bootstrap) EnsureSchema(ctx context.Context) error {
	existing := make(map[string]struct{})
	for _, t := range b.ins.ListTables(ctx) {
		existing[t] = struct{}{}
	}

	if _, ok := existing[TableAccounts]; !ok {
		if _, err := b.db.Master.ExecContext(ctx, createAccountsDDL); err != nil {
			return fmt.Errorf("create %s: %w", TableAccounts, err)
		}
		b.log.Info("table created", logger.String("table", TableAccounts))
	}

	if _, ok := existing[TableBookings]; !ok {
		if _, err := b.db.Master.ExecContext(ctx, createBookingsDDL); err != nil {
			return fmt.Errorf("create %s: %w", TableBookings, err)
		}
		b.log.Info("table created", logger.String("table", TableBookings))
	}

	return nil
}

// RepairBookings rebuilds booking_requests into the canonical shape:
// back up all rows, drop, recreate, restore the common columns, drop the
// backup. The five steps are not atomic and data held in non-canonical
// columns is discarded, so this must only run operator-supervised, never
// concurrently with live traffic.
func (b *Bootstrap) RepairBookings(ctx context.Context) error {
	steps := []struct {
		name string
		stmt string
	}{
		{"drop stale backup", `DROP TABLE IF EXISTS booking_requests_backup`},
		{"back up rows", `CREATE TABLE booking_requests_backup AS SELECT * FROM booking_requests`},
		{"drop original", `DROP TABLE booking_requests`},
		{"recreate", createBookingsDDL},
		{"restore rows", fmt.Sprintf(
			`INSERT INTO booking_requests (%s) SELECT %s FROM booking_requests_backup`,
			bookingCommonColumns, bookingCommonColumns,
		)},
		{"drop backup", `DROP TABLE booking_requests_backup`},
	}

	for _, step := range steps {
		if _, err := b.db.Master.ExecContext(ctx, step.stmt); err != nil {
			return fmt.Errorf("repair %s: %w", step.name, err)
		}
		b.log.Info("repair step done", logger.String("step", step.name))
	}

	b.log.Warn("booking_requests rebuilt; data outside the canonical columns was discarded")
	return nil
}
