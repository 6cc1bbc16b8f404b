package schema

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func newMigrator(t *testing.T) (*Migrator, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := setupMockDB(t)
	log := newTestLogger(t)
	return NewMigrator(db, NewIntrospector(db, log), log), mock
}

func expectColumnCheck(mock sqlmock.Sqlmock, table, column string, present bool) {
	rows := sqlmock.NewRows([]string{"?column?"})
	if present {
		rows.AddRow(1)
	}
	mock.ExpectQuery(`SELECT 1`).WithArgs(table, column).WillReturnRows(rows)
}

func TestMigrator_AddColumnIfMissing_AlreadyPresent(t *testing.T) {
	m, mock := newMigrator(t)

	expectColumnCheck(mock, "booking_requests", "status", true)

	res := m.AddColumnIfMissing(context.Background(), "booking_requests", "status", "TEXT", "Pending")

	assert.Equal(t, OutcomeAlreadyPresent, res.Outcome)
	assert.Empty(t, res.Err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_AddColumnIfMissing_Added(t *testing.T) {
	m, mock := newMigrator(t)

	expectColumnCheck(mock, "booking_requests", "status", false)
	mock.ExpectExec(regexp.QuoteMeta(`ALTER TABLE booking_requests ADD COLUMN "status" TEXT DEFAULT 'Pending'`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	res := m.AddColumnIfMissing(context.Background(), "booking_requests", "status", "TEXT", "Pending")

	assert.Equal(t, OutcomeAdded, res.Outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_AddColumnIfMissing_BareFallback(t *testing.T) {
	m, mock := newMigrator(t)

	expectColumnCheck(mock, "booking_requests", "status", false)
	mock.ExpectExec(regexp.QuoteMeta(`ALTER TABLE booking_requests ADD COLUMN "status" TEXT DEFAULT 'Pending'`)).
		WillReturnError(errors.New("syntax error"))
	mock.ExpectExec(regexp.QuoteMeta(`ALTER TABLE booking_requests ADD COLUMN "status" TEXT`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	res := m.AddColumnIfMissing(context.Background(), "booking_requests", "status", "TEXT", "Pending")

	assert.Equal(t, OutcomeAdded, res.Outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_AddColumnIfMissing_BothAttemptsFail(t *testing.T) {
	m, mock := newMigrator(t)

	expectColumnCheck(mock, "booking_requests", "status", false)
	mock.ExpectExec(`ALTER TABLE booking_requests`).WillReturnError(errors.New("permission denied"))
	mock.ExpectExec(`ALTER TABLE booking_requests`).WillReturnError(errors.New("permission denied"))

	res := m.AddColumnIfMissing(context.Background(), "booking_requests", "status", "TEXT", "Pending")

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Contains(t, res.Err, "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_AddColumnIfMissing_NoDefaultFailsOnce(t *testing.T) {
	m, mock := newMigrator(t)

	// Without a default there is no bare form left to fall back to.
	expectColumnCheck(mock, "booking_requests", "notes", false)
	mock.ExpectExec(regexp.QuoteMeta(`ALTER TABLE booking_requests ADD COLUMN "notes" TEXT`)).
		WillReturnError(errors.New("permission denied"))

	res := m.AddColumnIfMissing(context.Background(), "booking_requests", "notes", "TEXT", "")

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddColumnDDL_DefaultQuoting(t *testing.T) {
	cases := []struct {
		name         string
		defaultValue string
		want         string
	}{
		{"literal", "Pending", `ALTER TABLE t ADD COLUMN "c" TEXT DEFAULT 'Pending'`},
		{"none", "", `ALTER TABLE t ADD COLUMN "c" TEXT`},
		{"current_timestamp", "CURRENT_TIMESTAMP", `ALTER TABLE t ADD COLUMN "c" TEXT DEFAULT CURRENT_TIMESTAMP`},
		{"now", "NOW()", `ALTER TABLE t ADD COLUMN "c" TEXT DEFAULT NOW()`},
		{"current_date", "CURRENT_DATE", `ALTER TABLE t ADD COLUMN "c" TEXT DEFAULT CURRENT_DATE`},
		{"lowercase keyword", "current_timestamp", `ALTER TABLE t ADD COLUMN "c" TEXT DEFAULT current_timestamp`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, addColumnDDL("t", "c", "TEXT", tc.defaultValue))
		})
	}
}
