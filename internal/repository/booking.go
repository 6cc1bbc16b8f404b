package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
	"github.com/flavioscarvalho/agendamento-servico/internal/schema"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const equipmentSeparator = ", "

// BookingRepository persists booking requests. Every method branches on
// the detected schema capabilities: with the status column present it
// runs the full workflow SQL, without it it degrades to the legacy shape
// where every row is implicitly Pending.
//
// Reads retry; writes are single-statement and never retried, so a
// failed mutation leaves nothing half-written.
type BookingRepository struct {
	db       *dbpg.DB
	caps     *schema.Capabilities
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB, caps *schema.Capabilities) *BookingRepository {
	return &BookingRepository{
		db:   db,
		caps: caps,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.BookingRequest) error {
	equipment := strings.Join(b.Equipment, equipmentSeparator)

	var (
		query string
		args  []any
	)
	if r.caps.HasStatus() {
		query = `INSERT INTO booking_requests (date, subject, equipment, slot, shift, room, requester, status)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				 RETURNING id, created_at`
		args = []any{b.Date, b.Subject, equipment, b.Slot, b.Shift, b.Room, b.Requester, domain.StatusPending}
	} else {
		query = `INSERT INTO booking_requests (date, subject, equipment, slot, shift, room, requester)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)
				 RETURNING id, created_at`
		args = []any{b.Date, b.Subject, equipment, b.Slot, b.Shift, b.Room, b.Requester}
	}

	if err := r.db.Master.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	b.Status = domain.StatusPending

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM booking_requests WHERE id = $1`, r.selectColumns())

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// List applies the filters as equality predicates combined with AND,
// most recent first. In legacy mode the status filter is dropped because
// there is nothing to match it against.
func (r *BookingRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.BookingRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM booking_requests WHERE 1=1`, r.selectColumns())

	var args []any
	if r.caps.HasStatus() && filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND COALESCE(status, 'Pending') = $%d`, len(args))
	}
	if filter.Requester != "" {
		args = append(args, filter.Requester)
		query += fmt.Sprintf(` AND requester = $%d`, len(args))
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return []*domain.BookingRequest{}, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	res := []*domain.BookingRequest{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return []*domain.BookingRequest{}, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	if err := rows.Err(); err != nil {
		return []*domain.BookingRequest{}, fmt.Errorf("list bookings: %w", err)
	}

	return res, nil
}

// UpdateStatus writes status (and notes, when the column exists) in one
// statement with no precondition on the previous value. Transition
// legality lives with the caller; concurrent writers are last-write-wins
// here. See TransitionStatus for the guarded variant.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status, notes string) error {
	if !r.caps.HasStatus() {
		return domain.ErrApprovalUnavailable
	}

	var (
		query string
		args  []any
	)
	if r.caps.HasNotes() {
		query = `UPDATE booking_requests SET status = $1, notes = $2 WHERE id = $3`
		args = []any{status, notes, id}
	} else {
		query = `UPDATE booking_requests SET status = $1 WHERE id = $2`
		args = []any{status, id}
	}

	res, err := r.db.Master.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update status rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

// TransitionStatus moves a booking from one status to another only if it
// is still in the expected prior state, so two approvers racing on the
// same request cannot silently overwrite each other's decision.
func (r *BookingRepository) TransitionStatus(ctx context.Context, id int64, from, to domain.Status, notes string) error {
	if !r.caps.HasStatus() {
		return domain.ErrApprovalUnavailable
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		query string
		args  []any
	)
	if r.caps.HasNotes() {
		query = `UPDATE booking_requests SET status = $1, notes = $2
				 WHERE id = $3 AND COALESCE(status, 'Pending') = $4`
		args = []any{to, notes, id, from}
	} else {
		query = `UPDATE booking_requests SET status = $1
				 WHERE id = $2 AND COALESCE(status, 'Pending') = $3`
		args = []any{to, id, from}
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("transition status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transition rows affected: %w", err)
	}
	if affected == 0 {
		// Either the row is gone or somebody decided first.
		var current string
		checkQuery := `SELECT COALESCE(status, 'Pending') FROM booking_requests WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&current); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("%w: status is %s", domain.ErrAlreadyDecided, current)
	}

	return tx.Commit()
}

// CountByStatus always reports all three statuses. In legacy mode every
// row counts as Pending, reflecting that nothing has ever been reviewed.
func (r *BookingRepository) CountByStatus(ctx context.Context) (domain.StatusCounts, error) {
	var counts domain.StatusCounts

	if !r.caps.HasStatus() {
		query := `SELECT COUNT(*) FROM booking_requests`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
		if err != nil {
			return counts, fmt.Errorf("count bookings: %w", err)
		}
		if err := row.Scan(&counts.Pending); err != nil {
			return counts, fmt.Errorf("scan booking count: %w", err)
		}
		return counts, nil
	}

	query := `SELECT COALESCE(status, 'Pending'), COUNT(*)
			  FROM booking_requests
			  GROUP BY COALESCE(status, 'Pending')`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return counts, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return domain.StatusCounts{}, fmt.Errorf("scan status count: %w", err)
		}
		switch domain.Status(status) {
		case domain.StatusApproved:
			counts.Approved = n
		case domain.StatusRejected:
			counts.Rejected = n
		default:
			// Unknown values are treated as unreviewed.
			counts.Pending += n
		}
	}
	if err := rows.Err(); err != nil {
		return domain.StatusCounts{}, fmt.Errorf("count by status: %w", err)
	}

	return counts, nil
}

func (r *BookingRepository) selectColumns() string {
	cols := `id, date, subject, equipment, slot, shift, room, requester`
	if r.caps.HasStatus() {
		cols += `, COALESCE(status, 'Pending')`
	} else {
		cols += `, 'Pending'`
	}
	if r.caps.HasNotes() {
		cols += `, COALESCE(notes, '')`
	} else {
		cols += `, ''`
	}
	return cols + `, created_at`
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.BookingRequest, error) {
	var (
		b         domain.BookingRequest
		equipment string
		status    string
	)
	if err := row.Scan(
		&b.ID, &b.Date, &b.Subject, &equipment, &b.Slot,
		&b.Shift, &b.Room, &b.Requester, &status, &b.Notes, &b.CreatedAt,
	); err != nil {
		return nil, err
	}

	b.Status = domain.Status(status)
	if equipment != "" {
		b.Equipment = strings.Split(equipment, equipmentSeparator)
	}

	return &b, nil
}
