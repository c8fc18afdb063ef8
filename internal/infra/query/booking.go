package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Booking struct {
	ID               uuid.UUID
	CoachID          uuid.UUID
	ClientID         uuid.UUID
	PackageID        uuid.UUID
	StartTime        time.Time
	EndTime          time.Time
	Status           string
	TotalAmount      int64
	PlatformFee      int64
	CoachPayout      int64
	Currency         string
	AuthorizationRef pgtype.Text
	CancelledAt      pgtype.Timestamptz
	CancelReason     pgtype.Text
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const bookingColumns = `id, coach_id, client_id, package_id, start_time, end_time, status,
	total_amount, platform_fee, coach_payout, currency, authorization_ref,
	cancelled_at, cancel_reason, created_at, updated_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.CoachID, &b.ClientID, &b.PackageID, &b.StartTime, &b.EndTime, &b.Status,
		&b.TotalAmount, &b.PlatformFee, &b.CoachPayout, &b.Currency, &b.AuthorizationRef,
		&b.CancelledAt, &b.CancelReason, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

const createBooking = `INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, b Booking) error {
	_, err := db.Exec(ctx, createBooking,
		b.ID, b.CoachID, b.ClientID, b.PackageID, b.StartTime, b.EndTime, b.Status,
		b.TotalAmount, b.PlatformFee, b.CoachPayout, b.Currency, b.AuthorizationRef,
		b.CancelledAt, b.CancelReason, b.CreatedAt, b.UpdatedAt,
	)
	return err
}

const getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const lockBookingByID = getBookingByID + ` FOR UPDATE`

func (q *Queries) LockBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, lockBookingByID, id))
}

const lockBookingByAuthorizationRef = `SELECT ` + bookingColumns + ` FROM bookings WHERE authorization_ref = $1 FOR UPDATE`

func (q *Queries) LockBookingByAuthorizationRef(ctx context.Context, db DBTX, ref string) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, lockBookingByAuthorizationRef, ref))
}

type LockUnauthorizedBookingParams struct {
	ClientID  uuid.UUID
	CoachID   uuid.UUID
	PackageID uuid.UUID
	Start     time.Time
	End       time.Time
}

const lockUnauthorizedBooking = `SELECT ` + bookingColumns + ` FROM bookings
WHERE client_id = $1 AND coach_id = $2 AND package_id = $3
  AND start_time = $4 AND end_time = $5
  AND status = 'PENDING_PAYMENT' AND authorization_ref IS NULL
ORDER BY created_at DESC
LIMIT 1
FOR UPDATE`

// LockUnauthorizedBooking finds a pending booking of the same request whose
// payment authorization never completed.
func (q *Queries) LockUnauthorizedBooking(ctx context.Context, db DBTX, arg LockUnauthorizedBookingParams) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, lockUnauthorizedBooking, arg.ClientID, arg.CoachID, arg.PackageID, arg.Start, arg.End))
}

type HasOverlappingBookingParams struct {
	CoachID   uuid.UUID
	Start     time.Time
	End       time.Time
	Statuses  []string
	ExcludeID pgtype.UUID
}

const hasOverlappingBooking = `SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE coach_id = $1
	  AND slot && tstzrange($2, $3, '[)')
	  AND status = ANY($4::text[])
	  AND ($5::uuid IS NULL OR id <> $5::uuid)
)`

func (q *Queries) HasOverlappingBooking(ctx context.Context, db DBTX, arg HasOverlappingBookingParams) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, hasOverlappingBooking, arg.CoachID, arg.Start, arg.End, arg.Statuses, arg.ExcludeID).Scan(&exists)
	return exists, err
}

type UpdateBookingStatusParams struct {
	ID           uuid.UUID
	Status       string
	FromStatuses []string
	CancelledAt  pgtype.Timestamptz
	CancelReason pgtype.Text
	UpdatedAt    time.Time
}

const updateBookingStatus = `UPDATE bookings
SET status = $2, cancelled_at = $4, cancel_reason = $5, updated_at = $6
WHERE id = $1 AND status = ANY($3::text[])`

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.FromStatuses, arg.CancelledAt, arg.CancelReason, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type UpdateBookingSlotParams struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	UpdatedAt time.Time
}

const updateBookingSlot = `UPDATE bookings SET start_time = $2, end_time = $3, updated_at = $4 WHERE id = $1`

func (q *Queries) UpdateBookingSlot(ctx context.Context, db DBTX, arg UpdateBookingSlotParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingSlot, arg.ID, arg.StartTime, arg.EndTime, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const setBookingAuthorizationRef = `UPDATE bookings
SET authorization_ref = $2, updated_at = now()
WHERE id = $1 AND (authorization_ref IS NULL OR authorization_ref = $2)`

func (q *Queries) SetBookingAuthorizationRef(ctx context.Context, db DBTX, id uuid.UUID, ref string) (int64, error) {
	tag, err := db.Exec(ctx, setBookingAuthorizationRef, id, ref)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
