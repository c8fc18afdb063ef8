package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewRow struct {
	ID                     uuid.UUID
	CoachID                uuid.UUID
	CoachUserID            uuid.UUID
	CoachName              string
	ClientID               uuid.UUID
	PackageID              uuid.UUID
	PackageTitle           string
	PackageDurationMinutes int32
	StartTime              time.Time
	EndTime                time.Time
	Status                 string
	TotalAmount            int64
	PlatformFee            int64
	CoachPayout            int64
	Currency               string
	CancelledAt            pgtype.Timestamptz
	CancelReason           pgtype.Text
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

const bookingViewSelect = `SELECT b.id, b.coach_id, c.user_id, c.display_name, b.client_id, b.package_id,
	p.title, p.duration_minutes, b.start_time, b.end_time, b.status,
	b.total_amount, b.platform_fee, b.coach_payout, b.currency,
	b.cancelled_at, b.cancel_reason, b.created_at, b.updated_at
FROM bookings b
JOIN coaches c ON c.id = b.coach_id
JOIN packages p ON p.id = b.package_id`

func scanBookingView(row pgx.Row) (BookingViewRow, error) {
	var v BookingViewRow
	err := row.Scan(
		&v.ID, &v.CoachID, &v.CoachUserID, &v.CoachName, &v.ClientID, &v.PackageID,
		&v.PackageTitle, &v.PackageDurationMinutes, &v.StartTime, &v.EndTime, &v.Status,
		&v.TotalAmount, &v.PlatformFee, &v.CoachPayout, &v.Currency,
		&v.CancelledAt, &v.CancelReason, &v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}

const getBookingViewByID = bookingViewSelect + ` WHERE b.id = $1`

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingView(db.QueryRow(ctx, getBookingViewByID, id))
}

type ListBookingsParams struct {
	ClientID pgtype.UUID
	CoachID  pgtype.UUID
	Statuses []string
	// StartsFrom restricts to sessions starting at or after the instant when valid.
	StartsFrom pgtype.Timestamptz
	Limit      int32
	Offset     int32
}

const listBookingsWhere = ` WHERE ($1::uuid IS NULL OR b.client_id = $1::uuid)
  AND ($2::uuid IS NULL OR b.coach_id = $2::uuid)
  AND ($3::text[] IS NULL OR cardinality($3::text[]) = 0 OR b.status = ANY($3::text[]))
  AND ($4::timestamptz IS NULL OR b.start_time >= $4::timestamptz)`

const listBookings = bookingViewSelect + listBookingsWhere + `
ORDER BY b.start_time DESC, b.id DESC
LIMIT $5 OFFSET $6`

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookings, arg.ClientID, arg.CoachID, arg.Statuses, arg.StartsFrom, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BookingViewRow
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

const countBookings = `SELECT count(*) FROM bookings b` + listBookingsWhere

func (q *Queries) CountBookings(ctx context.Context, db DBTX, arg ListBookingsParams) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countBookings, arg.ClientID, arg.CoachID, arg.Statuses, arg.StartsFrom).Scan(&n)
	return n, err
}

type BusySlot struct {
	StartTime time.Time
	EndTime   time.Time
}

const listBusySlots = `SELECT start_time, end_time FROM bookings
WHERE coach_id = $1
  AND slot && tstzrange($2, $3, '[)')
  AND status = ANY($4::text[])
ORDER BY start_time`

func (q *Queries) ListBusySlots(ctx context.Context, db DBTX, coachID uuid.UUID, start, end time.Time, statuses []string) ([]BusySlot, error) {
	rows, err := db.Query(ctx, listBusySlots, coachID, start, end, statuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BusySlot
	for rows.Next() {
		var s BusySlot
		if err := rows.Scan(&s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
