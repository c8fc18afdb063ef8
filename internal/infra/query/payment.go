package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Payment struct {
	ID               uuid.UUID
	BookingID        uuid.UUID
	AuthorizationRef string
	Status           string
	Amount           int64
	PlatformFee      int64
	Payout           int64
	Currency         string
	PaidAt           pgtype.Timestamptz
	RawPayload       []byte
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const paymentColumns = `id, booking_id, authorization_ref, status, amount, platform_fee, payout,
	currency, paid_at, raw_payload, created_at, updated_at`

func scanPayment(row pgx.Row) (Payment, error) {
	var p Payment
	err := row.Scan(
		&p.ID, &p.BookingID, &p.AuthorizationRef, &p.Status, &p.Amount, &p.PlatformFee, &p.Payout,
		&p.Currency, &p.PaidAt, &p.RawPayload, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

const insertPayment = `INSERT INTO payments (` + paymentColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (authorization_ref) DO NOTHING`

// InsertPayment returns the number of inserted rows; zero means the reference already exists.
func (q *Queries) InsertPayment(ctx context.Context, db DBTX, p Payment) (int64, error) {
	tag, err := db.Exec(ctx, insertPayment,
		p.ID, p.BookingID, p.AuthorizationRef, p.Status, p.Amount, p.PlatformFee, p.Payout,
		p.Currency, p.PaidAt, p.RawPayload, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const lockPaymentByAuthorizationRef = `SELECT ` + paymentColumns + ` FROM payments WHERE authorization_ref = $1 FOR UPDATE`

func (q *Queries) LockPaymentByAuthorizationRef(ctx context.Context, db DBTX, ref string) (Payment, error) {
	return scanPayment(db.QueryRow(ctx, lockPaymentByAuthorizationRef, ref))
}

const lockSucceededPaymentByBooking = `SELECT ` + paymentColumns + ` FROM payments
WHERE booking_id = $1 AND status = 'SUCCEEDED'
ORDER BY authorization_ref IS NOT DISTINCT FROM (SELECT authorization_ref FROM bookings WHERE id = $1) DESC, created_at
LIMIT 1
FOR UPDATE`

func (q *Queries) LockSucceededPaymentByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) (Payment, error) {
	return scanPayment(db.QueryRow(ctx, lockSucceededPaymentByBooking, bookingID))
}

type UpdatePaymentStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt time.Time
}

const updatePaymentStatus = `UPDATE payments SET status = $2, updated_at = $3 WHERE id = $1`

func (q *Queries) UpdatePaymentStatus(ctx context.Context, db DBTX, arg UpdatePaymentStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updatePaymentStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
