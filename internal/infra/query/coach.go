package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Coach struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	DisplayName       string
	IsActive          bool
	PaymentAccountID  pgtype.Text
	PaymentEnabled    bool
	SessionsCompleted int32
	RatingAvg         float64
	RatingCount       int32
}

const getCoachByID = `SELECT id, user_id, display_name, is_active, payment_account_id, payment_enabled,
	sessions_completed, rating_avg, rating_count
FROM coaches WHERE id = $1`

func (q *Queries) GetCoachByID(ctx context.Context, db DBTX, id uuid.UUID) (Coach, error) {
	var c Coach
	err := db.QueryRow(ctx, getCoachByID, id).Scan(
		&c.ID, &c.UserID, &c.DisplayName, &c.IsActive, &c.PaymentAccountID, &c.PaymentEnabled,
		&c.SessionsCompleted, &c.RatingAvg, &c.RatingCount,
	)
	return c, err
}

const getCoachByUserID = `SELECT id, user_id, display_name, is_active, payment_account_id, payment_enabled,
	sessions_completed, rating_avg, rating_count
FROM coaches WHERE user_id = $1`

func (q *Queries) GetCoachByUserID(ctx context.Context, db DBTX, userID uuid.UUID) (Coach, error) {
	var c Coach
	err := db.QueryRow(ctx, getCoachByUserID, userID).Scan(
		&c.ID, &c.UserID, &c.DisplayName, &c.IsActive, &c.PaymentAccountID, &c.PaymentEnabled,
		&c.SessionsCompleted, &c.RatingAvg, &c.RatingCount,
	)
	return c, err
}

const setCoachPaymentEnabled = `UPDATE coaches
SET payment_enabled = $2, updated_at = now()
WHERE payment_account_id = $1 AND payment_enabled IS DISTINCT FROM $2`

func (q *Queries) SetCoachPaymentEnabled(ctx context.Context, db DBTX, accountID string, enabled bool) (int64, error) {
	tag, err := db.Exec(ctx, setCoachPaymentEnabled, accountID, enabled)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const recalcCoachSessionsCompleted = `UPDATE coaches c
SET sessions_completed = (
	SELECT count(*) FROM bookings b
	WHERE b.coach_id = c.id AND b.status IN ('CONFIRMED', 'COMPLETED')
), updated_at = now()
WHERE c.id = $1`

func (q *Queries) RecalcCoachSessionsCompleted(ctx context.Context, db DBTX, coachID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, recalcCoachSessionsCompleted, coachID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type CoachRatingSums struct {
	Sum   int64
	Count int64
}

const getCoachRatingSums = `SELECT COALESCE(SUM(rating), 0)::bigint, COUNT(*) FROM reviews WHERE coach_id = $1`

func (q *Queries) GetCoachRatingSums(ctx context.Context, db DBTX, coachID uuid.UUID) (CoachRatingSums, error) {
	var s CoachRatingSums
	err := db.QueryRow(ctx, getCoachRatingSums, coachID).Scan(&s.Sum, &s.Count)
	return s, err
}

type UpdateCoachRatingStatsParams struct {
	CoachID     uuid.UUID
	RatingAvg   float64
	RatingCount int32
}

const updateCoachRatingStats = `UPDATE coaches SET rating_avg = $2, rating_count = $3, updated_at = now() WHERE id = $1`

func (q *Queries) UpdateCoachRatingStats(ctx context.Context, db DBTX, arg UpdateCoachRatingStatsParams) (int64, error) {
	tag, err := db.Exec(ctx, updateCoachRatingStats, arg.CoachID, arg.RatingAvg, arg.RatingCount)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type Package struct {
	ID              uuid.UUID
	CoachID         uuid.UUID
	Title           string
	DurationMinutes int32
	PriceMinor      int64
	Currency        string
	IsActive        bool
}

const getPackageByID = `SELECT id, coach_id, title, duration_minutes, price_minor, currency, is_active
FROM packages WHERE id = $1`

func (q *Queries) GetPackageByID(ctx context.Context, db DBTX, id uuid.UUID) (Package, error) {
	var p Package
	err := db.QueryRow(ctx, getPackageByID, id).Scan(
		&p.ID, &p.CoachID, &p.Title, &p.DurationMinutes, &p.PriceMinor, &p.Currency, &p.IsActive,
	)
	return p, err
}
