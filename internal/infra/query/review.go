package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Review struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	CoachID   uuid.UUID
	ClientID  uuid.UUID
	Rating    int16
	Text      pgtype.Text
	CreatedAt time.Time
}

const createReview = `INSERT INTO reviews (id, booking_id, coach_id, client_id, rating, text, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) CreateReview(ctx context.Context, db DBTX, r Review) error {
	_, err := db.Exec(ctx, createReview, r.ID, r.BookingID, r.CoachID, r.ClientID, r.Rating, r.Text, r.CreatedAt)
	return err
}


type ReviewViewRow struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	CoachID    uuid.UUID
	ClientID   uuid.UUID
	ClientName string
	Rating     int16
	Text       pgtype.Text
	CreatedAt  time.Time
}

const reviewViewSelect = `SELECT r.id, r.booking_id, r.coach_id, r.client_id, u.name, r.rating, r.text, r.created_at
FROM reviews r
JOIN users u ON u.id = r.client_id`

func scanReviewViews(rows pgx.Rows) ([]ReviewViewRow, error) {
	defer rows.Close()

	var items []ReviewViewRow
	for rows.Next() {
		var v ReviewViewRow
		if err := rows.Scan(&v.ID, &v.BookingID, &v.CoachID, &v.ClientID, &v.ClientName, &v.Rating, &v.Text, &v.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

const getReviewViewByID = reviewViewSelect + ` WHERE r.id = $1`

func (q *Queries) GetReviewViewByID(ctx context.Context, db DBTX, id uuid.UUID) (ReviewViewRow, error) {
	var v ReviewViewRow
	err := db.QueryRow(ctx, getReviewViewByID, id).Scan(&v.ID, &v.BookingID, &v.CoachID, &v.ClientID, &v.ClientName, &v.Rating, &v.Text, &v.CreatedAt)
	return v, err
}

type ListCoachReviewsFirstPageParams struct {
	CoachID uuid.UUID
	Limit   int32
}

const listCoachReviewsFirstPage = reviewViewSelect + `
WHERE r.coach_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

func (q *Queries) ListCoachReviewsFirstPage(ctx context.Context, db DBTX, arg ListCoachReviewsFirstPageParams) ([]ReviewViewRow, error) {
	rows, err := db.Query(ctx, listCoachReviewsFirstPage, arg.CoachID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return scanReviewViews(rows)
}

type ListCoachReviewsKeysetParams struct {
	CoachID   uuid.UUID
	CreatedAt time.Time
	ID        uuid.UUID
	Limit     int32
}

const listCoachReviewsKeyset = reviewViewSelect + `
WHERE r.coach_id = $1
  AND (r.created_at, r.id) < ($2, $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

func (q *Queries) ListCoachReviewsKeyset(ctx context.Context, db DBTX, arg ListCoachReviewsKeysetParams) ([]ReviewViewRow, error) {
	rows, err := db.Query(ctx, listCoachReviewsKeyset, arg.CoachID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return scanReviewViews(rows)
}

type CoachRatingSummary struct {
	CoachID     uuid.UUID
	RatingAvg   float64
	RatingCount int32
}

const getCoachRatingSummary = `SELECT id, rating_avg, rating_count FROM coaches WHERE id = $1`

func (q *Queries) GetCoachRatingSummary(ctx context.Context, db DBTX, coachID uuid.UUID) (CoachRatingSummary, error) {
	var s CoachRatingSummary
	err := db.QueryRow(ctx, getCoachRatingSummary, coachID).Scan(&s.CoachID, &s.RatingAvg, &s.RatingCount)
	return s, err
}
