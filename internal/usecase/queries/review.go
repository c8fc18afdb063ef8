package queries

import (
	"context"
	"time"

	"fitbook/internal/infra"

	"github.com/google/uuid"
)

type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"booking_id"`
	CoachID    uuid.UUID `json:"coach_id"`
	ClientID   uuid.UUID `json:"client_id"`
	ClientName string    `json:"client_name"`
	Rating     int       `json:"rating"`
	Text       *string   `json:"text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type CoachRatingSummary struct {
	CoachID     uuid.UUID `json:"coach_id"`
	RatingAvg   float64   `json:"rating_avg"`
	RatingCount int       `json:"rating_count"`
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByCoachFirstPage(ctx context.Context, coachID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindByCoachKeyset(ctx context.Context, coachID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewView, error)
	GetCoachRatingSummary(ctx context.Context, coachID uuid.UUID) (*CoachRatingSummary, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByCoach(ctx context.Context, coachID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	GetCoachRatingSummary(ctx context.Context, coachID uuid.UUID) (*CoachRatingSummary, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByCoach(ctx context.Context, coachID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReviewView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByCoachFirstPage(ctx, coachID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByCoachKeyset(ctx, coachID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reviewQueriesImpl) GetCoachRatingSummary(ctx context.Context, coachID uuid.UUID) (*CoachRatingSummary, error) {
	s, err := q.repo.GetCoachRatingSummary(ctx, coachID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCoachProfileNotFound
		}
		return nil, err
	}
	return s, nil
}
