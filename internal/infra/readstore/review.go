package readstore

import (
	"context"
	"time"

	"fitbook/internal/infra"
	"fitbook/internal/infra/db"
	"fitbook/internal/infra/query"
	"fitbook/internal/pkg/pgconv"
	"fitbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	GetReviewViewByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ReviewViewRow, error)
	ListCoachReviewsFirstPage(ctx context.Context, db query.DBTX, arg query.ListCoachReviewsFirstPageParams) ([]query.ReviewViewRow, error)
	ListCoachReviewsKeyset(ctx context.Context, db query.DBTX, arg query.ListCoachReviewsKeysetParams) ([]query.ReviewViewRow, error)
	GetCoachRatingSummary(ctx context.Context, db query.DBTX, coachID uuid.UUID) (query.CoachRatingSummary, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      db.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return toReviewView(row), nil
}

func (r *ReviewReadStore) FindByCoachFirstPage(ctx context.Context, coachID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	params := query.ListCoachReviewsFirstPageParams{CoachID: coachID, Limit: limit}
	rows, err := r.queries.ListCoachReviewsFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by coach", err)
	}
	return mapReviewRows(rows), nil
}

func (r *ReviewReadStore) FindByCoachKeyset(ctx context.Context, coachID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	params := query.ListCoachReviewsKeysetParams{
		CoachID:   coachID,
		CreatedAt: lastCreatedAt,
		ID:        lastID,
		Limit:     limit,
	}
	rows, err := r.queries.ListCoachReviewsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by coach", err)
	}
	return mapReviewRows(rows), nil
}

func (r *ReviewReadStore) GetCoachRatingSummary(ctx context.Context, coachID uuid.UUID) (*queries.CoachRatingSummary, error) {
	row, err := r.queries.GetCoachRatingSummary(ctx, r.db, coachID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coach not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get coach rating summary", err)
	}
	return &queries.CoachRatingSummary{
		CoachID:     row.CoachID,
		RatingAvg:   row.RatingAvg,
		RatingCount: int(row.RatingCount),
	}, nil
}

func toReviewView(row query.ReviewViewRow) *queries.ReviewView {
	return &queries.ReviewView{
		ID:         row.ID,
		BookingID:  row.BookingID,
		CoachID:    row.CoachID,
		ClientID:   row.ClientID,
		ClientName: row.ClientName,
		Rating:     int(row.Rating),
		Text:       pgconv.StringPtrFromPgtype(row.Text),
		CreatedAt:  row.CreatedAt,
	}
}

func mapReviewRows(rows []query.ReviewViewRow) []*queries.ReviewView {
	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = toReviewView(row)
	}
	return result
}
