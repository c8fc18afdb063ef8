package repository

import (
	"context"

	"fitbook/internal/domain/review"
	"fitbook/internal/infra"
	"fitbook/internal/infra/db"
	"fitbook/internal/infra/query"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	GetCoachRatingSums(ctx context.Context, db query.DBTX, coachID uuid.UUID) (query.CoachRatingSums, error)
	UpdateCoachRatingStats(ctx context.Context, db query.DBTX, arg query.UpdateCoachRatingStatsParams) (int64, error)
}

type RatingStatsRepository struct {
	queries RatingStatsQueries
}

func NewRatingStatsRepository(queries RatingStatsQueries) *RatingStatsRepository {
	return &RatingStatsRepository{queries: queries}
}

// RecalcCoachRatingStats recomputes the coach aggregate from all of its reviews.
func (r *RatingStatsRepository) RecalcCoachRatingStats(ctx context.Context, tx db.DBTX, coachID uuid.UUID) error {
	sums, err := r.queries.GetCoachRatingSums(ctx, tx, coachID)
	if err != nil {
		return infra.WrapRepoErr("failed to aggregate coach ratings", err)
	}

	params := query.UpdateCoachRatingStatsParams{
		CoachID:     coachID,
		RatingAvg:   review.AverageRating(sums.Sum, sums.Count),
		RatingCount: int32(sums.Count), // #nosec G115 -- review count per coach fits int32
	}
	n, err := r.queries.UpdateCoachRatingStats(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update coach rating stats", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("coach not found", nil, infra.KindNotFound)
	}
	return nil
}
