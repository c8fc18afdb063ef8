package repository

import (
	"context"

	"fitbook/internal/infra"
	"fitbook/internal/infra/db"
	"fitbook/internal/infra/query"

	"github.com/google/uuid"
)

type CoachWriteQueries interface {
	SetCoachPaymentEnabled(ctx context.Context, db query.DBTX, accountID string, enabled bool) (int64, error)
	RecalcCoachSessionsCompleted(ctx context.Context, db query.DBTX, coachID uuid.UUID) (int64, error)
}

type CoachRepository struct {
	queries CoachWriteQueries
}

func NewCoachRepository(queries CoachWriteQueries) *CoachRepository {
	return &CoachRepository{queries: queries}
}

func (r *CoachRepository) SetPaymentEnabled(ctx context.Context, tx db.DBTX, accountID string, enabled bool) (bool, error) {
	n, err := r.queries.SetCoachPaymentEnabled(ctx, tx, accountID, enabled)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update coach payment flag", err)
	}
	return n > 0, nil
}

func (r *CoachRepository) RecalcSessionsCompleted(ctx context.Context, tx db.DBTX, coachID uuid.UUID) error {
	n, err := r.queries.RecalcCoachSessionsCompleted(ctx, tx, coachID)
	if err != nil {
		return infra.WrapRepoErr("failed to recalculate sessions completed", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("coach not found", nil, infra.KindNotFound)
	}
	return nil
}
