package repository

import (
	"context"

	"fitbook/internal/infra"
	"fitbook/internal/infra/db"
	"fitbook/internal/infra/query"
	"fitbook/internal/pkg/pgconv"
	"fitbook/internal/usecase/shared"
)

type GatewayEventWriteQueries interface {
	RecordGatewayEvent(ctx context.Context, db query.DBTX, arg query.RecordGatewayEventParams) error
}

type GatewayEventRepository struct {
	queries GatewayEventWriteQueries
}

func NewGatewayEventRepository(queries GatewayEventWriteQueries) *GatewayEventRepository {
	return &GatewayEventRepository{queries: queries}
}

// Record keeps the first outcome seen for an event id.
func (r *GatewayEventRepository) Record(ctx context.Context, tx db.DBTX, rec shared.GatewayEventRecord) error {
	params := query.RecordGatewayEventParams{
		EventID:          rec.EventID,
		Kind:             rec.Kind,
		AuthorizationRef: pgconv.NonEmptyToPgtype(rec.AuthorizationRef),
		Outcome:          string(rec.Outcome),
		Detail:           pgconv.NonEmptyToPgtype(rec.Detail),
	}
	if err := r.queries.RecordGatewayEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to record gateway event", err)
	}
	return nil
}
