package repository

import (
	"context"

	"fitbook/internal/domain/payment"
	"fitbook/internal/infra"
	"fitbook/internal/infra/db"
	"fitbook/internal/infra/query"
	"fitbook/internal/infra/repository/converter"
	"fitbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	InsertPayment(ctx context.Context, db query.DBTX, p query.Payment) (int64, error)
	LockPaymentByAuthorizationRef(ctx context.Context, db query.DBTX, ref string) (query.Payment, error)
	LockSucceededPaymentByBooking(ctx context.Context, db query.DBTX, bookingID uuid.UUID) (query.Payment, error)
	UpdatePaymentStatus(ctx context.Context, db query.DBTX, arg query.UpdatePaymentStatusParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
}

func NewPaymentRepository(queries PaymentWriteQueries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

func (r *PaymentRepository) Insert(ctx context.Context, tx db.DBTX, p *payment.Payment) (bool, error) {
	n, err := r.queries.InsertPayment(ctx, tx, converter.PaymentToInfra(p))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert payment", err)
	}
	return n > 0, nil
}

func (r *PaymentRepository) LockByAuthorizationRef(ctx context.Context, tx db.DBTX, ref string) (*payment.Payment, error) {
	row, err := r.queries.LockPaymentByAuthorizationRef(ctx, tx, ref)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	return converter.PaymentToDomain(row), nil
}

func (r *PaymentRepository) LockSucceededByBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.LockSucceededPaymentByBooking(ctx, tx, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no succeeded payment for booking", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	return converter.PaymentToDomain(row), nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx db.DBTX, p *payment.Payment) error {
	params := query.UpdatePaymentStatusParams{
		ID:        p.ID(),
		Status:    p.Status().String(),
		UpdatedAt: p.UpdatedAt(),
	}
	n, err := r.queries.UpdatePaymentStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
