package repository

import (
	"context"

	"fitbook/internal/domain/booking"
	"fitbook/internal/infra"
	"fitbook/internal/infra/db"
	"fitbook/internal/infra/query"
	"fitbook/internal/infra/repository/converter"
	"fitbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db query.DBTX, b query.Booking) error
	LockBookingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Booking, error)
	LockBookingByAuthorizationRef(ctx context.Context, db query.DBTX, ref string) (query.Booking, error)
	LockUnauthorizedBooking(ctx context.Context, db query.DBTX, arg query.LockUnauthorizedBookingParams) (query.Booking, error)
	HasOverlappingBooking(ctx context.Context, db query.DBTX, arg query.HasOverlappingBookingParams) (bool, error)
	UpdateBookingStatus(ctx context.Context, db query.DBTX, arg query.UpdateBookingStatusParams) (int64, error)
	UpdateBookingSlot(ctx context.Context, db query.DBTX, arg query.UpdateBookingSlotParams) (int64, error)
	SetBookingAuthorizationRef(ctx context.Context, db query.DBTX, id uuid.UUID, ref string) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.LockBookingByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return toDomainBooking(row)
}

func (r *BookingRepository) LockByAuthorizationRef(ctx context.Context, tx db.DBTX, ref string) (*booking.Booking, error) {
	row, err := r.queries.LockBookingByAuthorizationRef(ctx, tx, ref)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return toDomainBooking(row)
}

func (r *BookingRepository) LockUnauthorized(ctx context.Context, tx db.DBTX, clientID, coachID, packageID uuid.UUID, slot booking.TimeSlot) (*booking.Booking, error) {
	row, err := r.queries.LockUnauthorizedBooking(ctx, tx, query.LockUnauthorizedBookingParams{
		ClientID:  clientID,
		CoachID:   coachID,
		PackageID: packageID,
		Start:     slot.Start(),
		End:       slot.End(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no retryable booking", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock retryable booking", err)
	}
	return toDomainBooking(row)
}

func toDomainBooking(row query.Booking) (*booking.Booking, error) {
	b, err := converter.BookingToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking row", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) HasOverlap(ctx context.Context, tx db.DBTX, coachID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	params := query.HasOverlappingBookingParams{
		CoachID:   coachID,
		Start:     slot.Start(),
		End:       slot.End(),
		Statuses:  converter.StatusesToInfra(booking.NonTerminalStatuses()),
		ExcludeID: pgconv.UUIDPtrToPgtype(excludeID),
	}
	exists, err := r.queries.HasOverlappingBooking(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking, from []booking.Status) (bool, error) {
	params := query.UpdateBookingStatusParams{
		ID:           b.ID(),
		Status:       b.Status().String(),
		FromStatuses: converter.StatusesToInfra(from),
		CancelledAt:  pgconv.TimePtrToPgtype(b.CancelledAt()),
		CancelReason: pgconv.StringPtrToPgtype(b.CancelReason()),
		UpdatedAt:    b.UpdatedAt(),
	}
	n, err := r.queries.UpdateBookingStatus(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return n > 0, nil
}

func (r *BookingRepository) UpdateSlot(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	params := query.UpdateBookingSlotParams{
		ID:        b.ID(),
		StartTime: b.TimeSlot().Start(),
		EndTime:   b.TimeSlot().End(),
		UpdatedAt: b.UpdatedAt(),
	}
	n, err := r.queries.UpdateBookingSlot(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking slot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) SetAuthorizationRef(ctx context.Context, tx db.DBTX, id uuid.UUID, ref string) (bool, error) {
	n, err := r.queries.SetBookingAuthorizationRef(ctx, tx, id, ref)
	if err != nil {
		return false, infra.WrapRepoErr("failed to attach authorization reference", err)
	}
	return n > 0, nil
}
