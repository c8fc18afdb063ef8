package readstore

import (
	"context"
	"time"

	"fitbook/internal/domain/booking"
	"fitbook/internal/infra"
	"fitbook/internal/infra/db"
	"fitbook/internal/infra/query"
	"fitbook/internal/pkg/pgconv"
	"fitbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingViewRow, error)
	ListBookings(ctx context.Context, db query.DBTX, arg query.ListBookingsParams) ([]query.BookingViewRow, error)
	CountBookings(ctx context.Context, db query.DBTX, arg query.ListBookingsParams) (int64, error)
	GetCoachByUserID(ctx context.Context, db query.DBTX, userID uuid.UUID) (query.Coach, error)
	ListBusySlots(ctx context.Context, db query.DBTX, coachID uuid.UUID, start, end time.Time, statuses []string) ([]query.BusySlot, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      db.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db db.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row), nil
}

// List runs the page query and the count under the same filters. The two reads
// are not snapshot-consistent; the total is advisory.
func (r *BookingReadStore) List(ctx context.Context, c queries.BookingListCriteria) ([]*queries.BookingView, int64, error) {
	params := query.ListBookingsParams{
		ClientID:   pgconv.UUIDPtrToPgtype(c.ClientID),
		CoachID:    pgconv.UUIDPtrToPgtype(c.CoachID),
		Statuses:   c.Statuses,
		StartsFrom: pgconv.TimePtrToPgtype(c.StartsFrom),
		Limit:      c.Limit,
		Offset:     c.Offset,
	}

	rows, err := r.queries.ListBookings(ctx, r.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list bookings", err)
	}
	total, err := r.queries.CountBookings(ctx, r.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count bookings", err)
	}

	items := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		items[i] = toBookingView(row)
	}
	return items, total, nil
}

func (r *BookingReadStore) FindCoachIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	coach, err := r.queries.GetCoachByUserID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("coach profile not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to get coach by user", err)
	}
	return coach.ID, nil
}

func (r *BookingReadStore) ListBusy(ctx context.Context, coachID uuid.UUID, start, end time.Time) ([]queries.TimeRange, error) {
	statuses := make([]string, 0, 2)
	for _, s := range booking.NonTerminalStatuses() {
		statuses = append(statuses, s.String())
	}

	rows, err := r.queries.ListBusySlots(ctx, r.db, coachID, start, end, statuses)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list busy slots", err)
	}
	out := make([]queries.TimeRange, len(rows))
	for i, row := range rows {
		out[i] = queries.TimeRange{Start: row.StartTime, End: row.EndTime}
	}
	return out, nil
}

func toBookingView(row query.BookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:                     row.ID,
		CoachID:                row.CoachID,
		CoachUserID:            row.CoachUserID,
		CoachName:              row.CoachName,
		ClientID:               row.ClientID,
		PackageID:              row.PackageID,
		PackageName:            row.PackageTitle,
		PackageDurationMinutes: int(row.PackageDurationMinutes),
		StartTime:              row.StartTime,
		EndTime:                row.EndTime,
		Status:                 row.Status,
		TotalAmount:            row.TotalAmount,
		PlatformFee:            row.PlatformFee,
		CoachPayout:            row.CoachPayout,
		Currency:               row.Currency,
		CancelledAt:            pgconv.TimePtrFromPgtype(row.CancelledAt),
		CancelReason:           pgconv.StringPtrFromPgtype(row.CancelReason),
		CreatedAt:              row.CreatedAt,
		UpdatedAt:              row.UpdatedAt,
	}
}
