//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"fitbook/internal/infra"
	"fitbook/internal/infra/query"
	"fitbook/internal/infra/readstore"
	"fitbook/internal/usecase/queries"
	readstoremock "fitbook/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookingRow(id uuid.UUID) query.BookingViewRow {
	start := time.Date(2030, 5, 2, 10, 0, 0, 0, time.UTC)
	return query.BookingViewRow{
		ID:                     id,
		CoachID:                uuid.New(),
		CoachUserID:            uuid.New(),
		CoachName:              "Coach Test",
		ClientID:               uuid.New(),
		PackageID:              uuid.New(),
		PackageTitle:           "Strength 60",
		PackageDurationMinutes: 60,
		StartTime:              start,
		EndTime:                start.Add(time.Hour),
		Status:                 "CANCELLED",
		TotalAmount:            8250,
		PlatformFee:            750,
		CoachPayout:            7500,
		Currency:               "usd",
		CancelledAt:            pgtype.Timestamptz{Time: start.Add(-time.Hour), Valid: true},
		CancelReason:           pgtype.Text{String: "sick", Valid: true},
		CreatedAt:              start.Add(-48 * time.Hour),
		UpdatedAt:              start.Add(-time.Hour),
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking view mapped",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(bookingRow(id), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(query.BookingViewRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(query.BookingViewRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
			store := readstore.NewBookingReadStore(mockQueries, nil)
			tc.setupMock(mockQueries)

			result, err := store.FindByID(ctx, id)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, result.ID)
			assert.Equal(t, "Strength 60", result.PackageName)
			assert.Equal(t, 60, result.PackageDurationMinutes)
			assert.Equal(t, int64(8250), result.TotalAmount)
			require.NotNil(t, result.CancelledAt)
			require.NotNil(t, result.CancelReason)
			assert.Equal(t, "sick", *result.CancelReason)
		})
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestBookingReadStore_List(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	from := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success: page and total share the filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, nil)

		expected := query.ListBookingsParams{
			ClientID:   pgtype.UUID{Bytes: clientID, Valid: true},
			Statuses:   []string{"CONFIRMED"},
			StartsFrom: pgtype.Timestamptz{Time: from, Valid: true},
			Limit:      20,
			Offset:     40,
		}
		mockQueries.EXPECT().ListBookings(ctx, gomock.Any(), expected).Return([]query.BookingViewRow{bookingRow(uuid.New())}, nil)
		mockQueries.EXPECT().CountBookings(ctx, gomock.Any(), expected).Return(int64(41), nil)

		items, total, err := store.List(ctx, queries.BookingListCriteria{
			ClientID:   &clientID,
			Statuses:   []string{"CONFIRMED"},
			StartsFrom: &from,
			Limit:      20,
			Offset:     40,
		})
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, int64(41), total)
	})

	t.Run("error: count failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListBookings(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		mockQueries.EXPECT().CountBookings(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errDBConnectionLost)

		_, _, err := store.List(ctx, queries.BookingListCriteria{ClientID: &clientID, Limit: 20})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_FindCoachIDByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	coachID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
	store := readstore.NewBookingReadStore(mockQueries, nil)

	mockQueries.EXPECT().GetCoachByUserID(ctx, gomock.Any(), userID).Return(query.Coach{ID: coachID}, nil)
	mockQueries.EXPECT().GetCoachByUserID(ctx, gomock.Any(), userID).Return(query.Coach{}, pgx.ErrNoRows)

	got, err := store.FindCoachIDByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, coachID, got)

	_, err = store.FindCoachIDByUser(ctx, userID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBookingReadStore_ListBusy(t *testing.T) {
	ctx := context.Background()
	coachID := uuid.New()
	start := time.Date(2030, 5, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
	store := readstore.NewBookingReadStore(mockQueries, nil)

	mockQueries.EXPECT().ListBusySlots(ctx, gomock.Any(), coachID, start, end, []string{"PENDING_PAYMENT", "CONFIRMED"}).
		Return([]query.BusySlot{{StartTime: start.Add(time.Hour), EndTime: start.Add(2 * time.Hour)}}, nil)

	busy, err := store.ListBusy(ctx, coachID, start, end)
	require.NoError(t, err)
	assert.Equal(t, []queries.TimeRange{{Start: start.Add(time.Hour), End: start.Add(2 * time.Hour)}}, busy)
}
