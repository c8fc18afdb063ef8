//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"fitbook/internal/domain/booking"
	"fitbook/internal/domain/user"
	"fitbook/internal/infra"
	"fitbook/internal/pkg/clock"
	"fitbook/internal/pkg/errs"
	"fitbook/internal/usecase/queries"
	"fitbook/tests/common/builder"
	queriesmock "fitbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFound() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

func actor(t *testing.T, id uuid.UUID, role user.Role) user.Actor {
	t.Helper()
	a, err := user.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	view := b.BuildView(booking.StatusConfirmed)
	view.CoachUserID = b.Coach.OwnerUserID

	testCases := []struct {
		name          string
		actor         user.Actor
		repoErr       error
		expectedError error
	}{
		{name: "success: client sees own booking", actor: actor(t, b.ClientID, user.RoleClient)},
		{name: "success: coach sees booking", actor: actor(t, b.Coach.OwnerUserID, user.RoleCoach)},
		{name: "success: admin sees any booking", actor: actor(t, uuid.New(), user.RoleAdmin)},
		{name: "error: stranger", actor: actor(t, uuid.New(), user.RoleClient), expectedError: queries.ErrBookingAccess},
		{name: "error: not found", actor: actor(t, b.ClientID, user.RoleClient), repoErr: notFound(), expectedError: queries.ErrBookingNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := queriesmock.NewMockBookingReadStore(ctrl)
			if tc.repoErr != nil {
				repo.EXPECT().FindByID(ctx, view.ID).Return(nil, tc.repoErr)
			} else {
				repo.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			}

			got, err := queries.NewBookingQueries(repo, clock.NewMockClock(b.Now)).GetByID(ctx, view.ID, tc.actor)
			if tc.expectedError != nil {
				assert.True(t, errors.Is(err, tc.expectedError), "expected [%v] but got [%v]", tc.expectedError, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestBookingQueries_ListForClient(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	client := actor(t, b.ClientID, user.RoleClient)

	t.Run("success: defaults and upcoming filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingReadStore(ctrl)
		items := []*queries.BookingView{b.BuildView(booking.StatusConfirmed)}

		repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c queries.BookingListCriteria) ([]*queries.BookingView, int64, error) {
			require.NotNil(t, c.ClientID)
			assert.Equal(t, b.ClientID, *c.ClientID)
			assert.Nil(t, c.CoachID)
			assert.Equal(t, int32(queries.DefaultBookingPageSize), c.Limit)
			assert.Equal(t, int32(0), c.Offset)
			require.NotNil(t, c.StartsFrom)
			assert.Equal(t, b.Now, *c.StartsFrom)
			assert.Equal(t, []string{"CONFIRMED"}, c.Statuses)
			return items, 1, nil
		})

		page, err := queries.NewBookingQueries(repo, clock.NewMockClock(b.Now)).
			ListForClient(ctx, client, queries.BookingFilters{Statuses: []string{"CONFIRMED"}, Upcoming: true})
		require.NoError(t, err)
		assert.Equal(t, items, page.Items)
		assert.Equal(t, int64(1), page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, queries.DefaultBookingPageSize, page.Limit)
	})

	t.Run("success: page offset and limit cap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingReadStore(ctrl)

		repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c queries.BookingListCriteria) ([]*queries.BookingView, int64, error) {
			assert.Equal(t, int32(queries.MaxBookingPageSize), c.Limit)
			assert.Equal(t, int32(2*queries.MaxBookingPageSize), c.Offset)
			assert.Nil(t, c.StartsFrom)
			return nil, 0, nil
		})

		_, err := queries.NewBookingQueries(repo, clock.NewMockClock(b.Now)).
			ListForClient(ctx, client, queries.BookingFilters{Page: 3, Limit: 1000})
		require.NoError(t, err)
	})

	t.Run("error: unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingReadStore(ctrl)

		_, err := queries.NewBookingQueries(repo, clock.NewMockClock(b.Now)).
			ListForClient(ctx, client, queries.BookingFilters{Statuses: []string{"LOST"}})
		assert.True(t, errors.Is(err, queries.ErrInvalidStatusFilter))
		assert.Equal(t, errs.ErrValidation, errs.Category(err))
	})
}

func TestBookingQueries_ListForCoach(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()

	t.Run("success: scoped to the caller's coach profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingReadStore(ctrl)

		repo.EXPECT().FindCoachIDByUser(ctx, b.Coach.OwnerUserID).Return(b.Coach.ID, nil)
		repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c queries.BookingListCriteria) ([]*queries.BookingView, int64, error) {
			require.NotNil(t, c.CoachID)
			assert.Equal(t, b.Coach.ID, *c.CoachID)
			assert.Nil(t, c.ClientID)
			return nil, 0, nil
		})

		page, err := queries.NewBookingQueries(repo, clock.NewMockClock(b.Now)).
			ListForCoach(ctx, actor(t, b.Coach.OwnerUserID, user.RoleCoach), queries.BookingFilters{})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("error: caller is not a coach", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingReadStore(ctrl)

		_, err := queries.NewBookingQueries(repo, clock.NewMockClock(b.Now)).
			ListForCoach(ctx, actor(t, b.ClientID, user.RoleClient), queries.BookingFilters{})
		assert.True(t, errors.Is(err, queries.ErrBookingAccess))
	})

	t.Run("error: coach profile missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingReadStore(ctrl)
		repo.EXPECT().FindCoachIDByUser(ctx, b.Coach.OwnerUserID).Return(uuid.Nil, notFound())

		_, err := queries.NewBookingQueries(repo, clock.NewMockClock(b.Now)).
			ListForCoach(ctx, actor(t, b.Coach.OwnerUserID, user.RoleCoach), queries.BookingFilters{})
		assert.True(t, errors.Is(err, queries.ErrCoachProfileNotFound))
	})
}

func TestNormalizePage(t *testing.T) {
	testCases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, queries.DefaultBookingPageSize},
		{-3, 5, 1, 5},
		{2, queries.MaxBookingPageSize + 1, 2, queries.MaxBookingPageSize},
	}
	for _, tc := range testCases {
		page, limit := queries.NormalizePage(tc.page, tc.limit)
		assert.Equal(t, tc.wantPage, page)
		assert.Equal(t, tc.wantLimit, limit)
	}
}
