//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitbook/internal/pkg/errs"
	"fitbook/internal/usecase/queries"
	"fitbook/tests/common/builder"
	queriesmock "fitbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_CheckWindow(t *testing.T) {
	ctx := context.Background()
	coachID := uuid.New()
	start := builder.DefaultNow.Add(24 * time.Hour)
	end := start.Add(2 * time.Hour)

	t.Run("success: window is free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockAvailabilityReadStore(ctrl)
		repo.EXPECT().ListBusy(ctx, coachID, start, end).Return(nil, nil)

		got, err := queries.NewAvailabilityQueries(repo).CheckWindow(ctx, coachID, start, end)
		require.NoError(t, err)
		assert.True(t, got.Free)
		assert.NotNil(t, got.Busy)
		assert.Empty(t, got.Busy)
	})

	t.Run("success: overlapping booking marks the window busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockAvailabilityReadStore(ctrl)
		busy := []queries.TimeRange{{Start: start.Add(-30 * time.Minute), End: start.Add(30 * time.Minute)}}
		repo.EXPECT().ListBusy(ctx, coachID, start, end).Return(busy, nil)

		got, err := queries.NewAvailabilityQueries(repo).CheckWindow(ctx, coachID, start, end)
		require.NoError(t, err)
		assert.False(t, got.Free)
		assert.Equal(t, busy, got.Busy)
	})

	for name, window := range map[string][2]time.Time{
		"error: end before start":  {end, start},
		"error: empty window":      {start, start},
		"error: window over limit": {start, start.Add(queries.MaxAvailabilityWindow + time.Minute)},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := queriesmock.NewMockAvailabilityReadStore(ctrl)

			_, err := queries.NewAvailabilityQueries(repo).CheckWindow(ctx, coachID, window[0], window[1])
			assert.True(t, errors.Is(err, queries.ErrInvalidWindow))
			assert.Equal(t, errs.ErrValidation, errs.Category(err))
		})
	}
}
