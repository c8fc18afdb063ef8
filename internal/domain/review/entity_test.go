//go:build unit

package review_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fitbook/internal/domain/review"
	"fitbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReviewBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.CoachID, actual.CoachID())
		assert.Equal(t, b.BookingID, actual.BookingID())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Great session!", actual.Text().String())
		assert.False(t, actual.CreatedAt().IsZero())
	})

	t.Run("eligibility", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "booking not completed",
				mutate: func(b *builder.ReviewBuilder) { b.Completed = false },
				errIs:  review.ErrBookingNotEligible,
			},
			{
				name:   "someone else's booking",
				mutate: func(b *builder.ReviewBuilder) { b.ReviewerID = uuid.New() },
				errIs:  review.ErrNotBookingClient,
			},
			{
				name:   "text is optional",
				mutate: func(b *builder.ReviewBuilder) { b.Text = "" },
			},
			{
				name:   "text at maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.Text = strings.Repeat("a", review.MaxTextLength) },
			},
		})
	})

	t.Run("lookup failure is returned as is", func(t *testing.T) {
		boom := errors.New("boom")
		b := builder.NewReviewBuilder()
		services := b.Services()
		services.EligibilityChecker = failingChecker{err: boom}
		_, err := review.NewReview(context.Background(), services, b.ReviewerID, b.BookingID, review.Rating{}, review.Text{})
		assert.ErrorIs(t, err, boom)
	})
}

func TestValueObjects(t *testing.T) {
	for _, v := range []int{0, 6, -1} {
		_, err := review.NewRating(v)
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	}
	for _, v := range []int{1, 5} {
		r, err := review.NewRating(v)
		require.NoError(t, err)
		assert.Equal(t, v, r.Value())
	}

	_, err := review.NewText(strings.Repeat("é", review.MaxTextLength+1))
	assert.ErrorIs(t, err, review.ErrTextTooLong)

	txt, err := review.NewText("   ")
	require.NoError(t, err)
	assert.True(t, txt.IsEmpty())
	assert.Nil(t, txt.Ptr())

	txt, err = review.NewText("  trimmed  ")
	require.NoError(t, err)
	assert.Equal(t, "trimmed", txt.String())
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, review.AverageRating(0, 0))
	assert.Equal(t, 4.5, review.AverageRating(9, 2))
	assert.Equal(t, 4.7, review.AverageRating(14, 3))
	assert.Equal(t, 4.3, review.AverageRating(13, 3))
	assert.Equal(t, 5.0, review.AverageRating(5, 1))
}

type failingChecker struct{ err error }

func (f failingChecker) BookingFacts(context.Context, uuid.UUID) (review.BookingFacts, error) {
	return review.BookingFacts{}, f.err
}
