//go:build unit || e2e

package builder

import (
	"context"
	"time"

	domreview "fitbook/internal/domain/review"
	reqdto "fitbook/internal/handler/dto/request"
	"fitbook/internal/pkg/clock"
	"fitbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ReviewerID uuid.UUID
	ClientID   uuid.UUID
	CoachID    uuid.UUID
	BookingID  uuid.UUID
	Completed  bool
	Rating     int
	Text       string
	CreatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	clientID := uuid.New()
	return &ReviewBuilder{
		ReviewerID: clientID,
		ClientID:   clientID,
		CoachID:    uuid.New(),
		BookingID:  uuid.New(),
		Completed:  true,
		Rating:     5,
		Text:       "Great session!",
		CreatedAt:  DefaultNow,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithBookingID(id uuid.UUID) *ReviewBuilder {
	r.BookingID = id
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithText(text string) *ReviewBuilder {
	r.Text = text
	return r
}

type staticFacts struct {
	facts domreview.BookingFacts
}

func (s staticFacts) BookingFacts(context.Context, uuid.UUID) (domreview.BookingFacts, error) {
	return s.facts, nil
}

func (r *ReviewBuilder) Services() *domreview.Services {
	return &domreview.Services{
		Clock: clock.NewMockClock(r.CreatedAt),
		EligibilityChecker: staticFacts{facts: domreview.BookingFacts{
			BookingID: r.BookingID,
			CoachID:   r.CoachID,
			ClientID:  r.ClientID,
			Completed: r.Completed,
		}},
	}
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	text, err := domreview.NewText(r.Text)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(context.Background(), r.Services(), r.ReviewerID, r.BookingID, rating, text)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Text:      r.Text,
	}
}

func (r *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	text := r.Text
	return &queries.ReviewView{
		ID:        uuid.New(),
		BookingID: r.BookingID,
		CoachID:   r.CoachID,
		ClientID:  r.ClientID,
		Rating:    r.Rating,
		Text:      &text,
		CreatedAt: r.CreatedAt,
	}
}
