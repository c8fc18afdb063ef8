package review

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id        uuid.UUID
	bookingID uuid.UUID
	coachID   uuid.UUID
	clientID  uuid.UUID
	rating    Rating
	text      Text
	createdAt time.Time
}

// NewReview enforces that only the client of a completed booking may review it.
func NewReview(ctx context.Context, services *Services, clientID, bookingID uuid.UUID, rating Rating, text Text) (*Review, error) {
	facts, err := services.EligibilityChecker.BookingFacts(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if facts.ClientID != clientID {
		return nil, ErrNotBookingClient
	}
	if !facts.Completed {
		return nil, ErrBookingNotEligible
	}

	return &Review{
		id:        uuid.New(),
		bookingID: bookingID,
		coachID:   facts.CoachID,
		clientID:  clientID,
		rating:    rating,
		text:      text,
		createdAt: services.Clock.Now(),
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) CoachID() uuid.UUID   { return r.coachID }
func (r *Review) ClientID() uuid.UUID  { return r.clientID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Text() Text           { return r.text }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

// AverageRating rounds to one decimal place, half away from zero.
func AverageRating(sum, count int64) float64 {
	if count == 0 {
		return 0
	}
	tenths := (sum*100/count + 5) / 10
	return float64(tenths) / 10
}
