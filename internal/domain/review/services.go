package review

import (
	"context"

	"fitbook/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock              clock.Clock
	EligibilityChecker EligibilityChecker
}

// BookingFacts is what the review rules need to know about the reviewed booking.
type BookingFacts struct {
	BookingID uuid.UUID
	CoachID   uuid.UUID
	ClientID  uuid.UUID
	Completed bool
}

type EligibilityChecker interface {
	BookingFacts(ctx context.Context, bookingID uuid.UUID) (BookingFacts, error)
}
