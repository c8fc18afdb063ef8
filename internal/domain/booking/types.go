package booking

import (
	"errors"

	"fitbook/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot        = errors.New("invalid time slot")
	ErrStartNotInFuture       = errors.New("start time must be in the future")
	ErrCoachInactive          = errors.New("coach is not active")
	ErrPaymentSetupIncomplete = errors.New("coach cannot receive payments yet")
	ErrPackageUnavailable     = errors.New("package is not available for this coach")
	ErrSelfBooking            = errors.New("coach cannot book own package")
	ErrInvalidTransition      = errors.New("invalid booking status transition")
	ErrTerminalState          = errors.New("booking is already in a terminal state")
	ErrReasonTooLong          = errors.New("reason exceeds maximum length")
	ErrInvalidAmount          = errors.New("invalid amount")
)

const MaxReasonLength = 500

// CoachSpec is the read-only view of a coach needed to accept a booking.
type CoachSpec struct {
	ID               uuid.UUID
	OwnerUserID      uuid.UUID
	Active           bool
	PaymentEnabled   bool
	PaymentAccountID string
}

type PackageSpec struct {
	ID              uuid.UUID
	CoachID         uuid.UUID
	DurationMinutes int
	PriceMinor      int64
	Currency        string
	Active          bool
}

type Services struct {
	Clock         clock.Clock
	FeeCalculator *FeeCalculator
}
