package commands

import (
	"errors"

	"fitbook/internal/domain/booking"
	"fitbook/internal/domain/payment"
	domreview "fitbook/internal/domain/review"
	"fitbook/internal/domain/user"
	"fitbook/internal/infra"
	"fitbook/internal/pkg/errs"
)

var (
	ErrCoachNotFound   = errs.Define("coach not found", errs.ErrNotFound)
	ErrPackageNotFound = errs.Define("package not found", errs.ErrNotFound)
	ErrBookingNotFound = errs.Define("booking not found", errs.ErrNotFound)

	ErrSlotUnavailable = errs.Define("time slot is no longer available", errs.ErrConflict)
	ErrBookingTerminal = errs.Define("booking can no longer be changed", errs.ErrConflict)
	ErrDuplicateReview = errs.Define("booking already has a review", errs.ErrConflict)
	ErrStatusRaceLost  = errs.Define("booking status changed concurrently", errs.ErrConflict)

	ErrNotParticipant = errs.Define("not a participant of this booking", errs.ErrAuth)
	ErrNotCoachOwner  = errs.Define("not the owner of this coach profile", errs.ErrAuth)
	ErrActorRequired  = errs.Define("authenticated actor required", errs.ErrAuth)

	ErrAuthorizationNotStored = errs.New("payment authorized but reference not stored")
)

// classifyDomainErr marks a domain error with the category the transport layer maps.
func classifyDomainErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, booking.ErrInvalidTimeSlot),
		errors.Is(err, booking.ErrStartNotInFuture),
		errors.Is(err, booking.ErrReasonTooLong),
		errors.Is(err, booking.ErrInvalidAmount),
		errors.Is(err, domreview.ErrInvalidRating),
		errors.Is(err, domreview.ErrTextTooLong):
		return errs.Mark(err, errs.ErrValidation)
	case errors.Is(err, booking.ErrCoachInactive),
		errors.Is(err, booking.ErrPackageUnavailable):
		return errs.Mark(err, errs.ErrNotFound)
	case errors.Is(err, booking.ErrSelfBooking),
		errors.Is(err, booking.ErrTerminalState),
		errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, domreview.ErrBookingNotEligible),
		errors.Is(err, payment.ErrAlreadyRefunded),
		errors.Is(err, payment.ErrNotRefundable):
		return errs.Mark(err, errs.ErrConflict)
	case errors.Is(err, booking.ErrPaymentSetupIncomplete):
		return errs.Mark(err, errs.ErrPaymentSetupIncomplete)
	case errors.Is(err, domreview.ErrNotBookingClient),
		errors.Is(err, user.ErrMissingActor):
		return errs.Mark(err, errs.ErrAuth)
	}
	return err
}

// notFoundAs swaps a repository NOT_FOUND for sentinel and passes anything else through.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
