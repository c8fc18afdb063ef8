package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id               uuid.UUID
	coachID          uuid.UUID
	clientID         uuid.UUID
	packageID        uuid.UUID
	timeSlot         TimeSlot
	status           Status
	split            Split
	currency         string
	authorizationRef *string
	cancelledAt      *time.Time
	cancelReason     *string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewBooking validates a booking request against the coach and package and
// returns it in PENDING_PAYMENT with the money split already computed.
func NewBooking(
	services *Services,
	coach CoachSpec,
	pkg PackageSpec,
	clientID uuid.UUID,
	start time.Time,
) (*Booking, error) {
	now := services.Clock.Now()

	slot, err := SlotForDuration(start, pkg.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if !slot.StartsAfter(now) {
		return nil, ErrStartNotInFuture
	}
	if !coach.Active {
		return nil, ErrCoachInactive
	}
	if !pkg.Active || pkg.CoachID != coach.ID {
		return nil, ErrPackageUnavailable
	}
	if clientID == coach.OwnerUserID {
		return nil, ErrSelfBooking
	}
	if !coach.PaymentEnabled || coach.PaymentAccountID == "" {
		return nil, ErrPaymentSetupIncomplete
	}

	split, err := services.FeeCalculator.Calculate(pkg.PriceMinor)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:        uuid.New(),
		coachID:   coach.ID,
		clientID:  clientID,
		packageID: pkg.ID,
		timeSlot:  slot,
		status:    StatusPendingPayment,
		split:     split,
		currency:  strings.ToLower(pkg.Currency),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(
	id, coachID, clientID, packageID uuid.UUID,
	timeSlot TimeSlot,
	status Status,
	split Split,
	currency string,
	authorizationRef *string,
	cancelledAt *time.Time,
	cancelReason *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		coachID:          coachID,
		clientID:         clientID,
		packageID:        packageID,
		timeSlot:         timeSlot,
		status:           status,
		split:            split,
		currency:         currency,
		authorizationRef: authorizationRef,
		cancelledAt:      cancelledAt,
		cancelReason:     cancelReason,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (b *Booking) transition(next Status, now time.Time) error {
	if b.status.IsTerminal() {
		return ErrTerminalState
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) Confirm(now time.Time) error {
	return b.transition(StatusConfirmed, now)
}

func (b *Booking) Cancel(now time.Time, reason *string) error {
	if err := ValidateReason(reason); err != nil {
		return err
	}
	if err := b.transition(StatusCancelled, now); err != nil {
		return err
	}
	b.cancelledAt = &now
	b.cancelReason = reason
	return nil
}

func (b *Booking) MarkRefunded(now time.Time, reason *string) error {
	if err := ValidateReason(reason); err != nil {
		return err
	}
	if err := b.transition(StatusRefunded, now); err != nil {
		return err
	}
	b.cancelledAt = &now
	if reason != nil {
		b.cancelReason = reason
	}
	return nil
}

// Reschedule moves a live booking to a new slot of the same length. Status is kept.
func (b *Booking) Reschedule(start time.Time, durationMinutes int, now time.Time) error {
	if b.status.IsTerminal() {
		return ErrTerminalState
	}
	slot, err := SlotForDuration(start, durationMinutes)
	if err != nil {
		return err
	}
	if !slot.StartsAfter(now) {
		return ErrStartNotInFuture
	}
	b.timeSlot = slot
	b.updatedAt = now
	return nil
}

func (b *Booking) AttachAuthorization(ref string) {
	b.authorizationRef = &ref
}

func (b *Booking) IsParticipant(userID, coachOwnerID uuid.UUID) bool {
	return userID == b.clientID || userID == coachOwnerID
}

func ValidateReason(reason *string) error {
	if reason != nil && len([]rune(*reason)) > MaxReasonLength {
		return ErrReasonTooLong
	}
	return nil
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) CoachID() uuid.UUID        { return b.coachID }
func (b *Booking) ClientID() uuid.UUID       { return b.clientID }
func (b *Booking) PackageID() uuid.UUID      { return b.packageID }
func (b *Booking) TimeSlot() TimeSlot        { return b.timeSlot }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) Split() Split              { return b.split }
func (b *Booking) Currency() string          { return b.currency }
func (b *Booking) AuthorizationRef() *string { return b.authorizationRef }
func (b *Booking) CancelledAt() *time.Time   { return b.cancelledAt }
func (b *Booking) CancelReason() *string     { return b.cancelReason }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
