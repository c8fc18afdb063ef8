package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingReference = errors.New("authorization reference is required")
	ErrAlreadyRefunded  = errors.New("payment is already refunded")
	ErrNotRefundable    = errors.New("payment is not in a refundable state")
)

type Status string

const (
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
	StatusRefunded  Status = "REFUNDED"
)

func (s Status) String() string {
	return string(s)
}

// IsSticky reports whether a later failure notification must be ignored.
func (s Status) IsSticky() bool {
	return s == StatusSucceeded || s == StatusRefunded
}

type Payment struct {
	id               uuid.UUID
	bookingID        uuid.UUID
	authorizationRef string
	status           Status
	amount           int64
	platformFee      int64
	payout           int64
	currency         string
	paidAt           *time.Time
	rawPayload       []byte
	createdAt        time.Time
	updatedAt        time.Time
}

type SucceededParams struct {
	BookingID        uuid.UUID
	AuthorizationRef string
	Amount           int64
	PlatformFee      int64
	Payout           int64
	Currency         string
	RawPayload       []byte
}

// NewSucceeded is the only constructor: rows are created on the first success notification.
func NewSucceeded(p SucceededParams, now time.Time) (*Payment, error) {
	if p.AuthorizationRef == "" {
		return nil, ErrMissingReference
	}
	paidAt := now
	return &Payment{
		id:               uuid.New(),
		bookingID:        p.BookingID,
		authorizationRef: p.AuthorizationRef,
		status:           StatusSucceeded,
		amount:           p.Amount,
		platformFee:      p.PlatformFee,
		payout:           p.Payout,
		currency:         p.Currency,
		paidAt:           &paidAt,
		rawPayload:       p.RawPayload,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func Reconstruct(
	id, bookingID uuid.UUID,
	authorizationRef string,
	status Status,
	amount, platformFee, payout int64,
	currency string,
	paidAt *time.Time,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:               id,
		bookingID:        bookingID,
		authorizationRef: authorizationRef,
		status:           status,
		amount:           amount,
		platformFee:      platformFee,
		payout:           payout,
		currency:         currency,
		paidAt:           paidAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// MarkFailed returns false when the current status is sticky and the event must be ignored.
func (p *Payment) MarkFailed(now time.Time) bool {
	if p.status.IsSticky() || p.status == StatusFailed {
		return false
	}
	p.status = StatusFailed
	p.updatedAt = now
	return true
}

func (p *Payment) MarkRefunded(now time.Time) error {
	switch p.status {
	case StatusRefunded:
		return ErrAlreadyRefunded
	case StatusSucceeded:
		p.status = StatusRefunded
		p.updatedAt = now
		return nil
	default:
		return ErrNotRefundable
	}
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) BookingID() uuid.UUID     { return p.bookingID }
func (p *Payment) AuthorizationRef() string { return p.authorizationRef }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) Amount() int64            { return p.amount }
func (p *Payment) PlatformFee() int64       { return p.platformFee }
func (p *Payment) Payout() int64            { return p.payout }
func (p *Payment) Currency() string         { return p.currency }
func (p *Payment) PaidAt() *time.Time       { return p.paidAt }
func (p *Payment) RawPayload() []byte       { return p.rawPayload }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time     { return p.updatedAt }
