package shared

import (
	"fitbook/internal/domain/booking"

	"github.com/google/uuid"
)

type CoachSnapshot struct {
	ID               uuid.UUID
	OwnerUserID      uuid.UUID
	DisplayName      string
	Active           bool
	PaymentEnabled   bool
	PaymentAccountID string
}

func (c *CoachSnapshot) Spec() booking.CoachSpec {
	return booking.CoachSpec{
		ID:               c.ID,
		OwnerUserID:      c.OwnerUserID,
		Active:           c.Active,
		PaymentEnabled:   c.PaymentEnabled,
		PaymentAccountID: c.PaymentAccountID,
	}
}

type PackageSnapshot struct {
	ID              uuid.UUID
	CoachID         uuid.UUID
	Title           string
	DurationMinutes int
	PriceMinor      int64
	Currency        string
	Active          bool
}

func (p *PackageSnapshot) Spec() booking.PackageSpec {
	return booking.PackageSpec{
		ID:              p.ID,
		CoachID:         p.CoachID,
		DurationMinutes: p.DurationMinutes,
		PriceMinor:      p.PriceMinor,
		Currency:        p.Currency,
		Active:          p.Active,
	}
}

type GatewayEventOutcome string

const (
	OutcomeApplied   GatewayEventOutcome = "applied"
	OutcomeDuplicate GatewayEventOutcome = "duplicate"
	OutcomeIgnored   GatewayEventOutcome = "ignored"
	OutcomeAnomaly   GatewayEventOutcome = "anomaly"
)

// GatewayEventRecord is the audit row kept for every verified notification.
type GatewayEventRecord struct {
	EventID          string
	Kind             string
	AuthorizationRef string
	Outcome          GatewayEventOutcome
	Detail           string

	// RefundCapture asks the reconciler to refund AuthorizationRef once the
	// transaction commits. Not persisted.
	RefundCapture bool
}
