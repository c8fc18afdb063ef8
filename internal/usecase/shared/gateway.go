package shared

import (
	"context"

	"fitbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrGatewayUnavailable = errs.Define("payment gateway unavailable", errs.ErrGateway)
	ErrGatewayRejected    = errs.Define("payment gateway rejected the request", errs.ErrGateway)
	ErrInvalidSignature   = errs.Define("invalid payment notification signature", errs.ErrAuth)
	ErrMalformedEvent     = errs.Define("malformed payment notification", errs.ErrValidation)
)

// PaymentGateway is the narrow view of the external payment processor.
// All amounts are integer minor currency units.
type PaymentGateway interface {
	Authorize(ctx context.Context, params AuthorizeParams) (*Authorization, error)
	Refund(ctx context.Context, authorizationRef string, reason *string) (string, error)
	VerifyAndParseEvent(payload []byte, signature string) (*GatewayEvent, error)
	AccountCapabilities(ctx context.Context, accountID string) (*AccountCapabilities, error)
}

type AuthorizeParams struct {
	BookingID          uuid.UUID
	Amount             int64
	PlatformFee        int64
	CoachPayout        int64
	Currency           string
	DestinationAccount string
}

type Authorization struct {
	Ref string
	// ClientSecret lets the client confirm the payment directly with the processor.
	ClientSecret string
}

type AccountCapabilities struct {
	ChargesEnabled bool
	PayoutsEnabled bool
}

func (c AccountCapabilities) PaymentEnabled() bool {
	return c.ChargesEnabled && c.PayoutsEnabled
}

type GatewayEventKind string

const (
	EventAuthorizationSucceeded GatewayEventKind = "authorization_succeeded"
	EventAuthorizationFailed    GatewayEventKind = "authorization_failed"
	EventRefundCompleted        GatewayEventKind = "refund_completed"
	EventAccountUpdated         GatewayEventKind = "account_updated"
	EventUnknown                GatewayEventKind = "unknown"
)

type GatewayEvent struct {
	ID      string
	Kind    GatewayEventKind
	RawType string

	AuthorizationRef string
	BookingID        *uuid.UUID
	Amount           int64
	PlatformFee      *int64
	CoachPayout      *int64
	Currency         string

	AccountID    string
	Capabilities AccountCapabilities

	Payload []byte
}
