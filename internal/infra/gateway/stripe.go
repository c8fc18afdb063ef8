package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fitbook/internal/pkg/config"
	"fitbook/internal/pkg/errs"
	"fitbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	metaBookingID   = "bookingId"
	metaPlatformFee = "platformFee"
	metaCoachPayout = "coachPayout"
)

// Stripe event types the reconciler understands.
const (
	eventPaymentIntentSucceeded = "payment_intent.succeeded"
	eventPaymentIntentFailed    = "payment_intent.payment_failed"
	eventChargeRefunded         = "charge.refunded"
	eventAccountUpdated         = "account.updated"
)

type StripeGateway struct {
	api           *client.API
	webhookSecret string
	timeout       time.Duration
}

func NewStripeGateway(cfg config.PaymentConfig, logger *slog.Logger) *StripeGateway {
	httpClient := &http.Client{Timeout: cfg.GatewayTimeout}
	backend := func(kind stripe.SupportedBackend) stripe.Backend {
		bc := &stripe.BackendConfig{
			HTTPClient:        httpClient,
			LeveledLogger:     &leveledLogger{logger: logger},
			MaxNetworkRetries: stripe.Int64(1),
		}
		if cfg.StripeAPIURL != "" {
			bc.URL = stripe.String(cfg.StripeAPIURL)
		}
		return stripe.GetBackendWithConfig(kind, bc)
	}

	api := client.New(cfg.StripeSecretKey, &stripe.Backends{
		API:     backend(stripe.APIBackend),
		Connect: backend(stripe.ConnectBackend),
		Uploads: backend(stripe.UploadsBackend),
	})

	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.StripeWebhookSecret,
		timeout:       cfg.GatewayTimeout,
	}
}

// Authorize creates a destination charge: the coach account receives
// Amount - PlatformFee and the platform keeps the application fee.
func (g *StripeGateway) Authorize(ctx context.Context, p shared.AuthorizeParams) (*shared.Authorization, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:               stripe.Int64(p.Amount),
		Currency:             stripe.String(p.Currency),
		ApplicationFeeAmount: stripe.Int64(p.PlatformFee),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(p.DestinationAccount),
		},
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey("booking-" + p.BookingID.String())
	params.AddMetadata(metaBookingID, p.BookingID.String())
	params.AddMetadata(metaPlatformFee, strconv.FormatInt(p.PlatformFee, 10))
	params.AddMetadata(metaCoachPayout, strconv.FormatInt(p.CoachPayout, 10))

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, classify(err, "authorize payment")
	}

	return &shared.Authorization{Ref: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *StripeGateway) Refund(ctx context.Context, authorizationRef string, reason *string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(authorizationRef),
		Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	params.Context = ctx
	params.SetIdempotencyKey("refund-" + authorizationRef)
	if reason != nil && *reason != "" {
		params.AddMetadata("reason", *reason)
	}

	r, err := g.api.Refunds.New(params)
	if err != nil {
		return "", classify(err, "refund payment")
	}
	return r.ID, nil
}

func (g *StripeGateway) AccountCapabilities(ctx context.Context, accountID string) (*shared.AccountCapabilities, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := g.api.Accounts.GetByID(accountID, params)
	if err != nil {
		return nil, classify(err, "get account")
	}
	return &shared.AccountCapabilities{
		ChargesEnabled: acct.ChargesEnabled,
		PayoutsEnabled: acct.PayoutsEnabled,
	}, nil
}

func (g *StripeGateway) VerifyAndParseEvent(payload []byte, signature string) (*shared.GatewayEvent, error) {
	if signature == "" {
		return nil, errs.Wrap(shared.ErrInvalidSignature, "missing signature header")
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.WithCause(shared.ErrInvalidSignature, err, "verify webhook")
	}

	return parseEvent(event, payload)
}

func parseEvent(event stripe.Event, payload []byte) (*shared.GatewayEvent, error) {
	out := &shared.GatewayEvent{
		ID:      event.ID,
		Kind:    shared.EventUnknown,
		RawType: string(event.Type),
		Payload: payload,
	}
	if event.Data == nil {
		return out, nil
	}

	switch string(event.Type) {
	case eventPaymentIntentSucceeded, eventPaymentIntentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, errs.WithCause(shared.ErrMalformedEvent, err, "decode payment intent")
		}
		out.Kind = shared.EventAuthorizationSucceeded
		if string(event.Type) == eventPaymentIntentFailed {
			out.Kind = shared.EventAuthorizationFailed
		}
		out.AuthorizationRef = pi.ID
		out.Amount = pi.Amount
		out.Currency = strings.ToLower(string(pi.Currency))
		applyMetadata(out, pi.Metadata)

	case eventChargeRefunded:
		var ch stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &ch); err != nil {
			return nil, errs.WithCause(shared.ErrMalformedEvent, err, "decode charge")
		}
		// Partial refunds fire the same event; only a fully refunded charge settles the payment.
		if ch.PaymentIntent == nil || ch.PaymentIntent.ID == "" || !ch.Refunded {
			return out, nil
		}
		out.Kind = shared.EventRefundCompleted
		out.AuthorizationRef = ch.PaymentIntent.ID
		out.Amount = ch.AmountRefunded
		out.Currency = strings.ToLower(string(ch.Currency))
		applyMetadata(out, ch.Metadata)

	case eventAccountUpdated:
		var acct stripe.Account
		if err := json.Unmarshal(event.Data.Raw, &acct); err != nil {
			return nil, errs.WithCause(shared.ErrMalformedEvent, err, "decode account")
		}
		out.Kind = shared.EventAccountUpdated
		out.AccountID = acct.ID
		out.Capabilities = shared.AccountCapabilities{
			ChargesEnabled: acct.ChargesEnabled,
			PayoutsEnabled: acct.PayoutsEnabled,
		}
	}

	return out, nil
}

func applyMetadata(out *shared.GatewayEvent, md map[string]string) {
	if v, ok := md[metaBookingID]; ok {
		if id, err := uuid.Parse(v); err == nil {
			out.BookingID = &id
		}
	}
	if v, ok := md[metaPlatformFee]; ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			out.PlatformFee = &n
		}
	}
	if v, ok := md[metaCoachPayout]; ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			out.CoachPayout = &n
		}
	}
}

// classify separates requests the processor refused from transport failures and timeouts.
func classify(err error, op string) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		if se.HTTPStatusCode >= 400 && se.HTTPStatusCode < 500 && se.HTTPStatusCode != http.StatusTooManyRequests {
			return errs.WithCause(shared.ErrGatewayRejected, err, fmt.Sprintf("%s: %s", op, se.Msg))
		}
	}
	return errs.WithCause(shared.ErrGatewayUnavailable, err, op)
}

type leveledLogger struct {
	logger *slog.Logger
}

func (l *leveledLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *leveledLogger) Infof(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *leveledLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *leveledLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}
