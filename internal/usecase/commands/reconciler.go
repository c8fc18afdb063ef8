package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fitbook/internal/domain/booking"
	"fitbook/internal/domain/payment"
	"fitbook/internal/infra"
	"fitbook/internal/pkg/clock"
	"fitbook/internal/pkg/ptr"
	"fitbook/internal/usecase/shared"
)

const strayCaptureReason = "capture without a live booking"

// PaymentReconciler applies verified processor notifications to local state.
// Every notification may arrive late, twice, or out of order.
type PaymentReconciler interface {
	HandleGatewayEvent(ctx context.Context, payload []byte, signature string) error
}

type reconcilerImpl struct {
	uow     shared.UnitOfWork
	gateway shared.PaymentGateway
	clock   clock.Clock
}

func NewPaymentReconciler(uow shared.UnitOfWork, gateway shared.PaymentGateway, clk clock.Clock) PaymentReconciler {
	return &reconcilerImpl{uow: uow, gateway: gateway, clock: clk}
}

func (r *reconcilerImpl) HandleGatewayEvent(ctx context.Context, payload []byte, signature string) error {
	ev, err := r.gateway.VerifyAndParseEvent(payload, signature)
	if err != nil {
		return err
	}

	logger := slog.With(
		slog.String("event_id", ev.ID),
		slog.String("event_type", ev.RawType),
	)

	var apply func(context.Context, shared.Tx, *shared.GatewayEvent) (shared.GatewayEventRecord, error)
	switch ev.Kind {
	case shared.EventAuthorizationSucceeded:
		apply = r.applySucceeded
	case shared.EventAuthorizationFailed:
		apply = r.applyFailed
	case shared.EventRefundCompleted:
		apply = r.applyRefunded
	case shared.EventAccountUpdated:
		apply = r.applyAccountUpdated
	default:
		logger.Debug("ignoring unhandled payment notification")
		return nil
	}

	var outcome shared.GatewayEventRecord
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := apply(ctx, tx, ev)
		if err != nil {
			return err
		}
		outcome = rec
		return tx.GatewayEvents().Record(ctx, tx.DB(), rec)
	})
	if err != nil {
		logger.Error("payment notification not applied", slog.Any("error", err))
		return err
	}

	if outcome.RefundCapture {
		if err := r.refundStrayCapture(ctx, ev.AuthorizationRef); err != nil {
			// The processor redelivers on error; the redelivery finds the payment and retries.
			logger.Error("refund of stray capture failed", slog.Any("error", err))
			return err
		}
		logger.Warn("stray capture refunded",
			slog.String("authorization_ref", outcome.AuthorizationRef),
			slog.String("detail", outcome.Detail),
		)
		return nil
	}

	switch outcome.Outcome {
	case shared.OutcomeAnomaly:
		logger.Warn("payment notification anomaly",
			slog.String("authorization_ref", outcome.AuthorizationRef),
			slog.String("detail", outcome.Detail),
		)
	default:
		logger.Info("payment notification handled",
			slog.String("outcome", string(outcome.Outcome)),
			slog.String("authorization_ref", outcome.AuthorizationRef),
		)
	}
	return nil
}

// refundStrayCapture returns money captured against a booking that can no longer
// use it. The gateway refund is keyed by the reference, so repeats are harmless.
func (r *reconcilerImpl) refundStrayCapture(ctx context.Context, ref string) error {
	if _, err := r.gateway.Refund(ctx, ref, ptr.Of(strayCaptureReason)); err != nil {
		return err
	}
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pay, err := tx.Payments().LockByAuthorizationRef(ctx, tx.DB(), ref)
		if err != nil {
			return err
		}
		if pay.Status() != payment.StatusSucceeded {
			return nil
		}
		if err := pay.MarkRefunded(r.clock.Now()); err != nil {
			return classifyDomainErr(err)
		}
		return tx.Payments().UpdateStatus(ctx, tx.DB(), pay)
	})
}

// isStrayCapture reports whether a succeeded payment does not pay for its booking:
// the booking was cancelled without a charge, or it is linked to another authorization.
func isStrayCapture(bk *booking.Booking, pay *payment.Payment) bool {
	if pay.Status() != payment.StatusSucceeded {
		return false
	}
	if ref := bk.AuthorizationRef(); ref != nil && *ref != pay.AuthorizationRef() {
		return true
	}
	return bk.Status() == booking.StatusCancelled
}

func refundRecord(ev *shared.GatewayEvent, detail string) shared.GatewayEventRecord {
	rec := record(ev, shared.OutcomeAnomaly, detail)
	rec.RefundCapture = true
	return rec
}

func record(ev *shared.GatewayEvent, outcome shared.GatewayEventOutcome, detail string) shared.GatewayEventRecord {
	return shared.GatewayEventRecord{
		EventID:          ev.ID,
		Kind:             string(ev.Kind),
		AuthorizationRef: ev.AuthorizationRef,
		Outcome:          outcome,
		Detail:           detail,
	}
}

// lockEventBooking resolves the booking named in the notification metadata,
// falling back to the stored authorization reference.
func lockEventBooking(ctx context.Context, tx shared.Tx, ev *shared.GatewayEvent) (*booking.Booking, error) {
	if ev.BookingID != nil {
		bk, err := tx.Bookings().LockByID(ctx, tx.DB(), *ev.BookingID)
		if err == nil || !infra.IsKind(err, infra.KindNotFound) {
			return bk, err
		}
	}
	return tx.Bookings().LockByAuthorizationRef(ctx, tx.DB(), ev.AuthorizationRef)
}

func (r *reconcilerImpl) applySucceeded(ctx context.Context, tx shared.Tx, ev *shared.GatewayEvent) (shared.GatewayEventRecord, error) {
	bk, err := lockEventBooking(ctx, tx, ev)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return record(ev, shared.OutcomeAnomaly, "booking not found for authorization"), nil
		}
		return shared.GatewayEventRecord{}, err
	}

	existing, err := tx.Payments().LockByAuthorizationRef(ctx, tx.DB(), ev.AuthorizationRef)
	switch {
	case err == nil && isStrayCapture(bk, existing):
		return refundRecord(ev, fmt.Sprintf("retrying refund of capture for %s booking", bk.Status())), nil
	case err == nil:
		return record(ev, shared.OutcomeDuplicate, ""), nil
	case !infra.IsKind(err, infra.KindNotFound):
		return shared.GatewayEventRecord{}, err
	}

	now := r.clock.Now()
	split := bk.Split()
	currency := ev.Currency
	if currency == "" {
		currency = bk.Currency()
	}
	pay, err := payment.NewSucceeded(payment.SucceededParams{
		BookingID:        bk.ID(),
		AuthorizationRef: ev.AuthorizationRef,
		Amount:           ev.Amount,
		PlatformFee:      ptr.Deref(ev.PlatformFee, split.PlatformFee),
		Payout:           ptr.Deref(ev.CoachPayout, split.CoachPayout),
		Currency:         currency,
		RawPayload:       ev.Payload,
	}, now)
	if err != nil {
		return shared.GatewayEventRecord{}, classifyDomainErr(err)
	}

	// A concurrent delivery may have inserted between the lookup and here.
	inserted, err := tx.Payments().Insert(ctx, tx.DB(), pay)
	if err != nil {
		return shared.GatewayEventRecord{}, err
	}
	if !inserted {
		return record(ev, shared.OutcomeDuplicate, ""), nil
	}

	detail := ""
	if ref := bk.AuthorizationRef(); ref == nil {
		ok, err := tx.Bookings().SetAuthorizationRef(ctx, tx.DB(), bk.ID(), ev.AuthorizationRef)
		if err != nil {
			return shared.GatewayEventRecord{}, err
		}
		if ok {
			bk.AttachAuthorization(ev.AuthorizationRef)
		}
	} else if *ref != ev.AuthorizationRef {
		detail = fmt.Sprintf("booking linked to authorization %s", *ref)
	}

	switch bk.Status() {
	case booking.StatusPendingPayment:
		if err := bk.Confirm(now); err != nil {
			return shared.GatewayEventRecord{}, classifyDomainErr(err)
		}
		ok, err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bk, booking.SourcesFor(booking.StatusConfirmed))
		if err != nil {
			return shared.GatewayEventRecord{}, err
		}
		if !ok {
			return shared.GatewayEventRecord{}, ErrStatusRaceLost
		}
		if err := enqueueBookingJob(ctx, tx, JobBookingConfirmed, bk, now); err != nil {
			return shared.GatewayEventRecord{}, err
		}
		recalcSessions(ctx, tx, bk.CoachID())
		if detail != "" {
			return record(ev, shared.OutcomeAnomaly, detail), nil
		}
		return record(ev, shared.OutcomeApplied, ""), nil

	case booking.StatusConfirmed:
		return refundRecord(ev, "second successful payment for a confirmed booking"), nil

	default:
		return refundRecord(ev, fmt.Sprintf("payment captured for %s booking", bk.Status())), nil
	}
}

// applyFailed never creates a payment row and never touches the booking.
func (r *reconcilerImpl) applyFailed(ctx context.Context, tx shared.Tx, ev *shared.GatewayEvent) (shared.GatewayEventRecord, error) {
	pay, err := tx.Payments().LockByAuthorizationRef(ctx, tx.DB(), ev.AuthorizationRef)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return record(ev, shared.OutcomeIgnored, "no payment recorded for authorization"), nil
		}
		return shared.GatewayEventRecord{}, err
	}

	if !pay.MarkFailed(r.clock.Now()) {
		return record(ev, shared.OutcomeIgnored, fmt.Sprintf("payment already %s", pay.Status())), nil
	}
	if err := tx.Payments().UpdateStatus(ctx, tx.DB(), pay); err != nil {
		return shared.GatewayEventRecord{}, err
	}
	return record(ev, shared.OutcomeApplied, ""), nil
}

func (r *reconcilerImpl) applyRefunded(ctx context.Context, tx shared.Tx, ev *shared.GatewayEvent) (shared.GatewayEventRecord, error) {
	bk, err := lockEventBooking(ctx, tx, ev)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return shared.GatewayEventRecord{}, err
	}

	pay, err := tx.Payments().LockByAuthorizationRef(ctx, tx.DB(), ev.AuthorizationRef)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return record(ev, shared.OutcomeAnomaly, "refund for unknown payment"), nil
		}
		return shared.GatewayEventRecord{}, err
	}
	if pay.Status() == payment.StatusRefunded {
		return record(ev, shared.OutcomeDuplicate, ""), nil
	}
	if bk == nil || bk.ID() != pay.BookingID() {
		if bk, err = tx.Bookings().LockByID(ctx, tx.DB(), pay.BookingID()); err != nil {
			return shared.GatewayEventRecord{}, err
		}
	}

	stray := isStrayCapture(bk, pay)
	now := r.clock.Now()
	if err := pay.MarkRefunded(now); err != nil {
		return record(ev, shared.OutcomeAnomaly, err.Error()), nil
	}
	if err := tx.Payments().UpdateStatus(ctx, tx.DB(), pay); err != nil {
		return shared.GatewayEventRecord{}, err
	}

	switch {
	case stray:
		return record(ev, shared.OutcomeApplied, fmt.Sprintf("stray capture refunded, booking stays %s", bk.Status())), nil
	case bk.Status() == booking.StatusRefunded:
		return record(ev, shared.OutcomeApplied, ""), nil
	case !bk.Status().CanTransitionTo(booking.StatusRefunded):
		return record(ev, shared.OutcomeAnomaly, fmt.Sprintf("refund for %s booking", bk.Status())), nil
	}

	if err := bk.MarkRefunded(now, nil); err != nil {
		return shared.GatewayEventRecord{}, classifyDomainErr(err)
	}
	ok, err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bk, booking.SourcesFor(booking.StatusRefunded))
	if err != nil {
		return shared.GatewayEventRecord{}, err
	}
	if !ok {
		return shared.GatewayEventRecord{}, ErrStatusRaceLost
	}
	if err := enqueueBookingJob(ctx, tx, JobBookingRefunded, bk, now); err != nil {
		return shared.GatewayEventRecord{}, err
	}
	recalcSessions(ctx, tx, bk.CoachID())
	return record(ev, shared.OutcomeApplied, ""), nil
}

func (r *reconcilerImpl) applyAccountUpdated(ctx context.Context, tx shared.Tx, ev *shared.GatewayEvent) (shared.GatewayEventRecord, error) {
	changed, err := tx.Coaches().SetPaymentEnabled(ctx, tx.DB(), ev.AccountID, ev.Capabilities.PaymentEnabled())
	if err != nil {
		return shared.GatewayEventRecord{}, err
	}
	if !changed {
		return record(ev, shared.OutcomeDuplicate, "payment flag unchanged"), nil
	}
	return record(ev, shared.OutcomeApplied, fmt.Sprintf("account %s payment enabled=%t", ev.AccountID, ev.Capabilities.PaymentEnabled())), nil
}
