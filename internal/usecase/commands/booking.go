package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fitbook/internal/domain/booking"
	"fitbook/internal/domain/payment"
	"fitbook/internal/domain/user"
	"fitbook/internal/infra"
	"fitbook/internal/infra/db"
	"fitbook/internal/pkg/clock"
	"fitbook/internal/pkg/errs"
	"fitbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// Notification job kinds written to the outbox.
const (
	JobBookingConfirmed = "booking_confirmed"
	JobBookingCancelled = "booking_cancelled"
	JobBookingRefunded  = "booking_refunded"
)

type CreateBookingRequest struct {
	CoachID   uuid.UUID
	PackageID uuid.UUID
	StartTime time.Time
}

type CreateBookingResult struct {
	BookingID            uuid.UUID
	AuthorizationRef     string
	PaymentAuthorization string
	Split                booking.Split
	Currency             string
	Description          string
}

type RescheduleBookingRequest struct {
	BookingID uuid.UUID
	StartTime time.Time
}

type CancelBookingResult struct {
	BookingID uuid.UUID
	Status    booking.Status
	Refunded  bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, actor user.Actor) (*CreateBookingResult, error)
	RescheduleBooking(ctx context.Context, req RescheduleBookingRequest, actor user.Actor) (*booking.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, reason *string) (*CancelBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  shared.PaymentGateway
	services *booking.Services
	clock    clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	gateway shared.PaymentGateway,
	feeCalculator *booking.FeeCalculator,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		services: &booking.Services{Clock: clk, FeeCalculator: feeCalculator},
		clock:    clk,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, actor user.Actor) (*CreateBookingResult, error) {
	if actor.IsZero() {
		return nil, ErrActorRequired
	}

	reads := uc.uow.CommandReads()
	coach, err := reads.CoachByID(ctx, req.CoachID)
	if err != nil {
		return nil, notFoundAs(err, ErrCoachNotFound)
	}
	pkg, err := reads.PackageByID(ctx, req.PackageID)
	if err != nil {
		return nil, notFoundAs(err, ErrPackageNotFound)
	}

	candidate, err := booking.NewBooking(uc.services, coach.Spec(), pkg.Spec(), actor.ID(), req.StartTime)
	if err != nil {
		return nil, classifyDomainErr(err)
	}

	var bk *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bk = candidate

		retry, err := tx.Bookings().LockUnauthorized(ctx, tx.DB(), actor.ID(), coach.ID, pkg.ID, candidate.TimeSlot())
		switch {
		case err == nil:
			bk = retry
			return nil
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		free, err := IsWindowFree(ctx, tx, coach.ID, candidate.TimeSlot(), nil)
		if err != nil {
			return err
		}
		if !free {
			return ErrSlotUnavailable
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), candidate); err != nil {
			if infra.IsKind(err, infra.KindExclusionViolation) {
				return ErrSlotUnavailable
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	split := bk.Split()
	auth, err := uc.gateway.Authorize(ctx, shared.AuthorizeParams{
		BookingID:          bk.ID(),
		Amount:             split.Total,
		PlatformFee:        split.PlatformFee,
		CoachPayout:        split.CoachPayout,
		Currency:           bk.Currency(),
		DestinationAccount: coach.PaymentAccountID,
	})
	if err != nil {
		slog.Warn("payment authorization failed, booking left pending",
			slog.String("booking_id", bk.ID().String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	stored := false
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Bookings().SetAuthorizationRef(ctx, tx.DB(), bk.ID(), auth.Ref)
		stored = ok
		return err
	})
	if err != nil || !stored {
		slog.Error("authorization reference not stored, reconciler will backfill",
			slog.String("booking_id", bk.ID().String()),
			slog.String("authorization_ref", auth.Ref),
			slog.Any("error", err),
		)
		if err != nil {
			return nil, errs.WithCause(ErrAuthorizationNotStored, err, "store authorization reference")
		}
		return nil, ErrAuthorizationNotStored
	}
	bk.AttachAuthorization(auth.Ref)

	return &CreateBookingResult{
		BookingID:            bk.ID(),
		AuthorizationRef:     auth.Ref,
		PaymentAuthorization: auth.ClientSecret,
		Split:                split,
		Currency:             bk.Currency(),
		Description:          pkg.Title + " with " + coach.DisplayName,
	}, nil
}

func (uc *bookingUseCaseImpl) RescheduleBooking(ctx context.Context, req RescheduleBookingRequest, actor user.Actor) (*booking.Booking, error) {
	if actor.IsZero() {
		return nil, ErrActorRequired
	}

	var bk *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		bk, err = tx.Bookings().LockByID(ctx, tx.DB(), req.BookingID)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}
		if err := uc.authorizeParticipant(ctx, tx.Reads(), bk, actor); err != nil {
			return err
		}
		if bk.Status().IsTerminal() {
			return ErrBookingTerminal
		}

		pkg, err := tx.Reads().PackageByID(ctx, bk.PackageID())
		if err != nil {
			return notFoundAs(err, ErrPackageNotFound)
		}
		if err := bk.Reschedule(req.StartTime, pkg.DurationMinutes, uc.clock.Now()); err != nil {
			return classifyDomainErr(err)
		}

		id := bk.ID()
		free, err := IsWindowFree(ctx, tx, bk.CoachID(), bk.TimeSlot(), &id)
		if err != nil {
			return err
		}
		if !free {
			return ErrSlotUnavailable
		}

		if err := tx.Bookings().UpdateSlot(ctx, tx.DB(), bk); err != nil {
			if infra.IsKind(err, infra.KindExclusionViolation) {
				return ErrSlotUnavailable
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bk, nil
}

// CancelBooking refunds a captured payment or simply cancels an unpaid booking.
// The processor is called between two transactions so no row lock is held
// across the network round trip.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, reason *string) (*CancelBookingResult, error) {
	if actor.IsZero() {
		return nil, ErrActorRequired
	}
	if err := booking.ValidateReason(reason); err != nil {
		return nil, classifyDomainErr(err)
	}

	var (
		result    *CancelBookingResult
		refundRef string
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, refundRef = nil, ""

		bk, err := tx.Bookings().LockByID(ctx, tx.DB(), bookingID)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}
		if err := uc.authorizeParticipant(ctx, tx.Reads(), bk, actor); err != nil {
			return err
		}
		if bk.Status().IsTerminal() {
			return ErrBookingTerminal
		}

		pay, err := tx.Payments().LockSucceededByBooking(ctx, tx.DB(), bk.ID())
		switch {
		case err == nil:
			refundRef = pay.AuthorizationRef()
			return nil
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		if err := bk.Cancel(uc.clock.Now(), reason); err != nil {
			return classifyDomainErr(err)
		}
		ok, err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bk, booking.SourcesFor(booking.StatusCancelled))
		if err != nil {
			return err
		}
		if !ok {
			return ErrStatusRaceLost
		}
		if err := enqueueBookingJob(ctx, tx, JobBookingCancelled, bk, uc.clock.Now()); err != nil {
			return err
		}
		result = &CancelBookingResult{BookingID: bk.ID(), Status: bk.Status(), Refunded: false}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result != nil {
		return result, nil
	}

	if _, err := uc.gateway.Refund(ctx, refundRef, reason); err != nil {
		slog.Warn("refund failed, booking left unchanged",
			slog.String("booking_id", bookingID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bk, err := tx.Bookings().LockByID(ctx, tx.DB(), bookingID)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}
		pay, err := tx.Payments().LockByAuthorizationRef(ctx, tx.DB(), refundRef)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if pay.Status() != payment.StatusRefunded {
			if err := pay.MarkRefunded(now); err != nil {
				return classifyDomainErr(err)
			}
			if err := tx.Payments().UpdateStatus(ctx, tx.DB(), pay); err != nil {
				return err
			}
		}

		// The refund notification may have landed first.
		if bk.Status() != booking.StatusRefunded {
			if err := bk.MarkRefunded(now, reason); err != nil {
				return classifyDomainErr(err)
			}
			ok, err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bk, booking.SourcesFor(booking.StatusRefunded))
			if err != nil {
				return err
			}
			if !ok {
				return ErrStatusRaceLost
			}
			if err := enqueueBookingJob(ctx, tx, JobBookingRefunded, bk, now); err != nil {
				return err
			}
			recalcSessions(ctx, tx, bk.CoachID())
		}

		result = &CancelBookingResult{BookingID: bk.ID(), Status: booking.StatusRefunded, Refunded: true}
		return nil
	})
	if err != nil {
		slog.Error("refund issued but not recorded, awaiting refund notification",
			slog.String("booking_id", bookingID.String()),
			slog.String("authorization_ref", refundRef),
			slog.Any("error", err),
		)
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) authorizeParticipant(ctx context.Context, reads shared.CommandReads, bk *booking.Booking, actor user.Actor) error {
	if actor.IsAdmin() || actor.ID() == bk.ClientID() {
		return nil
	}
	coach, err := reads.CoachByID(ctx, bk.CoachID())
	if err != nil {
		return notFoundAs(err, ErrCoachNotFound)
	}
	if !bk.IsParticipant(actor.ID(), coach.OwnerUserID) {
		return ErrNotParticipant
	}
	return nil
}

// IsWindowFree reports whether slot is clear of the coach's non-terminal bookings,
// ignoring excludeID.
func IsWindowFree(ctx context.Context, tx shared.Tx, coachID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	overlap, err := tx.Bookings().HasOverlap(ctx, tx.DB(), coachID, slot, excludeID)
	if err != nil {
		return false, err
	}
	return !overlap, nil
}

type bookingJobPayload struct {
	BookingID uuid.UUID `json:"bookingId"`
	CoachID   uuid.UUID `json:"coachId"`
	ClientID  uuid.UUID `json:"clientId"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func enqueueBookingJob(ctx context.Context, tx shared.Tx, kind string, bk *booking.Booking, now time.Time) error {
	payload, err := json.Marshal(bookingJobPayload{
		BookingID: bk.ID(),
		CoachID:   bk.CoachID(),
		ClientID:  bk.ClientID(),
		Status:    bk.Status().String(),
		StartTime: bk.TimeSlot().Start(),
		EndTime:   bk.TimeSlot().End(),
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, "booking."+bk.ID().String(), payload, now)
}

// recalcSessions refreshes the coach's session counter under a savepoint; a
// failure is logged and never aborts the enclosing transition.
func recalcSessions(ctx context.Context, tx shared.Tx, coachID uuid.UUID) {
	err := tx.BestEffort(ctx, func(ctx context.Context, conn db.DBTX) error {
		return tx.Coaches().RecalcSessionsCompleted(ctx, conn, coachID)
	})
	if err != nil {
		slog.Warn("coach session counter not refreshed",
			slog.String("coach_id", coachID.String()),
			slog.Any("error", err),
		)
	}
}
