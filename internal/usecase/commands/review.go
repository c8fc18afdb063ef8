package commands

import (
	"context"

	"fitbook/internal/domain/booking"
	domreview "fitbook/internal/domain/review"
	"fitbook/internal/domain/user"
	"fitbook/internal/infra"
	"fitbook/internal/pkg/clock"
	"fitbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewResult struct {
	ReviewID uuid.UUID
	CoachID  uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, actor user.Actor) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

type CreateReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Text      string
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, actor user.Actor) (*CreateReviewResult, error) {
	if actor.IsZero() {
		return nil, ErrActorRequired
	}
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return nil, classifyDomainErr(err)
	}
	text, err := domreview.NewText(req.Text)
	if err != nil {
		return nil, classifyDomainErr(err)
	}

	var result *CreateReviewResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		services := &domreview.Services{
			Clock:              uc.clock,
			EligibilityChecker: bookingFacts{reads: tx.Reads()},
		}
		rev, derr := domreview.NewReview(ctx, services, actor.ID(), req.BookingID, rating, text)
		if derr != nil {
			return classifyDomainErr(derr)
		}

		if derr = tx.Reviews().Create(ctx, tx.DB(), rev); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return derr
		}
		result = &CreateReviewResult{ReviewID: rev.ID(), CoachID: rev.CoachID()}
		return tx.RatingStats().RecalcCoachRatingStats(ctx, tx.DB(), rev.CoachID())
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// bookingFacts answers review eligibility from the write side.
type bookingFacts struct {
	reads shared.CommandReads
}

func (f bookingFacts) BookingFacts(ctx context.Context, bookingID uuid.UUID) (domreview.BookingFacts, error) {
	bk, err := f.reads.BookingByID(ctx, bookingID)
	if err != nil {
		return domreview.BookingFacts{}, notFoundAs(err, ErrBookingNotFound)
	}
	return domreview.BookingFacts{
		BookingID: bk.ID(),
		CoachID:   bk.CoachID(),
		ClientID:  bk.ClientID(),
		Completed: bk.Status() == booking.StatusCompleted,
	}, nil
}
