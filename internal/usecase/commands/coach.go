package commands

import (
	"context"
	"log/slog"

	"fitbook/internal/domain/user"
	"fitbook/internal/pkg/errs"
	"fitbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type RefreshPaymentStatusResult struct {
	PaymentEnabled bool
	Changed        bool
}

type CoachCommands interface {
	RefreshPaymentStatus(ctx context.Context, coachID uuid.UUID, actor user.Actor) (*RefreshPaymentStatusResult, error)
}

type coachUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway shared.PaymentGateway
}

func NewCoachUseCase(uow shared.UnitOfWork, gateway shared.PaymentGateway) CoachCommands {
	return &coachUseCaseImpl{uow: uow, gateway: gateway}
}

// RefreshPaymentStatus pulls the connected account's capabilities and stores
// the derived flag when it differs.
func (uc *coachUseCaseImpl) RefreshPaymentStatus(ctx context.Context, coachID uuid.UUID, actor user.Actor) (*RefreshPaymentStatusResult, error) {
	if actor.IsZero() {
		return nil, ErrActorRequired
	}

	coach, err := uc.uow.CommandReads().CoachByID(ctx, coachID)
	if err != nil {
		return nil, notFoundAs(err, ErrCoachNotFound)
	}
	if !actor.IsAdmin() && actor.ID() != coach.OwnerUserID {
		return nil, ErrNotCoachOwner
	}
	if coach.PaymentAccountID == "" {
		return nil, errs.Mark(errs.New("coach has no connected payment account"), errs.ErrPaymentSetupIncomplete)
	}

	caps, err := uc.gateway.AccountCapabilities(ctx, coach.PaymentAccountID)
	if err != nil {
		return nil, err
	}

	enabled := caps.PaymentEnabled()
	var changed bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		changed, err = tx.Coaches().SetPaymentEnabled(ctx, tx.DB(), coach.PaymentAccountID, enabled)
		return err
	})
	if err != nil {
		return nil, err
	}

	if changed {
		slog.Info("coach payment status changed",
			slog.String("coach_id", coachID.String()),
			slog.Bool("payment_enabled", enabled),
		)
	}
	return &RefreshPaymentStatusResult{PaymentEnabled: enabled, Changed: changed}, nil
}
