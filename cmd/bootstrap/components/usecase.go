package components

import (
	"fitbook/internal/domain/booking"
	"fitbook/internal/pkg/clock"
	"fitbook/internal/pkg/config"
	"fitbook/internal/usecase"
	"fitbook/internal/usecase/commands"
	"fitbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewFeeCalculator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewPaymentReconciler,
		commands.NewReviewUseCase,
		commands.NewCoachUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewFeeCalculator(cfg config.Config) (*booking.FeeCalculator, error) {
	model, err := booking.ParseFeeModel(cfg.Payment.PlatformFeeModel)
	if err != nil {
		return nil, err
	}
	return booking.NewFeeCalculator(cfg.Payment.PlatformFeeBps, model)
}
