//go:build unit

package commands_test

import (
	"context"
	"testing"

	"fitbook/internal/infra"
	"fitbook/internal/infra/db"
	"fitbook/internal/usecase/shared"
	sharedmock "fitbook/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// stubDB is handed to repositories that are themselves mocked.
type stubDB struct{ db.DBTX }

type fixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	payments      *sharedmock.MockPaymentRepository
	coaches       *sharedmock.MockCoachRepository
	reviews       *sharedmock.MockReviewRepository
	ratingStats   *sharedmock.MockRatingStatsRepository
	notifications *sharedmock.MockNotificationRepository
	events        *sharedmock.MockGatewayEventRepository
	gateway       *sharedmock.MockPaymentGateway
	db            db.DBTX
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		payments:      sharedmock.NewMockPaymentRepository(ctrl),
		coaches:       sharedmock.NewMockCoachRepository(ctrl),
		reviews:       sharedmock.NewMockReviewRepository(ctrl),
		ratingStats:   sharedmock.NewMockRatingStatsRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		events:        sharedmock.NewMockGatewayEventRepository(ctrl),
		gateway:       sharedmock.NewMockPaymentGateway(ctrl),
		db:            stubDB{},
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Payments().Return(f.payments).AnyTimes()
	f.tx.EXPECT().Coaches().Return(f.coaches).AnyTimes()
	f.tx.EXPECT().Reviews().Return(f.reviews).AnyTimes()
	f.tx.EXPECT().RatingStats().Return(f.ratingStats).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().GatewayEvents().Return(f.events).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(f.db).AnyTimes()
	f.tx.EXPECT().BestEffort(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, f.db)
		}).AnyTimes()

	return f
}

func notFound() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}
