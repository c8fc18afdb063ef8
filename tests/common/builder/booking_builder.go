//go:build unit || e2e

package builder

import (
	"time"

	"fitbook/internal/domain/booking"
	"fitbook/internal/domain/user"
	reqdto "fitbook/internal/handler/dto/request"
	"fitbook/internal/pkg/clock"
	"fitbook/internal/usecase/queries"
	"fitbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var DefaultNow = time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	Now      time.Time
	Coach    booking.CoachSpec
	Package  booking.PackageSpec
	ClientID uuid.UUID
	Start    time.Time
	FeeBps   int64
	FeeModel booking.FeeModel
}

func NewBookingBuilder() *BookingBuilder {
	coachID := uuid.New()
	return &BookingBuilder{
		Now: DefaultNow,
		Coach: booking.CoachSpec{
			ID:               coachID,
			OwnerUserID:      uuid.New(),
			Active:           true,
			PaymentEnabled:   true,
			PaymentAccountID: "acct_test_coach",
		},
		Package: booking.PackageSpec{
			ID:              uuid.New(),
			CoachID:         coachID,
			DurationMinutes: 60,
			PriceMinor:      7500,
			Currency:        "usd",
			Active:          true,
		},
		ClientID: uuid.New(),
		Start:    DefaultNow.Add(25 * time.Hour),
		FeeBps:   1000,
		FeeModel: booking.FeeModelAddOn,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStart(t time.Time) *BookingBuilder {
	b.Start = t
	return b
}

func (b *BookingBuilder) WithClientID(id uuid.UUID) *BookingBuilder {
	b.ClientID = id
	return b
}

func (b *BookingBuilder) WithPrice(minor int64) *BookingBuilder {
	b.Package.PriceMinor = minor
	return b
}

func (b *BookingBuilder) ClientActor() user.Actor {
	actor, err := user.NewActor(b.ClientID, user.RoleClient)
	if err != nil {
		panic(err)
	}
	return actor
}

func (b *BookingBuilder) CoachActor() user.Actor {
	actor, err := user.NewActor(b.Coach.OwnerUserID, user.RoleCoach)
	if err != nil {
		panic(err)
	}
	return actor
}

func (b *BookingBuilder) CoachSnapshot() *shared.CoachSnapshot {
	return &shared.CoachSnapshot{
		ID:               b.Coach.ID,
		OwnerUserID:      b.Coach.OwnerUserID,
		DisplayName:      "Coach Test",
		Active:           b.Coach.Active,
		PaymentEnabled:   b.Coach.PaymentEnabled,
		PaymentAccountID: b.Coach.PaymentAccountID,
	}
}

func (b *BookingBuilder) PackageSnapshot() *shared.PackageSnapshot {
	return &shared.PackageSnapshot{
		ID:              b.Package.ID,
		CoachID:         b.Package.CoachID,
		Title:           "Strength 60",
		DurationMinutes: b.Package.DurationMinutes,
		PriceMinor:      b.Package.PriceMinor,
		Currency:        b.Package.Currency,
		Active:          b.Package.Active,
	}
}

func (b *BookingBuilder) FeeCalculator() *booking.FeeCalculator {
	calc, err := booking.NewFeeCalculator(b.FeeBps, b.FeeModel)
	if err != nil {
		panic(err)
	}
	return calc
}

func (b *BookingBuilder) Services() *booking.Services {
	return &booking.Services{
		Clock:         clock.NewMockClock(b.Now),
		FeeCalculator: b.FeeCalculator(),
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.Services(), b.Coach, b.Package, b.ClientID, b.Start)
}

// BuildWithStatus reconstructs a persisted booking in an arbitrary status.
func (b *BookingBuilder) BuildWithStatus(status booking.Status) *booking.Booking {
	slot, err := booking.SlotForDuration(b.Start, b.Package.DurationMinutes)
	if err != nil {
		panic(err)
	}
	split, err := b.FeeCalculator().Calculate(b.Package.PriceMinor)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		uuid.New(), b.Coach.ID, b.ClientID, b.Package.ID,
		slot, status, split, b.Package.Currency,
		nil, nil, nil, b.Now, b.Now,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CoachID:   b.Coach.ID,
		PackageID: b.Package.ID,
		StartTime: b.Start,
	}
}

func (b *BookingBuilder) BuildView(status booking.Status) *queries.BookingView {
	s, _ := b.FeeCalculator().Calculate(b.Package.PriceMinor)
	return &queries.BookingView{
		ID:          uuid.New(),
		CoachID:     b.Coach.ID,
		CoachName:   "Coach Test",
		ClientID:    b.ClientID,
		PackageID:   b.Package.ID,
		PackageName: "Strength 60",
		StartTime:   b.Start,
		EndTime:     b.Start.Add(time.Duration(b.Package.DurationMinutes) * time.Minute),
		Status:      string(status),
		TotalAmount: s.Total,
		PlatformFee: s.PlatformFee,
		CoachPayout: s.CoachPayout,
		Currency:    b.Package.Currency,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}
