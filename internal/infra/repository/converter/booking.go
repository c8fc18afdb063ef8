package converter

import (
	"fitbook/internal/domain/booking"
	"fitbook/internal/domain/payment"
	"fitbook/internal/infra/query"
	"fitbook/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) query.Booking {
	split := b.Split()
	return query.Booking{
		ID:               b.ID(),
		CoachID:          b.CoachID(),
		ClientID:         b.ClientID(),
		PackageID:        b.PackageID(),
		StartTime:        b.TimeSlot().Start(),
		EndTime:          b.TimeSlot().End(),
		Status:           b.Status().String(),
		TotalAmount:      split.Total,
		PlatformFee:      split.PlatformFee,
		CoachPayout:      split.CoachPayout,
		Currency:         b.Currency(),
		AuthorizationRef: pgconv.StringPtrToPgtype(b.AuthorizationRef()),
		CancelledAt:      pgconv.TimePtrToPgtype(b.CancelledAt()),
		CancelReason:     pgconv.StringPtrToPgtype(b.CancelReason()),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}

func BookingToDomain(row query.Booking) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(row.StartTime, row.EndTime)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.ID,
		row.CoachID,
		row.ClientID,
		row.PackageID,
		slot,
		booking.Status(row.Status),
		booking.Split{Total: row.TotalAmount, PlatformFee: row.PlatformFee, CoachPayout: row.CoachPayout},
		row.Currency,
		pgconv.StringPtrFromPgtype(row.AuthorizationRef),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.StringPtrFromPgtype(row.CancelReason),
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}

func StatusesToInfra(statuses []booking.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}

func PaymentToInfra(p *payment.Payment) query.Payment {
	return query.Payment{
		ID:               p.ID(),
		BookingID:        p.BookingID(),
		AuthorizationRef: p.AuthorizationRef(),
		Status:           p.Status().String(),
		Amount:           p.Amount(),
		PlatformFee:      p.PlatformFee(),
		Payout:           p.Payout(),
		Currency:         p.Currency(),
		PaidAt:           pgconv.TimePtrToPgtype(p.PaidAt()),
		RawPayload:       p.RawPayload(),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
	}
}

func PaymentToDomain(row query.Payment) *payment.Payment {
	return payment.Reconstruct(
		row.ID,
		row.BookingID,
		row.AuthorizationRef,
		payment.Status(row.Status),
		row.Amount,
		row.PlatformFee,
		row.Payout,
		row.Currency,
		pgconv.TimePtrFromPgtype(row.PaidAt),
		row.CreatedAt,
		row.UpdatedAt,
	)
}
