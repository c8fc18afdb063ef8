//go:build unit || e2e

package builder

import (
	"fitbook/internal/domain/booking"
	"fitbook/internal/domain/payment"

	"github.com/google/uuid"
)

// PaymentFor reconstructs a stored payment row for bk.
func PaymentFor(bk *booking.Booking, ref string, status payment.Status) *payment.Payment {
	split := bk.Split()
	paidAt := DefaultNow
	return payment.Reconstruct(
		uuid.New(), bk.ID(), ref, status,
		split.Total, split.PlatformFee, split.CoachPayout,
		bk.Currency(), &paidAt, DefaultNow, DefaultNow,
	)
}
