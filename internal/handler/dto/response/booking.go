package response

import (
	"time"

	"fitbook/internal/domain/booking"
	"fitbook/internal/usecase/commands"
	"fitbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AmountResponse struct {
	Total       int64  `json:"total"`
	PlatformFee int64  `json:"platformFee"`
	CoachPayout int64  `json:"coachPayout"`
	Currency    string `json:"currency"`
}

type CreateBookingResponse struct {
	BookingID            uuid.UUID      `json:"bookingId"`
	PaymentAuthorization string         `json:"paymentAuthorization"`
	Description          string         `json:"description"`
	Amount               AmountResponse `json:"amount"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:            r.BookingID,
		PaymentAuthorization: r.PaymentAuthorization,
		Description:          r.Description,
		Amount: AmountResponse{
			Total:       r.Split.Total,
			PlatformFee: r.Split.PlatformFee,
			CoachPayout: r.Split.CoachPayout,
			Currency:    r.Currency,
		},
	}
}

type CancelBookingResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Status    string    `json:"status"`
	Refunded  bool      `json:"refunded"`
	Message   string    `json:"message"`
}

func FromCancelBookingResult(r *commands.CancelBookingResult) *CancelBookingResponse {
	msg := "Booking cancelled"
	if r.Refunded {
		msg = "Booking cancelled and payment refunded"
	}
	return &CancelBookingResponse{
		BookingID: r.BookingID,
		Status:    string(r.Status),
		Refunded:  r.Refunded,
		Message:   msg,
	}
}

type BookingResponse struct {
	ID                     uuid.UUID  `json:"id"`
	CoachID                uuid.UUID  `json:"coachId"`
	CoachName              string     `json:"coachName,omitempty"`
	ClientID               uuid.UUID  `json:"clientId"`
	PackageID              uuid.UUID  `json:"packageId"`
	PackageName            string     `json:"packageName,omitempty"`
	PackageDurationMinutes int        `json:"packageDurationMinutes,omitempty"`
	StartTime              time.Time  `json:"startTime"`
	EndTime                time.Time  `json:"endTime"`
	Status                 string     `json:"status"`
	TotalAmount            int64      `json:"totalAmount"`
	PlatformFee            int64      `json:"platformFee"`
	CoachPayout            int64      `json:"coachPayout"`
	Currency               string     `json:"currency"`
	CancelledAt            *time.Time `json:"cancelledAt,omitempty"`
	CancelReason           *string    `json:"cancelReason,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromBooking(b *booking.Booking) *BookingResponse {
	split := b.Split()
	return &BookingResponse{
		ID:           b.ID(),
		CoachID:      b.CoachID(),
		ClientID:     b.ClientID(),
		PackageID:    b.PackageID(),
		StartTime:    b.TimeSlot().Start(),
		EndTime:      b.TimeSlot().End(),
		Status:       string(b.Status()),
		TotalAmount:  split.Total,
		PlatformFee:  split.PlatformFee,
		CoachPayout:  split.CoachPayout,
		Currency:     b.Currency(),
		CancelledAt:  b.CancelledAt(),
		CancelReason: b.CancelReason(),
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	}
}

type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	Limit    int                `json:"limit"`
}

func FromBookingPage(p *queries.BookingPage) *BookingListResponse {
	items := make([]*BookingResponse, len(p.Items))
	for i, v := range p.Items {
		items[i] = FromBookingView(v)
	}
	return &BookingListResponse{
		Bookings: items,
		Total:    p.Total,
		Page:     p.Page,
		Limit:    p.Limit,
	}
}
