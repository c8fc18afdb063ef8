package request

import (
	"strings"
	"time"

	"fitbook/internal/usecase/commands"
	"fitbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CoachID   uuid.UUID `json:"coachId" binding:"required"`
	PackageID uuid.UUID `json:"packageId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		CoachID:   r.CoachID,
		PackageID: r.PackageID,
		StartTime: r.StartTime,
	}
}

type RescheduleBookingRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
}

func (r RescheduleBookingRequest) ToCommand(bookingID uuid.UUID) commands.RescheduleBookingRequest {
	return commands.RescheduleBookingRequest{
		BookingID: bookingID,
		StartTime: r.StartTime,
	}
}

type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

// GetReason returns nil for a missing or blank reason.
func (r CancelBookingRequest) GetReason() *string {
	if r.Reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type ListBookingsQuery struct {
	Status   string `form:"status"`
	Upcoming bool   `form:"upcoming"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q ListBookingsQuery) ToFilters() queries.BookingFilters {
	var statuses []string
	for _, s := range strings.Split(q.Status, ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, strings.ToUpper(s))
		}
	}
	return queries.BookingFilters{
		Statuses: statuses,
		Upcoming: q.Upcoming,
		Page:     q.Page,
		Limit:    q.Limit,
	}
}
