package request

import (
	"fitbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Text      string    `json:"text,omitempty" binding:"max=2000"`
}

func (r CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Text:      r.Text,
	}
}

type ListReviewsQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1"`
	After string `form:"after"`
}
