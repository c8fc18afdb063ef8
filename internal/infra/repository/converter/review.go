package converter

import (
	"fitbook/internal/domain/review"
	"fitbook/internal/infra/query"
	"fitbook/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) query.Review {
	// #nosec G115 -- rating is validated to 1..5
	rating := int16(r.Rating().Value())
	return query.Review{
		ID:        r.ID(),
		BookingID: r.BookingID(),
		CoachID:   r.CoachID(),
		ClientID:  r.ClientID(),
		Rating:    rating,
		Text:      pgconv.StringPtrToPgtype(r.Text().Ptr()),
		CreatedAt: r.CreatedAt(),
	}
}
