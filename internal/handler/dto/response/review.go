package response

import (
	"time"

	"fitbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"bookingId"`
	CoachID    uuid.UUID `json:"coachId"`
	ClientID   uuid.UUID `json:"clientId"`
	ClientName string    `json:"clientName,omitempty"`
	Rating     int       `json:"rating"`
	Text       *string   `json:"text,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	var res ReviewResponse
	_ = copier.Copy(&res, v)
	return &res
}

type ReviewListResponse struct {
	Reviews    []*ReviewResponse `json:"reviews"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

func FromReviewList(items []*queries.ReviewView, next *queries.Cursor) *ReviewListResponse {
	res := &ReviewListResponse{Reviews: make([]*ReviewResponse, len(items))}
	for i, it := range items {
		res.Reviews[i] = FromReviewView(it)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type CoachRatingResponse struct {
	CoachID     uuid.UUID `json:"coachId"`
	RatingAvg   float64   `json:"ratingAvg"`
	RatingCount int       `json:"ratingCount"`
}

func FromCoachRatingSummary(s *queries.CoachRatingSummary) *CoachRatingResponse {
	return &CoachRatingResponse{
		CoachID:     s.CoachID,
		RatingAvg:   s.RatingAvg,
		RatingCount: s.RatingCount,
	}
}
