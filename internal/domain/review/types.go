package review

import "errors"

var (
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrTextTooLong         = errors.New("review text exceeds maximum length")
	ErrBookingNotEligible  = errors.New("booking is not eligible for review")
	ErrNotBookingClient    = errors.New("only the booking client can review it")
	ErrReviewAlreadyExists = errors.New("review already exists for this booking")
)
