package queries

import "fitbook/internal/pkg/errs"

var (
	ErrBookingNotFound      = errs.Define("booking not found", errs.ErrNotFound)
	ErrReviewNotFound       = errs.Define("review not found", errs.ErrNotFound)
	ErrCoachProfileNotFound = errs.Define("coach profile not found", errs.ErrNotFound)
	ErrBookingAccess        = errs.Define("booking access denied", errs.ErrAuth)
	ErrInvalidCursor        = errs.Define("invalid cursor", errs.ErrValidation)
	ErrInvalidWindow        = errs.Define("invalid availability window", errs.ErrValidation)
	ErrInvalidStatusFilter  = errs.Define("invalid status filter", errs.ErrValidation)
)
