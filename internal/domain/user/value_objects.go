package user

import "errors"

var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrMissingActor = errors.New("actor is required")
)
