package usecase

import (
	"fitbook/internal/domain/user"
	"fitbook/internal/pkg/errs"
	"fitbook/internal/pkg/jwt"
)

var ErrInvalidToken = errs.Define("invalid or expired token", errs.ErrAuth)

// TokenValidator turns a bearer token into the calling actor.
type TokenValidator interface {
	Authenticate(token string) (user.Actor, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) Authenticate(token string) (user.Actor, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return user.Actor{}, errs.WithCause(ErrInvalidToken, err, "validate token")
	}

	userID, err := claims.UserID()
	if err != nil {
		return user.Actor{}, errs.WithCause(ErrInvalidToken, err, "token subject")
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, errs.WithCause(ErrInvalidToken, err, "token role")
	}
	actor, err := user.NewActor(userID, role)
	if err != nil {
		return user.Actor{}, errs.WithCause(ErrInvalidToken, err, "token actor")
	}
	return actor, nil
}
