//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"fitbook/internal/domain/user"
	"fitbook/internal/pkg/config"
	"fitbook/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens with the same secret the app under test verifies with.
type JWTHelper struct {
	valid   *jwt.Service
	expired *jwt.Service
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()
	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)
	return &JWTHelper{
		valid:   jwt.NewService(cfg.Secret, duration),
		expired: jwt.NewService(cfg.Secret, -time.Minute),
	}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.valid.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.expired.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
