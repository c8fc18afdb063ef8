//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"fitbook/internal/domain/user"
	"fitbook/internal/handler/middleware"
	"fitbook/internal/pkg/config"
	"fitbook/internal/pkg/ratelimit"
	"fitbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	id   uuid.UUID
	role user.Role
	err  error
}

func (v stubValidator) Authenticate(string) (user.Actor, error) {
	if v.err != nil {
		return user.Actor{}, v.err
	}
	return user.NewActor(v.id, v.role)
}

func newAuthRouter(v stubValidator, roles ...user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := middleware.NewAuthMiddleware(v)
	chain := []gin.HandlerFunc{m.RequireAuth()}
	if len(roles) > 0 {
		chain = append(chain, m.RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID().String(), "role": actor.Role().String()})
	})
	r.GET("/private", chain...)
	return r
}

func TestRequireAuth(t *testing.T) {
	id := uuid.New()

	t.Run("valid token sets the actor", func(t *testing.T) {
		r := newAuthRouter(stubValidator{id: id, role: user.RoleClient})
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "token")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, id.String(), body["id"])
		assert.Equal(t, "CLIENT", body["role"])
	})

	t.Run("missing token", func(t *testing.T) {
		r := newAuthRouter(stubValidator{id: id, role: user.RoleClient})
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token", func(t *testing.T) {
		r := newAuthRouter(stubValidator{err: errors.New("expired")})
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "token")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("nil subject is rejected", func(t *testing.T) {
		r := newAuthRouter(stubValidator{id: uuid.Nil, role: user.RoleClient})
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "token")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("allowed role passes", func(t *testing.T) {
		r := newAuthRouter(stubValidator{id: uuid.New(), role: user.RoleCoach}, user.RoleCoach, user.RoleAdmin)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "token")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		r := newAuthRouter(stubValidator{id: uuid.New(), role: user.RoleClient}, user.RoleCoach)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "token")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	limiter := ratelimit.NewLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 2})
	r.POST("/limited", middleware.RateLimit(limiter), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for range 2 {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/limited", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
	rec := httptest.PerformRequest(t, r, http.MethodPost, "/limited", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Rate limit exceeded")
}
