//go:build unit

package api_test

import (
	"net/http"

	"fitbook/internal/domain/user"
	"fitbook/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

const testToken = "bearer-token"

// fakeAuth authenticates every request carrying a bearer token as *actor.
func fakeAuth(actor *user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, *actor)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}
