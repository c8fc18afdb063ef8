package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"fitbook/internal/handler/httperr"
	"fitbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors a handler attached with c.Error but did not write.
// Public errors carry their response in Meta; anything else goes through the category map.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if resp, ok := last.Meta.(httperr.Response); ok && last.IsType(gin.ErrorTypePublic) {
			c.JSON(resp.Status, resp)
			return
		}

		status, msg := httperr.StatusOf(last.Err)
		c.JSON(status, httperr.NewResponse(status, msg))
	}
}

// CustomRecovery turns a panic into a 500 and records it on the context for the request log.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errs.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			slog.Error("panic recovered",
				"request_id", GetRequestID(c),
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			_ = c.Error(fmt.Errorf("panic: %v", rec))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				httperr.NewResponse(http.StatusInternalServerError, httperr.MsgInternal))
		}()
		c.Next()
	}
}
