// Package httperr renders usecase errors as JSON error bodies.
package httperr

import (
	"net/http"

	"fitbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	MsgInternal = "Internal server error"
	msgGateway  = "Payment provider unavailable, please retry"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

var categoryStatus = map[error]int{
	errs.ErrValidation:             http.StatusBadRequest,
	errs.ErrNotFound:               http.StatusNotFound,
	errs.ErrConflict:               http.StatusConflict,
	errs.ErrAuth:                   http.StatusForbidden,
	errs.ErrPaymentSetupIncomplete: http.StatusUnprocessableEntity,
	errs.ErrGateway:                http.StatusBadGateway,
}

// StatusOf maps a usecase error to its HTTP status and public message.
// Uncategorised errors never leak their text.
func StatusOf(err error) (int, string) {
	status, ok := categoryStatus[errs.Category(err)]
	switch {
	case !ok:
		return http.StatusInternalServerError, MsgInternal
	case status == http.StatusBadGateway:
		return status, msgGateway
	default:
		return status, err.Error()
	}
}

// Abort renders err with the status its category maps to.
func Abort(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	AbortWithError(c, status, err, msg, nil)
}

// AbortWithError keeps err on the gin context so the logging middleware can report the cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := NewResponse(status, msg)
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
