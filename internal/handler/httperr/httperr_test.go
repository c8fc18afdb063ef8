//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"fitbook/internal/handler/httperr"
	"fitbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "validation", err: errs.Define("start time must be in the future", errs.ErrValidation), wantStatus: http.StatusBadRequest, wantMsg: "start time must be in the future"},
		{name: "not found", err: errs.Define("coach not found", errs.ErrNotFound), wantStatus: http.StatusNotFound, wantMsg: "coach not found"},
		{name: "conflict", err: errs.Define("slot taken", errs.ErrConflict), wantStatus: http.StatusConflict, wantMsg: "slot taken"},
		{name: "auth", err: errs.Define("not a participant", errs.ErrAuth), wantStatus: http.StatusForbidden, wantMsg: "not a participant"},
		{name: "payment setup", err: errs.Define("coach cannot accept payments", errs.ErrPaymentSetupIncomplete), wantStatus: http.StatusUnprocessableEntity, wantMsg: "coach cannot accept payments"},
		{name: "gateway hides cause", err: errs.WithCause(errs.Define("gateway down", errs.ErrGateway), errors.New("dial tcp: timeout"), "authorize"), wantStatus: http.StatusBadGateway, wantMsg: "Payment provider unavailable, please retry"},
		{name: "unmarked is internal", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := httperr.StatusOf(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := nethttptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	cause := errs.Define("booking not found", errs.ErrNotFound)
	httperr.Abort(c, cause)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"booking not found"}}`, rec.Body.String())
	require.Len(t, c.Errors, 1)
	recorded := c.Errors[0]
	assert.ErrorIs(t, recorded.Err, cause)
	assert.True(t, recorded.IsType(gin.ErrorTypePublic))
	resp, ok := recorded.Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, resp.Status)
}
