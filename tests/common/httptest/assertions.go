//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and, when target is non-nil, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	require.Equalf(t, wantStatus, w.Code, "body: %s", w.Body.String())
	if target == nil || w.Body.Len() == 0 {
		return
	}
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and the error envelope. An empty wantMsg
// only requires the message to be present.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()

	assert.Equalf(t, wantStatus, w.Code, "body: %s", w.Body.String())

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &envelope), "body: %s", w.Body.String())

	if wantMsg == "" {
		assert.NotEmpty(t, envelope.Error.Message)
		return
	}
	assert.Contains(t, envelope.Error.Message, wantMsg)
}
