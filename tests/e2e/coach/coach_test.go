//go:build e2e

package coach_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"fitbook/internal/domain/user"
	"fitbook/internal/handler/dto/response"
	"fitbook/internal/usecase/shared"
	"fitbook/tests/common/authtest"
	"fitbook/tests/common/dbtest"
	"fitbook/tests/common/httptest"
	"fitbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	refreshURL = "/api/coaches/%s/payment-status/refresh"
	webhookURL = "/api/webhooks/payments"
	account    = "acct_e2e_onboarding"
)

type CoachSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *CoachSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.T(), s.Config.JWT)
}

func TestCoachSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CoachSuite))
}

func (s *CoachSuite) paymentEnabled(t *testing.T, coachID uuid.UUID) bool {
	t.Helper()
	var enabled bool
	require.NoError(t, s.DB.QueryRow(context.Background(), "SELECT payment_enabled FROM coaches WHERE id = $1", coachID).Scan(&enabled))
	return enabled
}

func (s *CoachSuite) TestRefreshPaymentStatus() {
	s.Run("Owner refresh picks up completed onboarding once", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "coach@example.com", string(user.RoleCoach))
		coachID := dbtest.CreateTestCoach(t, s.DB, ownerID, dbtest.CoachFixture{
			DisplayName:      "Coach Lee",
			PaymentAccountID: account,
			Active:           true,
		})
		token := s.jwt.GenerateToken(t, ownerID, user.RoleCoach)
		s.Gateway.SetCapabilities(account, shared.AccountCapabilities{ChargesEnabled: true, PayoutsEnabled: true})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refreshURL, coachID), nil, token)
		var first response.PaymentStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		assert.Equal(t, response.PaymentStatusResponse{PaymentEnabled: true, Changed: true}, first)
		assert.True(t, s.paymentEnabled(t, coachID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refreshURL, coachID), nil, token)
		var second response.PaymentStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		assert.False(t, second.Changed)
	})

	s.Run("Error cases", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "coach@example.com", string(user.RoleCoach))
		coachID := dbtest.CreateTestCoach(t, s.DB, ownerID, dbtest.CoachFixture{DisplayName: "Coach Lee", Active: true})
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleCoach))

		tests := []struct {
			name   string
			coach  uuid.UUID
			token  string
			status int
		}{
			{"no connected account", coachID, s.jwt.GenerateToken(t, ownerID, user.RoleCoach), http.StatusUnprocessableEntity},
			{"not the owner", coachID, s.jwt.GenerateToken(t, otherID, user.RoleCoach), http.StatusForbidden},
			{"unknown coach", uuid.New(), s.jwt.GenerateToken(t, ownerID, user.RoleCoach), http.StatusNotFound},
			{"no token", coachID, "", http.StatusUnauthorized},
		}
		for _, tt := range tests {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refreshURL, tt.coach), nil, tt.token)
			assert.Equal(t, tt.status, w.Code, "%s: %s", tt.name, w.Body.String())
		}
	})

	s.Run("Account notification toggles the payment flag", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "coach@example.com", string(user.RoleCoach))
		coachID := dbtest.CreateTestCoach(t, s.DB, ownerID, dbtest.CoachFixture{
			DisplayName:      "Coach Lee",
			PaymentAccountID: account,
			PaymentEnabled:   true,
			Active:           true,
		})

		ev := shared.GatewayEvent{
			ID:           "evt_account_1",
			Kind:         shared.EventAccountUpdated,
			RawType:      "account.updated",
			AccountID:    account,
			Capabilities: shared.AccountCapabilities{ChargesEnabled: true},
		}
		w := httptest.PerformRawRequest(s.Router, http.MethodPost, webhookURL, []byte(`{}`), map[string]string{
			"Stripe-Signature": s.Gateway.Sign(ev),
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.False(t, s.paymentEnabled(t, coachID))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "gateway_events", "event_id = $1 AND outcome = 'applied'", "evt_account_1"))
	})
}
