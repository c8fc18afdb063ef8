//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"fitbook/internal/domain/user"
	"fitbook/internal/handler/dto/request"
	"fitbook/internal/handler/dto/response"
	"fitbook/internal/usecase/shared"
	"fitbook/tests/common/authtest"
	"fitbook/tests/common/builder"
	"fitbook/tests/common/dbtest"
	"fitbook/tests/common/httptest"
	"fitbook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reviewsURL      = "/api/reviews"
	reviewURL       = "/api/reviews/%s"
	coachReviewsURL = "/api/coaches/%s/reviews"
	coachRatingURL  = "/api/coaches/%s/rating"
	bookingsURL     = "/api/bookings"
	webhookURL      = "/api/webhooks/payments"
)

type ReviewSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *ReviewSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.T(), s.Config.JWT)
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewSuite))
}

type session struct {
	coachID   uuid.UUID
	bookingID uuid.UUID
	token     string
}

// completedSession books, pays and completes a session for a fresh client.
func (s *ReviewSuite) completedSession(t *testing.T, coachID, packageID uuid.UUID, email string, start time.Time) session {
	t.Helper()

	clientID := dbtest.CreateTestUser(t, s.DB, email, string(user.RoleClient))
	token := s.jwt.GenerateToken(t, clientID, user.RoleClient)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
		request.CreateBookingRequest{CoachID: coachID, PackageID: packageID, StartTime: start}, token)
	var created response.CreateBookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

	bookingID := created.BookingID
	ev := shared.GatewayEvent{
		ID:               "evt_" + uuid.NewString(),
		Kind:             shared.EventAuthorizationSucceeded,
		RawType:          "payment_intent.succeeded",
		AuthorizationRef: fmt.Sprintf("pi_fake_%d", len(s.Gateway.Authorized())),
		BookingID:        &bookingID,
		Amount:           created.Amount.Total,
		Currency:         created.Amount.Currency,
	}
	w = httptest.PerformRawRequest(s.Router, http.MethodPost, webhookURL, []byte(`{}`), map[string]string{
		"Stripe-Signature": s.Gateway.Sign(ev),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	dbtest.MarkBookingCompleted(t, s.DB, bookingID)
	return session{coachID: coachID, bookingID: bookingID, token: token}
}

func (s *ReviewSuite) seedCoach(t *testing.T) (uuid.UUID, uuid.UUID) {
	t.Helper()

	coachUserID := dbtest.CreateTestUser(t, s.DB, "coach@example.com", string(user.RoleCoach))
	coachID := dbtest.CreateTestCoach(t, s.DB, coachUserID, dbtest.CoachFixture{
		DisplayName:      "Coach Ana",
		PaymentAccountID: "acct_e2e_review",
		PaymentEnabled:   true,
		Active:           true,
	})
	return coachID, dbtest.CreateTestPackage(t, s.DB, coachID, "Mobility 45", 45, 5000)
}

// =============================================================================
// TestCreateReview
// =============================================================================

func (s *ReviewSuite) TestCreateReview() {
	s.Run("Normal case: client reviews a completed session", func() {
		t := s.T()
		coachID, packageID := s.seedCoach(t)
		start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
		sess := s.completedSession(t, coachID, packageID, "reviewer@example.com", start)

		reqBody := builder.NewReviewBuilder().
			WithBookingID(sess.bookingID).
			WithRating(4).
			WithText("Solid session").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, sess.token)

		var created response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEqual(t, uuid.Nil, created.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reviewURL, created.ID), nil, "")
		var fetched response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)

		if diff := cmp.Diff(created, fetched, cmpopts.IgnoreFields(response.ReviewResponse{}, "CreatedAt", "ClientName")); diff != "" {
			t.Errorf("review mismatch (-created +fetched):\n%s", diff)
		}
		assert.Equal(t, coachID, fetched.CoachID)
		assert.Equal(t, 4, fetched.Rating)
	})

	s.Run("Error cases", func() {
		t := s.T()
		coachID, packageID := s.seedCoach(t)
		start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
		sess := s.completedSession(t, coachID, packageID, "reviewer@example.com", start)
		strangerID := dbtest.CreateTestUser(t, s.DB, "stranger@example.com", string(user.RoleClient))
		strangerToken := s.jwt.GenerateToken(t, strangerID, user.RoleClient)

		first := builder.NewReviewBuilder().WithBookingID(sess.bookingID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, first, sess.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		tests := []struct {
			name   string
			token  string
			body   request.CreateReviewRequest
			status int
		}{
			{"second review for the booking", sess.token, first, http.StatusConflict},
			{"rating out of range", sess.token, builder.NewReviewBuilder().WithBookingID(sess.bookingID).WithRating(6).BuildCreateRequestDTO(), http.StatusBadRequest},
			{"not the booking client", strangerToken, builder.NewReviewBuilder().WithBookingID(sess.bookingID).BuildCreateRequestDTO(), http.StatusForbidden},
			{"unknown booking", sess.token, builder.NewReviewBuilder().BuildCreateRequestDTO(), http.StatusNotFound},
			{"no token", "", first, http.StatusUnauthorized},
		}
		for _, tt := range tests {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, tt.body, tt.token)
			assert.Equal(t, tt.status, w.Code, "%s: %s", tt.name, w.Body.String())
		}
	})
}

// =============================================================================
// TestCoachReviews - keyset pagination and rating summary
// =============================================================================

func (s *ReviewSuite) TestCoachReviews() {
	s.Run("Reviews page newest first and the rating summary follows", func() {
		t := s.T()
		coachID, packageID := s.seedCoach(t)
		base := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)

		ratings := []int{5, 4, 3}
		for i, rating := range ratings {
			sess := s.completedSession(t, coachID, packageID, fmt.Sprintf("client%d@example.com", i), base.Add(time.Duration(i)*2*time.Hour))
			body := builder.NewReviewBuilder().WithBookingID(sess.bookingID).WithRating(rating).BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, body, sess.token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(coachReviewsURL, coachID)+"?limit=2", nil, "")
		var page response.ReviewListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Reviews, 2)
		require.NotEmpty(t, page.NextCursor)
		assert.Equal(t, 3, page.Reviews[0].Rating)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(coachReviewsURL, coachID)+"?limit=2&after="+page.NextCursor, nil, "")
		var rest response.ReviewListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rest)
		require.Len(t, rest.Reviews, 1)
		assert.Empty(t, rest.NextCursor)
		assert.Equal(t, 5, rest.Reviews[0].Rating)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(coachRatingURL, coachID), nil, "")
		var summary response.CoachRatingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &summary)
		assert.Equal(t, 3, summary.RatingCount)
		assert.InDelta(t, 4.0, summary.RatingAvg, 0.001)
	})

	s.Run("Malformed cursor is rejected", func() {
		t := s.T()
		coachID, _ := s.seedCoach(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(coachReviewsURL, coachID)+"?after=not-a-cursor", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}
