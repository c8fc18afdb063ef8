//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"fitbook/internal/domain/user"
	"fitbook/internal/handler/api"
	resdto "fitbook/internal/handler/dto/response"
	"fitbook/internal/pkg/errs"
	"fitbook/internal/usecase/commands"
	"fitbook/internal/usecase/queries"
	"fitbook/internal/usecase/shared"
	"fitbook/tests/common/builder"
	"fitbook/tests/common/httptest"
	commandsmock "fitbook/tests/mock/commands"
	queriesmock "fitbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CoachHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockCoachCommands
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockReviews      *queriesmock.MockReviewQueries
	actor            user.Actor
	coachID          uuid.UUID
}

func (s *CoachHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCoachCommands(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockReviews = queriesmock.NewMockReviewQueries(s.mockCtrl)
	h := api.NewCoachHandler(s.mockCommands, s.mockAvailability, s.mockReviews)

	bb := builder.NewBookingBuilder()
	s.actor = bb.CoachActor()
	s.coachID = bb.Coach.ID

	s.router.GET("/coaches/:id/availability", h.Availability)
	s.router.GET("/coaches/:id/reviews", h.Reviews)
	s.router.GET("/coaches/:id/rating", h.Rating)
	s.router.POST("/coaches/:id/payment-status/refresh", fakeAuth(&s.actor), h.RefreshPaymentStatus)
}

func (s *CoachHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCoachHandlerSuite(t *testing.T) {
	suite.Run(t, new(CoachHandlerTestSuite))
}

func (s *CoachHandlerTestSuite) TestAvailability() {
	start := builder.DefaultNow.Add(24 * time.Hour)
	end := start.Add(2 * time.Hour)
	url := "/coaches/" + s.coachID.String() + "/availability?start=" + start.Format(time.RFC3339) + "&end=" + end.Format(time.RFC3339)

	s.Run("success: busy window", func() {
		busy := []queries.TimeRange{{Start: start.Add(30 * time.Minute), End: start.Add(90 * time.Minute)}}
		s.mockAvailability.EXPECT().CheckWindow(gomock.Any(), s.coachID, start, end).
			Return(&queries.AvailabilityView{CoachID: s.coachID, Start: start, End: end, Free: false, Busy: busy}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Free)
		s.Len(response.Busy, 1)
	})

	s.Run("error: missing end", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coaches/"+s.coachID.String()+"/availability?start="+start.Format(time.RFC3339), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: inverted window", func() {
		s.mockAvailability.EXPECT().CheckWindow(gomock.Any(), s.coachID, start, end).
			Return(nil, queries.ErrInvalidWindow).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid availability window")
	})
}

func (s *CoachHandlerTestSuite) TestReviews() {
	rb := builder.NewReviewBuilder().With(func(r *builder.ReviewBuilder) { r.CoachID = s.coachID })
	items := []*queries.ReviewView{rb.BuildViewQuery(), rb.BuildViewQuery()}
	base := "/coaches/" + s.coachID.String() + "/reviews"

	s.Run("success: first page with next cursor", func() {
		s.mockReviews.EXPECT().ListByCoach(gomock.Any(), s.coachID, (*queries.Cursor)(nil), 0).
			Return(items, &queries.Cursor{After: "next_cursor456"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reviews, 2)
		s.Equal("next_cursor456", response.NextCursor)
		s.Equal(items[0].ID, response.Reviews[0].ID)
		s.Equal(5, response.Reviews[0].Rating)
	})

	s.Run("success: cursor and limit are passed through", func() {
		s.mockReviews.EXPECT().ListByCoach(gomock.Any(), s.coachID, &queries.Cursor{After: "cursor123"}, 10).
			Return(items[:1], nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?after=cursor123&limit=10", nil, "")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reviews, 1)
		s.Empty(response.NextCursor)
	})

	s.Run("error: malformed cursor", func() {
		s.mockReviews.EXPECT().ListByCoach(gomock.Any(), s.coachID, &queries.Cursor{After: "%%%"}, 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?after=%25%25%25", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *CoachHandlerTestSuite) TestRating() {
	s.Run("success", func() {
		s.mockReviews.EXPECT().GetCoachRatingSummary(gomock.Any(), s.coachID).
			Return(&queries.CoachRatingSummary{CoachID: s.coachID, RatingAvg: 4.3, RatingCount: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coaches/"+s.coachID.String()+"/rating", nil, "")

		var response resdto.CoachRatingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(4.3, response.RatingAvg, 0.001)
		s.Equal(3, response.RatingCount)
	})
}

func (s *CoachHandlerTestSuite) TestRefreshPaymentStatus() {
	url := "/coaches/" + s.coachID.String() + "/payment-status/refresh"

	s.Run("success: returns the refreshed flag", func() {
		s.mockCommands.EXPECT().RefreshPaymentStatus(gomock.Any(), s.coachID, s.actor).
			Return(&commands.RefreshPaymentStatusResult{PaymentEnabled: true, Changed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, testToken)

		var response resdto.PaymentStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.PaymentEnabled)
		s.True(response.Changed)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "not the owner", err: commands.ErrNotCoachOwner, expectedStatus: http.StatusForbidden},
			{name: "coach not found", err: commands.ErrCoachNotFound, expectedStatus: http.StatusNotFound},
			{name: "no payout account", err: errs.Define("coach has no payout account", errs.ErrPaymentSetupIncomplete), expectedStatus: http.StatusUnprocessableEntity},
			{name: "gateway down", err: errs.WithCause(shared.ErrGatewayUnavailable, errors.New("timeout"), "account"), expectedStatus: http.StatusBadGateway},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RefreshPaymentStatus(gomock.Any(), s.coachID, s.actor).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, testToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
