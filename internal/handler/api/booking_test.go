//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"fitbook/internal/domain/booking"
	"fitbook/internal/domain/user"
	"fitbook/internal/handler/api"
	resdto "fitbook/internal/handler/dto/response"
	"fitbook/internal/pkg/errs"
	"fitbook/internal/usecase/commands"
	"fitbook/internal/usecase/queries"
	"fitbook/internal/usecase/shared"
	"fitbook/tests/common/builder"
	"fitbook/tests/common/httptest"
	"fitbook/tests/common/testutil"
	commandsmock "fitbook/tests/mock/commands"
	queriesmock "fitbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	bb           *builder.BookingBuilder
	actor        user.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.bb = builder.NewBookingBuilder()
	s.actor = s.bb.ClientActor()

	auth := fakeAuth(&s.actor)
	s.router.POST("/bookings", auth, s.handler.Create)
	s.router.GET("/bookings", auth, s.handler.ListMine)
	s.router.GET("/bookings/:id", auth, s.handler.Get)
	s.router.POST("/bookings/:id/cancel", auth, s.handler.Cancel)
	s.router.POST("/bookings/:id/reschedule", auth, s.handler.Reschedule)
	s.router.GET("/coach/bookings", auth, s.handler.ListForCoach)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       testutil.Mutation
	expectCode   int
	expectInBody string
}

// =============================================================================
// Create
// =============================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := s.bb.BuildCreateRequestDTO()
	result := &commands.CreateBookingResult{
		BookingID:            uuid.New(),
		AuthorizationRef:     "pi_test_1",
		PaymentAuthorization: "pi_test_1_secret",
		Split:                booking.Split{Total: 8250, PlatformFee: 750, CoachPayout: 7500},
		Currency:             "usd",
		Description:          "Strength 60 with Coach Test",
	}

	s.Run("success: returns 201 with amount breakdown", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.actor).
			DoAndReturn(func(_ context.Context, req commands.CreateBookingRequest, _ user.Actor) (*commands.CreateBookingResult, error) {
				s.Equal(reqBody.CoachID, req.CoachID)
				s.Equal(reqBody.PackageID, req.PackageID)
				s.True(reqBody.StartTime.Equal(req.StartTime))
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testToken)

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.BookingID, response.BookingID)
		s.Equal("pi_test_1_secret", response.PaymentAuthorization)
		s.Equal(int64(8250), response.Amount.Total)
		s.Equal(int64(750), response.Amount.PlatformFee)
		s.Equal(int64(7500), response.Amount.CoachPayout)
		s.Equal("usd", response.Amount.Currency)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: coachId", mutate: testutil.Field("coachId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: packageId", mutate: testutil.Field("packageId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: startTime", mutate: testutil.Field("startTime", nil), expectCode: http.StatusBadRequest},
			{name: "malformed coachId", mutate: testutil.Field("coachId", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "startTime not RFC3339", mutate: testutil.Field("startTime", "tomorrow 10am"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, testToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "coach not found", commandsError: commands.ErrCoachNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "coach not found"},
			{name: "start in the past", commandsError: errs.Mark(booking.ErrStartNotInFuture, errs.ErrValidation), expectedStatus: http.StatusBadRequest},
			{name: "slot taken", commandsError: commands.ErrSlotUnavailable, expectedStatus: http.StatusConflict, expectedMsg: "no longer available"},
			{name: "payment setup incomplete", commandsError: errs.Mark(booking.ErrPaymentSetupIncomplete, errs.ErrPaymentSetupIncomplete), expectedStatus: http.StatusUnprocessableEntity},
			{name: "gateway unavailable", commandsError: errs.WithCause(shared.ErrGatewayUnavailable, errors.New("timeout"), "authorize"), expectedStatus: http.StatusBadGateway, expectedMsg: "Payment provider unavailable"},
			{name: "reference not stored", commandsError: commands.ErrAuthorizationNotStored, expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.actor).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// =============================================================================
// Cancel
// =============================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: refunded booking", func() {
		reason := "injury"
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actor, &reason).
			Return(&commands.CancelBookingResult{BookingID: bookingID, Status: booking.StatusRefunded, Refunded: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "  injury "}, testToken)

		var response resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Refunded)
		s.Equal("REFUNDED", response.Status)
		s.Contains(response.Message, "refunded")
	})

	s.Run("success: no body means no reason", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actor, (*string)(nil)).
			Return(&commands.CancelBookingResult{BookingID: bookingID, Status: booking.StatusCancelled}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, testToken)

		var response resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Refunded)
		s.Equal("CANCELLED", response.Status)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/nope/cancel", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not found", commandsError: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
			{name: "not a participant", commandsError: commands.ErrNotParticipant, expectedStatus: http.StatusForbidden},
			{name: "terminal", commandsError: commands.ErrBookingTerminal, expectedStatus: http.StatusConflict},
			{name: "refund rejected", commandsError: errs.WithCause(shared.ErrGatewayRejected, errors.New("charge disputed"), "refund"), expectedStatus: http.StatusBadGateway},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actor, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, testToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// =============================================================================
// Reschedule
// =============================================================================

func (s *BookingHandlerTestSuite) TestReschedule() {
	bk := s.bb.BuildWithStatus(booking.StatusConfirmed)
	url := "/bookings/" + bk.ID().String() + "/reschedule"
	newStart := s.bb.Start.Add(48 * time.Hour)

	s.Run("success: returns the moved booking", func() {
		s.mockCommands.EXPECT().RescheduleBooking(gomock.Any(), gomock.Any(), s.actor).
			DoAndReturn(func(_ context.Context, req commands.RescheduleBookingRequest, _ user.Actor) (*booking.Booking, error) {
				s.Equal(bk.ID(), req.BookingID)
				s.True(newStart.Equal(req.StartTime))
				return bk, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"startTime": newStart.Format(time.RFC3339)}, testToken)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bk.ID(), response.ID)
		s.Equal("CONFIRMED", response.Status)
		s.Equal(int64(8250), response.TotalAmount)
	})

	s.Run("error: missing startTime", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: slot taken", func() {
		s.mockCommands.EXPECT().RescheduleBooking(gomock.Any(), gomock.Any(), s.actor).
			Return(nil, commands.ErrSlotUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"startTime": newStart.Format(time.RFC3339)}, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")
	})
}

// =============================================================================
// Get / List
// =============================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := s.bb.BuildView(booking.StatusConfirmed)
	url := "/bookings/" + view.ID.String()

	s.Run("success: participant sees the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actor).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testToken)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.CoachName, response.CoachName)
		s.Equal(view.PackageName, response.PackageName)
		s.Equal(view.TotalAmount, response.TotalAmount)
		s.True(view.StartTime.Equal(response.StartTime))
	})

	s.Run("error: access denied", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actor).Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "access denied")
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actor).Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	views := []*queries.BookingView{
		s.bb.BuildView(booking.StatusConfirmed),
		s.bb.BuildView(booking.StatusPendingPayment),
	}

	s.Run("success: filters are passed through", func() {
		expected := queries.BookingFilters{
			Statuses: []string{"CONFIRMED", "PENDING_PAYMENT"},
			Upcoming: true,
			Page:     2,
			Limit:    10,
		}
		s.mockQueries.EXPECT().ListForClient(gomock.Any(), s.actor, expected).
			Return(&queries.BookingPage{Items: views, Total: 12, Page: 2, Limit: 10}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=confirmed,%20pending_payment&upcoming=true&page=2&limit=10", nil, testToken)

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 2)
		s.Equal(int64(12), response.Total)
		s.Equal(2, response.Page)
	})

	s.Run("error: limit above maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=101", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: unknown status", func() {
		s.mockQueries.EXPECT().ListForClient(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, queries.ErrInvalidStatusFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=lost", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status filter")
	})
}

func (s *BookingHandlerTestSuite) TestListForCoach() {
	s.Run("error: no coach profile", func() {
		s.actor = s.bb.CoachActor()
		s.mockQueries.EXPECT().ListForCoach(gomock.Any(), s.actor, queries.BookingFilters{}).
			Return(nil, queries.ErrCoachProfileNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coach/bookings", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "coach profile not found")
	})
}
