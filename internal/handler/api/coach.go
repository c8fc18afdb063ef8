package api

import (
	"net/http"

	reqdto "fitbook/internal/handler/dto/request"
	resdto "fitbook/internal/handler/dto/response"
	"fitbook/internal/handler/httperr"
	"fitbook/internal/usecase/commands"
	"fitbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CoachHandler struct {
	cmds         commands.CoachCommands
	availability queries.AvailabilityQueries
	reviews      queries.ReviewQueries
}

func NewCoachHandler(cmds commands.CoachCommands, availability queries.AvailabilityQueries, reviews queries.ReviewQueries) *CoachHandler {
	return &CoachHandler{cmds: cmds, availability: availability, reviews: reviews}
}

// @Summary Coach availability
// @Description Report whether a window is free of pending or confirmed bookings
// @Tags coaches
// @Produce json
// @Param id path string true "Coach ID"
// @Param start query string true "Window start (RFC3339)"
// @Param end query string true "Window end (RFC3339)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /coaches/{id}/availability [get]
func (h *CoachHandler) Availability(c *gin.Context) {
	coachID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	view, err := h.availability.CheckWindow(c.Request.Context(), coachID, q.Start, q.End)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Coach reviews
// @Description List a coach's reviews, newest first, with keyset pagination
// @Tags coaches
// @Produce json
// @Param id path string true "Coach ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} httperr.Response
// @Router /coaches/{id}/reviews [get]
func (h *CoachHandler) Reviews(c *gin.Context) {
	coachID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var q reqdto.ListReviewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	var cursor *queries.Cursor
	if q.After != "" {
		cursor = &queries.Cursor{After: q.After}
	}
	items, next, err := h.reviews.ListByCoach(c.Request.Context(), coachID, cursor, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(items, next))
}

// @Summary Coach rating
// @Description Average rating and review count of a coach
// @Tags coaches
// @Produce json
// @Param id path string true "Coach ID"
// @Success 200 {object} resdto.CoachRatingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coaches/{id}/rating [get]
func (h *CoachHandler) Rating(c *gin.Context) {
	coachID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	summary, err := h.reviews.GetCoachRatingSummary(c.Request.Context(), coachID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoachRatingSummary(summary))
}

// @Summary Refresh coach payment status
// @Description Re-read the coach's payout account capabilities from the gateway
// @Tags coaches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /coaches/{id}/payment-status/refresh [post]
func (h *CoachHandler) RefreshPaymentStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	coachID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.RefreshPaymentStatus(c.Request.Context(), coachID, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefreshPaymentStatusResult(result))
}
