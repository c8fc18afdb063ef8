package components

import (
	"fitbook/internal/handler"
	"fitbook/internal/handler/api"
	"fitbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewCoachHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
		func(b *api.BookingHandler, r *api.ReviewHandler, c *api.CoachHandler, w *api.WebhookHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Review: r, Coach: c, Webhook: w}
		},
	),
	fx.Invoke(handler.NewRouter),
)
