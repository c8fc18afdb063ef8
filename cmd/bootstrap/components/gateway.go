package components

import (
	"context"
	"log/slog"
	"time"

	"fitbook/internal/infra/gateway"
	"fitbook/internal/pkg/config"
	"fitbook/internal/pkg/ratelimit"
	"fitbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(shared.PaymentGateway)),
		),
		NewRateLimiter,
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) *gateway.StripeGateway {
	return gateway.NewStripeGateway(cfg.Payment, logger)
}

// NewRateLimiter builds the per-process limiter and sweeps idle buckets while the app runs.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config) *ratelimit.Limiter {
	limiter := ratelimit.NewLimiter(cfg.RateLimit)
	if cfg.RateLimit.TTL <= 0 {
		return limiter
	}

	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(cfg.RateLimit.TTL)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						limiter.Sweep()
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stop)
			return nil
		},
	})
	return limiter
}
