package bootstrap

import (
	"context"
	"log/slog"

	"fitbook/cmd/bootstrap/components"
	"fitbook/internal/infra/db"
	"fitbook/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB hands out the pool immediately; the first ping happens on start so
// an unreachable database fails the app within the start timeout.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return err
			}
			stat := pool.Stat()
			logger.Info("database connected", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", stat.MaxConns())
			return nil
		},
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}
