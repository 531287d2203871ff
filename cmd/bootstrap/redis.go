package bootstrap

import (
	"context"

	"agora-server/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns nil when no address is configured; the rate limiter
// treats a nil client as "no limiting".
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
