package redis_fx

import (
	"context"

	"fitple/internal/config"
	"fitple/internal/infra"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideRedis)

// provideRedis yields a nil client when redis is not configured.
func provideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	client, err := infra.InitRedis(cfg)
	if err != nil || client == nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
