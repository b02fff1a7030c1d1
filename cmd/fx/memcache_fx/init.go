package memcache_fx

import (
	"fitple/internal/services"
	mem "fitple/pkg/memcache"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideRefreshTokenStore)

func provideRefreshTokenStore(client *redis.Client) services.RefreshTokenStore {
	if client == nil {
		return mem.NewRefreshTokens()
	}
	return services.NewRedisRefreshTokenStore(client)
}
