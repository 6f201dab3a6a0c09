package redis_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gotham/internal/config"
	"gotham/internal/infra"
)

var Module = fx.Provide(provideRedis)

func provideRedis(cfg *config.Config, log *zap.Logger) *redis.Client {
	return infra.InitRedis(cfg, log)
}
