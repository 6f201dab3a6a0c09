package schedule_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gotham/internal/schedule"
)

var Module = fx.Provide(provideScheduleStore, provideScheduleService)

func provideScheduleStore(client *redis.Client) schedule.Store {
	return schedule.NewRedisStore(client)
}

func provideScheduleService(store schedule.Store, log *zap.Logger) *schedule.Service {
	return schedule.NewService(store, log)
}
