package cleanup_fx

import (
	"context"

	"fitple/internal/config"
	"fitple/internal/repositories"
	"fitple/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		repositories.NewCleanupRepository,
		services.NewCleanupService,
		provideScheduler,
	),
	fx.Invoke(startScheduler),
)

func provideScheduler(service services.CleanupServiceInterface, cfg *config.Config) *services.CleanupScheduler {
	return services.NewCleanupScheduler(service, cfg.Cleanup.Schedule)
}

func startScheduler(lc fx.Lifecycle, scheduler *services.CleanupScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return scheduler.Start()
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
}
