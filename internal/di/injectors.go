//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"gamepulse/internal"
	"gamepulse/internal/controllers"
	"gamepulse/internal/providers"
	"gamepulse/internal/roblox"
	"gamepulse/internal/scheduler"
	"gamepulse/internal/services"
	"gamepulse/internal/structures"
	"gamepulse/internal/tracker"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		roblox.NewClient,
		tracker.NewResolver,
		tracker.NewFetcher,
		tracker.NewCompressor,
		tracker.NewSnapshotStore,
		services.NewTrackerService,
		scheduler.NewScheduler,
		controllers.NewApiController,
		controllers.NewDashboardController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitBatch(cfg *structures.CliFlags) (*internal.Batch, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,

		roblox.NewClient,
		tracker.NewResolver,
		tracker.NewFetcher,
		tracker.NewCompressor,
		tracker.NewSnapshotStore,
		services.NewTrackerService,
		internal.NewBatch,
	)

	return nil, nil
}
