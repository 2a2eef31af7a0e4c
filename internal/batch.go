package internal

import (
	"context"
	"time"

	"gamepulse/internal/providers"
	"gamepulse/internal/services"
	"gamepulse/internal/structures"
	"gamepulse/internal/tracker"
)

// Batch is the one-shot pipeline run: resolve, fetch, aggregate, persist.
// Any failure is fatal and surfaces to the caller for a non-zero exit.
type Batch struct {
	conf    *structures.Config
	logger  providers.Logger
	service services.TrackerServiceInterface
	store   tracker.SnapshotStoreInterface
	metrics providers.MetricsProviderInterface
}

func NewBatch(conf *structures.Config, logger providers.Logger, service services.TrackerServiceInterface, store tracker.SnapshotStoreInterface, metrics providers.MetricsProviderInterface) *Batch {
	return &Batch{
		conf:    conf,
		logger:  logger,
		service: service,
		store:   store,
		metrics: metrics,
	}
}

func (b *Batch) Run(ctx context.Context) error {
	b.logger.Infof(providers.TypeApp, "Starting %s snapshot run", b.conf.AppName)

	snap, err := b.service.Refresh(ctx)
	if err != nil {
		b.logger.Errorf(providers.TypeApp, "Snapshot run failed: %s", err)
		return err
	}

	start := time.Now()
	if err := b.store.Save(snap); err != nil {
		b.logger.Errorf(providers.TypeApp, "Failed to persist snapshot: %s", err)
		return err
	}
	b.metrics.ObservePersistenceDuration(time.Since(start))

	b.logger.Infof(providers.TypeApp, "Snapshot written to %s: %d games, %d playing, %d visits",
		b.conf.Snapshot.FilePath, len(snap.Games), snap.TotalPlaying, snap.TotalVisits)
	return nil
}
