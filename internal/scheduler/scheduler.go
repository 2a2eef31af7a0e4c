package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"gamepulse/internal/models"
	"gamepulse/internal/providers"
	"gamepulse/internal/services"
	"gamepulse/internal/structures"
	"gamepulse/internal/tracker"
	"gamepulse/internal/tracker/interfaces"
	"github.com/roylee0704/gron"
)

// Scheduler drives the periodic refresh loop: run the pipeline, swap the
// current snapshot, persist it. Runs do not overlap.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	service services.TrackerServiceInterface
	store   tracker.SnapshotStoreInterface
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Tracker.RefreshInterval

	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()
		s.refresh()
	})

	s.cron.Start()

	// gron fires after the first full interval; populate immediately so the
	// dashboard has live data right after boot.
	go func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()
		s.refresh()
	}()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Tracker.RefreshInterval)
	defer cancel()

	snap, err := s.service.Refresh(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Snapshot refresh failed: %s", err)
		return
	}

	start := time.Now()
	if err := s.store.Save(snap); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting snapshot: %s", err)
		return
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	s.logger.Infof(providers.TypeApp, "Persisted snapshot to %s", s.config.Snapshot.FilePath)
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore loads the last persisted snapshot so the dashboard has fallback
// data before the first refresh completes. A missing snapshot is fine.
func (s *Scheduler) Restore() error {
	snap, err := s.store.Load()
	if err != nil {
		if errors.Is(err, models.ErrSnapshotNotFound) {
			return nil
		}
		return err
	}
	s.service.Put(snap)
	s.logger.Infof(providers.TypeApp, "Restored snapshot from %s (%d games, generated %s)",
		s.config.Snapshot.FilePath, len(snap.Games), snap.GeneratedAt.Format(time.RFC3339))
	return nil
}

// Persist writes the current snapshot on shutdown.
func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	snap, err := s.service.Current()
	if err != nil {
		if errors.Is(err, models.ErrSnapshotNotFound) {
			return nil
		}
		return err
	}

	s.logger.Infof(providers.TypeApp, "Persisting snapshot to file...")
	if err := s.store.Save(snap); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting snapshot: %s", err)
		return err
	}
	return nil
}

func NewScheduler(
	config *structures.Config,
	logger providers.Logger,
	service services.TrackerServiceInterface,
	store tracker.SnapshotStoreInterface,
	metrics providers.MetricsProviderInterface,
) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		service: service,
		store:   store,
		metrics: metrics,
	}
}
