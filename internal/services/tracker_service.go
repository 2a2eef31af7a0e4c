package services

import (
	"context"
	"time"

	"gamepulse/internal/models"
	"gamepulse/internal/providers"
	"gamepulse/internal/structures"
	"gamepulse/internal/tracker"
	"go.uber.org/atomic"
)

type TrackerServiceInterface interface {
	// Refresh runs the full pipeline (resolve, fetch, aggregate) and makes
	// the result the current snapshot. It does not persist.
	Refresh(ctx context.Context) (*models.Snapshot, error)
	// Current returns the in-memory snapshot, falling back to the store.
	// Returns models.ErrSnapshotNotFound when neither has data.
	Current() (*models.Snapshot, error)
	// Put replaces the in-memory snapshot, used when restoring from disk.
	Put(snap *models.Snapshot)
	GamesTracked() int
}

type TrackerService struct {
	conf     *structures.Config
	logger   providers.Logger
	resolver *tracker.Resolver
	fetcher  *tracker.Fetcher
	store    tracker.SnapshotStoreInterface
	metrics  providers.MetricsProviderInterface
	current  atomic.Pointer[models.Snapshot]
}

func NewTrackerService(
	conf *structures.Config,
	logger providers.Logger,
	resolver *tracker.Resolver,
	fetcher *tracker.Fetcher,
	store tracker.SnapshotStoreInterface,
	metrics providers.MetricsProviderInterface,
) TrackerServiceInterface {
	return &TrackerService{
		conf:     conf,
		logger:   logger,
		resolver: resolver,
		fetcher:  fetcher,
		store:    store,
		metrics:  metrics,
	}
}

func (ts *TrackerService) Refresh(ctx context.Context) (*models.Snapshot, error) {
	start := time.Now()

	snap, err := ts.refresh(ctx)
	if err != nil {
		ts.metrics.IncRefreshFailures()
		return nil, err
	}

	ts.current.Store(snap)
	ts.metrics.ObserveRefreshDuration(time.Since(start))
	ts.metrics.SetGamesTracked(len(snap.Games))
	ts.metrics.SetTotalPlaying(snap.TotalPlaying)
	ts.metrics.SetTotalVisits(snap.TotalVisits)

	ts.logger.Infof(providers.TypeApp, "Snapshot refreshed: %d games, %d playing, %d visits",
		len(snap.Games), snap.TotalPlaying, snap.TotalVisits)
	return snap, nil
}

func (ts *TrackerService) refresh(ctx context.Context) (*models.Snapshot, error) {
	placeIDs, err := tracker.LoadPlaces(ts.conf.Tracker.PlacesFile)
	if err != nil {
		return nil, err
	}

	pm, err := ts.resolver.Resolve(ctx, placeIDs)
	if err != nil {
		return nil, err
	}

	details, thumbs, err := ts.fetcher.Fetch(ctx, pm.UniverseIDs())
	if err != nil {
		return nil, err
	}

	return tracker.Aggregate(pm, details, thumbs), nil
}

func (ts *TrackerService) Current() (*models.Snapshot, error) {
	if snap := ts.current.Load(); snap != nil {
		return snap, nil
	}

	snap, err := ts.store.Load()
	if err != nil {
		return nil, err
	}
	ts.current.Store(snap)
	return snap, nil
}

func (ts *TrackerService) Put(snap *models.Snapshot) {
	if snap == nil {
		return
	}
	ts.current.Store(snap)
	ts.metrics.SetGamesTracked(len(snap.Games))
	ts.metrics.SetTotalPlaying(snap.TotalPlaying)
	ts.metrics.SetTotalVisits(snap.TotalVisits)
}

func (ts *TrackerService) GamesTracked() int {
	if snap := ts.current.Load(); snap != nil {
		return len(snap.Games)
	}
	return 0
}
