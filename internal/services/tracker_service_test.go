package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gamepulse/internal/models"
	"gamepulse/internal/roblox"
	"gamepulse/internal/structures"
	"gamepulse/internal/testutil"
	"gamepulse/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPlaces(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func serviceConfig(placesFile string) *structures.Config {
	return &structures.Config{
		Tracker: structures.TrackerConfig{
			PlacesFile:  placesFile,
			WorkerCount: 4,
		},
	}
}

func newTestService(conf *structures.Config, client *testutil.MockRobloxClient, store tracker.SnapshotStoreInterface, metrics *testutil.MockMetrics) TrackerServiceInterface {
	logger := &testutil.MockLogger{}
	resolver := tracker.NewResolver(conf, client, logger)
	fetcher := tracker.NewFetcher(client, logger)
	return NewTrackerService(conf, logger, resolver, fetcher, store, metrics)
}

func TestRefresh_EndToEnd(t *testing.T) {
	places := writeTestPlaces(t, `[111, 222]`)
	conf := serviceConfig(places)

	universes := map[int64]int64{111: 1, 222: 2}
	client := &testutil.MockRobloxClient{
		ResolveUniverseFn: func(_ context.Context, placeID int64) (int64, error) {
			return universes[placeID], nil
		},
		GameDetailsFn: func(_ context.Context, ids []int64) ([]roblox.GameDetail, error) {
			return []roblox.GameDetail{
				{UniverseID: 1, Name: "Alpha", Playing: 50, Visits: 500},
				{UniverseID: 2, Name: "Beta", Playing: 10, Visits: 9000},
			}, nil
		},
		GameIconsFn: func(_ context.Context, ids []int64) ([]roblox.Thumbnail, error) {
			return []roblox.Thumbnail{{UniverseID: 1, ImageUrl: "img-a"}}, nil
		},
	}

	metrics := &testutil.MockMetrics{}
	svc := newTestService(conf, client, &testutil.MockSnapshotStore{}, metrics)

	snap, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Games, 2)
	assert.Equal(t, int64(60), snap.TotalPlaying)
	assert.Equal(t, int64(9500), snap.TotalVisits)

	assert.Equal(t, int64(1), snap.Games[0].UniverseID)
	assert.Equal(t, int64(111), snap.Games[0].PlaceID)
	assert.Equal(t, int64(50), snap.Games[0].Playing)
	assert.Equal(t, "img-a", snap.Games[0].ThumbnailUrl)

	assert.Equal(t, int64(222), snap.Games[1].PlaceID)
	assert.Empty(t, snap.Games[1].ThumbnailUrl)

	// Gauges reflect the fresh snapshot.
	assert.Equal(t, 2, metrics.GamesTracked)
	assert.Equal(t, int64(60), metrics.TotalPlaying)
	assert.Equal(t, int64(9500), metrics.TotalVisits)

	// Refresh made the snapshot current without touching the store.
	current, err := svc.Current()
	require.NoError(t, err)
	assert.Same(t, snap, current)
}

func TestRefresh_NoPlacesResolved(t *testing.T) {
	places := writeTestPlaces(t, `[111, 222]`)
	conf := serviceConfig(places)

	client := &testutil.MockRobloxClient{
		ResolveUniverseFn: func(_ context.Context, _ int64) (int64, error) {
			return 0, errors.New("down")
		},
	}

	metrics := &testutil.MockMetrics{}
	svc := newTestService(conf, client, &testutil.MockSnapshotStore{}, metrics)

	_, err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, models.ErrNoPlacesResolved)
	assert.Equal(t, 1, metrics.RefreshFailures)
}

func TestRefresh_FetchFailureIsFatal(t *testing.T) {
	places := writeTestPlaces(t, `[111]`)
	conf := serviceConfig(places)

	fetchErr := errors.New("thumbnails down")
	client := &testutil.MockRobloxClient{
		ResolveUniverseFn: func(_ context.Context, placeID int64) (int64, error) {
			return placeID * 10, nil
		},
		GameDetailsFn: func(_ context.Context, ids []int64) ([]roblox.GameDetail, error) {
			return []roblox.GameDetail{{UniverseID: 1110}}, nil
		},
		GameIconsFn: func(_ context.Context, ids []int64) ([]roblox.Thumbnail, error) {
			return nil, fetchErr
		},
	}

	metrics := &testutil.MockMetrics{}
	svc := newTestService(conf, client, &testutil.MockSnapshotStore{}, metrics)

	_, err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, 1, metrics.RefreshFailures)
}

func TestRefresh_MissingPlacesFile(t *testing.T) {
	conf := serviceConfig(filepath.Join(t.TempDir(), "nope.json"))
	svc := newTestService(conf, &testutil.MockRobloxClient{}, &testutil.MockSnapshotStore{}, &testutil.MockMetrics{})

	_, err := svc.Refresh(context.Background())
	assert.Error(t, err)
}

func TestCurrent_FallsBackToStore(t *testing.T) {
	conf := serviceConfig("unused")
	stored := &models.Snapshot{
		GeneratedAt:  time.Now().UTC(),
		TotalPlaying: 42,
		Games:        []models.GameRecord{{UniverseID: 1, PlaceID: 111, Name: "Cached"}},
	}
	store := &testutil.MockSnapshotStore{Snapshot: stored}

	svc := newTestService(conf, &testutil.MockRobloxClient{}, store, &testutil.MockMetrics{})

	snap, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, int64(42), snap.TotalPlaying)
	assert.Equal(t, "Cached", snap.Games[0].Name)
}

func TestCurrent_NothingAvailable(t *testing.T) {
	conf := serviceConfig("unused")
	svc := newTestService(conf, &testutil.MockRobloxClient{}, &testutil.MockSnapshotStore{}, &testutil.MockMetrics{})

	_, err := svc.Current()
	assert.ErrorIs(t, err, models.ErrSnapshotNotFound)
}

func TestPut_MakesSnapshotCurrent(t *testing.T) {
	conf := serviceConfig("unused")
	metrics := &testutil.MockMetrics{}
	svc := newTestService(conf, &testutil.MockRobloxClient{}, &testutil.MockSnapshotStore{}, metrics)

	snap := &models.Snapshot{
		GeneratedAt:  time.Now().UTC(),
		TotalPlaying: 7,
		TotalVisits:  70,
		Games:        []models.GameRecord{{UniverseID: 1}},
	}
	svc.Put(snap)

	current, err := svc.Current()
	require.NoError(t, err)
	assert.Same(t, snap, current)
	assert.Equal(t, 1, svc.GamesTracked())
	assert.Equal(t, int64(7), metrics.TotalPlaying)
}
