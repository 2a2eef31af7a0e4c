package testutil

import (
	"context"
	"sync"
	"time"

	"gamepulse/internal/models"
	"gamepulse/internal/providers"
	"gamepulse/internal/roblox"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountLevel returns how many entries were recorded at the given level.
func (m *MockLogger) CountLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu               sync.Mutex
	Requests         int
	CacheHits        int
	CacheMisses      int
	RefreshFailures  int
	RefreshDurations int
	PersistDurations int
	GamesTracked     int
	TotalPlaying     int64
	TotalVisits      int64
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObserveRefreshDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshDurations++
}
func (m *MockMetrics) IncRefreshFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshFailures++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistDurations++
}
func (m *MockMetrics) SetGamesTracked(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GamesTracked = count
}
func (m *MockMetrics) SetTotalPlaying(count int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TotalPlaying = count
}
func (m *MockMetrics) SetTotalVisits(count int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TotalVisits = count
}

// MockRobloxClient implements roblox.ClientInterface with injectable behavior.
type MockRobloxClient struct {
	ResolveUniverseFn func(ctx context.Context, placeID int64) (int64, error)
	GameDetailsFn     func(ctx context.Context, universeIDs []int64) ([]roblox.GameDetail, error)
	GameIconsFn       func(ctx context.Context, universeIDs []int64) ([]roblox.Thumbnail, error)
}

func (m *MockRobloxClient) ResolveUniverse(ctx context.Context, placeID int64) (int64, error) {
	if m.ResolveUniverseFn != nil {
		return m.ResolveUniverseFn(ctx, placeID)
	}
	return placeID * 10, nil
}

func (m *MockRobloxClient) GameDetails(ctx context.Context, universeIDs []int64) ([]roblox.GameDetail, error) {
	if m.GameDetailsFn != nil {
		return m.GameDetailsFn(ctx, universeIDs)
	}
	return nil, nil
}

func (m *MockRobloxClient) GameIcons(ctx context.Context, universeIDs []int64) ([]roblox.Thumbnail, error) {
	if m.GameIconsFn != nil {
		return m.GameIconsFn(ctx, universeIDs)
	}
	return nil, nil
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// MockSnapshotStore implements tracker.SnapshotStoreInterface in memory.
type MockSnapshotStore struct {
	mu        sync.Mutex
	Snapshot  *models.Snapshot
	SaveCalls int
	SaveErr   error
	LoadErr   error
}

func (m *MockSnapshotStore) Save(snap *models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Snapshot = snap
	m.SaveCalls++
	return nil
}

func (m *MockSnapshotStore) Load() (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Snapshot == nil {
		return nil, models.ErrSnapshotNotFound
	}
	return m.Snapshot, nil
}

// MockTrackerService implements services.TrackerServiceInterface.
type MockTrackerService struct {
	mu           sync.Mutex
	Snapshot     *models.Snapshot
	RefreshErr   error
	CurrentErr   error
	RefreshCalls int
	PutCalls     []*models.Snapshot
}

func (m *MockTrackerService) Refresh(_ context.Context) (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshCalls++
	if m.RefreshErr != nil {
		return nil, m.RefreshErr
	}
	return m.Snapshot, nil
}

func (m *MockTrackerService) Current() (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CurrentErr != nil {
		return nil, m.CurrentErr
	}
	if m.Snapshot == nil {
		return nil, models.ErrSnapshotNotFound
	}
	return m.Snapshot, nil
}

func (m *MockTrackerService) Put(snap *models.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls = append(m.PutCalls, snap)
	m.Snapshot = snap
}

func (m *MockTrackerService) GamesTracked() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Snapshot == nil {
		return 0
	}
	return len(m.Snapshot.Games)
}
