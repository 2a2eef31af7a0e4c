package models

import (
	"errors"
	"sync"
	"time"
)

// ErrNoPlacesResolved is returned when not a single tracked place ID could
// be resolved to a universe ID.
var ErrNoPlacesResolved = errors.New("no place IDs could be resolved")

// ErrSnapshotNotFound is returned by the snapshot store when no snapshot
// has been persisted yet.
var ErrSnapshotNotFound = errors.New("no snapshot found")

// GameRecord is one fully joined entry in a snapshot. ThumbnailUrl is empty
// when the platform returned no icon for the universe.
type GameRecord struct {
	UniverseID   int64  `json:"id"`
	PlaceID      int64  `json:"placeId"`
	Name         string `json:"name"`
	Playing      int64  `json:"playing"`
	Visits       int64  `json:"visits"`
	ThumbnailUrl string `json:"thumbnailUrl,omitempty"`
	Description  string `json:"description"`
}

// Snapshot is the canonical aggregated view of all tracked games. Games are
// sorted descending by Playing; ties keep platform response order.
type Snapshot struct {
	GeneratedAt  time.Time    `json:"lastUpdated"`
	TotalPlaying int64        `json:"totalPlaying"`
	TotalVisits  int64        `json:"totalVisits"`
	Games        []GameRecord `json:"games"`
}

// PlaceMap is the bidirectional place↔universe mapping produced by the
// resolver. Universe IDs are unique, so both directions are total over the
// successfully resolved set.
type PlaceMap struct {
	mu              sync.RWMutex
	placeToUniverse map[int64]int64
	universeToPlace map[int64]int64
	universeIDs     []int64
}

func NewPlaceMap() *PlaceMap {
	return &PlaceMap{
		placeToUniverse: make(map[int64]int64),
		universeToPlace: make(map[int64]int64),
	}
}

func (pm *PlaceMap) Add(placeID, universeID int64) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if _, exists := pm.universeToPlace[universeID]; !exists {
		pm.universeIDs = append(pm.universeIDs, universeID)
	}
	pm.placeToUniverse[placeID] = universeID
	pm.universeToPlace[universeID] = placeID
}

func (pm *PlaceMap) UniverseFor(placeID int64) (int64, bool) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	id, ok := pm.placeToUniverse[placeID]
	return id, ok
}

func (pm *PlaceMap) PlaceFor(universeID int64) (int64, bool) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	id, ok := pm.universeToPlace[universeID]
	return id, ok
}

// UniverseIDs returns the resolved universe IDs in insertion order.
func (pm *PlaceMap) UniverseIDs() []int64 {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	out := make([]int64, len(pm.universeIDs))
	copy(out, pm.universeIDs)
	return out
}

func (pm *PlaceMap) Len() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.universeToPlace)
}
