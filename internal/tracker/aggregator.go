package tracker

import (
	"sort"
	"time"

	"gamepulse/internal/models"
	"gamepulse/internal/roblox"
)

// Aggregate joins resolved place mappings, game details and thumbnails into
// a snapshot. Details whose universe ID has no place mapping are dropped so
// every emitted record carries a valid outbound link. Totals cover exactly
// the emitted records. Games are sorted descending by active players; the
// stable sort keeps platform response order for ties.
func Aggregate(pm *models.PlaceMap, details []roblox.GameDetail, thumbs []roblox.Thumbnail) *models.Snapshot {
	thumbByUniverse := make(map[int64]string, len(thumbs))
	for _, t := range thumbs {
		if t.ImageUrl != "" {
			thumbByUniverse[t.UniverseID] = t.ImageUrl
		}
	}

	var totalPlaying, totalVisits int64
	games := make([]models.GameRecord, 0, len(details))

	for _, d := range details {
		placeID, ok := pm.PlaceFor(d.UniverseID)
		if !ok {
			continue
		}

		totalPlaying += d.Playing
		totalVisits += d.Visits

		games = append(games, models.GameRecord{
			UniverseID:   d.UniverseID,
			PlaceID:      placeID,
			Name:         d.Name,
			Playing:      d.Playing,
			Visits:       d.Visits,
			ThumbnailUrl: thumbByUniverse[d.UniverseID],
			Description:  d.Description,
		})
	}

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Playing > games[j].Playing
	})

	return &models.Snapshot{
		GeneratedAt:  time.Now().UTC(),
		TotalPlaying: totalPlaying,
		TotalVisits:  totalVisits,
		Games:        games,
	}
}
