package web

import (
	"testing"
	"time"

	"gamepulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSnapshot() *models.Snapshot {
	return &models.Snapshot{
		GeneratedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		TotalPlaying: 1234567,
		TotalVisits:  9500,
		Games: []models.GameRecord{
			{UniverseID: 1, PlaceID: 111, Name: "Alpha", Playing: 50, Visits: 1_500_000, ThumbnailUrl: "https://cdn.example/img-a.png"},
			{UniverseID: 2, PlaceID: 222, Name: "Beta", Playing: 10, Visits: 9000},
		},
	}
}

func TestRender_Totals(t *testing.T) {
	page, err := Render(renderSnapshot())
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "1,234,567")
	assert.Contains(t, html, "9,500")
	assert.Contains(t, html, "Last updated:")
}

func TestRender_GameCards(t *testing.T) {
	page, err := Render(renderSnapshot())
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "Alpha")
	assert.Contains(t, html, "https://www.roblox.com/games/111")
	assert.Contains(t, html, "https://cdn.example/img-a.png")
	// Abbreviated visit count for the first card.
	assert.Contains(t, html, "1.5M")
}

func TestRender_PlaceholderForMissingThumbnail(t *testing.T) {
	page, err := Render(renderSnapshot())
	require.NoError(t, err)

	assert.Contains(t, string(page), PlaceholderImage)
}

func TestRender_EmptySnapshot(t *testing.T) {
	snap := &models.Snapshot{GeneratedAt: time.Now().UTC()}

	page, err := Render(snap)
	require.NoError(t, err)
	assert.NotContains(t, string(page), "game-card\"")
}

func TestRenderError_ShowsErrorCounters(t *testing.T) {
	page, err := RenderError()
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, ">Error<")
	assert.Contains(t, html, "No snapshot available")
}

func TestRender_EscapesGameNames(t *testing.T) {
	snap := &models.Snapshot{
		GeneratedAt: time.Now().UTC(),
		Games: []models.GameRecord{
			{UniverseID: 1, PlaceID: 1, Name: `<script>alert("x")</script>`},
		},
	}

	page, err := Render(snap)
	require.NoError(t, err)
	assert.NotContains(t, string(page), `<script>alert`)
}
