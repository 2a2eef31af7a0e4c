// Package roblox is a typed client for the public Roblox web APIs used by
// the tracker: universe resolution, batched game details and batched game
// icons. Base URLs are configurable so tests can point the client at a
// local server.
package roblox

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gamepulse/internal/structures"
	json "github.com/goccy/go-json"
)

const defaultTimeout = 10 * time.Second

// GameDetail is one entry of the games batch response. Playing and Visits
// stay zero when the platform omits or nulls them.
type GameDetail struct {
	UniverseID  int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Playing     int64  `json:"playing"`
	Visits      int64  `json:"visits"`
}

// Thumbnail is one entry of the icons batch response.
type Thumbnail struct {
	UniverseID int64  `json:"targetId"`
	State      string `json:"state"`
	ImageUrl   string `json:"imageUrl"`
}

type universeResponse struct {
	UniverseID int64 `json:"universeId"`
}

type gamesResponse struct {
	Data []GameDetail `json:"data"`
}

type thumbnailsResponse struct {
	Data []Thumbnail `json:"data"`
}

type ClientInterface interface {
	ResolveUniverse(ctx context.Context, placeID int64) (int64, error)
	GameDetails(ctx context.Context, universeIDs []int64) ([]GameDetail, error)
	GameIcons(ctx context.Context, universeIDs []int64) ([]Thumbnail, error)
}

type Client struct {
	httpClient    *http.Client
	universeURL   string
	gamesURL      string
	thumbnailsURL string
	thumbnailSize string
}

func NewClient(conf *structures.Config) ClientInterface {
	timeout := conf.Tracker.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	size := conf.Roblox.ThumbnailSize
	if size == "" {
		size = "512x512"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		universeURL:   conf.Roblox.UniverseURL,
		gamesURL:      conf.Roblox.GamesURL,
		thumbnailsURL: conf.Roblox.ThumbnailsURL,
		thumbnailSize: size,
	}
}

// ResolveUniverse maps a place ID to its universe ID.
func (c *Client) ResolveUniverse(ctx context.Context, placeID int64) (int64, error) {
	reqURL := strings.ReplaceAll(c.universeURL, "{placeId}", strconv.FormatInt(placeID, 10))

	var resp universeResponse
	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		return 0, fmt.Errorf("resolve universe for place %d: %w", placeID, err)
	}
	if resp.UniverseID == 0 {
		return 0, fmt.Errorf("resolve universe for place %d: empty universe ID", placeID)
	}
	return resp.UniverseID, nil
}

// GameDetails fetches name, description and live counters for all given
// universe IDs in a single batched request.
func (c *Client) GameDetails(ctx context.Context, universeIDs []int64) ([]GameDetail, error) {
	q := url.Values{}
	q.Set("universeIds", joinIDs(universeIDs))

	var resp gamesResponse
	if err := c.getJSON(ctx, c.gamesURL+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch game details: %w", err)
	}
	return resp.Data, nil
}

// GameIcons fetches icon URLs for all given universe IDs in a single
// batched request.
func (c *Client) GameIcons(ctx context.Context, universeIDs []int64) ([]Thumbnail, error) {
	q := url.Values{}
	q.Set("universeIds", joinIDs(universeIDs))
	q.Set("returnPolicy", "PlaceHolder")
	q.Set("size", c.thumbnailSize)
	q.Set("format", "Png")
	q.Set("isCircular", "false")

	var resp thumbnailsResponse
	if err := c.getJSON(ctx, c.thumbnailsURL+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch game icons: %w", err)
	}
	return resp.Data, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}
