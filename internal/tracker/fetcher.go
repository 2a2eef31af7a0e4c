package tracker

import (
	"context"

	"gamepulse/internal/providers"
	"gamepulse/internal/roblox"
	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves the two independent datasets (game details, game icons)
// for a batch of universe IDs. Either call failing fails the whole fetch;
// the first error cancels the sibling request.
type Fetcher struct {
	client roblox.ClientInterface
	logger providers.Logger
}

func NewFetcher(client roblox.ClientInterface, logger providers.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		logger: logger,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, universeIDs []int64) ([]roblox.GameDetail, []roblox.Thumbnail, error) {
	var (
		details []roblox.GameDetail
		thumbs  []roblox.Thumbnail
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		details, err = f.client.GameDetails(gctx, universeIDs)
		return err
	})

	g.Go(func() error {
		var err error
		thumbs, err = f.client.GameIcons(gctx, universeIDs)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	f.logger.Debugf(providers.TypeFetch, "Fetched %d game details, %d thumbnails", len(details), len(thumbs))
	return details, thumbs, nil
}
