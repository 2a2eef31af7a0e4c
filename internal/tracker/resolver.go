package tracker

import (
	"context"

	"gamepulse/internal/models"
	"gamepulse/internal/providers"
	"gamepulse/internal/roblox"
	"gamepulse/internal/structures"
	"golang.org/x/sync/errgroup"
)

const defaultWorkerCount = 8

// Resolver maps place IDs to universe IDs with bounded concurrency.
// Individual lookup failures are logged and skipped; only a fully failed
// resolution surfaces an error.
type Resolver struct {
	client  roblox.ClientInterface
	logger  providers.Logger
	workers int
}

func NewResolver(conf *structures.Config, client roblox.ClientInterface, logger providers.Logger) *Resolver {
	workers := conf.Tracker.WorkerCount
	if workers <= 0 {
		workers = defaultWorkerCount
	}
	return &Resolver{
		client:  client,
		logger:  logger,
		workers: workers,
	}
}

// Resolve looks up the universe ID for every place ID concurrently. The
// returned map contains only the successful pairs. Returns
// models.ErrNoPlacesResolved when nothing resolved.
func (r *Resolver) Resolve(ctx context.Context, placeIDs []int64) (*models.PlaceMap, error) {
	pm := models.NewPlaceMap()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, placeID := range placeIDs {
		placeID := placeID
		g.Go(func() error {
			universeID, err := r.client.ResolveUniverse(gctx, placeID)
			if err != nil {
				r.logger.Warnf(providers.TypeFetch, "Failed to resolve universe for place %d: %s", placeID, err)
				return nil
			}
			pm.Add(placeID, universeID)
			return nil
		})
	}

	// Workers never return errors, so Wait only reflects ctx cancellation
	// ordering; the map is complete once it returns.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if pm.Len() == 0 {
		return nil, models.ErrNoPlacesResolved
	}

	r.logger.Infof(providers.TypeFetch, "Resolved %d/%d place IDs", pm.Len(), len(placeIDs))
	return pm, nil
}
