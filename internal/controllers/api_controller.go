package controllers

import (
	"errors"
	"net/http"

	"gamepulse/internal/models"
	"gamepulse/internal/providers"
	"gamepulse/internal/services"
	json "github.com/goccy/go-json"
)

const snapshotCacheKey = "snapshot"

type ApiController struct {
	logger  providers.Logger
	service services.TrackerServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.TrackerServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		if errors.Is(err, models.ErrSnapshotNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		ac.logger.Errorf(providers.TypeGet, "Failed to compute %s: %s", cacheKey, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// GetSnapshot serves the aggregated snapshot as data.json.
func (ac *ApiController) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "Serving %s", r.URL.Path)
	ac.serveFromCacheOrCompute(w, snapshotCacheKey, func() (any, error) {
		return ac.service.Current()
	})
}
