package controllers

import (
	"net/http"

	"gamepulse/internal/providers"
	"gamepulse/internal/services"
	"gamepulse/internal/web"
)

// DashboardController serves the rendered dashboard. Pipeline or store
// failures degrade to the error-state page, never to a 5xx for the
// rendering surface itself.
type DashboardController struct {
	logger  providers.Logger
	service services.TrackerServiceInterface
}

func NewDashboardController(logger providers.Logger, service services.TrackerServiceInterface) *DashboardController {
	return &DashboardController{
		logger:  logger,
		service: service,
	}
}

func (dc *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var (
		page []byte
		err  error
	)

	snap, err := dc.service.Current()
	if err != nil {
		dc.logger.Warnf(providers.TypeGet, "No snapshot available for dashboard: %s", err)
		page, err = web.RenderError()
	} else {
		page, err = web.Render(snap)
	}

	if err != nil {
		dc.logger.Errorf(providers.TypeGet, "Dashboard render failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
