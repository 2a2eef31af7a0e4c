package internal

import (
	"net/http"

	"gamepulse/internal/controllers"
	"gamepulse/internal/providers"
	"gamepulse/internal/structures"
	"gamepulse/internal/web"
)

func InitRoutes(apiController *controllers.ApiController, dashboardController *controllers.DashboardController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/data.json", http.HandlerFunc(apiController.GetSnapshot))
	routers.Get("/static/", web.StaticHandler())
	routers.Get("/", http.HandlerFunc(dashboardController.Index))
	return routers
}
