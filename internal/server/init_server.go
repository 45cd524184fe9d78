package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/morisolt/facetkit/internal"
	"github.com/morisolt/facetkit/internal/engine"
	"github.com/morisolt/facetkit/internal/infra"
	"github.com/morisolt/facetkit/internal/server/handler"
)

func InitServer(config *internal.Config, searcher engine.Searcher) (*echo.Echo, error) {
	e := echo.New()
	e.JSONSerializer = infra.SonicSerializer{}
	e.Use(SessionMiddleware())

	e.GET("/health", handler.NewHealthHandler())
	e.GET("/search", handler.NewSearchHandler(config, searcher))
	e.POST("/search", handler.NewSearchHandler(config, searcher))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e, nil
}
