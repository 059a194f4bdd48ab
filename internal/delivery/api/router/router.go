// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"salesboard/config"
	"salesboard/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SalesHandler *handler.SalesHandler
	Config       *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	salesHandler *handler.SalesHandler
	config       *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		salesHandler: params.SalesHandler,
		config:       params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every route also answers with a trailing slash.
func (r *router) RegisterRoutes(e *echo.Echo) {
	uploadLimit := echomiddleware.BodyLimit(r.config.Importer.MaxUploadSize)
	requestLimit := echomiddleware.BodyLimit(r.config.HTTP.MaxRequestBodySize)

	get := func(path string, h echo.HandlerFunc) {
		e.GET(path, h, requestLimit)
		e.GET(path+"/", h, requestLimit)
	}

	get("/health", handler.HealthCheck)

	e.POST("/import_data", r.salesHandler.ImportData, uploadLimit)
	e.POST("/import_data/", r.salesHandler.ImportData, uploadLimit)

	get("/getmetrics", r.salesHandler.GetMetrics)
	get("/filtered-data", r.salesHandler.GetFilteredData)
	get("/platforms", r.salesHandler.ListPlatforms)
}
