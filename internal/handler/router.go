package handler

import (
	_ "agency-locator-api/docs"
	"agency-locator-api/internal/middleware"
	"agency-locator-api/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires handlers and middleware into a gin engine.
func NewRouter(agencies *AgencyHandler, locations *LocationHandler, health *HealthHandler, metrics *observability.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.Metrics(metrics))

	r.GET("/health", health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/agencies", agencies.ListAgencies)
	api.GET("/locations/resolve", locations.Resolve)
	api.GET("/zip-codes/:zip", locations.ZipCode)

	return r
}
