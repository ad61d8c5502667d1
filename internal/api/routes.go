package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/dnsname/internal/api/handlers"
	"github.com/jroosing/dnsname/internal/api/middleware"
	"github.com/jroosing/dnsname/internal/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/dnsname/internal/api/docs" // swagger docs
)

// RegisterRoutes wires the handlers into r.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	api.POST("/names/check", h.CheckName)
	api.POST("/names/sort", h.SortNames)
	api.GET("/names/:name/labels", h.NameLabels)

	api.GET("/index", h.ListIndex)
	api.POST("/index", h.AddIndex)
	api.GET("/index/:name", h.GetIndex)
	api.DELETE("/index/:name", h.DeleteIndex)
	api.GET("/index/:name/next", h.NextIndex)
}
