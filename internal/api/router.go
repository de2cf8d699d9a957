// Package api wires the HTTP routes for the optimizer service.
package api

import (
	"log"
	"net/http"
	"os"
	"strings"

	"inventory-optimizer/internal/api/handlers"
	"inventory-optimizer/internal/api/middleware"
	"inventory-optimizer/internal/cache"
	"inventory-optimizer/internal/config"
	"inventory-optimizer/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Deps are the long-lived collaborators shared by handlers.
type Deps struct {
	Results *cache.ResultCache
	Metrics *metrics.Metrics
}

// NewRouter builds the gin engine: middleware, API routes and, when
// cfg.StaticDir exists, the SPA frontend.
func NewRouter(cfg *config.Server, deps Deps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	alloc := cfg.Allocator()
	optimizeHandler := handlers.NewOptimizeHandler(alloc, deps.Results, deps.Metrics)
	policyHandler := handlers.NewPolicyHandler(alloc.Policy())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Route kept for existing frontends.
	router.POST("/optimize", optimizeHandler.Optimize)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/optimize", optimizeHandler.Optimize)
		v1.GET("/optimize/:id", optimizeHandler.GetResult)
		v1.GET("/policies", policyHandler.ListPolicies)
	}

	staticDir := cfg.StaticDir
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.File(staticDir + "/index.html")
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		})
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	return router
}
