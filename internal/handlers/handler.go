package handlers

import (
	"profiledash/internal/logger"
	"profiledash/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services  *service.Service
	log       *logger.Logger
	staticDir string
}

// NewHandler constructs a new HTTP handler with dependencies. staticDir is
// the base directory for the static file routes; empty disables them.
func NewHandler(services *service.Service, log *logger.Logger, staticDir string) *Handler {
	return &Handler{services: services, log: log, staticDir: staticDir}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestIDMiddleware)

	// Health endpoint
	router.GET("/health", h.health)

	// Plain-text pages and static files
	h.registerPageRoutes(router)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Output-region push (HTTP upgrade) — same port
	router.GET("/ws", h.wsRegion)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.homePage)
	r.GET("/about", h.aboutPage)
	if h.staticDir != "" {
		r.GET("/static/*filepath", h.serveStatic)
	}
	r.NoRoute(h.notFoundPage)
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerProfileRoutes(api)
		api.GET("/region", h.getRegion)
	}
}

func (h *Handler) registerProfileRoutes(api *gin.RouterGroup) {
	profiles := api.Group("/profiles")
	{
		profiles.GET("/:id", h.getProfile)
		profiles.GET("/:id/chained", h.getProfileChained)
		profiles.POST("/:id/render", h.renderProfile)
		// Body example: {"ids":[1,2,3]}
		profiles.POST("/batch", h.batchSummaries)
	}
}
