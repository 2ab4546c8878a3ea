package server

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

// viewerPageHTML holds the embedded dashboard page.
//
//go:embed static/index.html
var viewerPageHTML embed.FS

func (s *Server) setupRoutes() {
	gin.SetMode(s.ginMode)
	s.router = gin.New()

	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(s.corsMiddleware())
	s.router.Use(s.maxBodySizeMiddleware())
	s.router.Use(s.rateLimitMiddleware())
	s.router.Use(s.requestIDMiddleware())
	s.router.Use(s.metricsMiddleware())

	s.router.GET("/", s.showViewerPage)
	s.router.GET("/health", s.healthCheck)

	api := s.router.Group("/api")
	{
		api.GET("/providers", s.listProviders)
		api.GET("/providers/:id", s.getProvider)
		api.POST("/refresh", s.refreshCatalog)
		api.GET("/stats", s.getStatsData)
	}
}

// showViewerPage serves the embedded dashboard HTML, which renders the
// catalog from /api/providers.
func (s *Server) showViewerPage(c *gin.Context) {
	data, err := viewerPageHTML.ReadFile("static/index.html")
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load viewer page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}
