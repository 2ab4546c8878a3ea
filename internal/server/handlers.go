package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cfugett/ai-model-info-viewer/internal/core"
)

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// listProviders serves the full catalog as a provider list sorted by ID.
func (s *Server) listProviders(c *gin.Context) {
	snapshot, err := s.catalogService.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model data unavailable: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sourceUrl":  snapshot.SourceURL,
		"fetchedAt":  snapshot.FetchedAt.Format(time.RFC3339),
		"modelCount": snapshot.ModelCount,
		"providers":  sortedProviders(snapshot.Providers),
	})
}

// getProvider serves one provider by its identifier.
func (s *Server) getProvider(c *gin.Context) {
	snapshot, err := s.catalogService.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model data unavailable: " + err.Error()})
		return
	}

	provider, ok := snapshot.Providers[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown provider: " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, provider)
}

// refreshCatalog forces a re-fetch and re-extraction of the upstream source.
func (s *Server) refreshCatalog(c *gin.Context) {
	snapshot, err := s.catalogService.ForceRefresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "refresh failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sourceUrl":  snapshot.SourceURL,
		"fetchedAt":  snapshot.FetchedAt.Format(time.RFC3339),
		"providers":  len(snapshot.Providers),
		"modelCount": snapshot.ModelCount,
	})
}

// getStatsData serves request statistics for the dashboard.
func (s *Server) getStatsData(c *gin.Context) {
	stats := s.metricsService.GetRequestStats()

	c.JSON(http.StatusOK, gin.H{
		"currentTime":        time.Now().Format(core.TimeFormatDateTime),
		"currentQPS":         s.metricsService.GetQPS(),
		"totalRequests":      stats.TotalRequests,
		"successfulRequests": stats.SuccessfulRequests,
		"failedRequests":     stats.FailedRequests,
		"historyRecords":     len(stats.RequestHistory),
	})
}

func sortedProviders(catalog core.Catalog) []core.Provider {
	providers := make([]core.Provider, 0, len(catalog))
	for _, provider := range catalog {
		providers = append(providers, provider)
	}
	sort.Slice(providers, func(i, j int) bool {
		return providers[i].ID < providers[j].ID
	})
	return providers
}
