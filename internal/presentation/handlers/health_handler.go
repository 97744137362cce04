package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repo-directory/internal/infrastructure/cache"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	organization string
	cache        *cache.Cache
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(organization string, c *cache.Cache) *HealthHandler {
	return &HealthHandler{organization: organization, cache: c}
}

// Health handles GET /health
// @Summary Health check
// @Description Returns the health status of the service. Does not call GitHub.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:        "healthy",
		Message:       "Service is running",
		Organization:  h.organization,
		CachedEntries: h.cache.Len(),
	})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Organization  string `json:"organization"`
	CachedEntries int    `json:"cached_entries"`
}
