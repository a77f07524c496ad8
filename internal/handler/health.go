package handler

import (
	"context"
	"net/http"
	"time"

	"building/internal/model"
	"building/internal/version"

	"github.com/gin-gonic/gin"
)

// LivenessMessage is served as plain text at /
const LivenessMessage = "building management is running"

// HealthHandler serves liveness, readiness and build info
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, LivenessMessage)
}

// Health handles GET /health, pinging the document store
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, model.NewErrorResponse("Database unavailable", err.Error()))
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("ok", version.Get()))
}

// Version handles GET /version
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}
