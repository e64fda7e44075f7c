package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/port"
)

// HealthHandler handles liveness and readiness probes.
type HealthHandler struct {
	db       *sqlx.DB
	corpRepo port.CorpRepository
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB, corpRepo port.CorpRepository) *HealthHandler {
	return &HealthHandler{db: db, corpRepo: corpRepo}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. Ready means the database answers; an
// empty corpdata table is still ready, the row count is informational.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not reachable"})
		return
	}
	rows, err := h.corpRepo.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "corpdata not readable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "rows": rows})
}
