package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/export"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/service"
)

// EntityHandler handles registry lookup and search endpoints.
type EntityHandler struct {
	entityService service.EntityService
}

// NewEntityHandler creates a new EntityHandler.
func NewEntityHandler(entityService service.EntityService) *EntityHandler {
	return &EntityHandler{entityService: entityService}
}

// Search handles GET /api/v1/entities/search?q=&limit=
// @Summary Search entities
// @Description Substring search over document numbers and corp lines, ranked
// @Tags entities
// @Produce json
// @Param q query string true "Query (min 2 characters)"
// @Param limit query int false "Result limit (1-50)" default(10)
// @Router /entities/search [get]
func (h *EntityHandler) Search(c *gin.Context) {
	q := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	results, err := h.entityService.Search(c.Request.Context(), q, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"results": results})
}

// GetByDoc handles GET /api/v1/entities/:doc
// @Summary Get an entity by document number
// @Description Full structured reconstruction of one registry record
// @Tags entities
// @Produce json
// @Param doc path string true "Document number"
// @Router /entities/{doc} [get]
func (h *EntityHandler) GetByDoc(c *gin.Context) {
	rec, err := h.entityService.GetByDoc(c.Request.Context(), c.Param("doc"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// Export handles GET /api/v1/entities/:doc/export
// @Summary Export an entity as XLSX
// @Tags entities
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param doc path string true "Document number"
// @Router /entities/{doc}/export [get]
func (h *EntityHandler) Export(c *gin.Context) {
	rec, err := h.entityService.GetByDoc(c.Request.Context(), c.Param("doc"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", rec.DocumentNumber))
	c.Status(http.StatusOK)

	if err := export.WriteRecordXLSX(c.Writer, rec); err != nil {
		// Headers are already out; all we can do is abort the stream.
		_ = c.Error(err)
	}
}
