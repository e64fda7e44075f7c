package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/service"
)

// PrefillHandler handles prefill-link issuance and redemption.
type PrefillHandler struct {
	prefillService service.PrefillService
}

// NewPrefillHandler creates a new PrefillHandler.
func NewPrefillHandler(prefillService service.PrefillService) *PrefillHandler {
	return &PrefillHandler{prefillService: prefillService}
}

// IssueLink handles POST /api/v1/admin/prefill-links
// @Summary Issue a prefill link
// @Description Create a single-use renewal prefill link for a document (admin only)
// @Tags prefill
// @Accept json
// @Produce json
// @Router /admin/prefill-links [post]
func (h *PrefillHandler) IssueLink(c *gin.Context) {
	var input service.IssueLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	link, err := h.prefillService.IssueLink(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, link)
}

// Redeem handles GET /api/v1/prefill?t=
// @Summary Redeem a prefill link
// @Description Validate a prefill token and return the form-ready payload
// @Tags prefill
// @Produce json
// @Param t query string true "Prefill token"
// @Router /prefill [get]
func (h *PrefillHandler) Redeem(c *gin.Context) {
	token := c.Query("t")
	if token == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing token parameter t")
		return
	}

	payload, err := h.prefillService.Redeem(c.Request.Context(), token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, payload)
}
