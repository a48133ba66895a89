package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/service"
)

// HistoryHandler handles the analysis history.
type HistoryHandler struct {
	historyService service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// List handles GET /api/v1/history
// @Summary List past analyses
// @Tags history
// @Produce json
// @Success 200 {object} Response{data=[]domain.HistoryItem} "Newest first"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security CookieAuth
// @Router /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	items, err := h.historyService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, items)
}

// GetByID handles GET /api/v1/history/:id
// @Summary Get one analysis
// @Tags history
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} Response{data=domain.HistoryItem}
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security CookieAuth
// @Router /history/{id} [get]
func (h *HistoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.historyService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// Delete handles DELETE /api/v1/history/:id
// @Summary Delete an analysis
// @Tags history
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security CookieAuth
// @Router /history/{id} [delete]
func (h *HistoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.historyService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "analysis deleted"})
}

// Export handles GET /api/v1/history/:id/export
// @Summary Download an analysis report
// @Tags history
// @Produce plain,application/pdf,text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Analysis ID"
// @Param format query string false "txt, pdf, csv or xlsx" default(txt)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "Invalid ID or format"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security CookieAuth
// @Router /history/{id}/export [get]
func (h *HistoryHandler) Export(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	format := domain.ExportFormat(strings.ToLower(c.DefaultQuery("format", string(domain.ExportFormatTXT))))

	f, err := h.historyService.Export(c.Request.Context(), id, format)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondAttachment(c, f.Filename, f.ContentType, f.Data)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid ID")
		return uuid.Nil, false
	}
	return id, true
}
