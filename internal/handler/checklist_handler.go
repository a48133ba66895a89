package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/service"
)

// ChecklistHandler handles saved checklists and checklist text files.
type ChecklistHandler struct {
	checklistService service.ChecklistService
	maxUploadBytes   int64
}

// NewChecklistHandler creates a new ChecklistHandler.
func NewChecklistHandler(checklistService service.ChecklistService, maxUploadBytes int64) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService, maxUploadBytes: maxUploadBytes}
}

// List handles GET /api/v1/saved-checklists
// @Summary List saved checklists
// @Tags checklists
// @Produce json
// @Success 200 {object} Response{data=[]domain.SavedChecklist} "Newest first"
// @Security CookieAuth
// @Router /saved-checklists [get]
func (h *ChecklistHandler) List(c *gin.Context) {
	lists, err := h.checklistService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, lists)
}

// Create handles POST /api/v1/saved-checklists
// @Summary Save a checklist
// @Tags checklists
// @Accept json
// @Produce json
// @Param body body SaveChecklistRequest true "Name and items"
// @Success 201 {object} Response{data=domain.SavedChecklist}
// @Failure 400 {object} ErrorResponseBody "Name missing or no items"
// @Security CookieAuth
// @Router /saved-checklists [post]
func (h *ChecklistHandler) Create(c *gin.Context) {
	var req SaveChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	saved, err := h.checklistService.Save(c.Request.Context(), service.SaveChecklistInput{Name: req.Name, Items: req.Items})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, saved)
}

// GetByID handles GET /api/v1/saved-checklists/:id
// @Summary Get a saved checklist
// @Tags checklists
// @Produce json
// @Param id path string true "Checklist ID"
// @Success 200 {object} Response{data=domain.SavedChecklist}
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security CookieAuth
// @Router /saved-checklists/{id} [get]
func (h *ChecklistHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	saved, err := h.checklistService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, saved)
}

// Delete handles DELETE /api/v1/saved-checklists/:id
// @Summary Delete a saved checklist
// @Tags checklists
// @Produce json
// @Param id path string true "Checklist ID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security CookieAuth
// @Router /saved-checklists/{id} [delete]
func (h *ChecklistHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.checklistService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "checklist deleted"})
}

// Import handles POST /api/v1/saved-checklists/import
// @Summary Read checklist items from a text file
// @Description One item per line. Accepts a plain text body or a multipart .txt upload.
// @Tags checklists
// @Accept plain,mpfd
// @Produce json
// @Param file formData file false "Text file"
// @Success 200 {object} Response{data=ChecklistItems}
// @Failure 400 {object} ErrorResponseBody "Not a .txt file"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Security CookieAuth
// @Router /saved-checklists/import [post]
func (h *ChecklistHandler) Import(c *gin.Context) {
	var data []byte
	if isMultipart(c) {
		header, err := c.FormFile("file")
		if err != nil {
			HandleError(c, errMissingFile)
			return
		}
		if !strings.EqualFold(filepath.Ext(header.Filename), ".txt") {
			HandleError(c, domain.ErrUnsupportedFileType)
			return
		}
		if data, err = readFormFile(header, h.maxUploadBytes); err != nil {
			HandleError(c, err)
			return
		}
	} else {
		var err error
		if data, err = readLimited(c.Request.Body, h.maxUploadBytes); err != nil {
			HandleError(c, err)
			return
		}
	}
	RespondOK(c, ChecklistItems{Items: h.checklistService.ImportText(string(data))})
}

// Export handles POST /api/v1/saved-checklists/export
// @Summary Download checklist items as a text file
// @Tags checklists
// @Accept json
// @Produce plain
// @Param body body ChecklistItems true "Items"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "No items"
// @Security CookieAuth
// @Router /saved-checklists/export [post]
func (h *ChecklistHandler) Export(c *gin.Context) {
	var req ChecklistItems
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	text, err := h.checklistService.ExportText(req.Items)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondAttachment(c, service.ChecklistExportFilename, "text/plain; charset=utf-8", []byte(text))
}
