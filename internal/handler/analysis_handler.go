package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/service"
)

var errMissingFile = fmt.Errorf("%w: file field is required", domain.ErrValidation)

// AnalysisHandler handles checklist generation and document analysis.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	maxUploadBytes  int64
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService, maxUploadBytes int64) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, maxUploadBytes: maxUploadBytes}
}

// GenerateChecklist handles POST /api/v1/checklists/generate
// @Summary Generate a checklist from a PDF
// @Description Accepts a JSON data URI or a multipart PDF upload. An unusable model reply yields degraded=true with a best-effort list.
// @Tags analysis
// @Accept json,mpfd
// @Produce json
// @Param body body GenerateChecklistRequest false "PDF as data URI"
// @Param file formData file false "PDF upload"
// @Success 200 {object} Response{data=service.ChecklistOutput}
// @Failure 400 {object} ErrorResponseBody "Invalid document"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 502 {object} ErrorResponseBody "Model call failed"
// @Security CookieAuth
// @Router /checklists/generate [post]
func (h *AnalysisHandler) GenerateChecklist(c *gin.Context) {
	var dataURI string
	if isMultipart(c) {
		_, uri, err := uploadedPDF(c, h.maxUploadBytes)
		if err != nil {
			HandleError(c, err)
			return
		}
		dataURI = uri
	} else {
		var req GenerateChecklistRequest
		if err := bindUploadJSON(c, &req, h.maxUploadBytes); err != nil {
			HandleError(c, err)
			return
		}
		if err := checkDataURISize(req.PDFDataURI, h.maxUploadBytes); err != nil {
			HandleError(c, err)
			return
		}
		dataURI = req.PDFDataURI
	}

	out, err := h.analysisService.GenerateChecklist(c.Request.Context(), dataURI)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, out)
}

// RunAnalysis handles POST /api/v1/analyses
// @Summary Analyze a PDF against a checklist
// @Description Verifies each checklist item, stores the result in the history and returns it. Blank items are ignored.
// @Tags analysis
// @Accept json,mpfd
// @Produce json
// @Param body body RunAnalysisRequest false "PDF as data URI with checklist"
// @Param file formData file false "PDF upload"
// @Param checklist formData []string false "Checklist items" collectionFormat(multi)
// @Success 201 {object} Response{data=domain.HistoryItem}
// @Failure 400 {object} ErrorResponseBody "Invalid document or empty checklist"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 502 {object} ErrorResponseBody "Model call failed"
// @Security CookieAuth
// @Router /analyses [post]
func (h *AnalysisHandler) RunAnalysis(c *gin.Context) {
	var input service.RunAnalysisInput
	if isMultipart(c) {
		name, uri, err := uploadedPDF(c, h.maxUploadBytes)
		if err != nil {
			HandleError(c, err)
			return
		}
		input = service.RunAnalysisInput{
			PDFName:   c.DefaultPostForm("pdf_name", name),
			DataURI:   uri,
			Checklist: c.PostFormArray("checklist"),
		}
	} else {
		var req RunAnalysisRequest
		if err := bindUploadJSON(c, &req, h.maxUploadBytes); err != nil {
			HandleError(c, err)
			return
		}
		if err := checkDataURISize(req.PDFDataURI, h.maxUploadBytes); err != nil {
			HandleError(c, err)
			return
		}
		input = service.RunAnalysisInput{
			PDFName:   req.PDFName,
			DataURI:   req.PDFDataURI,
			Checklist: req.Checklist,
		}
	}

	item, err := h.analysisService.RunAnalysis(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, item)
}
