package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pdfcheck/internal/analysis"
	"pdfcheck/internal/domain"
	"pdfcheck/internal/llm"
	"pdfcheck/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// RespondAttachment sends a file download.
func RespondAttachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var validationErr *analysis.ValidationError
	var modelErr *llm.ModelInvocationError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "VALIDATION_ERROR", validationErr.Error()
	case errors.As(err, &modelErr):
		return http.StatusBadGateway, "MODEL_INVOCATION_FAILED", modelErr.Error()
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR", err.Error()
	case errors.Is(err, domain.ErrEmptyChecklist):
		return http.StatusBadRequest, "EMPTY_CHECKLIST", "checklist must contain at least one non-empty item"
	case errors.Is(err, domain.ErrChecklistNameRequired):
		return http.StatusBadRequest, "NAME_REQUIRED", "checklist name is required"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf"
	case errors.Is(err, domain.ErrUnsupportedExportFormat):
		return http.StatusBadRequest, "UNSUPPORTED_EXPORT_FORMAT", "unsupported export format; allowed: txt, pdf, csv, xlsx"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrPasswordRequired):
		return http.StatusBadRequest, "PASSWORD_REQUIRED", "password is required"
	case errors.Is(err, domain.ErrInvalidPassword):
		return http.StatusUnauthorized, "INVALID_PASSWORD", "invalid password"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrNotConfigured):
		return http.StatusInternalServerError, "NOT_CONFIGURED", "application is not configured correctly"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		middleware.GetLogger(c).Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	RespondError(c, status, code, msg)
}
