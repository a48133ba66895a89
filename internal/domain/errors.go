package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrPasswordRequired        = errors.New("password is required")
	ErrInvalidPassword         = errors.New("invalid password")
	ErrNotConfigured           = errors.New("application is not configured correctly")
	ErrValidation              = errors.New("validation failed")
	ErrModelInvocation         = errors.New("model invocation failed")
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrFileTooLarge            = errors.New("file exceeds maximum allowed size")
	ErrEmptyChecklist          = errors.New("checklist is empty")
	ErrChecklistNameRequired   = errors.New("checklist name is required")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
