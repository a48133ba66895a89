package handler

import "time"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Password string `json:"password" example:"geheim"`
}

// GenerateChecklistRequest represents the checklist generation request body.
type GenerateChecklistRequest struct {
	PDFDataURI string `json:"pdf_data_uri" example:"data:application/pdf;base64,JVBERi0xLjQK..."`
}

// RunAnalysisRequest represents the analysis request body.
type RunAnalysisRequest struct {
	PDFName    string   `json:"pdf_name" example:"Mietvertrag.pdf"`
	PDFDataURI string   `json:"pdf_data_uri" example:"data:application/pdf;base64,JVBERi0xLjQK..."`
	Checklist  []string `json:"checklist" example:"Unterschrift beider Parteien,Kündigungsfrist"`
}

// SaveChecklistRequest represents the save checklist request body.
type SaveChecklistRequest struct {
	Name  string   `json:"name" example:"Mietvertrag"`
	Items []string `json:"items" example:"Unterschrift beider Parteien,Kündigungsfrist"`
}

// ChecklistItems is a bare list of checklist items.
type ChecklistItems struct {
	Items []string `json:"items"`
}

// --- Response Types ---

// AuthStatus reports the session state.
type AuthStatus struct {
	Authenticated bool       `json:"authenticated" example:"true"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// Response wraps a successful response.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
