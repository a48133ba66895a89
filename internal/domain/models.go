package domain

import (
	"github.com/google/uuid"
)

// AnalysisResultItem is the stored verdict for one checklist entry.
type AnalysisResultItem struct {
	Item        string `json:"item"`
	Present     bool   `json:"present"`
	Evidence    string `json:"evidence,omitempty"`
	Uncertainty string `json:"uncertainty,omitempty"`
}

// HistoryItem records one completed document analysis.
type HistoryItem struct {
	ID        uuid.UUID            `json:"id"`
	PDFName   string               `json:"pdfName"`
	Timestamp int64                `json:"timestamp"` // unix milliseconds
	Results   []AnalysisResultItem `json:"results"`
	Checklist []string             `json:"checklist"`
	Degraded  bool                 `json:"degraded,omitempty"`
	Model     string               `json:"model,omitempty"`
}

// PresentCount returns how many results were verified as present.
func (h *HistoryItem) PresentCount() int {
	n := 0
	for _, r := range h.Results {
		if r.Present {
			n++
		}
	}
	return n
}

// SavedChecklist is a named, reusable checklist.
type SavedChecklist struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Items     []string  `json:"items"`
	Timestamp int64     `json:"timestamp"` // unix milliseconds
}
