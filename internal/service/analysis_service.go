package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pdfcheck/internal/analysis"
	"pdfcheck/internal/domain"
	"pdfcheck/internal/store"
)

// ChecklistOutput is a generated checklist.
type ChecklistOutput struct {
	Checklist []string `json:"checklist"`
	Degraded  bool     `json:"degraded"`
	Reason    string   `json:"reason,omitempty"`
}

// RunAnalysisInput is the DTO for running an analysis.
type RunAnalysisInput struct {
	PDFName   string
	DataURI   string
	Checklist []string
}

// AnalysisService runs the model flows and records analyses in the history.
type AnalysisService interface {
	GenerateChecklist(ctx context.Context, dataURI string) (*ChecklistOutput, error)
	RunAnalysis(ctx context.Context, input RunAnalysisInput) (*domain.HistoryItem, error)
}

type analysisService struct {
	analyzer *analysis.Analyzer
	history  *store.HistoryStore
	logger   *zap.Logger
	now      func() time.Time
}

// NewAnalysisService creates a new AnalysisService implementation.
func NewAnalysisService(analyzer *analysis.Analyzer, history *store.HistoryStore, logger *zap.Logger) AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &analysisService{
		analyzer: analyzer,
		history:  history,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *analysisService) GenerateChecklist(ctx context.Context, dataURI string) (*ChecklistOutput, error) {
	out, err := s.analyzer.GenerateChecklist(ctx, analysis.ChecklistRequest{DocumentURI: dataURI})
	if err != nil {
		return nil, err
	}
	return &ChecklistOutput{
		Checklist: out.Response.Checklist,
		Degraded:  out.IsDegraded(),
		Reason:    out.Reason,
	}, nil
}

// RunAnalysis drops blank checklist entries, analyzes the document and adds
// the result to the history. A failed model call records nothing.
func (s *analysisService) RunAnalysis(ctx context.Context, input RunAnalysisInput) (*domain.HistoryItem, error) {
	checklist := NonBlank(input.Checklist)
	if len(checklist) == 0 {
		return nil, domain.ErrEmptyChecklist
	}

	out, err := s.analyzer.AnalyzeDocument(ctx, analysis.AnalysisRequest{
		DocumentURI: input.DataURI,
		Checklist:   checklist,
	})
	if err != nil {
		return nil, err
	}

	results := make([]domain.AnalysisResultItem, 0, len(out.Response.Results))
	for _, r := range out.Response.Results {
		results = append(results, domain.AnalysisResultItem{
			Item:        r.Item,
			Present:     r.Present,
			Evidence:    r.Evidence,
			Uncertainty: r.Uncertainty,
		})
	}

	item := &domain.HistoryItem{
		ID:        uuid.New(),
		PDFName:   input.PDFName,
		Timestamp: s.now().UnixMilli(),
		Results:   results,
		Checklist: checklist,
		Degraded:  out.IsDegraded(),
		Model:     s.analyzer.ModelName(),
	}

	// The analysis itself succeeded; a history write failure is reported
	// in the log only.
	if err := s.history.Add(ctx, *item); err != nil {
		s.logger.Error("failed to save analysis to history", zap.String("id", item.ID.String()), zap.Error(err))
	}
	return item, nil
}

// NonBlank returns the entries that are not empty after trimming, unchanged.
func NonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}

// EncodeDataURI checks an uploaded document and encodes it as a base64 data
// URI. Only PDFs up to maxBytes are accepted; the declared content type or
// the sniffed one must be application/pdf.
func EncodeDataURI(contentType string, data []byte, maxBytes int64) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: file is empty", domain.ErrValidation)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", domain.ErrFileTooLarge
	}
	declared := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	if declared != domain.ContentTypePDF && http.DetectContentType(data) != domain.ContentTypePDF {
		return "", domain.ErrUnsupportedFileType
	}
	return "data:" + domain.ContentTypePDF + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
