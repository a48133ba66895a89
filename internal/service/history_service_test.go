package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/export"
	"pdfcheck/internal/service"
	"pdfcheck/internal/storage/memory"
	"pdfcheck/internal/store"
)

func newHistoryService(t *testing.T) (service.HistoryService, domain.HistoryItem) {
	t.Helper()
	history := store.NewHistoryStore(memory.NewStore(), nil)
	item := domain.HistoryItem{
		ID:        uuid.New(),
		PDFName:   "Bericht.pdf",
		Timestamp: time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC).UnixMilli(),
		Checklist: []string{"A"},
		Results:   []domain.AnalysisResultItem{{Item: "A", Present: true}},
	}
	require.NoError(t, history.Add(context.Background(), item))
	return service.NewHistoryService(history, export.NewRenderer(time.UTC)), item
}

func TestHistoryService_ListGetDelete(t *testing.T) {
	svc, item := newHistoryService(t)
	ctx := context.Background()

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	got, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.PDFName, got.PDFName)

	require.NoError(t, svc.Delete(ctx, item.ID))
	_, err = svc.Get(ctx, item.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestHistoryService_Export(t *testing.T) {
	svc, item := newHistoryService(t)

	f, err := svc.Export(context.Background(), item.ID, domain.ExportFormatTXT)

	require.NoError(t, err)
	assert.Equal(t, "PDF_Analyse_Bericht.txt", f.Filename)
	assert.True(t, strings.HasPrefix(string(f.Data), "Analysebericht für: Bericht.pdf\nDatum: 2. Januar 2024 um 03:04\n"))
}

func TestHistoryService_Export_Errors(t *testing.T) {
	svc, item := newHistoryService(t)

	_, err := svc.Export(context.Background(), item.ID, domain.ExportFormat("docx"))
	assert.True(t, errors.Is(err, domain.ErrUnsupportedExportFormat))

	_, err = svc.Export(context.Background(), uuid.New(), domain.ExportFormatPDF)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
