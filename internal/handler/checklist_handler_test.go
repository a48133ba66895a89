package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/handler"
	"pdfcheck/internal/service"
	"pdfcheck/mocks"
)

func TestChecklistHandler_Create(t *testing.T) {
	svc := new(mocks.MockChecklistService)
	h := handler.NewChecklistHandler(svc, 1<<20)
	saved := &domain.SavedChecklist{ID: uuid.New(), Name: "Rechnung", Items: []string{"Nummer"}}
	svc.On("Save", mock.Anything, service.SaveChecklistInput{Name: "Rechnung", Items: []string{"Nummer"}}).Return(saved, nil)

	c, w := jsonContext(t, http.MethodPost, "/api/v1/saved-checklists", map[string]any{"name": "Rechnung", "items": []string{"Nummer"}})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), saved.ID.String())
}

func TestChecklistHandler_Create_NameRequired(t *testing.T) {
	svc := new(mocks.MockChecklistService)
	h := handler.NewChecklistHandler(svc, 1<<20)
	svc.On("Save", mock.Anything, mock.Anything).Return(nil, domain.ErrChecklistNameRequired)

	c, w := jsonContext(t, http.MethodPost, "/api/v1/saved-checklists", map[string]any{"name": "", "items": []string{"A"}})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "NAME_REQUIRED", decodeResponse(t, w).Error.Code)
}

func TestChecklistHandler_ListGetDelete(t *testing.T) {
	svc := new(mocks.MockChecklistService)
	h := handler.NewChecklistHandler(svc, 1<<20)
	id := uuid.New()
	svc.On("List", mock.Anything).Return([]domain.SavedChecklist{{ID: id, Name: "n"}}, nil)
	svc.On("Get", mock.Anything, id).Return(&domain.SavedChecklist{ID: id}, nil)
	svc.On("Delete", mock.Anything, id).Return(domain.ErrNotFound)

	c, w := historyContext(http.MethodGet, "/api/v1/saved-checklists", "")
	h.List(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = historyContext(http.MethodGet, "/api/v1/saved-checklists/"+id.String(), id.String())
	h.GetByID(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = historyContext(http.MethodDelete, "/api/v1/saved-checklists/"+id.String(), id.String())
	h.Delete(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}

func TestChecklistHandler_Import_TextBody(t *testing.T) {
	svc := new(mocks.MockChecklistService)
	h := handler.NewChecklistHandler(svc, 1<<20)
	svc.On("ImportText", "A\nB\n").Return([]string{"A", "B"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/saved-checklists/import", strings.NewReader("A\nB\n"))
	c.Request.Header.Set("Content-Type", "text/plain")
	h.Import(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":["A","B"]`)
}

func TestChecklistHandler_Import_Upload(t *testing.T) {
	svc := new(mocks.MockChecklistService)
	h := handler.NewChecklistHandler(svc, 1<<20)
	svc.On("ImportText", "Unterschrift\r\nDatum").Return([]string{"Unterschrift", "Datum"})

	c, w := multipartContext(t, "/api/v1/saved-checklists/import", "liste.TXT", "text/plain", []byte("Unterschrift\r\nDatum"), nil)
	h.Import(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestChecklistHandler_Import_RejectsNonText(t *testing.T) {
	svc := new(mocks.MockChecklistService)
	h := handler.NewChecklistHandler(svc, 1<<20)

	c, w := multipartContext(t, "/api/v1/saved-checklists/import", "liste.pdf", "application/pdf", pdfBytes, nil)
	h.Import(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", decodeResponse(t, w).Error.Code)
	svc.AssertNotCalled(t, "ImportText", mock.Anything)
}

func TestChecklistHandler_Export(t *testing.T) {
	svc := new(mocks.MockChecklistService)
	h := handler.NewChecklistHandler(svc, 1<<20)
	svc.On("ExportText", []string{"A", "B"}).Return("A\nB", nil)

	c, w := jsonContext(t, http.MethodPost, "/api/v1/saved-checklists/export", map[string]any{"items": []string{"A", "B"}})
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="checklist.txt"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "A\nB", w.Body.String())
}

func TestChecklistHandler_Export_Empty(t *testing.T) {
	svc := new(mocks.MockChecklistService)
	h := handler.NewChecklistHandler(svc, 1<<20)
	svc.On("ExportText", mock.Anything).Return("", domain.ErrEmptyChecklist)

	c, w := jsonContext(t, http.MethodPost, "/api/v1/saved-checklists/export", map[string]any{"items": []string{" "}})
	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMPTY_CHECKLIST", decodeResponse(t, w).Error.Code)
}
