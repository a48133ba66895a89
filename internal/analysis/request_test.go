package analysis_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfcheck/internal/analysis"
	"pdfcheck/internal/domain"
)

const samplePDF = "data:application/pdf;base64,JVBERi0xLjQKJcOkw7zDtsOfCg=="

func TestChecklistRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		wantErr bool
	}{
		{"valid", samplePDF, false},
		{"empty", "", true},
		{"plain text", "hello.pdf", true},
		{"not base64", "data:application/pdf;base64,@@@", true},
		{"missing prefix", "application/pdf;base64,JVBERi0=", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := analysis.ChecklistRequest{DocumentURI: tt.uri}.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *analysis.ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.Contains(t, err.Error(), "pdfDataUri")
		})
	}
}

func TestAnalysisRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		checklist []string
		wantErr   string
	}{
		{"valid", []string{"A"}, ""},
		{"blank entries allowed next to real ones", []string{" ", "A"}, ""},
		{"nil", nil, "checklist is required"},
		{"empty", []string{}, "checklist must contain at least one entry"},
		{"only blanks", []string{"", "  ", "\t"}, "checklist must contain at least one non-empty entry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := analysis.AnalysisRequest{DocumentURI: samplePDF, Checklist: tt.checklist}.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildChecklistPrompt(t *testing.T) {
	prompt, err := analysis.BuildChecklistPrompt(analysis.ChecklistRequest{DocumentURI: samplePDF})
	require.NoError(t, err)

	assert.Contains(t, prompt, samplePDF)
	assert.Contains(t, prompt, `"checklist"`)
	assert.Contains(t, prompt, "Deutsch")
}

func TestBuildChecklistPrompt_InvalidRequest(t *testing.T) {
	prompt, err := analysis.BuildChecklistPrompt(analysis.ChecklistRequest{})
	assert.Empty(t, prompt)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestBuildAnalysisPrompt(t *testing.T) {
	req := analysis.AnalysisRequest{
		DocumentURI: samplePDF,
		Checklist:   []string{"Unterschrift vorhanden", "Datum\nangegeben"},
	}

	prompt, err := analysis.BuildAnalysisPrompt(req)
	require.NoError(t, err)

	assert.Contains(t, prompt, samplePDF)
	assert.Contains(t, prompt, `"results"`)
	assert.True(t, strings.HasSuffix(prompt, "- Unterschrift vorhanden\n- Datum angegeben"))
}

func TestBuildAnalysisPrompt_InvalidRequest(t *testing.T) {
	_, err := analysis.BuildAnalysisPrompt(analysis.AnalysisRequest{DocumentURI: samplePDF, Checklist: []string{" "}})
	var verr *analysis.ValidationError
	assert.True(t, errors.As(err, &verr))
}
