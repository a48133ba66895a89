package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfcheck/internal/analysis"
)

func TestInterpretChecklist_ValidJSON(t *testing.T) {
	out := analysis.InterpretChecklist(`{"checklist":["Check signature","Check date"]}`)

	assert.Equal(t, analysis.StatusValidated, out.Status)
	assert.False(t, out.IsDegraded())
	assert.Empty(t, out.Reason)
	assert.Equal(t, []string{"Check signature", "Check date"}, out.Response.Checklist)
}

func TestInterpretChecklist_EmptyArrayIsValid(t *testing.T) {
	out := analysis.InterpretChecklist(`{"checklist":[]}`)

	assert.Equal(t, analysis.StatusValidated, out.Status)
	assert.NotNil(t, out.Response.Checklist)
	assert.Empty(t, out.Response.Checklist)
}

func TestInterpretChecklist_BulletFallback(t *testing.T) {
	out := analysis.InterpretChecklist("- Check signature\n• Check date\nNot a bullet line")

	assert.True(t, out.IsDegraded())
	assert.NotEmpty(t, out.Reason)
	assert.Equal(t, []string{"Check signature", "Check date"}, out.Response.Checklist)
}

func TestInterpretChecklist_FallbackTrimsAndDropsEmpty(t *testing.T) {
	raw := "Hier ist die Liste:\r\n  -   Unterschrift prüfen  \r\n-\n•   \n\t• Datum prüfen\n--doppelt"

	out := analysis.InterpretChecklist(raw)

	assert.True(t, out.IsDegraded())
	assert.Equal(t, []string{"Unterschrift prüfen", "Datum prüfen", "-doppelt"}, out.Response.Checklist)
}

func TestInterpretChecklist_EmptyCompletion(t *testing.T) {
	out := analysis.InterpretChecklist("")

	assert.True(t, out.IsDegraded())
	assert.NotNil(t, out.Response.Checklist)
	assert.Empty(t, out.Response.Checklist)
}

func TestInterpretChecklist_SchemaMismatchFallsBack(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing key", `{"items":["a"]}`},
		{"null list", `{"checklist":null}`},
		{"number entry", `{"checklist":["a", 2]}`},
		{"null entry", `{"checklist":["a", null]}`},
		{"not an object", `["a","b"]`},
		{"string list", `{"checklist":"a"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := analysis.InterpretChecklist(tt.raw)
			assert.True(t, out.IsDegraded())
			assert.Contains(t, out.Reason, "completion")
			assert.Empty(t, out.Response.Checklist)
		})
	}
}

func TestInterpretChecklist_CodeFence(t *testing.T) {
	raw := "```json\n{\"checklist\": [\"Rechnungsnummer vorhanden\"]}\n```"

	out := analysis.InterpretChecklist(raw)

	assert.Equal(t, analysis.StatusValidated, out.Status)
	assert.Equal(t, []string{"Rechnungsnummer vorhanden"}, out.Response.Checklist)
}

func TestInterpretChecklist_Idempotent(t *testing.T) {
	for _, raw := range []string{"", "- a\n- b", `{"checklist":["x"]}`, "garbage"} {
		assert.Equal(t, analysis.InterpretChecklist(raw), analysis.InterpretChecklist(raw))
	}
}

func TestInterpretAnalysis_RoundTrip(t *testing.T) {
	raw := `{"results":[
		{"item":"A","present":true,"evidence":"Seite 1: A","uncertainty":"leicht verschwommen"},
		{"item":"B","present":false}
	]}`

	out := analysis.InterpretAnalysis(raw, []string{"A", "B"})

	require.Equal(t, analysis.StatusValidated, out.Status)
	assert.Equal(t, []analysis.AnalysisResult{
		{Item: "A", Present: true, Evidence: "Seite 1: A", Uncertainty: "leicht verschwommen"},
		{Item: "B", Present: false},
	}, out.Response.Results)
}

func TestInterpretAnalysis_NullOptionalFieldsAccepted(t *testing.T) {
	raw := `{"results":[{"item":"A","present":true,"evidence":null,"uncertainty":null}]}`

	out := analysis.InterpretAnalysis(raw, []string{"A"})

	assert.Equal(t, analysis.StatusValidated, out.Status)
	assert.Equal(t, []analysis.AnalysisResult{{Item: "A", Present: true}}, out.Response.Results)
}

func TestInterpretAnalysis_LengthMismatchTolerated(t *testing.T) {
	raw := `{"results":[{"item":"A","present":true}]}`

	out := analysis.InterpretAnalysis(raw, []string{"A", "B", "C"})

	assert.Equal(t, analysis.StatusValidated, out.Status)
	assert.Len(t, out.Response.Results, 1)
}

func TestInterpretAnalysis_Unparseable(t *testing.T) {
	out := analysis.InterpretAnalysis("not json at all", []string{"A", "B"})

	assert.True(t, out.IsDegraded())
	assert.Equal(t, []analysis.AnalysisResult{
		{Item: "A", Present: false, Evidence: "", Uncertainty: analysis.UnparsedResponseReason},
		{Item: "B", Present: false, Evidence: "", Uncertainty: analysis.UnparsedResponseReason},
	}, out.Response.Results)
}

func TestInterpretAnalysis_SchemaMismatchFallsBack(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing results", `{"checklist":[]}`},
		{"null results", `{"results":null}`},
		{"null entry", `{"results":[null]}`},
		{"missing present", `{"results":[{"item":"A"}]}`},
		{"missing item", `{"results":[{"present":true}]}`},
		{"present as string", `{"results":[{"item":"A","present":"yes"}]}`},
		{"evidence as number", `{"results":[{"item":"A","present":true,"evidence":3}]}`},
	}
	checklist := []string{"A", "B", "C"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := analysis.InterpretAnalysis(tt.raw, checklist)
			require.True(t, out.IsDegraded())
			require.Len(t, out.Response.Results, len(checklist))
			for i, r := range out.Response.Results {
				assert.Equal(t, checklist[i], r.Item)
				assert.False(t, r.Present)
				assert.Empty(t, r.Evidence)
				assert.NotEmpty(t, r.Uncertainty)
			}
		})
	}
}

func TestInterpretAnalysis_EmptyCompletion(t *testing.T) {
	out := analysis.InterpretAnalysis("", []string{"A", "B", "C"})

	assert.True(t, out.IsDegraded())
	assert.Len(t, out.Response.Results, 3)
}

func TestInterpretAnalysis_Idempotent(t *testing.T) {
	checklist := []string{"A"}
	for _, raw := range []string{"", "nope", `{"results":[{"item":"A","present":true}]}`} {
		assert.Equal(t, analysis.InterpretAnalysis(raw, checklist), analysis.InterpretAnalysis(raw, checklist))
	}
}
