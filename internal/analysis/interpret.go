package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnparsedResponseReason is attached to every fallback analysis result.
const UnparsedResponseReason = "Failed to parse model response"

// Status tells a caller whether a response passed schema validation or was
// synthesized by the fallback path.
type Status string

const (
	StatusValidated Status = "validated"
	StatusDegraded  Status = "degraded"
)

// Outcome carries a response together with how it was obtained.
type Outcome[T any] struct {
	Response T
	Status   Status
	// Reason explains a degraded outcome. Empty when validated.
	Reason string
}

// IsDegraded reports whether the response came from the fallback path.
func (o Outcome[T]) IsDegraded() bool {
	return o.Status == StatusDegraded
}

// ChecklistResponse is the generated checklist.
type ChecklistResponse struct {
	Checklist []string `json:"checklist"`
}

// AnalysisResult is the verdict for one checklist entry.
type AnalysisResult struct {
	Item        string `json:"item"`
	Present     bool   `json:"present"`
	Evidence    string `json:"evidence,omitempty"`
	Uncertainty string `json:"uncertainty,omitempty"`
}

// AnalysisResponse holds one result per checklist entry the model answered.
type AnalysisResponse struct {
	Results []AnalysisResult `json:"results"`
}

type checklistPayload struct {
	Checklist []*string `json:"checklist" validate:"required,dive,required"`
}

type analysisPayload struct {
	Results []*resultPayload `json:"results" validate:"required"`
}

type resultPayload struct {
	Item        *string `json:"item" validate:"required"`
	Present     *bool   `json:"present" validate:"required"`
	Evidence    *string `json:"evidence"`
	Uncertainty *string `json:"uncertainty"`
}

// InterpretChecklist turns a raw completion into a checklist. A completion
// that is valid JSON of the form {"checklist": [string...]} is returned as is.
// Anything else is scanned for lines starting with "-" or "•", and those
// lines, with the marker removed, become the checklist.
func InterpretChecklist(raw string) Outcome[ChecklistResponse] {
	var payload checklistPayload
	reason := decodeStrict(raw, &payload)
	if reason == "" {
		items := make([]string, 0, len(payload.Checklist))
		for _, s := range payload.Checklist {
			items = append(items, *s)
		}
		return Outcome[ChecklistResponse]{
			Response: ChecklistResponse{Checklist: items},
			Status:   StatusValidated,
		}
	}
	return Outcome[ChecklistResponse]{
		Response: ChecklistResponse{Checklist: extractBullets(raw)},
		Status:   StatusDegraded,
		Reason:   reason,
	}
}

// InterpretAnalysis turns a raw completion into analysis results. A
// completion matching the results schema is returned as is, even if its
// length differs from the checklist. Otherwise every checklist entry gets a
// not-present result explaining that the response could not be parsed.
func InterpretAnalysis(raw string, checklist []string) Outcome[AnalysisResponse] {
	var payload analysisPayload
	reason := decodeStrict(raw, &payload)
	if reason == "" {
		reason = validateResults(payload.Results)
	}
	if reason == "" {
		results := make([]AnalysisResult, 0, len(payload.Results))
		for _, r := range payload.Results {
			res := AnalysisResult{Item: *r.Item, Present: *r.Present}
			if r.Evidence != nil {
				res.Evidence = *r.Evidence
			}
			if r.Uncertainty != nil {
				res.Uncertainty = *r.Uncertainty
			}
			results = append(results, res)
		}
		return Outcome[AnalysisResponse]{
			Response: AnalysisResponse{Results: results},
			Status:   StatusValidated,
		}
	}

	results := make([]AnalysisResult, 0, len(checklist))
	for _, item := range checklist {
		results = append(results, AnalysisResult{
			Item:        item,
			Present:     false,
			Uncertainty: UnparsedResponseReason,
		})
	}
	return Outcome[AnalysisResponse]{
		Response: AnalysisResponse{Results: results},
		Status:   StatusDegraded,
		Reason:   reason,
	}
}

// decodeStrict parses raw into v and validates it. It returns an empty
// string on success and the failure reason otherwise.
func decodeStrict(raw string, v interface{}) string {
	body := unwrapCodeFence(raw)
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Sprintf("completion is not valid JSON: %v", err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Sprintf("completion does not match the expected schema: %v", err)
	}
	return ""
}

func validateResults(results []*resultPayload) string {
	for i, r := range results {
		if r == nil {
			return fmt.Sprintf("completion does not match the expected schema: results[%d] is null", i)
		}
		if err := validate.Struct(r); err != nil {
			return fmt.Sprintf("completion does not match the expected schema: results[%d]: %v", i, err)
		}
	}
	return ""
}

// unwrapCodeFence returns the body of a completion wrapped in a markdown
// code fence such as ```json ... ```. Other input is returned unchanged.
func unwrapCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return raw
	}
	nl := strings.IndexByte(text, '\n')
	if nl < 0 {
		return raw
	}
	body := text[nl+1:]
	end := strings.LastIndex(body, "```")
	if end < 0 {
		return raw
	}
	return strings.TrimSpace(body[:end])
}

// extractBullets keeps lines whose trimmed text starts with "-" or "•",
// strips that marker and surrounding whitespace, and drops empty entries.
func extractBullets(raw string) []string {
	items := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		var rest string
		switch {
		case strings.HasPrefix(line, "-"):
			rest = strings.TrimPrefix(line, "-")
		case strings.HasPrefix(line, "•"):
			rest = strings.TrimPrefix(line, "•")
		default:
			continue
		}
		if item := strings.TrimSpace(rest); item != "" {
			items = append(items, item)
		}
	}
	return items
}
