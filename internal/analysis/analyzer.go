// Package analysis turns documents and checklists into model prompts and
// interprets the model's replies, falling back to a degraded result when a
// reply does not match the expected JSON shape.
package analysis

import (
	"context"

	"go.uber.org/zap"

	"pdfcheck/internal/llm"
	"pdfcheck/internal/port"
)

// Analyzer runs the checklist generation and document analysis flows
// against a single model client. It holds no per-call state and is safe for
// concurrent use.
type Analyzer struct {
	client port.ModelClient
	logger *zap.Logger
}

// NewAnalyzer creates an Analyzer. A nil logger disables logging.
func NewAnalyzer(client port.ModelClient, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{client: client, logger: logger.Named("analysis")}
}

// ModelName identifies the backing model for records and logs.
func (a *Analyzer) ModelName() string {
	return a.client.Name()
}

// GenerateChecklist asks the model for a checklist covering the document.
// It fails with *ValidationError for a bad request and with
// *llm.ModelInvocationError when the backend call fails. An unusable reply
// is not an error: it produces a degraded outcome.
func (a *Analyzer) GenerateChecklist(ctx context.Context, req ChecklistRequest) (Outcome[ChecklistResponse], error) {
	prompt, err := BuildChecklistPrompt(req)
	if err != nil {
		return Outcome[ChecklistResponse]{}, err
	}

	raw, err := a.complete(ctx, prompt)
	if err != nil {
		return Outcome[ChecklistResponse]{}, err
	}

	out := InterpretChecklist(raw)
	if out.IsDegraded() {
		a.logger.Warn("checklist reply did not match schema, using bullet fallback",
			zap.String("model", a.client.Name()),
			zap.String("reason", out.Reason),
			zap.Int("items", len(out.Response.Checklist)),
		)
	}
	return out, nil
}

// AnalyzeDocument asks the model to verify each checklist entry against the
// document. Errors follow the same rules as GenerateChecklist.
func (a *Analyzer) AnalyzeDocument(ctx context.Context, req AnalysisRequest) (Outcome[AnalysisResponse], error) {
	prompt, err := BuildAnalysisPrompt(req)
	if err != nil {
		return Outcome[AnalysisResponse]{}, err
	}

	raw, err := a.complete(ctx, prompt)
	if err != nil {
		return Outcome[AnalysisResponse]{}, err
	}

	out := InterpretAnalysis(raw, req.Checklist)
	if out.IsDegraded() {
		a.logger.Warn("analysis reply did not match schema, marking all items unverified",
			zap.String("model", a.client.Name()),
			zap.String("reason", out.Reason),
			zap.Int("items", len(req.Checklist)),
		)
	} else if len(out.Response.Results) != len(req.Checklist) {
		a.logger.Info("analysis result count differs from checklist",
			zap.Int("results", len(out.Response.Results)),
			zap.Int("checklist", len(req.Checklist)),
		)
	}
	return out, nil
}

func (a *Analyzer) complete(ctx context.Context, prompt string) (string, error) {
	a.logger.Debug("calling model", zap.String("model", a.client.Name()), zap.Int("prompt_bytes", len(prompt)))
	raw, err := a.client.Complete(ctx, prompt)
	if err != nil {
		mie := llm.AsModelInvocationError(a.client.Name(), err)
		a.logger.Error("model call failed", zap.String("model", a.client.Name()), zap.Error(mie))
		return "", mie
	}
	return raw, nil
}
