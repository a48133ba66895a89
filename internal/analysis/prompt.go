package analysis

import (
	"strings"
)

const checklistPromptHeader = `Sie sind Experte für Dokumentenanalyse und Checklistenerstellung.

Sie analysieren das bereitgestellte PDF-Dokument und erstellen eine Checkliste mit Punkten, die überprüft werden müssen.
Die Checklistenpunkte sollten klar, prägnant und umsetzbar sein. Die Ausgabe muss auf Deutsch sein.

Bitte antworten Sie ausschließlich im folgenden JSON-Format:
{
  "checklist": ["Punkt 1", "Punkt 2", "Punkt 3", ...]
}
`

const analysisPromptHeader = `Sie sind ein Experte für die Analyse von PDF-Dokumenten. Ihre Aufgabe ist es, das bereitgestellte PDF-Dokument anhand der gegebenen Checkliste zu überprüfen.

Für jeden Punkt in der Checkliste:
1. Stellen Sie fest, ob die Bedingung im PDF erfüllt ist ('present' ist true) oder nicht ('present' ist false).
2. Extrahieren Sie den genauen Textausschnitt aus dem PDF, der Ihre Feststellung belegt. Fügen Sie diesen Text in das 'evidence'-Feld ein. Wenn kein direkter Beleg gefunden wird, lassen Sie das Feld leer.
3. Wenn Sie sich bei einer Feststellung unsicher sind, geben Sie einen kurzen Grund dafür im 'uncertainty'-Feld an.
4. Stellen Sie sicher, dass Ihre gesamte Analyse auf Deutsch ist.

Antworten Sie ausschließlich im folgenden JSON-Format:
{
  "results": [
    {
      "item": "Checklistenpunkt",
      "present": true,
      "evidence": "Textausschnitt aus PDF",
      "uncertainty": "Grund für Unsicherheit (optional)"
    }
  ]
}
`

// BuildChecklistPrompt validates the request and renders the checklist
// generation prompt with the document embedded.
func BuildChecklistPrompt(req ChecklistRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(checklistPromptHeader)
	b.WriteString("\nPDF-Dokument: ")
	b.WriteString(req.DocumentURI)
	b.WriteString("\n\nErstellen Sie die Checkliste auf Deutsch:")
	return b.String(), nil
}

// BuildAnalysisPrompt validates the request and renders the verification
// prompt, listing every checklist entry on its own "- " line.
func BuildAnalysisPrompt(req AnalysisRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(analysisPromptHeader)
	b.WriteString("\nPDF-Dokument: ")
	b.WriteString(req.DocumentURI)
	b.WriteString("\n\nCheckliste:\n")
	b.WriteString(bulletList(req.Checklist))
	return b.String(), nil
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		// Embedded line breaks would split one entry into several bullets.
		item = strings.Join(strings.Fields(item), " ")
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
