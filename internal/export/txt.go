package export

import (
	"bufio"
	"fmt"
	"io"

	"pdfcheck/internal/domain"
)

// WriteTXT writes the plain-text report.
func (r *Renderer) WriteTXT(w io.Writer, item *domain.HistoryItem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Analysebericht für: %s\n", item.PDFName)
	fmt.Fprintf(bw, "Datum: %s\n", r.timestamp(item))
	fmt.Fprintf(bw, "%s\n\n", summary(item))
	bw.WriteString("--- Ergebnisse der Checkliste ---\n\n")

	for _, res := range item.Results {
		mark := "✗"
		if res.Present {
			mark = "✓"
		}
		fmt.Fprintf(bw, "[%s] %s\n", mark, res.Item)
		if res.Evidence != "" {
			fmt.Fprintf(bw, "   -> Beleg: \"%s\"\n", res.Evidence)
		}
		if res.Uncertainty != "" {
			fmt.Fprintf(bw, "   -> Unsicherheit: %s\n", res.Uncertainty)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}
