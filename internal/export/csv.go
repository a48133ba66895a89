package export

import (
	"encoding/csv"
	"io"

	"pdfcheck/internal/domain"
)

// BOM is the UTF-8 byte order mark Excel needs to detect the encoding.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var csvColumns = []string{"Checklistenpunkt", "Vorhanden", "Beleg", "Unsicherheit"}

// CSVWriter wraps csv.Writer for exporting analysis results.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(csvColumns)
}

// WriteResults writes one row per result.
func (w *CSVWriter) WriteResults(results []domain.AnalysisResultItem) error {
	for i := range results {
		if err := w.csv.Write(resultRow(&results[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// WriteCSV writes the BOM, the header and all results of item.
func WriteCSV(w io.Writer, item *domain.HistoryItem) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteResults(item.Results); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func resultRow(r *domain.AnalysisResultItem) []string {
	return []string{r.Item, formatPresent(r.Present), r.Evidence, r.Uncertainty}
}

func formatPresent(v bool) string {
	if v {
		return "Ja"
	}
	return "Nein"
}
