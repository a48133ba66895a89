package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"pdfcheck/internal/domain"
)

const (
	xlsxResultsSheet = "Analyse"
	xlsxInfoSheet    = "Info"
)

// WriteXLSX writes a workbook with the results on one sheet and the report
// header on another.
func (r *Renderer) WriteXLSX(w io.Writer, item *domain.HistoryItem) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", xlsxResultsSheet); err != nil {
		return err
	}
	header := make([]interface{}, len(csvColumns))
	for i, c := range csvColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(xlsxResultsSheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxResultsSheet, "A1", "D1", bold); err != nil {
		return err
	}

	for i := range item.Results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := resultRow(&item.Results[i])
		values := []interface{}{row[0], row[1], row[2], row[3]}
		if err := f.SetSheetRow(xlsxResultsSheet, cell, &values); err != nil {
			return err
		}
	}
	for col, width := range map[string]float64{"A": 50, "B": 12, "C": 60, "D": 40} {
		if err := f.SetColWidth(xlsxResultsSheet, col, col, width); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(xlsxInfoSheet); err != nil {
		return err
	}
	info := [][]interface{}{
		{"PDF-Datei", item.PDFName},
		{"Datum", r.timestamp(item)},
		{"Verifiziert", item.PresentCount()},
		{"Gesamt", len(item.Results)},
	}
	if item.Model != "" {
		info = append(info, []interface{}{"Modell", item.Model})
	}
	if item.Degraded {
		info = append(info, []interface{}{"Hinweis", "Modellantwort konnte nicht ausgewertet werden"})
	}
	for i, row := range info {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(xlsxInfoSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(xlsxInfoSheet, "A", "A", 14); err != nil {
		return err
	}

	return f.Write(w)
}
