package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"pdfcheck/internal/domain"
)

const (
	pdfMargin     = 15.0
	pdfMarkWidth  = 8.0
	pdfLineHeight = 5.5
)

type rgb struct{ r, g, b int }

var (
	colorText      = rgb{40, 40, 40}
	colorMuted     = rgb{150, 150, 150}
	colorEvidence  = rgb{100, 100, 100}
	colorPresent   = rgb{34, 139, 34}
	colorMissing   = rgb{220, 20, 60}
	colorUncertain = rgb{234, 135, 35}
)

// WritePDF writes the report as an A4 PDF document.
func (r *Renderer) WritePDF(w io.Writer, item *domain.HistoryItem) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, 20, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetCreationDate(time.UnixMilli(item.Timestamp))
	pdf.SetTitle("Analysebericht", true)
	pdf.AliasNbPages("")

	// Core fonts are cp1252; umlauts need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	setColor := func(c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "", 10)
		setColor(colorMuted)
		pdf.SetXY(pdfMargin, 6)
		pdf.CellFormat(0, 6, "PDF Analysebericht", "", 0, "L", false, 0, "")
		pdf.SetY(20)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 10)
		setColor(colorMuted)
		pdf.CellFormat(0, 6, fmt.Sprintf("Seite %d von {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	width, _ := pdf.GetPageSize()
	contentWidth := width - 2*pdfMargin

	pdf.SetFont("Helvetica", "B", 22)
	setColor(colorText)
	pdf.CellFormat(0, 12, "Analysebericht", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 7, tr("PDF-Datei: "+item.PDFName), "", "L", false)
	pdf.CellFormat(0, 7, tr("Datum: "+r.timestamp(item)), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, tr(summary(item)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetDrawColor(200, 200, 200)
	y := pdf.GetY()
	pdf.Line(pdfMargin, y, width-pdfMargin, y)
	pdf.Ln(5)

	for _, res := range item.Results {
		// Keep a mark and at least the first item line on the same page.
		_, pageHeight := pdf.GetPageSize()
		if pdf.GetY()+2*pdfLineHeight > pageHeight-pdfMargin {
			pdf.AddPage()
		}

		// ZapfDingbats "4" is a check mark, "8" a ballot cross.
		mark, color := "8", colorMissing
		if res.Present {
			mark, color = "4", colorPresent
		}
		pdf.SetFont("ZapfDingbats", "", 12)
		setColor(color)
		pdf.SetX(pdfMargin)
		pdf.CellFormat(pdfMarkWidth, pdfLineHeight, mark, "", 0, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 11)
		setColor(colorText)
		pdf.MultiCell(contentWidth-pdfMarkWidth, pdfLineHeight, tr(res.Item), "", "L", false)

		if res.Evidence != "" {
			pdf.SetFont("Helvetica", "", 10)
			setColor(colorEvidence)
			pdf.SetX(pdfMargin + pdfMarkWidth)
			pdf.MultiCell(contentWidth-pdfMarkWidth, pdfLineHeight, tr(fmt.Sprintf("Beleg: \"%s\"", res.Evidence)), "", "L", false)
		}
		if res.Uncertainty != "" {
			pdf.SetFont("Helvetica", "I", 10)
			setColor(colorUncertain)
			pdf.SetX(pdfMargin + pdfMarkWidth)
			pdf.MultiCell(contentWidth-pdfMarkWidth, pdfLineHeight, tr("Unsicherheit: "+res.Uncertainty), "", "L", false)
		}
		pdf.Ln(4)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
