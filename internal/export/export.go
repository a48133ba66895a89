// Package export renders a stored analysis as a downloadable report.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"pdfcheck/internal/domain"
)

// File is a rendered report.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Renderer formats reports. Timestamps are shown in Location.
type Renderer struct {
	Location *time.Location
}

// NewRenderer creates a Renderer for loc, or the local zone when loc is nil.
func NewRenderer(loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{Location: loc}
}

// Render produces the report for item in the requested format.
func (r *Renderer) Render(item *domain.HistoryItem, format domain.ExportFormat) (*File, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case domain.ExportFormatTXT:
		err = r.WriteTXT(&buf, item)
	case domain.ExportFormatPDF:
		err = r.WritePDF(&buf, item)
	case domain.ExportFormatCSV:
		err = WriteCSV(&buf, item)
	case domain.ExportFormatXLSX:
		err = r.WriteXLSX(&buf, item)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedExportFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("rendering %s report: %w", format, err)
	}
	return &File{
		Filename:    BaseName(item) + "." + string(format),
		ContentType: domain.ExportContentTypes[format],
		Data:        buf.Bytes(),
	}, nil
}

// BaseName is "PDF_Analyse_" followed by the document name without its
// first ".pdf", or by the id when that leaves nothing.
func BaseName(item *domain.HistoryItem) string {
	name := strings.Replace(item.PDFName, ".pdf", "", 1)
	if name == "" {
		name = item.ID.String()
	}
	return "PDF_Analyse_" + sanitizeFilename(name)
}

// sanitizeFilename replaces characters that break paths or a quoted
// Content-Disposition value.
func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f, r == '/', r == '\\', r == '"':
			return '_'
		default:
			return r
		}
	}, name)
}

var germanMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// FormatGermanDate renders t as "2. Januar 2024 um 14:05".
func FormatGermanDate(t time.Time) string {
	return fmt.Sprintf("%d. %s %d um %02d:%02d", t.Day(), germanMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

func (r *Renderer) timestamp(item *domain.HistoryItem) string {
	return FormatGermanDate(time.UnixMilli(item.Timestamp).In(r.Location))
}

func summary(item *domain.HistoryItem) string {
	return fmt.Sprintf("Ergebnis: %d / %d verifiziert", item.PresentCount(), len(item.Results))
}
