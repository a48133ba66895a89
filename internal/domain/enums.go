package domain

// ContentTypePDF is the only document type accepted for analysis.
const ContentTypePDF = "application/pdf"

// ExportFormat represents a downloadable rendering of an analysis.
type ExportFormat string

const (
	ExportFormatTXT  ExportFormat = "txt"
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportContentTypes maps ExportFormat to its MIME content type.
var ExportContentTypes = map[ExportFormat]string{
	ExportFormatTXT:  "text/plain; charset=utf-8",
	ExportFormatPDF:  "application/pdf",
	ExportFormatCSV:  "text/csv; charset=utf-8",
	ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// IsValid reports whether f is a known export format.
func (f ExportFormat) IsValid() bool {
	_, ok := ExportContentTypes[f]
	return ok
}
