package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/export"
)

var (
	formatFlag string
	outDirFlag string
)

var exportCmd = &cobra.Command{
	Use:   "export <file.pdf>",
	Short: "Analyze a PDF and write a report file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	addChecklistFlags(exportCmd)
	exportCmd.Flags().StringVarP(&formatFlag, "format", "f", "txt", "report format: txt, pdf, csv or xlsx")
	exportCmd.Flags().StringVarP(&outDirFlag, "out", "o", ".", "output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	format := domain.ExportFormat(strings.ToLower(formatFlag))
	if !format.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedExportFormat, formatFlag)
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	item, err := analyzeFile(cmd.Context(), a, args[0])
	if err != nil {
		return err
	}

	f, err := export.NewRenderer(time.Local).Render(item, format)
	if err != nil {
		return err
	}
	path := filepath.Join(outDirFlag, f.Filename)
	if err := os.WriteFile(path, f.Data, 0o644); err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), map[string]any{
		"file":     path,
		"degraded": item.Degraded,
		"present":  item.PresentCount(),
		"total":    len(item.Results),
	})
}
