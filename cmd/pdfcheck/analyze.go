package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/service"
)

var (
	itemFlags     []string
	itemsFileFlag string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.pdf>",
	Short: "Verify a PDF against checklist items",
	Long: `Checks each item against the document and prints the results as JSON.
Items come from repeated --item flags and/or --items-file (one item per line).`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	addChecklistFlags(analyzeCmd)
}

func addChecklistFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&itemFlags, "item", nil, "checklist item (repeatable)")
	cmd.Flags().StringVar(&itemsFileFlag, "items-file", "", "file with one checklist item per line")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	item, err := analyzeFile(cmd.Context(), a, args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), item)
}

func analyzeFile(ctx context.Context, a *app, path string) (*domain.HistoryItem, error) {
	checklist := append([]string(nil), itemFlags...)
	if itemsFileFlag != "" {
		fromFile, err := readItemsFile(itemsFileFlag)
		if err != nil {
			return nil, err
		}
		checklist = append(checklist, fromFile...)
	}

	uri, err := a.readPDF(path)
	if err != nil {
		return nil, err
	}
	return a.analysis.RunAnalysis(ctx, service.RunAnalysisInput{
		PDFName:   filepath.Base(path),
		DataURI:   uri,
		Checklist: checklist,
	})
}
