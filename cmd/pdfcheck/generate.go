package main

import (
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file.pdf>",
	Short: "Generate a checklist for a PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	uri, err := a.readPDF(args[0])
	if err != nil {
		return err
	}
	out, err := a.analysis.GenerateChecklist(cmd.Context(), uri)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}
