// Command pdfcheck generates checklists for PDF documents and verifies
// documents against them from the command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pdfcheck/internal/analysis"
	"pdfcheck/internal/config"
	"pdfcheck/internal/llm"
	"pdfcheck/internal/llm/providers"
	"pdfcheck/internal/logging"
	"pdfcheck/internal/service"
	"pdfcheck/internal/storage/memory"
	"pdfcheck/internal/store"
)

var (
	providerFlag string
	modelFlag    string
	verboseFlag  bool
)

var rootCmd = &cobra.Command{
	Use:           "pdfcheck",
	Short:         "Generate and verify PDF checklists with a language model",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&providerFlag, "provider", "", "model provider (ollama, openai, claude, gemini); overrides PDFCHECK_LLM_PROVIDER")
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "model name; overrides PDFCHECK_LLM_MODEL")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log to stderr")

	rootCmd.AddCommand(generateCmd, analyzeCmd, exportCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app bundles what every subcommand needs.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	analysis service.AnalysisService
	client   io.Closer
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if providerFlag != "" {
		cfg.LLM.Provider = providerFlag
	}
	if modelFlag != "" {
		cfg.LLM.Model = modelFlag
	}

	logger := zap.NewNop()
	if verboseFlag {
		if logger, err = logging.New(config.LogConfig{Level: "debug", Format: "console"}); err != nil {
			return nil, err
		}
	}

	providers.Register()
	client, err := llm.NewClientWithFallback(ctx, &cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}
	if closer, ok := client.(io.Closer); ok {
		a.client = closer
	}
	history := store.NewHistoryStore(memory.NewStore(), logger)
	a.analysis = service.NewAnalysisService(analysis.NewAnalyzer(client, logger), history, logger)
	return a, nil
}

func (a *app) close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	_ = a.logger.Sync()
}

// readPDF reads a local file and encodes it as a data URI.
func (a *app) readPDF(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return service.EncodeDataURI("", data, a.cfg.Upload.MaxBytes())
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// readItemsFile reads one checklist item per line.
func readItemsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			items = append(items, line)
		}
	}
	return items, nil
}
