package cmd

import (
	"fmt"

	"html-banner-generator/core/config"
	"html-banner-generator/core/logger"
	"html-banner-generator/feature/preview"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var previewOutput string

// previewCmd rebuilds the aggregate preview page without generating.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Rebuild the aggregate preview page",
	Long: `Scans the output root for generated banners and writes a single preview.html
listing every artifact with an embedded live view and a text filter.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "Override the output root directory")
	RootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	root := cfg.Paths.Output
	if previewOutput != "" {
		root = previewOutput
	}

	page, err := preview.Build(root)
	if err != nil {
		return err
	}
	l.Info("preview page written", zap.String("path", page))
	return nil
}
