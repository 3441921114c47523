package cmd

import (
	"fmt"

	"html-banner-generator/core/config"
	"html-banner-generator/core/logger"
	"html-banner-generator/feature/preview"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveOutput string
	servePort   string
)

// serveCmd hosts the output root over HTTP for local preview browsing.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the output root for local preview browsing",
	Long: `Starts a local HTTP server over the output root so the preview page and
generated banners can be opened in a browser. The preview page is rebuilt
before serving.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveOutput, "output", "o", "", "Override the output root directory")
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Override the listen port")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
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
	if serveOutput != "" {
		root = serveOutput
	}
	port := cfg.Preview.Port
	if servePort != "" {
		port = servePort
	}

	page, err := preview.Build(root)
	if err != nil {
		return err
	}
	l.Info("preview page written", zap.String("path", page))

	return preview.Serve(root, port, l)
}
