package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"html-banner-generator/core/config"
	"html-banner-generator/core/logger"
	"html-banner-generator/core/walk"
	"html-banner-generator/feature/generate"
	"html-banner-generator/feature/preview"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd keeps the output tree reconciled while inputs are edited.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch inputs and regenerate on change",
	Long: `Runs an initial incremental generation pass, then watches the campaign
document, the template roots and every artifact's assets directory.
Changes trigger another incremental pass after a short debounce.

The generate flags (--package, --preview, filters, ...) apply to every
triggered pass.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().AddFlagSet(generateCmd.Flags())
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	// Initial pass so the watcher starts from a reconciled tree.
	if _, err := executeRun(cfg, l); err != nil {
		return err
	}

	var w *generate.Watcher
	w, err = generate.NewWatcher(l, func() error {
		_, err := executeRun(cfg, l)
		if err == nil {
			// New artifacts bring new assets directories to watch.
			registerWatchPaths(w, cfg, l)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	registerWatchPaths(w, cfg, l)

	go w.Run()
	l.Info("watching for changes, press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	w.Stop()
	l.Info("watch stopped")
	return nil
}

// registerWatchPaths registers the campaign document, the template tree
// and every existing artifact's assets directory with the watcher.
func registerWatchPaths(w *generate.Watcher, cfg *config.Config, l *zap.Logger) {
	w.Add(campaignPath(cfg))
	w.Add(cfg.Paths.Templates)
	_ = walk.Walk(cfg.Paths.Templates, func(p, rel string, d fs.DirEntry) (walk.Decision, error) {
		if d.IsDir() {
			w.Add(p)
		}
		return walk.Continue, nil
	})

	root := cfg.Paths.Output
	if outputOverride != "" {
		root = outputOverride
	}
	entries, err := preview.Discover(root)
	if err != nil {
		l.Warn("artifact discovery failed", zap.Error(err))
		return
	}
	for _, e := range entries {
		w.Add(filepath.Join(root, filepath.FromSlash(e.Rel), generate.AssetsDirName))
	}
}
