package cmd

import (
	"fmt"

	"html-banner-generator/core/config"
	"html-banner-generator/core/logger"
	"html-banner-generator/feature/campaign"
	"html-banner-generator/feature/generate"
	"html-banner-generator/feature/preview"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the generate command
	campaignFile     string
	outputOverride   string
	campaignOverride string
	clickTagOverride string
	templateOverride string
	packageBundles   bool
	packageOnly      bool
	buildPreview     bool
	createOnlyMode   bool
	updateMode       bool
	filterSizes      []string
	filterLangs      []string
	filterMotives    []string
	filterTemplates  []string
	filterIndexes    []int
)

// generateCmd runs one reconciliation pass over the campaign document.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate banner artifacts from the campaign configuration",
	Long: `Generate banner artifacts from the campaign configuration.

For each configured format the engine decides whether its artifact is new,
stale or up-to-date and applies the active reconciliation mode. Existing
artifacts are never re-instantiated from the template, so hand-edited files
and campaign assets survive every run.

Examples:
  # Incremental run (default): create missing, re-render stale
  banner-generator generate

  # Only create artifacts that do not exist yet
  banner-generator generate --create-only

  # Force a re-render of everything that exists
  banner-generator generate --update

  # Package zips and rebuild the preview page
  banner-generator generate --package --preview

  # Narrow the working set
  banner-generator generate --filter-size 300x250 --filter-lang en`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&campaignFile, "config", "c", "", "Campaign configuration file (default from tool config)")
	generateCmd.Flags().StringVarP(&outputOverride, "output", "o", "", "Override the output root directory")
	generateCmd.Flags().StringVar(&campaignOverride, "campaign", "", "Override the campaign name")
	generateCmd.Flags().StringVar(&clickTagOverride, "clicktag", "", "Override the default click-through URL")
	generateCmd.Flags().StringVarP(&templateOverride, "template", "t", "", "Force a template type for every format")
	generateCmd.Flags().BoolVar(&packageBundles, "package", false, "Package every rendered artifact into a zip archive")
	generateCmd.Flags().BoolVar(&packageOnly, "package-only", false, "Package existing artifacts without generating")
	generateCmd.Flags().BoolVar(&buildPreview, "preview", false, "Rebuild the aggregate preview page after the run")
	generateCmd.Flags().BoolVar(&createOnlyMode, "create-only", false, "Create missing artifacts, never touch existing ones")
	generateCmd.Flags().BoolVar(&updateMode, "update", false, "Re-render existing artifacts, never create missing ones")
	generateCmd.Flags().StringSliceVar(&filterSizes, "filter-size", nil, "Only process formats with these WxH sizes")
	generateCmd.Flags().StringSliceVar(&filterLangs, "filter-lang", nil, "Only process formats with these languages")
	generateCmd.Flags().StringSliceVar(&filterMotives, "filter-motive", nil, "Only process formats with these motives")
	generateCmd.Flags().StringSliceVar(&filterTemplates, "filter-template", nil, "Only process formats with these resolved template types")
	generateCmd.Flags().IntSliceVar(&filterIndexes, "filter-index", nil, "Only process formats at these list indexes")

	RootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	_, err = executeRun(cfg, l)
	return err
}

// executeRun performs one full generation pass with the current flag values.
// It is shared between the generate and watch commands.
func executeRun(cfg *config.Config, l *zap.Logger) (*generate.Summary, error) {
	mode, err := resolveMode()
	if err != nil {
		return nil, err
	}

	opts := generate.Options{
		RunID:            uuid.NewString(),
		OutputRoot:       cfg.Paths.Output,
		TemplatesRoot:    cfg.Paths.Templates,
		TemplateOverride: templateOverride,
		Mode:             mode,
		Package:          packageBundles,
		PackageOnly:      packageOnly,
		Filters: campaign.Filters{
			Sizes:     filterSizes,
			Languages: filterLangs,
			Motives:   filterMotives,
			Templates: filterTemplates,
			Indexes:   filterIndexes,
		},
	}
	if outputOverride != "" {
		opts.OutputRoot = outputOverride
	}

	l = l.With(zap.String("run_id", opts.RunID))

	c, err := campaign.Load(campaignPath(cfg))
	if err != nil {
		return nil, err
	}
	applyOverrides(c)

	l.Info("starting generation",
		zap.String("campaign", c.Name),
		zap.String("mode", string(opts.Mode)),
		zap.Int("formats", len(c.Formats)),
	)
	if !opts.Filters.Empty() {
		l.Info("run filters active, formats outside the selection are left untouched")
	}

	summary, err := generate.NewEngine(opts, l).Run(c)
	if err != nil {
		return nil, err
	}

	if buildPreview {
		page, err := preview.Build(opts.OutputRoot)
		if err != nil {
			return nil, err
		}
		l.Info("preview page written", zap.String("path", page))
	}
	return summary, nil
}

// resolveMode maps the mode flags onto a reconciliation mode. Selecting both
// switches at once is a configuration error.
func resolveMode() (generate.Mode, error) {
	switch {
	case createOnlyMode && updateMode:
		return "", fmt.Errorf("--create-only and --update are mutually exclusive")
	case createOnlyMode:
		return generate.ModeCreateOnly, nil
	case updateMode:
		return generate.ModeUpdate, nil
	default:
		return generate.ModeIncremental, nil
	}
}

// campaignPath picks the campaign document: the --config flag when given,
// otherwise the tool configuration default.
func campaignPath(cfg *config.Config) string {
	if campaignFile != "" {
		return campaignFile
	}
	return cfg.Paths.Campaign
}

// applyOverrides folds the CLI overrides into the loaded campaign. A bare
// array document has no campaign name; fall back to a neutral one so the
// output path stays well-formed.
func applyOverrides(c *campaign.Campaign) {
	if campaignOverride != "" {
		c.Name = campaignOverride
	}
	if c.Name == "" {
		c.Name = "campaign"
	}
	if clickTagOverride != "" {
		c.ClickTag = clickTagOverride
	}
}
