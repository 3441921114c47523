package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"html-banner-generator/core/fingerprint"
	"html-banner-generator/feature/bundle"
	"html-banner-generator/feature/campaign"

	"go.uber.org/zap"
)

// Mode is the create/update/skip policy active for a run.
type Mode string

const (
	// ModeIncremental creates missing artifacts and re-renders stale ones.
	ModeIncremental Mode = "incremental"
	// ModeCreateOnly creates missing artifacts and never touches existing ones.
	ModeCreateOnly Mode = "create-only"
	// ModeUpdate re-renders existing artifacts and never creates missing ones.
	ModeUpdate Mode = "update"
)

// fallbackTemplateType is used when neither the CLI, the format nor the
// campaign selects a template type.
const fallbackTemplateType = "default"

// Options is the explicit run context threaded through every engine call.
// There is no ambient state: output root, mode and overrides all live here.
type Options struct {
	// RunID identifies this run in logs and the summary.
	RunID string

	// OutputRoot is the root directory artifacts are written to.
	OutputRoot string

	// TemplatesRoot is the directory holding one template root per type.
	TemplatesRoot string

	// TemplateOverride forces a template type for every format when set.
	TemplateOverride string

	// Mode selects the reconciliation policy for the whole run.
	Mode Mode

	// Package wraps every rendered artifact into a zip archive.
	Package bool

	// PackageOnly packages existing artifacts without generating anything.
	PackageOnly bool

	// Filters narrows the working set of formats.
	Filters campaign.Filters
}

// SizeWarning records an archive that exceeded its declared budget.
type SizeWarning struct {
	// Archive is the archive filename.
	Archive string `json:"archive"`

	// Result is the failing size check.
	Result bundle.CheckResult `json:"result"`
}

// Summary accumulates per-run counts.
type Summary struct {
	// RunID identifies the run the summary belongs to.
	RunID string `json:"run_id"`

	// Processed counts formats that survived filtering.
	Processed int `json:"processed"`

	// Created counts artifacts instantiated and rendered for the first time.
	Created int `json:"created"`

	// Updated counts existing artifacts that were re-rendered.
	Updated int `json:"updated"`

	// Skipped counts formats the active mode decided not to touch.
	Skipped int `json:"skipped"`

	// Filtered counts formats excluded by run filters.
	Filtered int `json:"filtered"`

	// Archives lists the zip archives produced by this run.
	Archives []string `json:"archives,omitempty"`

	// SizeWarnings lists archives exceeding their declared budget.
	// They never affect the exit status.
	SizeWarnings []SizeWarning `json:"size_warnings,omitempty"`
}

// Engine reconciles configured formats against the on-disk output tree.
// Formats are processed strictly sequentially in configuration order; any
// fatal error aborts the whole run before the next format begins.
type Engine struct {
	opts Options
	log  *zap.Logger
}

// NewEngine creates a reconciliation engine for one run.
func NewEngine(opts Options, l *zap.Logger) *Engine {
	if opts.Mode == "" {
		opts.Mode = ModeIncremental
	}
	return &Engine{opts: opts, log: l}
}

// Run processes every format of the campaign and returns the run summary.
// The batch is all-or-nothing: the first unrecovered error aborts the run
// with no partial-success policy. Size-budget overruns only warn.
func (e *Engine) Run(c *campaign.Campaign) (*Summary, error) {
	summary := &Summary{RunID: e.opts.RunID}

	for _, f := range c.Formats {
		templateType := e.resolveTemplateType(f, c)

		if !e.opts.Filters.Match(f, templateType) {
			summary.Filtered++
			continue
		}
		summary.Processed++

		if err := e.reconcileFormat(c, f, templateType, summary); err != nil {
			return summary, err
		}
	}

	e.log.Info("run finished",
		zap.Int("processed", summary.Processed),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("filtered", summary.Filtered),
		zap.Int("size_warnings", len(summary.SizeWarnings)),
	)
	return summary, nil
}

// reconcileFormat runs the full decision chain for a single format:
// existence, mode policy, instantiation, staleness, render, packaging.
func (e *Engine) reconcileFormat(c *campaign.Campaign, f campaign.FormatSpec, templateType string, summary *Summary) error {
	dir := e.artifactPath(c, f)
	exists := Exists(dir)
	log := e.log.With(
		zap.Int("index", f.Index),
		zap.String("size", f.Dimensions()),
		zap.String("path", dir),
	)

	budgetBytes, err := bundle.ParseBudget(f.SizeBudget)
	if err != nil {
		return fmt.Errorf("format %d: %w", f.Index, err)
	}

	if e.opts.PackageOnly {
		if !exists {
			log.Warn("nothing to package, artifact missing")
			summary.Skipped++
			return nil
		}
		return e.packageArtifact(c, f, dir, budgetBytes, summary, log)
	}

	// Mode decisions that need no staleness check: update never creates,
	// create-only never touches what is already there.
	if !exists && e.opts.Mode == ModeUpdate {
		log.Debug("skipping missing artifact in update mode")
		summary.Skipped++
		return nil
	}
	if exists && e.opts.Mode == ModeCreateOnly {
		log.Debug("skipping existing artifact in create-only mode")
		summary.Skipped++
		return nil
	}

	templateRoot := filepath.Join(e.opts.TemplatesRoot, templateType)
	if info, err := os.Stat(templateRoot); err != nil || !info.IsDir() {
		// Misconfiguration that would silently break every format using
		// this template; fail the whole run.
		return fmt.Errorf("template type %q: template root %s does not exist", templateType, templateRoot)
	}

	created := false
	if !exists {
		if err := Instantiate(templateRoot, dir); err != nil {
			return err
		}
		created = true
	}

	assets, err := ScanAssets(dir)
	if err != nil {
		return err
	}
	files := assetFiles(assets)

	fp, err := fingerprint.Fingerprint(f.Raw)
	if err != nil {
		return fmt.Errorf("fingerprint format %d: %w", f.Index, err)
	}

	prior, err := LoadState(dir)
	if err != nil {
		return err
	}
	stale := prior == nil ||
		!slices.Equal(prior.Assets, files) ||
		prior.Fingerprint != fp

	var render bool
	switch e.opts.Mode {
	case ModeUpdate:
		render = true
	case ModeCreateOnly:
		render = created
	default:
		render = created || stale
	}

	if !render {
		log.Debug("artifact up to date")
		summary.Skipped++
		return nil
	}

	specText, err := fingerprint.Canonical(f.Raw)
	if err != nil {
		return fmt.Errorf("serialize format %d: %w", f.Index, err)
	}

	clickTag := f.ClickTag
	if clickTag == "" {
		clickTag = c.ClickTag
	}

	vars := Vars{
		Campaign:     c.Name,
		Language:     f.Language,
		Motive:       f.Motive,
		Width:        f.Width,
		Height:       f.Height,
		Size:         f.Dimensions(),
		SizeBudget:   budgetBytes,
		AdServer:     f.AdServer,
		ClickTag:     clickTag,
		Assets:       assets,
		Spec:         string(specText),
		TemplateType: templateType,
	}
	if err := Render(dir, vars); err != nil {
		return err
	}

	state := &State{
		Assets:       files,
		Fingerprint:  fp,
		TemplateType: templateType,
		GeneratedAt:  time.Now().UTC(),
	}
	if err := state.Save(dir); err != nil {
		return err
	}

	if created {
		summary.Created++
		log.Info("artifact created", zap.String("template", templateType))
	} else {
		summary.Updated++
		log.Info("artifact updated", zap.String("template", templateType))
	}

	if e.opts.Package {
		return e.packageArtifact(c, f, dir, budgetBytes, summary, log)
	}
	return nil
}

// packageArtifact zips the artifact and runs the size guard when a budget
// was declared.
func (e *Engine) packageArtifact(c *campaign.Campaign, f campaign.FormatSpec, dir string, budgetBytes int64, summary *Summary, log *zap.Logger) error {
	name := bundle.ArchiveName(c.Name, f.Language, f.Motive, f.Width, f.Height)
	dest := filepath.Join(e.opts.OutputRoot, name)

	size, err := bundle.Package(dir, dest, "*"+SourceSuffix, StateFileName)
	if err != nil {
		return err
	}
	summary.Archives = append(summary.Archives, name)
	log.Info("artifact packaged", zap.String("archive", name), zap.Int64("bytes", size))

	result, err := bundle.Check(dest, budgetBytes)
	if err != nil {
		return err
	}
	switch result.Status {
	case bundle.StatusOversize:
		summary.SizeWarnings = append(summary.SizeWarnings, SizeWarning{Archive: name, Result: result})
		log.Warn("archive exceeds size budget",
			zap.String("archive", name),
			zap.Int64("actual_bytes", result.ActualBytes),
			zap.Int64("budget_bytes", result.BudgetBytes),
		)
	case bundle.StatusSkipped:
		log.Debug("no size budget declared", zap.String("archive", name))
	}
	return nil
}

// resolveTemplateType picks the template type for a format: CLI override,
// then per-format override, then campaign default, then the fixed fallback.
func (e *Engine) resolveTemplateType(f campaign.FormatSpec, c *campaign.Campaign) string {
	switch {
	case e.opts.TemplateOverride != "":
		return e.opts.TemplateOverride
	case f.TemplateType != "":
		return f.TemplateType
	case c.TemplateType != "":
		return c.TemplateType
	default:
		return fallbackTemplateType
	}
}

// artifactPath derives the deterministic output directory of a format:
// <outputRoot>/<campaign>/[<language>/][<motive>/]<WxH>.
func (e *Engine) artifactPath(c *campaign.Campaign, f campaign.FormatSpec) string {
	parts := []string{e.opts.OutputRoot, c.Name}
	if f.Language != "" {
		parts = append(parts, f.Language)
	}
	if f.Motive != "" {
		parts = append(parts, f.Motive)
	}
	parts = append(parts, f.Dimensions())
	return filepath.Join(parts...)
}
