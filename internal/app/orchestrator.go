// Package app wires the entry sources, the exports generator, and the
// manifest writer into a runnable pipeline.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/packdist/distmap/internal/config"
	"github.com/packdist/distmap/internal/domain"
	"github.com/packdist/distmap/internal/exports"
	"github.com/packdist/distmap/internal/manifest"
	"github.com/packdist/distmap/internal/output"
	"github.com/packdist/distmap/internal/report"
	"github.com/packdist/distmap/internal/scanner"
	"github.com/packdist/distmap/internal/utils"
)

// Orchestrator coordinates exports-map generation across package directories.
type Orchestrator struct {
	cfg    *config.Config
	fs     afero.Fs
	logger *utils.Logger

	manifests *manifest.Loader
	reports   *report.Loader
	scan      *scanner.Scanner
	writer    *output.Writer

	skipMissing bool
	progress    bool
}

// Options contains options for creating an orchestrator
type Options struct {
	domain.CommonOptions
	Config *config.Config
	Logger *utils.Logger

	// Fs defaults to the OS filesystem
	Fs afero.Fs

	// SkipMissing tolerates packages without build outputs instead of
	// failing the run; used in workspace mode where not every package
	// is built
	SkipMissing bool

	// Progress renders a progress bar across packages
	Progress bool
}

// New creates a new orchestrator with the given configuration
func New(opts Options) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	logger := opts.Logger
	if logger == nil {
		logLevel := cfg.Logging.Level
		if opts.Verbose {
			logLevel = "debug"
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}

	scan, err := scanner.New(scanner.Options{
		Fs:            fs,
		ChunkPatterns: cfg.Scan.ChunkPatterns,
	})
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		cfg:       cfg,
		fs:        fs,
		logger:    logger.WithComponent("orchestrator"),
		manifests: manifest.NewLoaderWithFs(fs),
		reports:   report.NewLoaderWithFs(fs),
		scan:      scan,
		writer: output.NewWriter(output.WriterOptions{
			Fs:     fs,
			DryRun: opts.DryRun,
			Backup: opts.Backup,
		}),
		skipMissing: opts.SkipMissing,
		progress:    opts.Progress,
	}, nil
}

// DiscoverPackages returns every package directory under root, skipping
// node_modules.
func (o *Orchestrator) DiscoverPackages(root string) ([]string, error) {
	dirs, err := utils.FindPackageDirs(o.fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to discover packages under %s: %w", root, err)
	}
	return dirs, nil
}

// Run processes the given package directories concurrently. All packages are
// attempted; the returned error aggregates per-package failures.
func (o *Orchestrator) Run(ctx context.Context, dirs []string) ([]domain.PackageResult, error) {
	if len(dirs) == 0 {
		return nil, nil
	}

	var bar interface{ Add(int) error }
	if o.progress && len(dirs) > 1 {
		b := utils.NewProgressBar(len(dirs), utils.DescGenerating)
		defer b.Finish()
		bar = b
	}

	tasks := utils.Process(ctx, o.cfg.Concurrency.Workers, dirs,
		func(ctx context.Context, dir string) (any, error) {
			res, err := o.ProcessPackage(ctx, dir)
			if bar != nil {
				_ = bar.Add(1)
			}
			return res, err
		})

	var (
		results []domain.PackageResult
		errs    []error
	)
	for _, task := range tasks {
		if task.Err != nil {
			if o.skipMissing && isMissingOutputs(task.Err) {
				o.logger.Debug().Str("dir", task.Data).Err(task.Err).Msg("skipping package")
				continue
			}
			errs = append(errs, domain.NewPackageError(task.Data, task.Err))
			continue
		}
		results = append(results, task.Result.(domain.PackageResult))
	}

	return results, errors.Join(errs...)
}

// ProcessPackage generates and persists the exports map for one package
// directory.
func (o *Orchestrator) ProcessPackage(ctx context.Context, dir string) (domain.PackageResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.PackageResult{}, err
	}

	log := o.logger.WithPackage(dir)

	pkg, err := o.manifests.Load(dir)
	if err != nil {
		return domain.PackageResult{}, err
	}

	entries, outDir, fromReport, err := o.resolveEntries(dir)
	if err != nil {
		return domain.PackageResult{}, err
	}

	result := domain.PackageResult{
		Dir:        dir,
		Name:       pkg.Name,
		EntryCount: len(entries),
		FromReport: fromReport,
	}

	mode := exports.Mode{
		Enabled: o.cfg.Exports.Enabled,
		Folders: o.cfg.Exports.Folders,
	}
	m := exports.Generate(entries, outDir, mode)
	if m == nil {
		// Nothing inferred: the existing exports field stays untouched.
		log.Debug().Msg("no exports generated")
		return result, nil
	}
	result.ExportCount = len(m)

	pkg.SetExports(m)
	if err := o.writer.WriteManifest(dir, pkg); err != nil {
		return result, err
	}
	result.Written = !o.writer.DryRun()

	log.Info().
		Int("entries", len(entries)).
		Int("exports", len(m)).
		Bool("written", result.Written).
		Msg("exports map generated")
	return result, nil
}

// resolveEntries picks the entry source for a package: an explicit report
// file when configured, a probed report when present, and a scan of the
// output directory otherwise.
func (o *Orchestrator) resolveEntries(dir string) ([]domain.BuildEntry, string, bool, error) {
	var path string
	if o.cfg.Scan.ReportFile != "" {
		path = filepath.Join(dir, o.cfg.Scan.ReportFile)
	} else {
		path = o.reports.Find(dir)
	}

	if path != "" {
		rep, err := o.reports.Load(path)
		if err != nil {
			return nil, "", false, err
		}
		return rep.Entries, rep.OutDir, true, nil
	}

	entries, err := o.scan.Scan(dir, o.cfg.Output.OutDir)
	if err != nil {
		return nil, "", false, err
	}
	return entries, o.cfg.Output.OutDir, false, nil
}

// isMissingOutputs reports whether an error only means the package has
// nothing to generate from.
func isMissingOutputs(err error) bool {
	return errors.Is(err, domain.ErrNoOutDir) ||
		errors.Is(err, domain.ErrNoEntries) ||
		errors.Is(err, manifest.ErrFileNotFound)
}
