// Package output persists rewritten package manifests.
package output

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/packdist/distmap/internal/domain"
	"github.com/packdist/distmap/internal/manifest"
)

// Writer writes package.json files back to package directories.
type Writer struct {
	fs     afero.Fs
	dryRun bool
	backup bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	// Fs defaults to the OS filesystem
	Fs     afero.Fs
	DryRun bool
	Backup bool
}

// NewWriter creates a new manifest writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	return &Writer{
		fs:     opts.Fs,
		dryRun: opts.DryRun,
		backup: opts.Backup,
	}
}

// DryRun reports whether the writer is in dry-run mode.
func (w *Writer) DryRun() bool {
	return w.dryRun
}

// WriteManifest encodes pkg and writes it to dir/package.json. In dry-run
// mode the encode still happens (so errors surface) but nothing is written.
func (w *Writer) WriteManifest(dir string, pkg *manifest.PackageJSON) error {
	data, err := pkg.Encode()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}

	if w.dryRun {
		return nil
	}

	path := filepath.Join(dir, manifest.Filename)

	if w.backup {
		if err := w.writeBackup(path); err != nil {
			return err
		}
	}

	if err := afero.WriteFile(w.fs, path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}
	return nil
}

// writeBackup copies the current manifest to package.json.bak. A missing
// original is not an error; there is simply nothing to back up.
func (w *Writer) writeBackup(path string) error {
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		if exists, _ := afero.Exists(w.fs, path); !exists {
			return nil
		}
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}
	if err := afero.WriteFile(w.fs, path+".bak", data, 0644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}
	return nil
}
