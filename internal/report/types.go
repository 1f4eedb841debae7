// Package report loads build report files. A report is the hand-off from
// the bundling pipeline: the ordered list of outputs it produced, each
// optionally flagged as a shared chunk, plus the output directory name.
// When a package has a report, distmap trusts it over scanning the output
// directory itself.
package report

import (
	"errors"
	"fmt"

	"github.com/packdist/distmap/internal/domain"
)

// DefaultFilenames are the report filenames probed inside a package
// directory, in order.
var DefaultFilenames = []string{
	"distmap.report.json",
	"distmap.report.yaml",
	"distmap.report.yml",
}

// DefaultOutDir is used when a report does not name its output directory.
const DefaultOutDir = "dist"

// Sentinel errors for the report package
var (
	// ErrNoEntries indicates the report lists no build outputs
	ErrNoEntries = errors.New("report must contain at least one entry")

	// ErrEmptyPath indicates an entry is missing its path
	ErrEmptyPath = errors.New("entry path cannot be empty")

	// ErrInvalidFormat indicates the report is not valid YAML/JSON
	ErrInvalidFormat = errors.New("report must be valid YAML or JSON")

	// ErrFileNotFound indicates no report file exists
	ErrFileNotFound = errors.New("report file not found")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, or .json)")
)

// Report is a parsed build report.
type Report struct {
	// OutDir is the output directory name, used verbatim as the prefix of
	// emitted export paths
	OutDir string `yaml:"outDir,omitempty" json:"outDir,omitempty"`

	// Entries are the build outputs in pipeline order
	Entries []domain.BuildEntry `yaml:"entries" json:"entries"`
}

// Validate checks the report for structural problems.
func (r *Report) Validate() error {
	if len(r.Entries) == 0 {
		return ErrNoEntries
	}
	for i, e := range r.Entries {
		if e.Path == "" {
			return fmt.Errorf("entry %d: %w", i, ErrEmptyPath)
		}
	}
	return nil
}
