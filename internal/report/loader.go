package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Loader loads and validates build report files.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader backed by the OS filesystem.
func NewLoader() *Loader {
	return NewLoaderWithFs(afero.NewOsFs())
}

// NewLoaderWithFs creates a loader backed by the given filesystem.
func NewLoaderWithFs(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Find returns the path of the first report file present in dir, or ""
// when the package has none.
func (l *Loader) Find(dir string) string {
	for _, name := range DefaultFilenames {
		path := filepath.Join(dir, name)
		if _, err := l.fs.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads and parses a report file from the given path.
func (l *Loader) Load(path string) (*Report, error) {
	if _, err := l.fs.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a report from raw bytes, dispatching on extension.
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Report, error) {
	ext = strings.ToLower(ext)

	var rep Report
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &rep); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &rep); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	if rep.OutDir == "" {
		rep.OutDir = DefaultOutDir
	}

	if err := rep.Validate(); err != nil {
		return nil, err
	}

	return &rep, nil
}
