package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Loader loads package.json files from package directories.
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

// Load reads the package.json inside dir.
func (l *Loader) Load(dir string) (*PackageJSON, error) {
	path := filepath.Join(dir, Filename)

	if _, err := l.fs.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, dir)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return l.LoadFromBytes(data)
}

// LoadFromBytes parses a package manifest from raw JSON.
func (l *Loader) LoadFromBytes(data []byte) (*PackageJSON, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	pkg := &PackageJSON{raw: raw}
	pkg.Name = stringField(raw, "name")
	pkg.Version = stringField(raw, "version")
	pkg.Type = stringField(raw, "type")
	pkg.Main = stringField(raw, "main")
	pkg.Module = stringField(raw, "module")
	pkg.Types = stringField(raw, "types")
	pkg.Files = stringSliceField(raw, "files")
	pkg.Exports = raw["exports"]

	return pkg, nil
}

func stringField(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

func stringSliceField(raw map[string]any, key string) []string {
	vals, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
