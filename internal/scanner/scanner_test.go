package scanner_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packdist/distmap/internal/domain"
	"github.com/packdist/distmap/internal/scanner"
)

func memFsWith(t *testing.T, paths ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, p := range paths {
		require.NoError(t, afero.WriteFile(fs, p, []byte("x"), 0644))
	}
	return fs
}

func TestScanner_Scan_SortedAndRelative(t *testing.T) {
	fs := memFsWith(t,
		"/pkg/dist/plugins/vite.mjs",
		"/pkg/dist/index.mjs",
		"/pkg/dist/index.d.ts",
	)

	s, err := scanner.New(scanner.Options{Fs: fs})
	require.NoError(t, err)

	entries, err := s.Scan("/pkg", "dist")
	require.NoError(t, err)

	want := []domain.BuildEntry{
		{Path: "index.d.ts"},
		{Path: "index.mjs"},
		{Path: "plugins/vite.mjs"},
	}
	assert.Equal(t, want, entries)
}

func TestScanner_Scan_ChunkClassification(t *testing.T) {
	fs := memFsWith(t,
		"/pkg/dist/index.mjs",
		"/pkg/dist/chunk-B2kmXkLb.mjs",
		"/pkg/dist/_chunks/runtime.mjs",
		"/pkg/dist/_shared-helpers.mjs",
	)

	s, err := scanner.New(scanner.Options{Fs: fs})
	require.NoError(t, err)

	entries, err := s.Scan("/pkg", "dist")
	require.NoError(t, err)

	chunks := make(map[string]bool, len(entries))
	for _, e := range entries {
		chunks[e.Path] = e.Chunk
	}

	assert.False(t, chunks["index.mjs"])
	assert.True(t, chunks["chunk-B2kmXkLb.mjs"])
	assert.True(t, chunks["_chunks/runtime.mjs"])
	assert.True(t, chunks["_shared-helpers.mjs"])
}

func TestScanner_Scan_CustomPatterns(t *testing.T) {
	fs := memFsWith(t, "/pkg/dist/vendor.mjs", "/pkg/dist/index.mjs")

	s, err := scanner.New(scanner.Options{Fs: fs, ChunkPatterns: []string{`^vendor\.`}})
	require.NoError(t, err)

	entries, err := s.Scan("/pkg", "dist")
	require.NoError(t, err)

	for _, e := range entries {
		assert.Equal(t, e.Path == "vendor.mjs", e.Chunk, e.Path)
	}
}

func TestScanner_New_InvalidPattern(t *testing.T) {
	_, err := scanner.New(scanner.Options{ChunkPatterns: []string{"["}})
	assert.Error(t, err)
}

func TestScanner_Scan_MissingOutDir(t *testing.T) {
	s, err := scanner.New(scanner.Options{Fs: afero.NewMemMapFs()})
	require.NoError(t, err)

	_, err = s.Scan("/pkg", "dist")
	assert.ErrorIs(t, err, domain.ErrNoOutDir)
}

func TestScanner_Scan_EmptyOutDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/pkg/dist", 0755))

	s, err := scanner.New(scanner.Options{Fs: fs})
	require.NoError(t, err)

	_, err = s.Scan("/pkg", "dist")
	assert.ErrorIs(t, err, domain.ErrNoEntries)
}
