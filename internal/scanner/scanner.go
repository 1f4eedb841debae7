// Package scanner discovers build outputs by walking a package's output
// directory. It is the fallback entry source for packages whose bundler
// does not emit a build report.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/spf13/afero"

	"github.com/packdist/distmap/internal/domain"
)

// DefaultChunkPatterns classify shared bundle fragments that bundlers emit
// without a report. Paths are matched with forward slashes, relative to the
// output directory.
var DefaultChunkPatterns = []string{
	`(^|/)chunk-[^/]*$`,
	`(^|/)_chunks/`,
	`(^|/)_shared[-.]`,
}

// Scanner walks an output directory and produces build entries.
type Scanner struct {
	fs            afero.Fs
	chunkPatterns []*regexp.Regexp
}

// Options contains options for creating a scanner.
type Options struct {
	// Fs is the filesystem to walk; defaults to the OS filesystem
	Fs afero.Fs

	// ChunkPatterns are regexes marking entries as chunks; defaults to
	// DefaultChunkPatterns
	ChunkPatterns []string
}

// New creates a scanner. Invalid chunk patterns are rejected up front so a
// bad config fails the run instead of silently matching nothing.
func New(opts Options) (*Scanner, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	patterns := opts.ChunkPatterns
	if patterns == nil {
		patterns = DefaultChunkPatterns
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, domain.NewValidationError("scan.chunk_patterns",
				fmt.Sprintf("invalid pattern %q: %v", p, err))
		}
		compiled = append(compiled, re)
	}

	return &Scanner{fs: opts.Fs, chunkPatterns: compiled}, nil
}

// Scan walks dir/outDir and returns the build entries found, sorted by path
// so downstream generation is deterministic. Paths are relative to the
// output directory and use forward slashes regardless of platform.
func (s *Scanner) Scan(dir, outDir string) ([]domain.BuildEntry, error) {
	root := filepath.Join(dir, outDir)

	if _, err := s.fs.Stat(root); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoOutDir, root)
	}

	var entries []domain.BuildEntry
	err := afero.Walk(s.fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		entries = append(entries, domain.BuildEntry{
			Path:  rel,
			Chunk: s.isChunk(rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoEntries, root)
	}
	return entries, nil
}

func (s *Scanner) isChunk(rel string) bool {
	for _, re := range s.chunkPatterns {
		if re.MatchString(rel) {
			return true
		}
	}
	return false
}
