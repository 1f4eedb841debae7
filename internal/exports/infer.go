package exports

import (
	"sort"
	"strings"

	"github.com/packdist/distmap/internal/domain"
)

// InferExportType decides whether the module referenced by an export
// condition resolves as ESM or CJS. The filename suffix dominates when
// present; otherwise the condition name is consulted, then the chain of
// enclosing condition names, outermost first. An unrecognized condition with
// no chain left defaults to ESM (no better signal exists).
//
// The function is total: any condition string is accepted.
func InferExportType(condition string, previousConditions []string, filename string) domain.ModuleType {
	switch {
	case strings.HasSuffix(filename, ".d.ts"):
		return domain.TypeESM
	case strings.HasSuffix(filename, ".mjs"):
		return domain.TypeESM
	case strings.HasSuffix(filename, ".cjs"):
		return domain.TypeCJS
	}

	// Walk outward through enclosing conditions until one resolves.
	for {
		switch condition {
		case "import":
			return domain.TypeESM
		case "require":
			return domain.TypeCJS
		}
		if len(previousConditions) == 0 {
			return domain.TypeESM
		}
		condition, previousConditions = previousConditions[0], previousConditions[1:]
	}
}

// ExtractExportFilenames flattens a manifest exports declaration into the
// list of files it references, each tagged with its inferred module type.
//
// The declaration may be nil, a bare path string, or an arbitrarily nested
// condition mapping as decoded from package.json. Keys ending in .json are
// skipped (manifest subpath declarations carry no module code). Map keys are
// visited in sorted order so the result is deterministic regardless of how
// the manifest was decoded.
func ExtractExportFilenames(exports any, conditions ...string) []domain.ExportFile {
	switch v := exports.(type) {
	case string:
		return []domain.ExportFile{{File: v, Type: domain.TypeESM}}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var files []domain.ExportFile
		for _, key := range keys {
			if strings.HasSuffix(key, ".json") {
				continue
			}
			switch val := v[key].(type) {
			case string:
				files = append(files, domain.ExportFile{
					File: val,
					Type: InferExportType(key, conditions, val),
				})
			case map[string]any:
				chain := append(append(make([]string, 0, len(conditions)+1), conditions...), key)
				files = append(files, ExtractExportFilenames(val, chain...)...)
			}
		}
		return files
	}
	return nil
}
