package exports

import (
	"strings"

	"github.com/packdist/distmap/internal/domain"
)

// strippableExts are the extensions removed when deriving the logical entry
// name used for grouping. A residual trailing ".d" (declaration files) is
// stripped afterwards.
var strippableExts = []string{
	".js", ".mjs", ".cjs", ".ts", ".mts", ".cts", ".json", ".jsx", ".tsx",
}

// Declaration lookup tables, one per context. The top-level types field
// prefers the generic declaration; the per-condition types sub-keys prefer
// their module-specific variant and fall back to the generic one.
var (
	typesPriority   = []domain.FileKind{domain.KindDTS, domain.KindDMTS, domain.KindDCTS}
	importPriority  = []domain.FileKind{domain.KindDMTS, domain.KindDTS}
	requirePriority = []domain.FileKind{domain.KindDCTS, domain.KindDTS}
)

// Classify returns the suffix-exclusive kind of a build output path.
// Declaration suffixes are checked first so that .d.mts is never mistaken
// for a runtime module.
func Classify(path string) domain.FileKind {
	switch {
	case strings.HasSuffix(path, ".d.mts"):
		return domain.KindDMTS
	case strings.HasSuffix(path, ".d.cts"):
		return domain.KindDCTS
	case strings.HasSuffix(path, ".d.ts"):
		return domain.KindDTS
	case strings.HasSuffix(path, ".mjs"):
		return domain.KindMJS
	case strings.HasSuffix(path, ".cjs"):
		return domain.KindCJS
	default:
		return domain.KindOther
	}
}

// normalizeEntryName strips the file extension and, for declaration files,
// the residual ".d", yielding the logical name used for grouping:
// "plugins/vite.d.mts" becomes "plugins/vite".
func normalizeEntryName(path string) string {
	for _, ext := range strippableExts {
		if strings.HasSuffix(path, ext) {
			path = strings.TrimSuffix(path, ext)
			break
		}
	}
	return strings.TrimSuffix(path, ".d")
}

// groupKind is the tagged dispatch for per-group emission. The three cases
// share classification but differ in key naming and literal-vs-wildcard
// path emission.
type groupKind int

const (
	groupRoot groupKind = iota
	groupWildcard
	groupLiteral
)

type exportGroup struct {
	key    string // "." or "./<folder>"
	folder string // first path segment, empty for the root group
	files  []string
}

func (g *exportGroup) kind() groupKind {
	if g.key == "." {
		return groupRoot
	}
	for _, f := range g.files {
		if strings.Contains(f, "/") {
			return groupWildcard
		}
	}
	// A non-root group whose members carry no slash cannot be represented
	// by a folder pattern; it falls back to literal-path emission under
	// its own key.
	return groupLiteral
}

// Generate builds the exports map for a list of build outputs. outDir is
// used verbatim as the path prefix of every emitted path. A disabled mode,
// or an entry list that yields no groups, returns nil; callers must treat
// nil as "leave any existing exports field untouched".
//
// Generation never fails: chunks (other than declaration chunks), files with
// unrecognized suffixes, and folders excluded by a selective mode simply
// contribute nothing.
func Generate(entries []domain.BuildEntry, outDir string, mode Mode) ExportsMap {
	if !mode.Enabled {
		return nil
	}

	allowed := make(map[string]bool, len(mode.Folders))
	for _, f := range mode.Folders {
		allowed[f] = true
	}
	selective := len(allowed) > 0

	var order []string
	groups := make(map[string]*exportGroup)

	for _, entry := range entries {
		// Shared chunks are not individually exported, but declaration
		// chunks still need to surface as type information.
		if entry.Chunk && !strings.Contains(entry.Path, ".d.") {
			continue
		}

		name := normalizeEntryName(entry.Path)
		segments := strings.Split(name, "/")
		if selective && !allowed[segments[0]] {
			continue
		}

		key, folder := ".", ""
		if len(segments) > 1 {
			folder = segments[0]
			key = "./" + folder
		}

		g, ok := groups[key]
		if !ok {
			g = &exportGroup{key: key, folder: folder}
			groups[key] = g
			order = append(order, key)
		}
		g.files = append(g.files, entry.Path)
	}

	out := make(ExportsMap)
	for _, key := range order {
		g := groups[key]
		switch g.kind() {
		case groupRoot:
			if v := buildLiteral(rootFiles(g.files), outDir); v != nil {
				out["."] = v
			}
		case groupWildcard:
			if cs := buildWildcard(g.files, outDir, g.folder); !cs.IsZero() {
				out[g.key+"/*"] = cs
			}
		case groupLiteral:
			if v := buildLiteral(g.files, outDir); v != nil {
				out[g.key] = v
			}
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// rootFiles restricts the root group to its actual entry points: files named
// "index" after normalization, or files living at the top level.
func rootFiles(files []string) []string {
	var selected []string
	for _, f := range files {
		if normalizeEntryName(f) == "index" || !strings.Contains(f, "/") {
			selected = append(selected, f)
		}
	}
	return selected
}

// buildLiteral emits the export value for a literal-path group. It returns a
// bare path string in the degenerate single-file case, a *ConditionSet when
// conditions apply, or nil when nothing is classifiable.
func buildLiteral(files []string, outDir string) any {
	if len(files) == 0 {
		return nil
	}

	present := make(map[domain.FileKind]string)
	hasDecl := false
	for _, f := range files {
		kind := Classify(f)
		if kind == domain.KindOther {
			continue
		}
		if _, ok := present[kind]; !ok {
			present[kind] = f
		}
		if kind.IsDeclaration() {
			hasDecl = true
		}
	}

	if len(files) == 1 && !hasDecl && !Classify(files[0]).IsDeclaration() {
		return "./" + outDir + "/" + files[0]
	}

	cs := buildConditions(func(kind domain.FileKind) string {
		if f, ok := present[kind]; ok {
			return "./" + outDir + "/" + f
		}
		return ""
	})
	if cs.IsZero() {
		return nil
	}
	return cs
}

// buildWildcard emits the export value for a folder-wildcard group. Every
// path is a pattern per suffix class rather than a literal filename, so
// there is no first-file ambiguity.
func buildWildcard(files []string, outDir, folder string) *ConditionSet {
	present := make(map[domain.FileKind]bool)
	for _, f := range files {
		if kind := Classify(f); kind != domain.KindOther {
			present[kind] = true
		}
	}

	return buildConditions(func(kind domain.FileKind) string {
		if present[kind] {
			return "./" + outDir + "/" + folder + "/*." + kind.String()
		}
		return ""
	})
}

// buildConditions assembles a ConditionSet from a kind-to-path lookup. The
// lookup returns "" for absent kinds, which keeps the assembly policy in one
// place for literal and wildcard groups alike.
func buildConditions(path func(domain.FileKind) string) *ConditionSet {
	cs := &ConditionSet{Types: firstPresent(path, typesPriority)}

	if p := path(domain.KindMJS); p != "" {
		cs.Import = &ConditionSet{
			Types:   firstPresent(path, importPriority),
			Default: p,
		}
	}
	if p := path(domain.KindCJS); p != "" {
		cs.Require = &ConditionSet{
			Types:   firstPresent(path, requirePriority),
			Default: p,
		}
	}

	// Types-only group: no runtime module exists, so expose the
	// module-specific declarations under their matching conditions.
	if cs.Import == nil && cs.Require == nil {
		if p := path(domain.KindDMTS); p != "" {
			cs.Import = &ConditionSet{Types: p}
		}
		if p := path(domain.KindDCTS); p != "" {
			cs.Require = &ConditionSet{Types: p}
		}
	}

	return cs
}

// firstPresent walks an ordered priority table and returns the first
// available path.
func firstPresent(path func(domain.FileKind) string, priority []domain.FileKind) string {
	for _, kind := range priority {
		if p := path(kind); p != "" {
			return p
		}
	}
	return ""
}
