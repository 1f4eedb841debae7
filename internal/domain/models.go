package domain

// ModuleType classifies a file or export condition by module system.
type ModuleType string

const (
	// TypeESM marks ECMAScript-module resolution (import, .mjs, declarations)
	TypeESM ModuleType = "esm"

	// TypeCJS marks CommonJS resolution (require, .cjs)
	TypeCJS ModuleType = "cjs"
)

// BuildEntry is a single build output reported by the bundling pipeline.
type BuildEntry struct {
	// Path is the output path relative to the output directory,
	// e.g. "index.mjs" or "plugins/vite.d.mts"
	Path string `json:"path" yaml:"path"`

	// Chunk marks shared bundle fragments that are not individually
	// exported (declaration chunks are still exposed as types)
	Chunk bool `json:"chunk,omitempty" yaml:"chunk,omitempty"`
}

// FileKind is the suffix-exclusive classification of a build output.
// A file matches at most one kind; unrecognized suffixes are KindOther
// and contribute to no export condition.
type FileKind int

const (
	KindOther FileKind = iota
	KindMJS            // .mjs
	KindCJS            // .cjs
	KindDTS            // .d.ts
	KindDMTS           // .d.mts
	KindDCTS           // .d.cts
)

// String returns the suffix associated with the kind, without leading dot.
func (k FileKind) String() string {
	switch k {
	case KindMJS:
		return "mjs"
	case KindCJS:
		return "cjs"
	case KindDTS:
		return "d.ts"
	case KindDMTS:
		return "d.mts"
	case KindDCTS:
		return "d.cts"
	default:
		return "other"
	}
}

// IsDeclaration reports whether the kind is a type-declaration variant.
func (k FileKind) IsDeclaration() bool {
	return k == KindDTS || k == KindDMTS || k == KindDCTS
}

// ExportFile is one resolved file from a manifest exports declaration.
type ExportFile struct {
	File string     `json:"file"`
	Type ModuleType `json:"type"`
}

// PackageResult summarizes one processed package directory.
type PackageResult struct {
	Dir         string `json:"dir"`
	Name        string `json:"name,omitempty"`
	EntryCount  int    `json:"entry_count"`
	ExportCount int    `json:"export_count"`
	Written     bool   `json:"written"`
	FromReport  bool   `json:"from_report"`
}

// CommonOptions are shared run options threaded from the CLI.
type CommonOptions struct {
	Verbose bool
	DryRun  bool
	Backup  bool
}
