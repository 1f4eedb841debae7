package manifest

import (
	"bytes"
	"encoding/json"
)

// Filename is the manifest filename inside a package directory.
const Filename = "package.json"

// PackageJSON is a loaded package manifest. The exported fields are the
// typed projection of the fields distmap cares about; the full document is
// kept internally so unknown fields survive re-encoding.
type PackageJSON struct {
	Name    string   `json:"name,omitempty"`
	Version string   `json:"version,omitempty"`
	Type    string   `json:"type,omitempty"`
	Main    string   `json:"main,omitempty"`
	Module  string   `json:"module,omitempty"`
	Types   string   `json:"types,omitempty"`
	Files   []string `json:"files,omitempty"`

	// Exports is the raw exports declaration as decoded from JSON:
	// nil, a string, or a nested map[string]any
	Exports any `json:"exports,omitempty"`

	raw map[string]any
}

// IsESM reports whether the package declares "type": "module".
func (p *PackageJSON) IsESM() bool {
	return p.Type == "module"
}

// SetExports replaces the exports field. The value is stored as-is; callers
// decide the nil-versus-empty distinction before calling (a nil generation
// result means "leave the existing field untouched" and must not reach
// here, while an empty map explicitly clears the field).
func (p *PackageJSON) SetExports(v any) {
	p.Exports = v
	if p.raw == nil {
		p.raw = make(map[string]any)
	}
	p.raw["exports"] = v
}

// Encode renders the manifest back to JSON with two-space indentation and a
// trailing newline, npm style. Typed-field edits are folded back into the
// preserved document first.
func (p *PackageJSON) Encode() ([]byte, error) {
	doc := p.raw
	if doc == nil {
		doc = make(map[string]any)
	}

	setOrDelete := func(key, val string) {
		if val != "" {
			doc[key] = val
		} else {
			delete(doc, key)
		}
	}
	setOrDelete("name", p.Name)
	setOrDelete("version", p.Version)
	setOrDelete("type", p.Type)
	setOrDelete("main", p.Main)
	setOrDelete("module", p.Module)
	setOrDelete("types", p.Types)
	if p.Files != nil {
		doc["files"] = p.Files
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
