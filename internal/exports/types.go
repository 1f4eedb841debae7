package exports

// ConditionSet is the conditional resolution object emitted for one export
// key. Only the fixed condition vocabulary produced by generation is modeled;
// field order matters because Node matches conditions in declaration order,
// so "types" must precede the module conditions and "default" must come last.
type ConditionSet struct {
	Types   string        `json:"types,omitempty"`
	Import  *ConditionSet `json:"import,omitempty"`
	Require *ConditionSet `json:"require,omitempty"`
	Default string        `json:"default,omitempty"`
}

// IsZero reports whether the set carries no conditions at all.
func (c *ConditionSet) IsZero() bool {
	return c == nil || (c.Types == "" && c.Import == nil && c.Require == nil && c.Default == "")
}

// ExportsMap maps export keys (".", "./name", or "./name/*") to either a
// literal path string (degenerate single-file case) or a *ConditionSet.
type ExportsMap map[string]any

// Mode controls which build entries participate in generation.
type Mode struct {
	// Enabled gates the whole feature; a disabled mode always yields nil
	Enabled bool

	// Folders restricts generation to entries whose top-level path segment
	// is listed; empty means every eligible entry is included
	Folders []string
}

// ModeAll includes every eligible entry.
func ModeAll() Mode {
	return Mode{Enabled: true}
}

// ModeFolders includes only entries under the named top-level folders.
// An empty list behaves like ModeAll.
func ModeFolders(folders ...string) Mode {
	return Mode{Enabled: true, Folders: folders}
}

// ModeDisabled turns generation off.
func ModeDisabled() Mode {
	return Mode{}
}
