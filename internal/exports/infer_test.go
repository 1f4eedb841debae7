package exports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packdist/distmap/internal/domain"
	"github.com/packdist/distmap/internal/exports"
)

func TestInferExportType_FilenameDominates(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		previous  []string
		filename  string
		want      domain.ModuleType
	}{
		{"d.ts is ESM even under require", "require", nil, "index.d.ts", domain.TypeESM},
		{"mjs is ESM even under require", "require", nil, "x.mjs", domain.TypeESM},
		{"mjs is ESM under import", "import", nil, "x.mjs", domain.TypeESM},
		{"cjs is CJS even under import", "import", nil, "x.cjs", domain.TypeCJS},
		{"cjs is CJS under arbitrary condition", "node", []string{"import"}, "x.cjs", domain.TypeCJS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exports.InferExportType(tt.condition, tt.previous, tt.filename)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInferExportType_ConditionAndChain(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		previous  []string
		want      domain.ModuleType
	}{
		{"import resolves ESM", "import", nil, domain.TypeESM},
		{"require resolves CJS", "require", nil, domain.TypeCJS},
		{"condition overrides chain", "require", []string{"import"}, domain.TypeCJS},
		{"chain walk skips unresolved entries", "node", []string{"unknown", "require"}, domain.TypeCJS},
		{"chain resolves via import", "browser", []string{"import"}, domain.TypeESM},
		{"unrecognized with empty chain defaults to ESM", "node", nil, domain.TypeESM},
		{"fully unrecognized chain defaults to ESM", "node", []string{"unknown", "other"}, domain.TypeESM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exports.InferExportType(tt.condition, tt.previous, "")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractExportFilenames_Nil(t *testing.T) {
	assert.Empty(t, exports.ExtractExportFilenames(nil))
}

func TestExtractExportFilenames_BareString(t *testing.T) {
	got := exports.ExtractExportFilenames("test")
	require.Len(t, got, 1)
	assert.Equal(t, domain.ExportFile{File: "test", Type: domain.TypeESM}, got[0])
}

func TestExtractExportFilenames_NestedConditions(t *testing.T) {
	decl := map[string]any{
		".": map[string]any{
			"import":  map[string]any{"default": "./dist/index.mjs"},
			"require": "./dist/index.cjs",
		},
		"./package.json": "./package.json",
	}

	got := exports.ExtractExportFilenames(decl)
	require.Len(t, got, 2)
	assert.Contains(t, got, domain.ExportFile{File: "./dist/index.mjs", Type: domain.TypeESM})
	assert.Contains(t, got, domain.ExportFile{File: "./dist/index.cjs", Type: domain.TypeCJS})
}

func TestExtractExportFilenames_ChainResolution(t *testing.T) {
	// "default" is unrecognized; the enclosing "require" condition decides.
	decl := map[string]any{
		"require": map[string]any{
			"default": "./dist/index.js",
		},
	}

	got := exports.ExtractExportFilenames(decl)
	require.Len(t, got, 1)
	assert.Equal(t, domain.TypeCJS, got[0].Type)
}

func TestExtractExportFilenames_SkipsJSONKeys(t *testing.T) {
	decl := map[string]any{
		"./package.json": "./package.json",
	}
	assert.Empty(t, exports.ExtractExportFilenames(decl))
}
