package manifest_test

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packdist/distmap/internal/manifest"
)

func TestLoader_Load_Valid(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `{
  "name": "example",
  "version": "1.2.3",
  "type": "module",
  "main": "./dist/index.cjs",
  "module": "./dist/index.mjs",
  "files": ["dist"],
  "exports": {
    ".": "./dist/index.mjs"
  },
  "devDependencies": {"typescript": "^5.0.0"}
}`
	require.NoError(t, afero.WriteFile(fs, "/pkg/package.json", []byte(content), 0644))

	pkg, err := manifest.NewLoaderWithFs(fs).Load("/pkg")
	require.NoError(t, err)

	assert.Equal(t, "example", pkg.Name)
	assert.Equal(t, "1.2.3", pkg.Version)
	assert.True(t, pkg.IsESM())
	assert.Equal(t, "./dist/index.cjs", pkg.Main)
	assert.Equal(t, "./dist/index.mjs", pkg.Module)
	assert.Equal(t, []string{"dist"}, pkg.Files)
	require.NotNil(t, pkg.Exports)
}

func TestLoader_Load_Missing(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := manifest.NewLoaderWithFs(fs).Load("/nope")
	assert.ErrorIs(t, err, manifest.ErrFileNotFound)
}

func TestLoader_LoadFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"array root", `["a", "b"]`},
		{"string root", `"just a string"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.NewLoader().LoadFromBytes([]byte(tt.data))
			assert.ErrorIs(t, err, manifest.ErrInvalidFormat)
		})
	}
}

func TestPackageJSON_Encode_PreservesUnknownFields(t *testing.T) {
	content := `{
  "name": "example",
  "version": "0.1.0",
  "scripts": {"build": "obuild"},
  "dependencies": {"pathe": "^1.0.0"}
}`
	pkg, err := manifest.NewLoader().LoadFromBytes([]byte(content))
	require.NoError(t, err)

	pkg.SetExports(map[string]any{".": "./dist/index.mjs"})

	data, err := pkg.Encode()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "example", doc["name"])
	assert.Contains(t, doc, "scripts")
	assert.Contains(t, doc, "dependencies")
	assert.Equal(t, map[string]any{".": "./dist/index.mjs"}, doc["exports"])

	// npm style: trailing newline
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestPackageJSON_Encode_TypedEditsFoldBack(t *testing.T) {
	pkg, err := manifest.NewLoader().LoadFromBytes([]byte(`{"name": "old"}`))
	require.NoError(t, err)

	pkg.Name = "new"
	pkg.Types = "./dist/index.d.ts"

	data, err := pkg.Encode()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "new", doc["name"])
	assert.Equal(t, "./dist/index.d.ts", doc["types"])
	assert.NotContains(t, doc, "version")
}
