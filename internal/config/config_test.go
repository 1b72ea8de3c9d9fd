package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "gensmith.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromPath(t *testing.T) {
	// Test plan:
	// - Explicit fields decode
	// - Missing fields pick up defaults

	dir := t.TempDir()
	path := writeConfig(t, dir, `{
  "name": "petstore",
  "schema": "./api.gql",
  "document": "./openapi.json",
  "package": "petapi",
  "targets": ["go", "typescript"],
  "output": {"dir": "./out"}
}`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "petstore", cfg.Name)
	assert.Equal(t, "./api.gql", cfg.Schema)
	assert.Equal(t, "./openapi.json", cfg.Document)
	assert.Equal(t, "petapi", cfg.Package)
	assert.Equal(t, []string{"go", "typescript"}, cfg.Targets)
	assert.Equal(t, "./out", cfg.Output.Dir)
	assert.NotEmpty(t, cfg.Dev.Watch, "watch defaults applied")
}

func TestLoadFromPath_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{"name": "minimal"}`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "./schema.gql", cfg.Schema)
	assert.Equal(t, "types", cfg.Package)
	assert.Equal(t, []string{"go"}, cfg.Targets)
	assert.Equal(t, "./generated", cfg.Output.Dir)
	assert.Contains(t, cfg.Dev.Exclude, "generated/")
}

func TestLoadFromPath_Missing(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "gensmith.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFromPath_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{not json`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromDir_SearchesParents(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"name": "parent"}`)

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, foundDir, err := loadFromDir(nested)
	require.NoError(t, err)
	assert.Equal(t, "parent", cfg.Name)
	assert.Equal(t, root, foundDir)
}

func TestLoadFromDir_NotFound(t *testing.T) {
	_, _, err := loadFromDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no gensmith.json found")
}
