package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesLoadableConfig(t *testing.T) {
	root := t.TempDir()

	path, err := Init(root, "http://localhost:5000", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), path)

	cfg, err := LoadFile(root)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, "$", cfg.API.ListSelector)

	b, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(b), ".recipedeck/")
}

func TestInit_KeepsExistingUnlessForced(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "recipedeck:\n  api:\n    base_url: http://keep\n")

	_, err := Init(root, "http://new", false)
	require.NoError(t, err)
	cfg, err := LoadFile(root)
	require.NoError(t, err)
	assert.Equal(t, "http://keep", cfg.API.BaseURL)

	_, err = Init(root, "http://new", true)
	require.NoError(t, err)
	cfg, err = LoadFile(root)
	require.NoError(t, err)
	assert.Equal(t, "http://new", cfg.API.BaseURL)
}

func TestEnsureGitignore_AppendsOnce(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("node_modules/"), 0o644))

	require.NoError(t, ensureGitignore(tmp))
	require.NoError(t, ensureGitignore(tmp))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(b)
	assert.True(t, strings.HasPrefix(s, "node_modules/\n"))
	assert.Equal(t, 1, strings.Count(s, ".recipedeck/"))
	assert.Equal(t, 1, strings.Count(s, "# recipedeck"))
}
