package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultOutputPath, cfg.Output.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Path = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Log.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(&Config{Output: OutputConfig{Path: "out/custom.json"}})

	assert.Equal(t, "out/custom.json", cfg.Output.Path)
	assert.Equal(t, "info", cfg.Log.Level)

	cfg.Merge(nil)
	assert.Equal(t, "out/custom.json", cfg.Output.Path)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rulegen.yaml")
	content := "output:\n  path: custom/rules.json\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom/rules.json", cfg.Output.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoaderDefaultsWithoutProjectConfig(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputPath, cfg.Output.Path)
}

func TestLoaderFindsProjectConfigInParent(t *testing.T) {
	root := t.TempDir()
	content := "output:\n  path: kb/rules.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ProjectConfigFile), []byte(content), 0o644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "kb/rules.json", cfg.Output.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
