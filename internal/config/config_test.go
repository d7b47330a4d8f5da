package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/noted/internal/commands"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.True(t, cfg.Keyboard.MetaFromAlt)
	assert.Empty(t, cfg.Keybindings)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  file: /tmp/noted.log
  level: debug
  format: json
keyboard:
  meta_from_alt: false
keybindings:
  - command: editor.sidebar.toggle
    shortcut: Ctrl+Shift+E
  - command: editor.notespace.file.new
    shortcut: ""
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/noted.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.False(t, cfg.Keyboard.MetaFromAlt)
	assert.Equal(t, []commands.Keybinding{
		{Command: "editor.sidebar.toggle", Shortcut: "Ctrl+Shift+E"},
		{Command: "editor.notespace.file.new", Shortcut: ""},
	}, cfg.Keybindings)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NOTED_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "log: [unterminated"))
		assert.Error(t, err)
	})
}
