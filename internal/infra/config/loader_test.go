package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/hostutil/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
	assert.Empty(t, loader.Sources())
}

func TestLoader_Load_ProjectConfigOnly(t *testing.T) {
	projectDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, filepath.Join(projectDir, domain.ProjectConfigFileName), `
[log]
level = "debug"

[read]
encoding = "latin1"
max_bytes = 1024

[run]
shell = "bash"
encoding = "shift_jis"

[env]
files = [".env", "/abs/other.env"]
`)

	loader := NewLoaderWithGlobalDir(projectDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "latin1", cfg.Read.Encoding)
	assert.Equal(t, int64(1024), cfg.Read.MaxBytes)
	assert.Equal(t, "bash", cfg.Run.Shell)
	assert.Equal(t, "shift_jis", cfg.Run.Encoding)
	assert.Equal(t, []string{filepath.Join(projectDir, ".env"), "/abs/other.env"}, cfg.Env.Files)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, []string{filepath.Join(projectDir, domain.ProjectConfigFileName)}, loader.Sources())
}

func TestLoader_Load_GlobalConfigOnly(t *testing.T) {
	projectDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, filepath.Join(globalDir, domain.ConfigFileName), `
[log]
level = "warn"
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, globalDir).Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, domain.DefaultEncoding, cfg.Read.Encoding)
	assert.Equal(t, domain.DefaultShell, cfg.Run.Shell)
}

func TestLoader_Load_ProjectOverridesGlobal(t *testing.T) {
	projectDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, filepath.Join(globalDir, domain.ConfigFileName), `
[log]
level = "warn"

[run]
shell = "zsh"

[env]
files = ["/global.env"]
`)
	writeConfig(t, filepath.Join(projectDir, domain.ProjectConfigFileName), `
[log]
level = "error"

[env]
files = ["local.env"]
`)

	loader := NewLoaderWithGlobalDir(projectDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "zsh", cfg.Run.Shell)
	assert.Equal(t, []string{"/global.env", filepath.Join(projectDir, "local.env")}, cfg.Env.Files)
	assert.Len(t, loader.Sources(), 2)
}

func TestLoader_Load_ProjectMaxBytesZeroClearsGlobalLimit(t *testing.T) {
	tests := []struct {
		name    string
		project string
		want    int64
	}{
		{name: "explicit zero", project: "[read]\nmax_bytes = 0\n", want: 0},
		{name: "explicit value", project: "[read]\nmax_bytes = 50\n", want: 50},
		{name: "absent keeps global", project: "[read]\nencoding = \"utf-8\"\n", want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projectDir := t.TempDir()
			globalDir := t.TempDir()
			writeConfig(t, filepath.Join(globalDir, domain.ConfigFileName), "[read]\nmax_bytes = 100\n")
			writeConfig(t, filepath.Join(projectDir, domain.ProjectConfigFileName), tt.project)

			cfg, err := NewLoaderWithGlobalDir(projectDir, globalDir).Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Read.MaxBytes)
		})
	}
}

func TestLoader_Load_UnknownKeysWarn(t *testing.T) {
	projectDir := t.TempDir()
	writeConfig(t, filepath.Join(projectDir, domain.ProjectConfigFileName), `
top = 1

[log]
colour = true

[mystery]
x = 1
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, "").Load()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"unknown key in [log]: colour",
		"unknown section: mystery",
		"unknown section: top",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	projectDir := t.TempDir()
	writeConfig(t, filepath.Join(projectDir, domain.ProjectConfigFileName), "[log\nlevel=")

	_, err := NewLoaderWithGlobalDir(projectDir, "").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoader_LoadGlobal_NoDir(t *testing.T) {
	_, err := NewLoaderWithGlobalDir("", "").LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLoader_UsesXDGConfigHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	writeConfig(t, domain.GlobalConfigPath(home), "[log]\nlevel = \"debug\"\n")

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}
