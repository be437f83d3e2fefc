package cli

import (
	"testing"

	"github.com/runoshun/hostutil/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShowCommand_Defaults(t *testing.T) {
	c, _ := newTestContainer()

	out, _, err := execute(newConfigCommand(c), "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]\n  (defaults only)")
	assert.Contains(t, out, "[Effective config]")
	assert.Contains(t, out, "level = 'info'")
	assert.NotContains(t, out, "[Warnings]")
}

func TestConfigShowCommand_SourcesAndWarnings(t *testing.T) {
	c, deps := newTestContainer()
	cfg := domain.NewDefaultConfig()
	cfg.Run.Shell = "bash"
	cfg.Warnings = []string{"unknown section: mystery"}
	deps.config.Config = cfg
	deps.config.SourceList = []string{"/home/u/.config/hostutil/config.toml"}

	out, _, err := execute(newConfigCommand(c), "show")

	require.NoError(t, err)
	assert.Contains(t, out, "  /home/u/.config/hostutil/config.toml")
	assert.Contains(t, out, "[Warnings]\n  unknown section: mystery")
	assert.Contains(t, out, "shell = 'bash'")
}

func TestConfigShowCommand_LoadError(t *testing.T) {
	c, deps := newTestContainer()
	deps.config.LoadErr = assert.AnError

	_, _, err := execute(newConfigCommand(c), "show")

	assert.ErrorIs(t, err, assert.AnError)
}

func TestConfigTemplateCommand(t *testing.T) {
	c, _ := newTestContainer()

	out, _, err := execute(newConfigCommand(c), "template")

	require.NoError(t, err)
	assert.Equal(t, domain.ConfigTemplate, out)
}

func TestConfigInitCommand(t *testing.T) {
	c, deps := newTestContainer()

	out, _, err := execute(newConfigCommand(c), "init")

	require.NoError(t, err)
	assert.Equal(t, "Created config file: /work/.hostutil.toml\n", out)
	assert.False(t, deps.manager.Global)
}

func TestConfigInitCommand_Global(t *testing.T) {
	c, deps := newTestContainer()

	_, _, err := execute(newConfigCommand(c), "init", "--global")

	require.NoError(t, err)
	assert.True(t, deps.manager.Global)
}

func TestConfigInitCommand_Exists(t *testing.T) {
	c, deps := newTestContainer()
	deps.manager.InitErr = domain.ErrConfigExists

	_, _, err := execute(newConfigCommand(c), "init")

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
