package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/hostutil/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager writes configuration files.
type Manager struct {
	projectDir    string
	globalConfDir string
}

// NewManager creates a new Manager.
func NewManager(projectDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(projectDir, globalConfDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// Init writes the config template and returns its path.
func (m *Manager) Init(global bool) (string, error) {
	var path string
	if global {
		if m.globalConfDir == "" {
			return "", errors.New("cannot determine global config directory")
		}
		path = filepath.Join(m.globalConfDir, domain.ConfigFileName)
	} else {
		path = domain.ProjectConfigPath(m.projectDir)
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	// #nosec G306 - config files are meant to be readable
	if err := os.WriteFile(path, []byte(domain.ConfigTemplate), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
