// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/hostutil/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding .hostutil.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/hostutil)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

func (l *Loader) globalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

func (l *Loader) projectPath() string {
	if l.projectDir == "" {
		return ""
	}
	return domain.ProjectConfigPath(l.projectDir)
}

// Load returns the merged configuration (project + global).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	// Load global config first
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Load project config
	project, err := l.LoadProject()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- project (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	path := l.globalPath()
	if path == "" {
		return nil, os.ErrNotExist
	}
	return loadFile(path)
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	path := l.projectPath()
	if path == "" {
		return nil, os.ErrNotExist
	}
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	// Relative dotenv paths are resolved against the project directory.
	for i, f := range cfg.Env.Files {
		if !filepath.IsAbs(f) {
			cfg.Env.Files[i] = filepath.Join(l.projectDir, f)
		}
	}
	return cfg, nil
}

// Sources returns the config files that exist, in merge order.
func (l *Loader) Sources() []string {
	var sources []string
	for _, p := range []string{l.globalPath(), l.projectPath()} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			sources = append(sources, p)
		}
	}
	return sources
}

// loadFile loads and parses a single TOML file.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		switch section {
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "read":
			for k, v := range m {
				switch k {
				case "encoding":
					if s, ok := v.(string); ok {
						res.Read.Encoding = s
					}
				case "max_bytes":
					if n, ok := v.(int64); ok {
						res.Read.MaxBytes = n
						res.Read.MaxBytesSet = true
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [read]: %s", k))
				}
			}
		case "run":
			for k, v := range m {
				switch k {
				case "shell":
					if s, ok := v.(string); ok {
						res.Run.Shell = s
					}
				case "encoding":
					if s, ok := v.(string); ok {
						res.Run.Encoding = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [run]: %s", k))
				}
			}
		case "env":
			for k, v := range m {
				switch k {
				case "files":
					if arr, ok := v.([]any); ok {
						for _, item := range arr {
							if s, ok := item.(string); ok {
								res.Env.Files = append(res.Env.Files, s)
							}
						}
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [env]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges override into base. Empty override values keep the base value.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)
	result.Env.Files = append([]string{}, base.Env.Files...)

	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Read.Encoding != "" {
		result.Read.Encoding = override.Read.Encoding
	}
	// An explicit max_bytes wins even when it is 0 (unlimited).
	if override.Read.MaxBytesSet {
		result.Read.MaxBytes = override.Read.MaxBytes
		result.Read.MaxBytesSet = true
	}
	if override.Run.Shell != "" {
		result.Run.Shell = override.Run.Shell
	}
	if override.Run.Encoding != "" {
		result.Run.Encoding = override.Run.Encoding
	}
	// Dotenv files accumulate: global files first, project files after.
	result.Env.Files = append(result.Env.Files, override.Env.Files...)

	return &result
}
