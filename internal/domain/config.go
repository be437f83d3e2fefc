package domain

import "path/filepath"

// Config file locations.
const (
	AppDirName            = "hostutil"       // Directory name under the global config home
	ConfigFileName        = "config.toml"    // Global config file name
	ProjectConfigFileName = ".hostutil.toml" // Config file name in a project directory
)

// Defaults.
const (
	DefaultEncoding = "utf-8"
	DefaultLogLevel = "info"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string   `toml:"-"`
	Env      EnvConfig  `toml:"env"`
	Run      RunConfig  `toml:"run"`
	Log      LogConfig  `toml:"log"`
	Read     ReadConfig `toml:"read"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// ReadConfig holds file reading settings from [read] section.
type ReadConfig struct {
	Encoding    string `toml:"encoding,omitempty"`  // Text encoding label, utf-8 by default
	MaxBytes    int64  `toml:"max_bytes,omitempty"` // Size limit; 0 means unlimited
	MaxBytesSet bool   `toml:"-"`                   // max_bytes was present in a loaded file
}

// RunConfig holds command execution settings from [run] section.
type RunConfig struct {
	Shell    string `toml:"shell,omitempty"`    // Shell used for --shell commands
	Encoding string `toml:"encoding,omitempty"` // Encoding of command output
}

// EnvConfig holds environment settings from [env] section.
type EnvConfig struct {
	Files []string `toml:"files,omitempty"` // Dotenv files layered over the process environment
}

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log:  LogConfig{Level: DefaultLogLevel},
		Read: ReadConfig{Encoding: DefaultEncoding},
		Run: RunConfig{
			Shell:    DefaultShell,
			Encoding: DefaultEncoding,
		},
	}
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config file path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// ProjectConfigPath returns the project config file path for dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// ConfigTemplate is written by "config init".
const ConfigTemplate = `# hostutil configuration

[log]
# debug, info, warn or error
level = "info"

[read]
# WHATWG encoding label; utf-8 is strict about invalid byte sequences
encoding = "utf-8"
# Refuse files larger than this many bytes (0 = unlimited)
max_bytes = 0

[run]
# Shell used by "run --shell"
shell = "sh"
encoding = "utf-8"

[env]
# Dotenv files consulted before the process environment
files = []
`
