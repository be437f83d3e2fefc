package domain

import "context"

// FileReader reads text files from the host file system.
type FileReader interface {
	// ReadFile returns the decoded contents of the file at path.
	ReadFile(path string) (string, error)

	// Lines calls fn for each line of the file, without the trailing newline.
	// Iteration stops at the first error returned by fn.
	Lines(path string, fn func(line string) error) error
}

// CommandRunner runs external commands.
type CommandRunner interface {
	// Output runs the command and returns its standard output.
	// Standard error is not captured.
	Output(ctx context.Context, cmd *ExecCommand) ([]byte, error)
}

// EnvReader looks up environment variables.
type EnvReader interface {
	// Lookup returns the value of key and whether it is set.
	Lookup(key string) (string, bool)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (project + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// Sources returns the config files that exist, in merge order.
	Sources() []string
}

// EnvFileLoader loads variables from dotenv files.
type EnvFileLoader interface {
	// Load parses the files in order; later files override earlier ones.
	Load(paths ...string) (EnvReader, error)
}

// ConfigManager creates configuration files.
type ConfigManager interface {
	// Init writes ConfigTemplate to the project (or global) config path and returns it.
	// Returns ErrConfigExists if the file is already present.
	Init(global bool) (string, error)
}
