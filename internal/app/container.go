// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/runoshun/hostutil/internal/domain"
	"github.com/runoshun/hostutil/internal/infra/config"
	"github.com/runoshun/hostutil/internal/infra/env"
	"github.com/runoshun/hostutil/internal/infra/executor"
	"github.com/runoshun/hostutil/internal/infra/fileio"
	"github.com/runoshun/hostutil/internal/infra/logging"
	"github.com/runoshun/hostutil/internal/infra/textcodec"
	"github.com/runoshun/hostutil/internal/usecase"
)

// Config holds the application configuration paths.
type Config struct {
	WorkDir string // Directory the CLI was started in; holds .hostutil.toml
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Runner        domain.CommandRunner
	Env           domain.EnvReader
	EnvFiles      domain.EnvFileLoader
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Function fields
	NewFileReader usecase.FileReaderFactory
	Decode        usecase.TextDecoder

	// Slice fields
	DotEnv []string // KEY=value pairs from [env] files, passed to commands

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(dir string) (*Container, error) {
	cfg := Config{WorkDir: dir}

	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := textcodec.Validate(appConfig.Read.Encoding); err != nil {
		return nil, fmt.Errorf("[read] encoding: %w", err)
	}
	if err := textcodec.Validate(appConfig.Run.Encoding); err != nil {
		return nil, fmt.Errorf("[run] encoding: %w", err)
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(appConfig.Log.Level))

	// Dotenv files from config sit in front of the process environment.
	var envReader domain.EnvReader = env.OS{}
	var dotenv []string
	if len(appConfig.Env.Files) > 0 {
		fromFiles, err := env.LoadFiles(appConfig.Env.Files...)
		if err != nil {
			return nil, err
		}
		envReader = env.Layered{fromFiles, env.OS{}}
		dotenv = fromFiles.Environ()
	}

	logger.Debug("container ready", "dir", dir, "config_sources", configLoader.Sources())

	return &Container{
		Runner:        executor.NewClient(),
		Env:           envReader,
		EnvFiles:      env.FileLoader{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		NewFileReader: newFileReader,
		Decode:        textcodec.Decode,
		DotEnv:        dotenv,
		Logger:        logger,
		AppConfig:     appConfig,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Decode:    textcodec.Decode,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

func newFileReader(encoding string, maxBytes int64) domain.FileReader {
	return fileio.NewReader(encoding, maxBytes)
}

// UseCase factory methods

// ReadFileUseCase returns a new ReadFile use case.
func (c *Container) ReadFileUseCase() *usecase.ReadFile {
	return usecase.NewReadFile(c.NewFileReader, c.AppConfig.Read, c.Logger)
}

// RunCommandUseCase returns a new RunCommand use case.
func (c *Container) RunCommandUseCase() *usecase.RunCommand {
	return usecase.NewRunCommand(c.Runner, c.Env, c.DotEnv, c.Decode, c.AppConfig.Run, c.Logger)
}

// GetEnvUseCase returns a new GetEnv use case.
func (c *Container) GetEnvUseCase() *usecase.GetEnv {
	return usecase.NewGetEnv(c.Env, c.EnvFiles)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
