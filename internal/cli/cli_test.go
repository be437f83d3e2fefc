package cli

import (
	"bytes"
	"log/slog"

	"github.com/runoshun/hostutil/internal/app"
	"github.com/runoshun/hostutil/internal/domain"
	"github.com/runoshun/hostutil/internal/testutil"
	"github.com/spf13/cobra"
)

// testDeps bundles the mocks behind a test container.
type testDeps struct {
	files   *testutil.MockFileReader
	runner  *testutil.MockCommandRunner
	env     testutil.MockEnv
	loader  *testutil.MockEnvFileLoader
	config  *testutil.MockConfigLoader
	manager *testutil.MockConfigManager
}

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer() (*app.Container, *testDeps) {
	deps := &testDeps{
		files:   testutil.NewMockFileReader(),
		runner:  &testutil.MockCommandRunner{},
		env:     testutil.MockEnv{},
		loader:  &testutil.MockEnvFileLoader{},
		config:  &testutil.MockConfigLoader{},
		manager: &testutil.MockConfigManager{Path: "/work/.hostutil.toml"},
	}
	logger := slog.New(slog.DiscardHandler)
	container := app.NewWithDeps(app.Config{WorkDir: "/work"}, domain.NewDefaultConfig(), logger)
	container.NewFileReader = deps.files.Factory()
	container.Runner = deps.runner
	container.Env = deps.env
	container.EnvFiles = deps.loader
	container.ConfigLoader = deps.config
	container.ConfigManager = deps.manager
	return container, deps
}

// execute runs cmd with args and returns what it wrote to stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
