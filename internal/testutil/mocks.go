// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"os"

	"github.com/runoshun/hostutil/internal/domain"
)

// MockFileReader is a test double for domain.FileReader.
// Fields are ordered to minimize memory padding.
type MockFileReader struct {
	Files    map[string]string
	ReadErr  error
	LastPath string
	Encoding string // Encoding passed to the factory
	MaxBytes int64  // Size limit passed to the factory
}

// NewMockFileReader creates a new MockFileReader with an initialized file map.
func NewMockFileReader() *MockFileReader {
	return &MockFileReader{Files: make(map[string]string)}
}

// Factory returns a reader factory that records its arguments and yields m.
func (m *MockFileReader) Factory() func(encoding string, maxBytes int64) domain.FileReader {
	return func(encoding string, maxBytes int64) domain.FileReader {
		m.Encoding = encoding
		m.MaxBytes = maxBytes
		return m
	}
}

// ReadFile returns the configured content for path.
func (m *MockFileReader) ReadFile(path string) (string, error) {
	m.LastPath = path
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	content, ok := m.Files[path]
	if !ok {
		return "", &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return content, nil
}

// Lines calls fn for each line of the configured content.
func (m *MockFileReader) Lines(path string, fn func(line string) error) error {
	content, err := m.ReadFile(path)
	if err != nil {
		return err
	}
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			if err := fn(content[start:i]); err != nil {
				return err
			}
			start = i + 1
		}
	}
	if start < len(content) {
		return fn(content[start:])
	}
	return nil
}

// MockCommandRunner is a test double for domain.CommandRunner.
// Fields are ordered to minimize memory padding.
type MockCommandRunner struct {
	LastCommand *domain.ExecCommand
	OutputErr   error
	Stdout      []byte
	Calls       int
}

// Output records the command and returns the configured stdout.
func (m *MockCommandRunner) Output(_ context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	m.Calls++
	m.LastCommand = cmd
	return m.Stdout, m.OutputErr
}

// MockEnv is a test double for domain.EnvReader.
type MockEnv map[string]string

// Lookup returns the value of key.
func (m MockEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// MockEnvFileLoader is a test double for domain.EnvFileLoader.
// Fields are ordered to minimize memory padding.
type MockEnvFileLoader struct {
	Files   map[string]MockEnv
	LoadErr error
	Loaded  []string
}

// Load merges the configured files in order.
func (m *MockEnvFileLoader) Load(paths ...string) (domain.EnvReader, error) {
	m.Loaded = append(m.Loaded, paths...)
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	merged := MockEnv{}
	for _, p := range paths {
		for k, v := range m.Files[p] {
			merged[k] = v
		}
	}
	return merged, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
// Fields are ordered to minimize memory padding.
type MockConfigLoader struct {
	Config     *domain.Config
	LoadErr    error
	SourceList []string
}

// Load returns the configured config, or defaults when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal behaves like Load.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// Sources returns the configured source list.
func (m *MockConfigLoader) Sources() []string {
	return m.SourceList
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr    error
	Path       string
	InitCalled bool
	Global     bool
}

// Init records the call and returns the configured path.
func (m *MockConfigManager) Init(global bool) (string, error) {
	m.InitCalled = true
	m.Global = global
	if m.InitErr != nil {
		return "", m.InitErr
	}
	return m.Path, nil
}
