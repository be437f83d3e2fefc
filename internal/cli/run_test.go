package cli

import (
	"encoding/json"
	"testing"

	"github.com/runoshun/hostutil/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRunCommand_Argv(t *testing.T) {
	c, deps := newTestContainer()
	deps.runner.Stdout = []byte("hello\n")

	out, _, err := execute(newRunCommand(c), "--", "echo", "-n", "hello")

	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
	assert.Equal(t, "echo", deps.runner.LastCommand.Program)
	assert.Equal(t, []string{"-n", "hello"}, deps.runner.LastCommand.Args)
}

func TestRunCommand_FlagsAfterProgramBelongToProgram(t *testing.T) {
	c, deps := newTestContainer()

	_, _, err := execute(newRunCommand(c), "ls", "-la")

	require.NoError(t, err)
	assert.Equal(t, "ls", deps.runner.LastCommand.Program)
	assert.Equal(t, []string{"-la"}, deps.runner.LastCommand.Args)
}

func TestRunCommand_SingleArgumentIsSplit(t *testing.T) {
	c, deps := newTestContainer()
	deps.env["NAME"] = "crew"

	_, _, err := execute(newRunCommand(c), `echo "hi $NAME"`)

	require.NoError(t, err)
	assert.Equal(t, "echo", deps.runner.LastCommand.Program)
	assert.Equal(t, []string{"hi crew"}, deps.runner.LastCommand.Args)
}

func TestRunCommand_Shell(t *testing.T) {
	c, deps := newTestContainer()
	c.AppConfig.Run.Shell = "bash"

	_, _, err := execute(newRunCommand(c), "--shell", "-C", "/tmp", "-e", "A=1", "ls | wc -l")

	require.NoError(t, err)
	cmd := deps.runner.LastCommand
	assert.Equal(t, "bash", cmd.Program)
	assert.Equal(t, []string{"-c", "ls | wc -l"}, cmd.Args)
	assert.Equal(t, "/tmp", cmd.Dir)
	assert.Equal(t, []string{"A=1"}, cmd.Env)
}

func TestRunCommand_InvalidEnvFlag(t *testing.T) {
	c, deps := newTestContainer()

	_, _, err := execute(newRunCommand(c), "-e", "NOEQUALS", "true")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "KEY=VALUE")
	assert.Zero(t, deps.runner.Calls)
}

func TestRunCommand_Failure(t *testing.T) {
	c, deps := newTestContainer()
	deps.runner.OutputErr = &domain.CommandError{Command: "false", ExitCode: 1}

	_, _, err := execute(newRunCommand(c), "false")

	assert.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestRunCommand_JSONOutput(t *testing.T) {
	c, deps := newTestContainer()
	deps.runner.Stdout = []byte("Linux\n")

	out, _, err := execute(newRunCommand(c), "-o", "json", "--", "uname", "-s")
	require.NoError(t, err)

	var got runResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, runResult{Program: "uname", Args: []string{"-s"}, Stdout: "Linux\n"}, got)
}

func TestRunCommand_YAMLOutput(t *testing.T) {
	c, deps := newTestContainer()
	deps.runner.Stdout = []byte("ok\n")

	out, _, err := execute(newRunCommand(c), "-o", "yaml", "true")
	require.NoError(t, err)

	var got runResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "true", got.Program)
	assert.Equal(t, "ok\n", got.Stdout)
}

func TestRunCommand_InvalidOutputFormat(t *testing.T) {
	c, deps := newTestContainer()

	_, _, err := execute(newRunCommand(c), "-o", "xml", "true")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
	assert.Zero(t, deps.runner.Calls)
}
