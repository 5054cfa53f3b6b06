package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/nodelist/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCanonicalOutput(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	var want bytes.Buffer
	for i, v := range []int{0, 2, 6, 12, 20, 30, 42, 56, 72, 90} {
		fmt.Fprintf(&want, "numbers[%d] = %d\n", i, v)
	}
	want.WriteString("Node{id=1, name=alpha, value=10, perms=[r:1 w:0 x:1]}\n")
	want.WriteString("Node{id=2, name=beta, value=20, perms=[r:1 w:0 x:1]}\n")
	want.WriteString("Node{id=3, name=gamma, value=30, perms=[r:1 w:0 x:1]}\n")
	assert.Equal(t, want.String(), out)
}

func TestRootIgnoresPositionalArgs(t *testing.T) {
	plain, err := execute(t)
	require.NoError(t, err)

	withArgs, err := execute(t, "foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, plain, withArgs)
}

func TestRootItemsFlag(t *testing.T) {
	out, err := execute(t, "--items", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "numbers[1] = 2\n")
	assert.NotContains(t, out, "numbers[2]")
}

func TestRootArenaLimitIsSystemError(t *testing.T) {
	out, err := execute(t, "--arena-limit", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrAllocation)
	assert.Equal(t, exitSysError, exitCode(err))
	assert.NotContains(t, out, "Node{")
}

func TestRootUnknownOutputIsUserError(t *testing.T) {
	_, err := execute(t, "--output", "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrOutputUnknown)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestRootHugeItemsIsUserError(t *testing.T) {
	out, err := execute(t, "--items", "9223372036854775807")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrItemsInvalid)
	assert.Equal(t, exitUserError, exitCode(err))
	assert.Empty(t, out)
}

func TestRootNodeIDOverflowIsUserError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodelist.yaml")
	content := "nodes:\n  - id: 300000000\n    name: big\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := execute(t, "--config", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNodeIDOutOfRange)
	assert.Equal(t, exitUserError, exitCode(err))
	assert.NotContains(t, out, "value=-1294967296")
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nodelist.yaml")
	content := "items: 1\nnodes:\n  - id: 4\n    name: delta\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t,
		"numbers[0] = 0\nNode{id=4, name=delta, value=40, perms=[r:1 w:0 x:1]}\n",
		out)
}

func TestRootFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nodelist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: 1\n"), 0o644))

	out, err := execute(t, "--config", path, "--items", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "numbers[2] = 6\n")
}

func TestRootMissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--output", "yaml")
	require.NoError(t, err)

	var got types.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	want := types.DefaultConfig()
	want.Output = types.OutputYAML
	assert.Equal(t, want, got)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "nodelist v"+Version+"\nmodule: "+modulePath+"\n", out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(errors.New("boom")))
	assert.Equal(t, exitSysError, exitCode(fmt.Errorf("wrap: %w", types.ErrAllocation)))
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := newLogger("loud")
	assert.Error(t, err)

	l, err := newLogger("debug")
	require.NoError(t, err)
	_ = l.Sync()
}
