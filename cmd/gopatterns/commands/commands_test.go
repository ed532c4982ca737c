package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopatterns/cmd/gopatterns/commands"
)

// run executes the CLI with args and returns captured stdout and stderr.
func run(t *testing.T, args ...string) (string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := commands.NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	require.NoError(t, root.Execute())
	return stdout.String(), stderr.String()
}

func TestCommandPresence(t *testing.T) {
	root := commands.NewRootCommand()
	for _, name := range []string{
		"adapter", "bridge", "builder", "composite", "decorator",
		"facade", "factory", "singleton", "uikit",
	} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := root.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestDemoTranscripts(t *testing.T) {
	// facade is excluded: its transcript contains a random order id.
	for _, name := range []string{
		"adapter", "bridge", "builder", "composite", "decorator",
		"factory", "singleton", "uikit",
	} {
		t.Run(name, func(t *testing.T) {
			stdout, _ := run(t, name)
			g := goldie.New(t)
			g.Assert(t, name, []byte(stdout))
		})
	}
}

func TestFacadeTranscript(t *testing.T) {
	stdout, _ := run(t, "facade")
	assert.Contains(t, stdout, "2 x BOOK-1")
	assert.Contains(t, stdout, "charged 5600 cents (incl. 600 shipping) via LEG-0001")
	assert.Contains(t, stdout, "stock left: 1")
	assert.Contains(t, stdout, "second order refused: out of stock: BOOK-1")
}

func TestDecorator_CustomValue(t *testing.T) {
	stdout, _ := run(t, "decorator", "abc")
	assert.Contains(t, stdout, `write: "abc"`)
	assert.Contains(t, stdout, `read: "abc"`)
}

func TestDecorator_PipelineFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store: custom
layers:
  - kind: base64
`), 0o600))

	stdout, _ := run(t, "decorator", "--pipeline", path, "hi")
	assert.Contains(t, stdout, `around store "custom"`)
	assert.Contains(t, stdout, `leaf holds: "aGk="`)
	assert.Contains(t, stdout, `read: "hi"`)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr := run(t, "--verbose", "decorator")
	assert.Contains(t, stderr, "store write")
	assert.Contains(t, stderr, "store read")

	_, quietErr := run(t, "decorator")
	assert.Empty(t, quietErr)
}
