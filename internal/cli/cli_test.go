package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/natanaeljr/gerlib/internal/cli"
)

type testEnv struct {
	registry string
	// stderr holds the diagnostics of the last run.
	stderr string
}

// newTestEnv points the registry at a fresh temp file and clears GER_*
// variables that would override flags.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	for _, name := range []string{
		"GER_CONFIG", "GER_REGISTRY_DRIVER", "GER_REGISTRY_PATH",
		"GER_HTTP_AUTH", "GER_HTTP_TIMEOUT", "GER_LOG_LEVEL", "GER_LOG_FORMAT",
	} {
		t.Setenv(name, "")
	}
	t.Chdir(t.TempDir())

	return &testEnv{registry: filepath.Join(t.TempDir(), "remotes.json")}
}

// run executes the ger command line and returns stdout.
func (e *testEnv) run(t *testing.T, opts []cli.Option, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd(opts...)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--registry", e.registry}, args...))

	err := cmd.ExecuteContext(context.Background())
	e.stderr = errOut.String()
	return out.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()

	out, err := e.run(t, nil, args...)
	require.NoError(t, err)
	return out
}
