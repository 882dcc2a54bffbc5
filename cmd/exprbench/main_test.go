package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exprvec/bench"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestListCommand(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	require.Equal(t, bench.ScenarioNames(bench.DefaultScenarios()), strings.Fields(out))
}

func TestCheckCommand(t *testing.T) {
	out, _, err := execute(t, "check")
	require.NoError(t, err)
	require.NotContains(t, out, "MISMATCH")
	require.Contains(t, out, "indirect  concurrent (24, 30, 36) ok")
	require.Contains(t, out, "depth chain=5 grouped=3")
	require.True(t, strings.HasSuffix(out, "ok\n"))
}

func TestRunCommandJSON(t *testing.T) {
	out, logs, err := execute(t, "run",
		"--iterations", "20",
		"--scenario", "naive/indirect",
		"--scenario", "expr-prebuilt/indirect",
		"--format", "json",
	)
	require.NoError(t, err)

	var reports []bench.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	require.Equal(t, "naive/indirect", reports[0].Scenario)
	require.Equal(t, 100, reports[0].Allocs)
	require.Equal(t, 20, reports[1].Allocs)
	require.Contains(t, logs, "scenario completed")
}

func TestRunCommandHeapTiming(t *testing.T) {
	out, _, err := execute(t, "run", "--iterations", "10", "--scenario", "naive/indirect", "--heap-timing", "--format", "json")
	require.NoError(t, err)

	var reports []bench.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	require.Equal(t, "heap", reports[0].Allocator)
	require.Equal(t, 50, reports[0].Allocs)
}

func TestRunCommandConfigOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iterations: 3\nscenarios: [naive/embedded]\nlog_level: error\n"), 0o600))

	out, logs, err := execute(t, "run", "--config", path, "--iterations", "4")
	require.NoError(t, err)
	require.Contains(t, out, "naive/embedded")
	require.NotContains(t, out, "expr-inline")
	require.Empty(t, logs)
}

func TestRunCommandErrors(t *testing.T) {
	_, _, err := execute(t, "run", "--scenario", "fast/embedded")
	require.ErrorIs(t, err, bench.ErrUnknownScenario)

	_, _, err = execute(t, "run", "--iterations", "0")
	require.ErrorIs(t, err, bench.ErrBadSuite)

	_, _, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
