package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(envProfiles, "")
	t.Setenv(envLogLevel, "")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSingle(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"fixed", "1234", "2"}, want: "12.34\n"},
		{args: []string{"fixed", "-1234", "2"}, want: "-12.34\n"},
		{args: []string{"fixed", "5", "3"}, want: "0.005\n"},
		{args: []string{"fixed", "0"}, want: "0\n"},
		{args: []string{"dynamic", "12345", "2", "4"}, want: "123.5\n"},
		{args: []string{"leading0", "1234", "2", "5"}, want: "012.34\n"},
		{args: []string{"hex", "255"}, want: "FF\n"},
		{args: []string{"-crlf", "bin", "5"}, want: "101\r\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			code, stdout, stderr := runCommand(t, "", tt.args...)
			assert.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRunSingleErrors(t *testing.T) {
	code, stdout, stderr := runCommand(t, "", "fixed", "12x")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid VALUE")

	code, _, stderr = runCommand(t, "", "fixed", "1", "40")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "exceeds buffer capacity")

	code, _, stderr = runCommand(t, "", "fixed")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "expected MODE VALUE")

	code, _, _ = runCommand(t, "", "-h")
	assert.Equal(t, 0, code)
}

func TestRunBatchWithProfilesAndMetrics(t *testing.T) {
	dir := t.TempDir()
	profiles := filepath.Join(dir, "profiles.yaml")
	require.NoError(t, os.WriteFile(profiles, []byte("profiles:\n  - {name: voltage, mode: fixed, digits: 2}\n"), 0o600))
	metrics := filepath.Join(dir, "streamfmt.prom")

	input := `{"id":"a","profile":"voltage","value":1234}
{"id":"b","mode":"dynamic","value":12345,"digits":2,"budget":4}
{"id":"c","mode":"fixed","value":1,"digits":40}
`
	code, stdout, stderr := runCommand(t, input, "-batch", "-profiles", profiles, "-metrics-out", metrics)
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"id":"a","text":"12.34"}`, lines[0])
	assert.JSONEq(t, `{"id":"b","text":"123.5"}`, lines[1])
	assert.Contains(t, lines[2], "exceeds buffer capacity")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `streamfmt_renders_total{mode="fixed"} 1`)
	assert.Contains(t, string(data), `streamfmt_renders_total{mode="dynamic"} 1`)
	assert.Contains(t, string(data), `streamfmt_faults_total{mode="fixed"} 1`)
}

func TestRunSingleProfile(t *testing.T) {
	profiles := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(profiles, []byte("profiles:\n  - {name: clock, mode: leading0, width: 2}\n"), 0o600))

	code, stdout, stderr := runCommand(t, "", "-profiles", profiles, "-profile", "clock", "7")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "07\n", stdout)

	code, _, stderr = runCommand(t, "", "-profiles", profiles, "-profile", "missing", "7")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "profile not found")
}

func TestRunBadProfilesFile(t *testing.T) {
	code, _, stderr := runCommand(t, "", "-profiles", filepath.Join(t.TempDir(), "none.yaml"), "fixed", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to load profiles")
}

func TestRunBatchMalformed(t *testing.T) {
	code, _, stderr := runCommand(t, "{oops}\n", "-batch")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "batch failed")
}
