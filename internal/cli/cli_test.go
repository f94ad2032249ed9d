package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcanium/internal/cli"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, exit, err := cli.Parse([]string{"input.txt"}, out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, &cli.Config{InputPath: "input.txt", LogLevel: "info", LogFormat: "text"}, cfg)
	assert.Empty(t, out.String())
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	cfg, exit, err := cli.Parse([]string{
		"-config", "scenarios.hcl", "-log-level", "DEBUG", "-log-format", "Json", cli.StdinPath,
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, &cli.Config{
		InputPath:  "-",
		ConfigPath: "scenarios.hcl",
		LogLevel:   "debug",
		LogFormat:  "json",
	}, cfg)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, exit, err := cli.Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-log-format")
}

func TestParse_UsageErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"no input", nil, "missing INPUT"},
		{"two inputs", []string{"a", "b"}, "expected one INPUT argument, got 2"},
		{"unknown flag", []string{"-fast", "a"}, "flag provided but not defined: -fast"},
		{"bad format", []string{"-log-format", "xml", "a"}, "invalid log-format"},
		{"bad level", []string{"-log-level", "trace", "a"}, "invalid log-level"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, exit, err := cli.Parse(tc.args, &bytes.Buffer{})
			assert.False(t, exit)

			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Error(), tc.msg)
		})
	}
}

func TestNewLogger_LevelAndFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := cli.NewLogger("warn", "json", buf)
	logger.Info("hidden")
	logger.Warn("shown", "valve", "AA")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "AA", rec["valve"])

	buf.Reset()
	logger = cli.NewLogger("bogus", "bogus", buf)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
