// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package trim

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/trimlog/internal/ctxlog"
	"github.com/matt-FFFFFF/trimlog/internal/linerange"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const sampleLog = "# header\n" +
	"# 1:T 1.0\n" +
	"0 -1.0\n" +
	"# 1:T 0.5\n" +
	"1 -1.2\n" +
	"2 -1.3\n" +
	"# -- restart MC: found lower energy -1.4\n" +
	"3 -1.4\n"

// run executes a fresh command and returns stdout and the error passed to the exit handler.
func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()

	stubs := gostub.Stub(&linerange.FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)

	var (
		stdout  bytes.Buffer
		stderr  bytes.Buffer
		exitErr error
	)

	cmd := NewCommand()
	cmd.Writer = &stdout
	cmd.ErrWriter = &stderr
	cmd.ExitErrHandler = func(_ context.Context, _ *cli.Command, err error) {
		exitErr = err
	}

	err := cmd.Run(context.Background(), append([]string{"trimlog"}, args...))
	if err != nil && exitErr == nil {
		exitErr = err
	}

	return stdout.String(), exitErr
}

func exitCode(err error) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	if err != nil {
		return 1
	}

	return 0
}

func TestUsage(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "no arguments"},
		{name: "one argument", args: []string{"in.log"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, afero.NewMemMapFs(), tc.args...)
			require.NoError(t, err)
			assert.Equal(t, 0, exitCode(err))
			assert.Equal(t, "format: trimlog <input file name> <output file name>\n", out)
		})
	}
}

func TestTrim(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.log", []byte(sampleLog), 0o644))

	out, err := run(t, fs, "in.log", "out.log")
	require.NoError(t, err)
	assert.Empty(t, out, "a successful run prints nothing")

	got, err := afero.ReadFile(fs, "out.log")
	require.NoError(t, err)
	assert.Equal(t, "# header\n# 1:T 1.0\n0 -1.0\n# 1:T 0.5\n3 -1.4\n", string(got))
}

func TestTrim_ExtraArgumentsIgnored(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.log", []byte(sampleLog), 0o644))

	_, err := run(t, fs, "in.log", "out.log", "ignored")
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "ignored")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTrim_MissingInput(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := run(t, fs, "missing.log", "out.log")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
}

func TestTrim_ErrorLoggedOnOneLine(t *testing.T) {
	var logs bytes.Buffer

	logger := slog.New(ctxlog.NewPrettyHandler(&slog.HandlerOptions{Level: ctxlog.LevelVar},
		ctxlog.WithDestinationWriter(&logs),
		ctxlog.WithColour(false),
	))
	stubs := gostub.Stub(&ctxlog.DefaultLogger, logger)
	t.Cleanup(stubs.Reset)

	_, err := run(t, afero.NewMemMapFs(), "missing.log", "out.log")
	require.Error(t, err)

	out := logs.String()
	assert.Contains(t, out, "ERROR:")
	assert.Contains(t, out, "failed to trim file")
	assert.Contains(t, out, "missing.log")
	assert.Equal(t, 1, strings.Count(out, "\n"), "one error is one log line")
}

func TestTrim_Summary(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.log", []byte(sampleLog), 0o644))

	out, err := run(t, fs, "--summary", "in.log", "out.log")
	require.NoError(t, err)
	assert.Contains(t, out, "trimlog summary")
	assert.Contains(t, out, "line 4")
	assert.Contains(t, out, "line 7")
}

func TestTrim_MarkerFlags(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.log", []byte("a\n>>\nb\n<<\nc\n"), 0o644))

	_, err := run(t, fs, "--open-marker", ">>", "--close-marker", "<<", "in.log", "out.log")
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "out.log")
	require.NoError(t, err)
	assert.Equal(t, "a\n>>\nc\n", string(got))
}

func TestTrim_MarkerFromEnv(t *testing.T) {
	t.Setenv(envPrefix+"CLOSE_MARKER", "<<")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.log", []byte("a\nb\n<<\nc\n"), 0o644))

	_, err := run(t, fs, "in.log", "out.log")
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "out.log")
	require.NoError(t, err)
	assert.Equal(t, "c\n", string(got), "without an open marker everything up to the close marker is removed")
}

func TestTrim_EmptyMarkerRejected(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.log", []byte(sampleLog), 0o644))

	_, err := run(t, fs, "--open-marker", "", "in.log", "out.log")
	assert.Equal(t, 1, exitCode(err))

	exists, err := afero.Exists(fs, "out.log")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTrim_BadLogFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.log", []byte(sampleLog), 0o644))

	_, err := run(t, fs, "--log-format", "xml", "in.log", "out.log")
	assert.Equal(t, 1, exitCode(err))
}

func TestTrim_ConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.log", []byte("a\nSTART\nb\nSTOP\nc\n"), 0o644))

	_, err := run(t, fs, "--config", "./testdata/markers.yaml", "in.log", "out.log")
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "out.log")
	require.NoError(t, err)
	assert.Equal(t, "a\nSTART\nc\n", string(got))
}

func TestTrim_FlagOverridesConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.log", []byte("a\nSTART\nb\nSTOP\nc\nEND\nd\n"), 0o644))

	_, err := run(t, fs, "-c", "./testdata/markers.yaml", "--close-marker", "END", "in.log", "out.log")
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "out.log")
	require.NoError(t, err)
	assert.Equal(t, "a\nSTART\nd\n", string(got))
}
