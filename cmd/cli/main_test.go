package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_Session(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	in := strings.NewReader("hello\nadd John 1234567890\nphone John\nclose\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(in, out, []string{"--log-level=error"})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Welcome to the assistant bot!")
	require.Contains(t, out.String(), "How can I help you?")
	require.Contains(t, out.String(), "John's phone: 1234567890")
	require.True(t, strings.HasSuffix(out.String(), "Good bye!\n"))
}

func TestRun_SettingsFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "settings.hcl")
	err := os.WriteFile(path, []byte(`
		prompt   = "$ "
		greeting = "Ready."
	`), 0600)
	require.NoError(t, err, "failed to set up test file")
	out := &bytes.Buffer{}

	// --- Act ---
	err = run(strings.NewReader("exit\n"), out, []string{path})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Ready.\n$ Good bye!\n", out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error
	// without reading any input.
	err := run(strings.NewReader("hello\n"), out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
	require.NotContains(t, out.String(), "How can I help you?")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(strings.NewReader(""), out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
