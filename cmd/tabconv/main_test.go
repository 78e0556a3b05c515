package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabconv/internal/cli"
)

func TestRun_EmitsSummaryJSON(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	file := filepath.Join(dir, "sample.csv")
	require.NoError(t, os.WriteFile(file, []byte("1,2,a\n"), 0o600))
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"1", "2", "0,1", file})

	// --- Assert ---
	require.NoError(t, err)
	var got summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &got), "stdout should carry one JSON envelope")
	assert.True(t, got.Success)
	require.Len(t, got.Files, 1)
	assert.Equal(t, file, got.Files[0].Path)
	assert.True(t, got.Files[0].IncludeHeader)
	assert.NotEmpty(t, got.Duration)
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"-H"})

	// --- Assert ---
	require.NoError(t, err, "help is a successful exit")
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_UsageError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, nil)

	// --- Assert ---
	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok, "expected an *ExitError, got %T", err)
	assert.Equal(t, 2, exitErr.Code)
	assert.Empty(t, out.String(), "nothing is written to stdout on a failed interpretation")
	assert.Contains(t, errOut.String(), "Usage:")
}

func TestRun_RemovalErrorExitsWithoutUsage(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	file := filepath.Join(dir, "sample.csv")
	require.NoError(t, os.WriteFile(file, []byte("1\n"), 0o600))
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"1", "", "", file, "-rm", "ghost.csv"})

	// --- Assert ---
	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.Code)
	assert.NotContains(t, errOut.String(), "Usage:")
	assert.Empty(t, out.String())
}
