package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Success(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	file := filepath.Join(dir, "sample.csv")
	require.NoError(t, os.WriteFile(file, []byte("1,2\n"), 0o600))
	errBuf := &bytes.Buffer{}

	// --- Act ---
	result, err := Parse(context.Background(), []string{"1", "2", "0,1", file}, errBuf)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, result.Descriptors, 1)
	assert.Equal(t, file, result.Descriptors[0].Path)
	assert.Empty(t, errBuf.String())
}

func TestParse_UsageErrorPrintsMessageAndUsage(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	errBuf := &bytes.Buffer{}

	// --- Act ---
	result, err := Parse(context.Background(), []string{"not-an-int", "2", ""}, errBuf)

	// --- Assert ---
	require.Error(t, err)
	assert.Nil(t, result)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok, "expected an *ExitError, got %T", err)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, errBuf.String(), "Error:")
	assert.Contains(t, errBuf.String(), "Usage:")
}

func TestParse_RemovalErrorIsAbrupt(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	file := filepath.Join(dir, "sample.csv")
	require.NoError(t, os.WriteFile(file, []byte("1,2\n"), 0o600))
	errBuf := &bytes.Buffer{}

	// --- Act ---
	result, err := Parse(context.Background(), []string{"1", "", "", file, "-rm", "ghost.csv"}, errBuf)

	// --- Assert ---
	require.Error(t, err)
	assert.Nil(t, result)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok, "expected an *ExitError, got %T", err)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "ghost.csv")
	assert.NotContains(t, errBuf.String(), "Usage:", "removal failures terminate without help text")
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	errBuf := &bytes.Buffer{}

	result, err := Parse(context.Background(), []string{"-H"}, errBuf)

	require.NoError(t, err)
	assert.True(t, result.Help)
	assert.Empty(t, errBuf.String())
}

func TestUsage_CoversWholeVocabulary(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	Usage(buf)
	text := buf.String()

	for _, spelling := range []string{
		"-H", "include_header", "class_col", "ignore_cols",
		"-d", "-db", "-cls", "-clsd", "--delay_write",
		"--drop_col", "--merge_cls", "--infer_nn", "-rm", "--merge",
	} {
		assert.Contains(t, text, spelling)
	}

	// Stateless renderer: two invocations produce identical text.
	again := &bytes.Buffer{}
	Usage(again)
	assert.Equal(t, text, again.String())
}
