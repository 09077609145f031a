package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunExampleDocument(t *testing.T) {
	path := writeInput(t, exampleDocument)

	stdout, _, err := execute(t, "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "nums[0] = 12\nnums[1] = 38\nnums[2] = 15\nnums[3] = 77\nAnswer: 142\n", stdout)
}

func TestRunQuiet(t *testing.T) {
	path := writeInput(t, exampleDocument)

	stdout, _, err := execute(t, "-i", path, "-q")
	require.NoError(t, err)
	assert.Equal(t, "Answer: 142\n", stdout)
}

func TestRunUnterminatedInput(t *testing.T) {
	path := writeInput(t, "1abc2")

	stdout, stderr, err := execute(t, "--input", path, "--log-level", "warn")
	require.NoError(t, err)
	assert.Equal(t, "Answer: 0\n", stdout)
	assert.Contains(t, stderr, "unterminated last line not counted")
}

func TestRunLineWithoutDigits(t *testing.T) {
	path := writeInput(t, "abc\n4\n")

	stdout, stderr, err := execute(t, "--input", path, "--log-level", "warn")
	require.NoError(t, err)
	assert.Equal(t, "nums[0] = 0\nnums[1] = 44\nAnswer: 44\n", stdout)
	assert.Contains(t, stderr, "line has no digits")
}

func TestRunEmptyFile(t *testing.T) {
	path := writeInput(t, "")

	stdout, _, err := execute(t, "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "Answer: 0\n", stdout)
}

func TestRunJSON(t *testing.T) {
	path := writeInput(t, exampleDocument)

	stdout, _, err := execute(t, "--input", path, "--json")
	require.NoError(t, err)

	var out JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 142, out.Answer)
	assert.Equal(t, 4, out.Lines)
}

func TestRunReport(t *testing.T) {
	path := writeInput(t, exampleDocument)

	stdout, _, err := execute(t, "--input", path, "--report", "--style", "notty")
	require.NoError(t, err)
	assert.Contains(t, stdout, "142")
}

func TestRunJSONAndReportExclusive(t *testing.T) {
	path := writeInput(t, exampleDocument)

	_, _, err := execute(t, "--input", path, "--json", "--report")
	require.Error(t, err)
}

func TestRunMissingInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	stdout, stderr, err := execute(t, "--input", path)
	require.ErrorIs(t, err, ErrInputUnreadable)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to open input file ("+path+")")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "cannot load input")
}

func TestRunRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	require.Error(t, err)
}

func TestDefaultInputPath(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
	flag := cmd.Flags().Lookup("input")
	require.NotNil(t, flag)
	assert.Equal(t, defaultInput, flag.DefValue)
}
