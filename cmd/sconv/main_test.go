package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sconv/internal/atomicfile"
	"sconv/pkg/widechar"
)

// execute resets the flag state and runs the root command with args.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	outputFile = ""
	wideEncoding = "native"
	writeBOM = false
	force = false
	verbose = false
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestConvertFileToFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	target := filepath.Join(dir, "out.wide")
	require.NoError(t, os.WriteFile(input, []byte("héllo"), 0600))

	require.NoError(t, execute(t, "-e", "utf16le", "-o", target, input))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	back, err := widechar.UTF16LE.NewDecoder().Bytes(content)
	require.NoError(t, err)
	require.Equal(t, "héllo", string(back))

	info, err := os.Stat(target)
	require.NoError(t, err)
	require.Equal(t, atomicfile.TargetMode, info.Mode().Perm())

	// No temp file remains next to the target
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasPrefix(e.Name(), "sconv-"), "leftover temp file %s", e.Name())
	}
}

func TestEmptyInputPublishesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	target := filepath.Join(dir, "out.wide")
	require.NoError(t, os.WriteFile(input, nil, 0600))

	require.NoError(t, execute(t, "-o", target, input))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Empty(t, content)
}

func TestBOMFlag(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	target := filepath.Join(dir, "out.wide")
	require.NoError(t, os.WriteFile(input, nil, 0600))

	require.NoError(t, execute(t, "-e", "utf16be", "--bom", "-o", target, input))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFE, 0xFF}, content)
}

func TestMissingInputFileFails(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.wide")

	err := execute(t, "-o", target, filepath.Join(dir, "no-such-file"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "as input")

	// The target must stay untouched on failure
	_, err = os.Stat(target)
	require.True(t, os.IsNotExist(err))
}

func TestUnknownWideEncodingFails(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(input, []byte("x"), 0600))

	err := execute(t, "-e", "ebcdic", "-o", filepath.Join(dir, "out.wide"), input)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown wide encoding")
}

func TestHelpPrintsUsage(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(os.Stderr)

	require.NoError(t, execute(t, "--help"))
	require.Contains(t, buf.String(), "Usage:")
	require.Contains(t, buf.String(), "--output-file")
}
