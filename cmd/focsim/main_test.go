package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"--config", filepath.Join("..", "..", "internal", "sim", "testdata", "config.yaml"),
		"--iterations", "3",
		"--backend", "both",
	})

	require.NoError(t, rootCmd.Execute())

	// The file sets two channels at scale 20; the flags override the rest.
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2*2*3+2*2, out.String())

	require.True(t, strings.HasPrefix(lines[0], "ch=0 backend=float i=0 "))
	require.True(t, strings.HasPrefix(lines[3], "ch=0 backend=fixed i=0 "))
	require.True(t, strings.HasPrefix(lines[12], "channel=0 backend=float "))
	require.True(t, strings.HasPrefix(lines[15], "channel=1 backend=fixed "))
}
