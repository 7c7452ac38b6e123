package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lockgrid version")
}

func TestOptimizeCommand(t *testing.T) {
	out, err := execute(t, "optimize", "LLRUD")
	require.NoError(t, err)
	assert.Equal(t, "RD\n", out)

	_, err = execute(t, "optimize")
	assert.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "LR", "--color", "never", "--row", "A # B", "--row", "# C #")
	require.NoError(t, err)
	assert.Equal(t, "# A B\n# # C\n", out)
}
