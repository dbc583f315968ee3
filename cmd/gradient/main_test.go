package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGradient(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newGradientCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestGradientDefaultRamp(t *testing.T) {
	out, err := runGradient(t, "309dfc")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "[0x37, 0x33, 0x43],", lines[0])
	assert.Equal(t, "[0x30, 0x9d, 0xfc],", lines[9])
}

func TestGradientTwoSteps(t *testing.T) {
	out, err := runGradient(t, "--steps", "2", "ffffff")
	require.NoError(t, err)

	assert.Equal(t, "[0x37, 0x33, 0x43],\n[0xff, 0xff, 0xff],\n", out)
}

func TestGradientCustomStart(t *testing.T) {
	out, err := runGradient(t, "--steps", "2", "--start", "000000", "ff0000")
	require.NoError(t, err)

	assert.Equal(t, "[0x00, 0x00, 0x00],\n[0xff, 0x00, 0x00],\n", out)
}

func TestGradientInvalidTarget(t *testing.T) {
	out, err := runGradient(t, "xyz123")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestGradientInvalidSteps(t *testing.T) {
	out, err := runGradient(t, "--steps", "1", "ffffff")
	require.Error(t, err)
	assert.Empty(t, out)
}
