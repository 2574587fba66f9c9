package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"pnGo/pngDecoder/pngtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T) string {
	t.Helper()
	data := pngtest.Indexed(2, 1,
		pngtest.Palette([3]uint8{255, 0, 0}, [3]uint8{0, 0, 255}),
		[][]byte{{1, 0}},
		2,
	)
	path := filepath.Join(t.TempDir(), "in.png")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecodeCommand(t *testing.T) {
	input := writeTestPNG(t)
	output := filepath.Join(t.TempDir(), "out.ppm")

	_, err := run(t, "decode", input, "-o", output, "--log-level", "error")
	require.NoError(t, err)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, append([]byte("P6\n2 1\n255\n"), 0, 0, 255, 255, 0, 0), written)
}

func TestDecodeCommandErrors(t *testing.T) {
	input := writeTestPNG(t)
	output := filepath.Join(t.TempDir(), "out")

	_, err := run(t, "decode", input, "-o", output, "-f", "gif", "--log-level", "error")
	assert.Error(t, err)

	_, err = run(t, "decode", filepath.Join(t.TempDir(), "missing.png"), "-o", output, "--log-level", "error")
	assert.Error(t, err)

	_, err = run(t, "decode", "--log-level", "error")
	assert.Error(t, err)
}

func TestChunksCommand(t *testing.T) {
	out, err := run(t, "chunks", writeTestPNG(t), "--verify-crc", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "IHDR")
	assert.Contains(t, out, "PLTE")
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("IDAT")))
	assert.Contains(t, out, "IEND")
}
