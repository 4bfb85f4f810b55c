package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = oldStdout

	out, err := io.ReadAll(bufio.NewReader(r))
	require.NoError(t, err)
	return string(out)
}

func TestShowHelp(t *testing.T) {
	captured := captureStdout(t, showHelp)
	assert.Contains(t, captured, "rdmtool")
	assert.Contains(t, captured, "USAGE:")
	assert.Contains(t, captured, "COMMANDS:")
	assert.Contains(t, captured, "EXAMPLES:")
}

func TestShowVersion(t *testing.T) {
	captured := captureStdout(t, showVersion)
	assert.Contains(t, captured, "rdmtool")
}

func TestCommandClassFor(t *testing.T) {
	cc, err := commandClassFor("get")
	require.NoError(t, err)
	assert.Equal(t, byte(0x20), byte(cc))

	cc, err = commandClassFor("SET")
	require.NoError(t, err)
	assert.Equal(t, byte(0x30), byte(cc))

	_, err = commandClassFor("discovery")
	require.NoError(t, err)

	_, err = commandClassFor("bogus")
	assert.Error(t, err)
}

func TestRunEncodeGetIdentifyDevice(t *testing.T) {
	captured := captureStdout(t, func() {
		err := runEncode([]string{
			"-pid", "IDENTIFY_DEVICE",
			"-dest", "4859:00000001",
			"-src", "0000:00000000",
			"-port", "1",
		})
		require.NoError(t, err)
	})
	assert.NotEmpty(t, captured)
}

func TestRunEncodeUnknownPid(t *testing.T) {
	err := runEncode([]string{"-pid", "NOT_A_REAL_PID"})
	assert.Error(t, err)
}

func TestEncodeThenDecodeRoundTrip(t *testing.T) {
	encoded := captureStdout(t, func() {
		err := runEncode([]string{
			"-pid", "DEVICE_INFO",
			"-dest", "4859:00000001",
			"-src", "0000:00000000",
			"-port", "1",
			"-cc", "get",
		})
		require.NoError(t, err)
	})

	decoded := captureStdout(t, func() {
		err := runDecode([]string{"-hex", trimNewline(encoded)})
		require.NoError(t, err)
	})
	assert.Contains(t, decoded, "DEVICE_INFO")
	assert.Contains(t, decoded, "request")
}

func TestRunDecodeRequiresHex(t *testing.T) {
	err := runDecode([]string{})
	assert.Error(t, err)
}

func TestMainHelp(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"rdmtool", "help"}
	captured := captureStdout(t, main)
	assert.Contains(t, captured, "USAGE:")
}

func TestMainVersion(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"rdmtool", "version"}
	captured := captureStdout(t, main)
	assert.Contains(t, captured, "rdmtool")
}

func TestRunSimulateAnswersDeviceInfo(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "par64.yaml")

	encoded := captureStdout(t, func() {
		err := runEncode([]string{
			"-pid", "DEVICE_INFO",
			"-dest", "4859:00000001",
			"-src", "0000:00000000",
			"-port", "1",
			"-cc", "get",
		})
		require.NoError(t, err)
	})

	simOut := captureStdout(t, func() {
		err := runSimulate([]string{
			"-profile-dir", dir,
			"-hex", trimNewline(encoded),
		})
		require.NoError(t, err)
	})
	assert.NotEmpty(t, simOut)

	decoded := captureStdout(t, func() {
		err := runDecode([]string{"-hex", trimNewline(simOut)})
		require.NoError(t, err)
	})
	assert.Contains(t, decoded, "ACK")
}

func TestRunSimulateUnknownDevice(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "par64.yaml")

	encoded := captureStdout(t, func() {
		err := runEncode([]string{
			"-pid", "DEVICE_INFO",
			"-dest", "AAAA:00000099",
			"-src", "0000:00000000",
			"-port", "1",
			"-cc", "get",
		})
		require.NoError(t, err)
	})

	err := runSimulate([]string{
		"-profile-dir", dir,
		"-hex", trimNewline(encoded),
	})
	assert.Error(t, err)
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

func writeProfile(t *testing.T, dir, name string) {
	t.Helper()
	content := `
manufacturer: Example Lighting Co
model: Par64 RGBW
device_uid: "4859:00000001"
category: fixture
personalities:
  - slots_required: 4
    description: "RGBW basic"
sensors:
  - type: temperature
    unit: centigrade
    description: "PCB temperature"
    range_min: -20
    range_max: 80
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
