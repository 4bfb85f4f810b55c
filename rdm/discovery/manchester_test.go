package discovery

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	euid := [6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	wire := Encode(euid, 7)
	require.Len(t, wire, 7+1+16)

	got, checksum, err := Decode(wire)
	require.NoError(t, err)
	require.Equal(t, euid, got)
	require.Equal(t, uint16(0x0015), checksum)
}

func TestDecodeTolerateVaryingPreambleLength(t *testing.T) {
	euid := [6]byte{0xAA, 0xBB, 0xCC, 0x01, 0x02, 0x03}
	for preambleLen := 0; preambleLen <= 7; preambleLen++ {
		wire := Encode(euid, preambleLen)
		got, _, err := Decode(wire)
		require.NoError(t, err)
		require.Equal(t, euid, got)
	}
}

func TestDecodeCorruptedChecksum(t *testing.T) {
	euid := [6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	wire := Encode(euid, 7)

	// Corrupt one Manchester byte inside the checksum's encoded pair.
	wire[len(wire)-1] ^= 0x01
	_, _, err := Decode(wire)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestDecodeMissingSeparator(t *testing.T) {
	_, _, err := Decode([]byte{0xFE, 0xFE, 0xFE})
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestPropertyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var euid [6]byte
		for i := range euid {
			euid[i] = rapid.Byte().Draw(t, "euid byte")
		}
		preambleLen := rapid.IntRange(0, 7).Draw(t, "preamble length")

		wire := Encode(euid, preambleLen)
		got, _, err := Decode(wire)
		require.NoError(t, err)
		require.Equal(t, euid, got)
	})
}
