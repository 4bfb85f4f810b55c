package rdm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// S1: constructing a GET IDENTIFY_DEVICE request produces the exact bytes
// ANSI E1.20 Appendix C demands.
func TestScenarioS1EncodeGetIdentifyDeviceRequest(t *testing.T) {
	req := RdmRequest{
		Destination: DeviceUID{ManufacturerID: 0x0102, DeviceID: 0x03040506},
		Source:      DeviceUID{ManufacturerID: 0x0605, DeviceID: 0x04030201},
		Transaction: 0x00,
		PortId:      0x01,
		SubDevice:   RootDevice,
		Parameter:   GetIdentifyDeviceRequest{},
	}

	got, err := req.Encode()
	require.NoError(t, err)

	want := []byte{
		0xCC, 0x01, 0x18, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x06, 0x05,
		0x04, 0x03, 0x02, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x20, 0x10,
		0x00, 0x00, 0x01, 0x40,
	}
	require.Equal(t, want, got)
}

// S2: decoding an ACK'd GET IDENTIFY_DEVICE response yields a Frame with
// the typed parameter value dispatch produces.
func TestScenarioS2DecodeGetIdentifyDeviceResponseAck(t *testing.T) {
	data := []byte{
		0xCC, 0x01, 0x19, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x06, 0x05,
		0x04, 0x03, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x21, 0x10,
		0x00, 0x01, 0x01, 0x01, 0x43,
	}

	got, err := Decode(data)
	require.NoError(t, err)

	frame, ok := got.(*Frame)
	require.True(t, ok)
	require.Equal(t, DeviceUID{ManufacturerID: 0x0102, DeviceID: 0x03040506}, frame.Destination)
	require.Equal(t, DeviceUID{ManufacturerID: 0x0605, DeviceID: 0x04030201}, frame.Source)
	require.Equal(t, ResponseTypeAck, frame.ResponseType)
	require.Equal(t, GetCommandResponse, frame.CommandClass)
	require.Equal(t, PidIdentifyDevice, frame.PID)
	require.Equal(t, AckData{Value: GetIdentifyDeviceResponse{Value: true}}, frame.Data)
}

// S3: flipping any single byte of S2 must fail. Bytes 0-2 (start code,
// sub-start code, message length) are validated before the checksum and
// fail with their own error kinds; every other byte, including either
// checksum byte, fails with ErrInvalidChecksum.
func TestScenarioS3ChecksumCorruption(t *testing.T) {
	original := []byte{
		0xCC, 0x01, 0x19, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x06, 0x05,
		0x04, 0x03, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x21, 0x10,
		0x00, 0x01, 0x01, 0x01, 0x43,
	}

	structural := map[int]ErrorKind{
		0: ErrInvalidStartByte,
		1: ErrInvalidSubStartByte,
		2: ErrMessageLengthMismatch,
	}

	for i := range original {
		corrupted := append([]byte(nil), original...)
		corrupted[i] ^= 0x01
		_, err := Decode(corrupted)
		require.Error(t, err, "byte %d", i)
		rdmErr, ok := err.(*Error)
		require.True(t, ok, "byte %d", i)
		want, isStructural := structural[i]
		if !isStructural {
			want = ErrInvalidChecksum
		}
		require.Equal(t, want, rdmErr.Kind, "byte %d", i)
	}
}

// S4: an unrecognized PID decodes to ManufacturerSpecific rather than
// failing.
func TestScenarioS4UnknownPidDecodesAsManufacturerSpecific(t *testing.T) {
	data := []byte{
		0xCC, 0x01, 0x19, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x06, 0x05,
		0x04, 0x03, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x21, 0x7F,
		0xFF, 0x01, 0x01, 0x02, 0xB1,
	}

	got, err := Decode(data)
	require.NoError(t, err)

	frame, ok := got.(*Frame)
	require.True(t, ok)
	ack, ok := frame.Data.(AckData)
	require.True(t, ok)
	ms, ok := ack.Value.(ManufacturerSpecific)
	require.True(t, ok)
	require.Equal(t, uint16(0x7FFF), ms.Pid.Code())
	require.Equal(t, []byte{0x01}, ms.Data)
}

// S5: a NACK response with DATA_OUT_OF_RANGE decodes to NackData and
// re-encodes to the same bytes.
func TestScenarioS5NackResponseRoundTrip(t *testing.T) {
	data := []byte{
		0xCC, 0x01, 0x1A, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x06, 0x05,
		0x04, 0x03, 0x02, 0x01, 0x00, 0x02, 0x00, 0x00, 0x00, 0x21, 0x10,
		0x00, 0x02, 0x00, 0x09, 0x01, 0x4F,
	}

	got, err := Decode(data)
	require.NoError(t, err)

	frame, ok := got.(*Frame)
	require.True(t, ok)
	require.Equal(t, ResponseTypeNack, frame.ResponseType)
	nack, ok := frame.Data.(NackData)
	require.True(t, ok)
	require.Equal(t, NackReasonDataOutOfRange, nack.Reason)

	reencoded, err := frame.Encode()
	require.NoError(t, err)
	require.Equal(t, data, reencoded)
}

// S6: a valid discovery unique-branch response decodes to its euid and
// checksum; corrupting a Manchester byte fails with
// ErrInvalidDiscoveryResponse.
func TestScenarioS6DiscoveryUniqueBranchResponse(t *testing.T) {
	euid := DeviceUID{ManufacturerID: 0x4859, DeviceID: 0x00000001}
	var raw [6]byte
	copy(raw[:], euid.Encode())

	wire := make([]byte, 0, 7+1+16)
	for i := 0; i < 7; i++ {
		wire = append(wire, 0xFE)
	}
	wire = append(wire, 0xAA)

	var checksum uint16
	for _, b := range raw {
		checksum += uint16(b)
	}
	payload := append(append([]byte{}, raw[:]...), byte(checksum>>8), byte(checksum))
	for _, b := range payload {
		wire = append(wire, 0xAA|(b>>1), 0xAA|b)
	}
	require.Len(t, wire, 24)

	got, err := Decode(wire)
	require.NoError(t, err)
	df, ok := got.(*DiscoveryUniqueBranchFrame)
	require.True(t, ok)
	require.Equal(t, euid, df.EUID)
	require.Equal(t, checksum, df.Checksum)

	corrupted := append([]byte(nil), wire...)
	corrupted[len(corrupted)-1] ^= 0x01
	_, err = Decode(corrupted)
	require.Error(t, err)
	rdmErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, ErrInvalidDiscoveryResponse, rdmErr.Kind)
}

// Property 3: the trailing two bytes of any encoded frame equal the
// big-endian sum, mod 65536, of every byte preceding them.
func TestPropertyChecksumValidity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		req := RdmRequest{
			Destination: DeviceUID{
				ManufacturerID: uint16(rapid.Uint16().Draw(t, "dest manufacturer")),
				DeviceID:       rapid.Uint32().Draw(t, "dest device"),
			},
			Source: DeviceUID{
				ManufacturerID: uint16(rapid.Uint16().Draw(t, "src manufacturer")),
				DeviceID:       rapid.Uint32().Draw(t, "src device"),
			},
			Transaction: rapid.Byte().Draw(t, "transaction"),
			PortId:      byte(rapid.IntRange(1, 255).Draw(t, "port id")),
			SubDevice:   RootDevice,
			Parameter:   GetIdentifyDeviceRequest{},
		}

		encoded, err := req.Encode()
		require.NoError(t, err)

		n := len(encoded)
		want := binary.BigEndian.Uint16(encoded[n-2:])
		got := checksum(encoded[:n-2])
		require.Equal(t, want, got)
	})
}

// Property 4: F[2]+2 == len(F) and F[23]+24 == F[2] for any encoded frame.
func TestPropertyLengthByteInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payloadLen := rapid.IntRange(0, MaxPdl).Draw(t, "payload length")
		payload := make([]byte, payloadLen)
		for i := range payload {
			payload[i] = rapid.Byte().Draw(t, "payload byte")
		}

		req := RdmRequest{
			Destination: AllDevicesID,
			Source:      DeviceUID{ManufacturerID: 0x1234, DeviceID: 0x56789ABC},
			Transaction: 0,
			PortId:      1,
			SubDevice:   RootDevice,
			Parameter:   ManufacturerSpecific{Pid: PidUnknown(0x8080), CommandClass: GetCommand, Data: payload},
		}

		encoded, err := req.Encode()
		require.NoError(t, err)

		require.Equal(t, len(encoded), int(encoded[2])+2)
		require.Equal(t, int(encoded[2]), int(encoded[23])+headerLength)
	})
}

// Property 6: ParameterId and ProductCategory are total over every
// 16-bit wire value, and re-encoding recovers the original value.
func TestPropertyOpenSetTotality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := uint16(rapid.Uint16().Draw(t, "code"))

		pid := PidUnknown(code)
		require.Equal(t, code, pid.Code())
		require.Equal(t, code, binary.BigEndian.Uint16(pid.Encode()))

		category := DecodeProductCategory([]byte{byte(code >> 8), byte(code)})
		require.Equal(t, code, category.Code())
		require.Equal(t, code, binary.BigEndian.Uint16(category.Encode()))
	})
}

// Property 7: a label containing an embedded null byte decodes back to
// the prefix preceding that null.
func TestPropertyStringNullTermination(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefixLen := rapid.IntRange(0, 10).Draw(t, "prefix length")
		prefix := make([]byte, prefixLen)
		for i := range prefix {
			b := rapid.Byte().Draw(t, "prefix byte")
			if b == 0 {
				b = 1
			}
			prefix[i] = b
		}
		suffixLen := rapid.IntRange(0, 10).Draw(t, "suffix length")
		suffix := make([]byte, suffixLen)
		for i := range suffix {
			suffix[i] = rapid.Byte().Draw(t, "suffix byte")
		}

		data := append(append([]byte{}, prefix...), 0x00)
		data = append(data, suffix...)

		got := decodeLabel(data)
		require.Equal(t, string(prefix), got)
	})
}
