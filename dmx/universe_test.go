package dmx

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNew(t *testing.T) {
	u := New()
	require.Equal(t, MaxChannels, u.Len())
	for i := 0; i < u.Len(); i++ {
		v, err := u.Channel(i)
		require.NoError(t, err)
		require.Equal(t, byte(0), v)
	}
}

func TestNewWithLength(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr error
	}{
		{name: "min", length: 1},
		{name: "max", length: 512},
		{name: "typical", length: 128},
		{name: "zero", length: 0, wantErr: ErrInvalidLength},
		{name: "too long", length: 513, wantErr: ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewWithLength(tt.length)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, u)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.length, u.Len())
		})
	}
}

func TestChannelOutOfBounds(t *testing.T) {
	u, err := NewWithLength(4)
	require.NoError(t, err)

	_, err = u.Channel(4)
	require.ErrorIs(t, err, ErrChannelOutOfBounds)

	_, err = u.Channel(3)
	require.NoError(t, err)
}

func TestChannelRange(t *testing.T) {
	u, err := NewWithLength(4)
	require.NoError(t, err)
	require.NoError(t, u.SetChannels(0, []byte{1, 2, 3, 4}))

	got, err := u.ChannelRange(1, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3}, got)

	_, err = u.ChannelRange(1, 4)
	require.ErrorIs(t, err, ErrChannelOutOfBounds)

	_, err = u.ChannelRange(2, 1)
	require.ErrorIs(t, err, ErrChannelOutOfBounds)
}

func TestSetChannelOutOfBounds(t *testing.T) {
	u, err := NewWithLength(4)
	require.NoError(t, err)

	require.ErrorIs(t, u.SetChannel(4, 1), ErrChannelOutOfBounds)
	require.NoError(t, u.SetChannel(3, 9))
	v, _ := u.Channel(3)
	require.Equal(t, byte(9), v)
}

// TestSetChannelsOffsetBug pins down the fixed channel-offset bug: the
// write begins exactly at start, not start+1.
func TestSetChannelsOffsetBug(t *testing.T) {
	u, err := NewWithLength(8)
	require.NoError(t, err)

	require.NoError(t, u.SetChannels(2, []byte{0xAA, 0xBB, 0xCC}))
	got := u.AsSlice()
	require.Equal(t, []byte{0, 0, 0xAA, 0xBB, 0xCC, 0, 0, 0}, got)

	err = u.SetChannels(6, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrChannelOutOfBounds)
}

func TestSetAll(t *testing.T) {
	u, err := NewWithLength(5)
	require.NoError(t, err)
	u.SetAll(0x7F)
	for _, v := range u.AsSlice() {
		require.Equal(t, byte(0x7F), v)
	}
}

func TestExtend(t *testing.T) {
	u, err := NewWithLength(510)
	require.NoError(t, err)

	require.NoError(t, u.Extend([]byte{1, 2}))
	require.Equal(t, 512, u.Len())

	require.ErrorIs(t, u.Extend([]byte{1}), ErrInvalidLength)
}

func TestFromBytes(t *testing.T) {
	u, err := FromBytes([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, u.AsSlice())

	_, err = FromBytes(nil)
	require.ErrorIs(t, err, ErrInvalidLength)

	tooLong := make([]byte, 513)
	_, err = FromBytes(tooLong)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestEncode(t *testing.T) {
	u, err := NewWithLength(3)
	require.NoError(t, err)
	require.NoError(t, u.SetChannels(0, []byte{10, 20, 30}))

	encoded := u.Encode()
	require.Equal(t, byte(0), encoded[0])
	require.Equal(t, u.AsSlice(), encoded[1:])
}

// TestPropertyEncodeMatchesAsSlice is the property from spec section 8 item
// 5: for any valid length and any sequence of in-bounds writes,
// encode()[0] == 0 and encode()[1..] == as_slice().
func TestPropertyEncodeMatchesAsSlice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		length := rapid.IntRange(1, MaxChannels).Draw(t, "length")
		u, err := NewWithLength(length)
		require.NoError(t, err)

		values := rapid.SliceOfN(rapid.Byte(), length, length).Draw(t, "values")
		require.NoError(t, u.SetChannels(0, values))

		encoded := u.Encode()
		require.Equal(t, NullStartCode, encoded[0])
		require.Equal(t, u.AsSlice(), encoded[1:])
	})
}

func TestPropertyOutOfBoundsNeverMutates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		length := rapid.IntRange(1, MaxChannels).Draw(t, "length")
		u, err := NewWithLength(length)
		require.NoError(t, err)

		before := u.AsSlice()

		extra := rapid.IntRange(1, 10).Draw(t, "extra")
		values := rapid.SliceOfN(rapid.Byte(), extra, extra).Draw(t, "values")
		err = u.SetChannels(length, values)
		require.Error(t, err)

		require.Equal(t, before, u.AsSlice())
	})
}
