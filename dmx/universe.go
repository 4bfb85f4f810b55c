// Package dmx implements the E1.11 DMX512 channel buffer: a bounded,
// mutable array of up to 512 channel values plus the null-start-code byte
// dump used on the wire.
package dmx

import "fmt"

// MaxChannels is the largest number of slots a DMX512 universe can carry.
const MaxChannels = 512

// NullStartCode is the start code byte E1.11 reserves for standard
// (non-alternate) lighting data.
const NullStartCode byte = 0x00

// Universe is a bounded buffer of channel values. The zero value is not
// usable; construct one with New or NewWithLength.
type Universe struct {
	channels []byte
}

// New returns a 512-channel universe with every channel set to zero.
func New() *Universe {
	u, _ := NewWithLength(MaxChannels)
	return u
}

// NewWithLength returns an all-zero universe holding exactly length
// channels. length must be in [1, MaxChannels].
func NewWithLength(length int) (*Universe, error) {
	if length <= 0 || length > MaxChannels {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidLength, length)
	}
	return &Universe{channels: make([]byte, length)}, nil
}

// FromBytes copies data verbatim as channel values. data must be between 1
// and MaxChannels bytes; unlike Encode's output, no start code is stripped.
func FromBytes(data []byte) (*Universe, error) {
	if len(data) == 0 || len(data) > MaxChannels {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidLength, len(data))
	}
	channels := make([]byte, len(data))
	copy(channels, data)
	return &Universe{channels: channels}, nil
}

// Len returns the number of channels the universe carries.
func (u *Universe) Len() int {
	return len(u.channels)
}

// Channel returns the value of channel i (0-based).
func (u *Universe) Channel(i int) (byte, error) {
	if i < 0 || i >= len(u.channels) {
		return 0, fmt.Errorf("%w: channel %d, length %d", ErrChannelOutOfBounds, i, len(u.channels))
	}
	return u.channels[i], nil
}

// ChannelRange returns a copy of channels [a, b] inclusive.
func (u *Universe) ChannelRange(a, b int) ([]byte, error) {
	if b >= len(u.channels) || a > b || a < 0 {
		return nil, fmt.Errorf("%w: range [%d, %d], length %d", ErrChannelOutOfBounds, a, b, len(u.channels))
	}
	out := make([]byte, b-a+1)
	copy(out, u.channels[a:b+1])
	return out, nil
}

// SetChannel sets the value of channel i (0-based).
func (u *Universe) SetChannel(i int, v byte) error {
	if i < 0 || i >= len(u.channels) {
		return fmt.Errorf("%w: channel %d, length %d", ErrChannelOutOfBounds, i, len(u.channels))
	}
	u.channels[i] = v
	return nil
}

// SetChannels writes values starting at channel start (0-based). The
// offset is start, not start+1 -- a channel-offset bug fixed upstream that
// any reimplementation must replicate exactly.
func (u *Universe) SetChannels(start int, values []byte) error {
	if start < 0 || start+len(values) > len(u.channels) {
		return fmt.Errorf("%w: start %d, length %d, universe length %d", ErrChannelOutOfBounds, start, len(values), len(u.channels))
	}
	copy(u.channels[start:], values)
	return nil
}

// SetAll sets every channel to v.
func (u *Universe) SetAll(v byte) {
	for i := range u.channels {
		u.channels[i] = v
	}
}

// Extend appends values to the universe. It fails if the result would
// exceed MaxChannels.
func (u *Universe) Extend(values []byte) error {
	if len(u.channels)+len(values) > MaxChannels {
		return fmt.Errorf("%w: extended length %d", ErrInvalidLength, len(u.channels)+len(values))
	}
	u.channels = append(u.channels, values...)
	return nil
}

// AsSlice returns the raw channel values, with no start code.
func (u *Universe) AsSlice() []byte {
	out := make([]byte, len(u.channels))
	copy(out, u.channels)
	return out
}

// Encode returns the null-start-code-prefixed wire form: len(u)+1 bytes.
func (u *Universe) Encode() []byte {
	out := make([]byte, 0, len(u.channels)+1)
	out = append(out, NullStartCode)
	out = append(out, u.channels...)
	return out
}
