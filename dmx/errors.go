package dmx

import "errors"

var (
	// ErrInvalidLength is returned when a requested universe length, or a
	// byte slice being converted to one, falls outside [1, MaxChannels].
	ErrInvalidLength = errors.New("invalid dmx universe length")
	// ErrChannelOutOfBounds is returned when a channel index or range
	// falls outside the universe's current length.
	ErrChannelOutOfBounds = errors.New("dmx channel out of bounds")
)
