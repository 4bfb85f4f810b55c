package rdm

import "fmt"

// CommandClass identifies the kind of RDM command a frame carries. It is a
// closed set: DecodeCommandClass fails on any wire value outside the six
// defined here.
type CommandClass byte

const (
	DiscoveryCommand         CommandClass = 0x10
	DiscoveryCommandResponse CommandClass = 0x11
	GetCommand               CommandClass = 0x20
	GetCommandResponse       CommandClass = 0x21
	SetCommand               CommandClass = 0x30
	SetCommandResponse       CommandClass = 0x31
)

var commandClassNames = map[CommandClass]string{
	DiscoveryCommand:         "DISCOVERY_COMMAND",
	DiscoveryCommandResponse: "DISCOVERY_COMMAND_RESPONSE",
	GetCommand:               "GET_COMMAND",
	GetCommandResponse:       "GET_COMMAND_RESPONSE",
	SetCommand:               "SET_COMMAND",
	SetCommandResponse:       "SET_COMMAND_RESPONSE",
}

func (c CommandClass) String() string {
	if name, ok := commandClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CommandClass(0x%02X)", byte(c))
}

// IsRequest reports whether c is a request (non-response) class.
func (c CommandClass) IsRequest() bool {
	return c == DiscoveryCommand || c == GetCommand || c == SetCommand
}

// IsResponse reports whether c is a response class.
func (c CommandClass) IsResponse() bool {
	return c == DiscoveryCommandResponse || c == GetCommandResponse || c == SetCommandResponse
}

// DecodeCommandClass validates a wire byte against the closed set of
// defined command classes.
func DecodeCommandClass(b byte) (CommandClass, error) {
	switch CommandClass(b) {
	case DiscoveryCommand, DiscoveryCommandResponse, GetCommand, GetCommandResponse, SetCommand, SetCommandResponse:
		return CommandClass(b), nil
	default:
		return 0, newError(ErrInvalidCommandClass, fmt.Sprintf("0x%02X", b))
	}
}
