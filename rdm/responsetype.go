package rdm

import "fmt"

// ResponseType is the closed set of values a responder may place in the
// response-type field of a standard frame.
type ResponseType byte

const (
	ResponseTypeAck         ResponseType = 0x00
	ResponseTypeAckTimer    ResponseType = 0x01
	ResponseTypeNack        ResponseType = 0x02
	ResponseTypeAckOverflow ResponseType = 0x03
)

var responseTypeNames = map[ResponseType]string{
	ResponseTypeAck:         "ACK",
	ResponseTypeAckTimer:    "ACK_TIMER",
	ResponseTypeNack:        "NACK_REASON",
	ResponseTypeAckOverflow: "ACK_OVERFLOW",
}

func (r ResponseType) String() string {
	if name, ok := responseTypeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ResponseType(0x%02X)", byte(r))
}

// DecodeResponseType validates a wire byte against the closed set of
// defined response types.
func DecodeResponseType(b byte) (ResponseType, error) {
	switch ResponseType(b) {
	case ResponseTypeAck, ResponseTypeAckTimer, ResponseTypeNack, ResponseTypeAckOverflow:
		return ResponseType(b), nil
	default:
		return 0, newError(ErrInvalidResponseType, fmt.Sprintf("0x%02X", b))
	}
}
