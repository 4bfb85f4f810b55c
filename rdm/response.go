package rdm

import (
	"encoding/binary"
	"fmt"

	"github.com/mpowell90/dmx512-rdm-protocol/rdm/discovery"
)

// RdmResponse is one of Frame (a standard checksummed response) or
// DiscoveryUniqueBranchFrame (the unchecksummed Manchester-encoded
// discovery reply), distinguished by their own framing before any
// length-based validation runs.
type RdmResponse interface {
	isRdmResponse()
}

// ResponseData is the response-type-specific payload of a Frame: AckData,
// AckTimerData, NackData, or AckOverflowData.
type ResponseData interface {
	isResponseData()
	payload() []byte
}

// AckData carries the typed parameter value of a successful response.
// Value is nil when the response carries no parameter data at all (the
// common case for a SET command's acknowledgement).
type AckData struct {
	Value ParameterValue
}

func (AckData) isResponseData() {}
func (a AckData) payload() []byte {
	if a.Value == nil {
		return nil
	}
	return a.Value.Encode()
}

// AckTimerData carries the estimated time, in 100ms units, before the
// responder will have the requested data ready.
type AckTimerData struct {
	EstimatedResponseTime uint16
}

func (AckTimerData) isResponseData() {}
func (a AckTimerData) payload() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, a.EstimatedResponseTime)
	return buf
}

// NackData carries the reason a request was rejected.
type NackData struct {
	Reason NackReason
}

func (NackData) isResponseData() {}
func (n NackData) payload() []byte { return n.Reason.Encode() }

// AckOverflowData carries one fragment of a multi-part response. Per this
// library's chosen resolution of the source's ambiguity here, fragments
// are surfaced to the caller exactly as received; there is no built-in
// reassembler, so Raw is the undecoded partial payload rather than a
// dispatched ParameterValue.
type AckOverflowData struct {
	Raw []byte
}

func (AckOverflowData) isResponseData() {}
func (a AckOverflowData) payload() []byte { return a.Raw }

// Frame is a decoded standard RDM response.
type Frame struct {
	Destination  DeviceUID
	Source       DeviceUID
	Transaction  byte
	ResponseType ResponseType
	MessageCount byte
	SubDevice    SubDeviceId
	CommandClass CommandClass
	PID          ParameterId
	Data         ResponseData
}

func (Frame) isRdmResponse() {}

// DiscoveryUniqueBranchFrame is a decoded discovery response: the
// discovered device's id and the checksum carried in the Manchester
// payload (already validated by the time this value exists).
type DiscoveryUniqueBranchFrame struct {
	EUID     DeviceUID
	Checksum uint16
}

func (DiscoveryUniqueBranchFrame) isRdmResponse() {}

// Decode parses data as either a discovery unique branch response or a
// standard RDM response frame, distinguishing the two by their leading
// byte before attempting any length-based validation.
func Decode(data []byte) (RdmResponse, error) {
	if len(data) > 0 && (data[0] == 0xFE || data[0] == 0xAA) {
		euid, cksum, err := discovery.Decode(data)
		if err != nil {
			return nil, newError(ErrInvalidDiscoveryResponse, err.Error())
		}
		uid, err := DecodeDeviceUID(euid[:])
		if err != nil {
			return nil, newError(ErrInvalidDiscoveryResponse, err.Error())
		}
		return &DiscoveryUniqueBranchFrame{EUID: uid, Checksum: cksum}, nil
	}

	h, payload, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	if !h.commandClass.IsResponse() {
		return nil, newError(ErrInvalidCommandClass, fmt.Sprintf("%s is not a response class", h.commandClass))
	}

	responseType, err := DecodeResponseType(h.flagByte)
	if err != nil {
		return nil, err
	}

	var rdata ResponseData
	switch responseType {
	case ResponseTypeAck:
		if len(payload) == 0 {
			rdata = AckData{}
		} else {
			value, err := dispatch(h.pid, h.commandClass, payload)
			if err != nil {
				return nil, err
			}
			rdata = AckData{Value: value}
		}
	case ResponseTypeAckTimer:
		if len(payload) != 2 {
			return nil, newParamLengthError(h.pid, 2, len(payload))
		}
		rdata = AckTimerData{EstimatedResponseTime: binary.BigEndian.Uint16(payload)}
	case ResponseTypeNack:
		if len(payload) != 2 {
			return nil, newParamLengthError(h.pid, 2, len(payload))
		}
		rdata = NackData{Reason: DecodeNackReason(payload)}
	case ResponseTypeAckOverflow:
		raw := make([]byte, len(payload))
		copy(raw, payload)
		rdata = AckOverflowData{Raw: raw}
	}

	return &Frame{
		Destination:  h.destination,
		Source:       h.source,
		Transaction:  h.transaction,
		ResponseType: responseType,
		MessageCount: h.messageCount,
		SubDevice:    h.subDevice,
		CommandClass: h.commandClass,
		PID:          h.pid,
		Data:         rdata,
	}, nil
}

// Encode serializes a standard response Frame to its wire form.
func (f Frame) Encode() ([]byte, error) {
	payload := f.Data.payload()
	if len(payload) > MaxPdl {
		return nil, newParamLengthError(f.PID, MaxPdl, len(payload))
	}

	h := header{
		destination:  f.Destination,
		source:       f.Source,
		transaction:  f.Transaction,
		flagByte:     byte(f.ResponseType),
		messageCount: f.MessageCount,
		subDevice:    f.SubDevice,
		commandClass: f.CommandClass,
		pid:          f.PID,
	}
	return encodeHeader(h, payload), nil
}

// Encode serializes a discovery unique branch response with a 0-preamble
// separator byte; callers constructing a response to re-transmit may
// prepend additional 0xFE preamble bytes themselves via rdm/discovery.
func (d DiscoveryUniqueBranchFrame) Encode() []byte {
	var euid [6]byte
	copy(euid[:], d.EUID.Encode())
	return discovery.Encode(euid, 0)
}
