package rdm

import "fmt"

// RdmRequest is a fully addressed outbound RDM command: a destination and
// source device, transaction bookkeeping, and a typed request parameter
// that determines both the command class and PID on the wire.
type RdmRequest struct {
	Destination DeviceUID
	Source      DeviceUID
	Transaction byte
	PortId      byte
	SubDevice   SubDeviceId
	Parameter   RequestParameter
}

// Encode serializes the request to its wire form: the 24-byte header,
// the parameter's encoded payload, and the trailing 16-bit checksum.
// PortId must be in [1, 255]; 0 is reserved and fails with InvalidPortId.
func (r RdmRequest) Encode() ([]byte, error) {
	if r.PortId == 0 {
		return nil, newError(ErrInvalidPortId, "port id 0 is reserved")
	}

	payload := r.Parameter.Encode()
	if len(payload) > MaxPdl {
		return nil, newParamLengthError(r.Parameter.PID(), MaxPdl, len(payload))
	}

	h := header{
		destination:  r.Destination,
		source:       r.Source,
		transaction:  r.Transaction,
		flagByte:     r.PortId,
		messageCount: 0,
		subDevice:    r.SubDevice,
		commandClass: r.Parameter.RequestCommandClass(),
		pid:          r.Parameter.PID(),
	}
	return encodeHeader(h, payload), nil
}

// DecodeRequest parses data as an encoded RdmRequest. It accepts only
// request command classes (GetCommand, SetCommand, DiscoveryCommand); a
// frame carrying a response class fails with InvalidCommandClass.
func DecodeRequest(data []byte) (*RdmRequest, error) {
	h, payload, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	if !h.commandClass.IsRequest() {
		return nil, newError(ErrInvalidCommandClass, fmt.Sprintf("%s is not a request class", h.commandClass))
	}

	value, err := dispatch(h.pid, h.commandClass, payload)
	if err != nil {
		return nil, err
	}
	param, ok := value.(RequestParameter)
	if !ok {
		param = ManufacturerSpecific{Pid: h.pid, CommandClass: h.commandClass, Data: payload}
	}

	return &RdmRequest{
		Destination: h.destination,
		Source:      h.source,
		Transaction: h.transaction,
		PortId:      h.flagByte,
		SubDevice:   h.subDevice,
		Parameter:   param,
	}, nil
}
