package rdm

import "encoding/binary"

// DiscUniqueBranchRequest asks every unmuted responder whose EUID falls
// within [LowerBound, UpperBound] to reply with a discovery unique branch
// response (decoded separately, via rdm/discovery, not through this
// registry -- see Decode).
type DiscUniqueBranchRequest struct {
	LowerBound DeviceUID
	UpperBound DeviceUID
}

func (r DiscUniqueBranchRequest) PID() ParameterId                 { return PidDiscUniqueBranch }
func (r DiscUniqueBranchRequest) RequestCommandClass() CommandClass { return DiscoveryCommand }
func (r DiscUniqueBranchRequest) Encode() []byte {
	buf := make([]byte, 0, 12)
	buf = append(buf, r.LowerBound.Encode()...)
	buf = append(buf, r.UpperBound.Encode()...)
	return buf
}

func decodeDiscUniqueBranchRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDiscUniqueBranch, data, 12); err != nil {
		return nil, err
	}
	lower, err := DecodeDeviceUID(data[0:6])
	if err != nil {
		return nil, err
	}
	upper, err := DecodeDeviceUID(data[6:12])
	if err != nil {
		return nil, err
	}
	return DiscUniqueBranchRequest{LowerBound: lower, UpperBound: upper}, nil
}

// discMuteControlField bits, ANSI E1.20 Table 22.
const (
	MuteControlManagedProxy = 1 << 0
	MuteControlSubDevice    = 1 << 1
	MuteControlBootloader   = 1 << 2
	MuteControlProxy        = 1 << 3
)

// DiscMuteRequest asks a single already-discovered responder to stop
// answering DiscUniqueBranch probes. It carries no parameter data.
type DiscMuteRequest struct{}

func (r DiscMuteRequest) PID() ParameterId                  { return PidDiscMute }
func (r DiscMuteRequest) RequestCommandClass() CommandClass { return DiscoveryCommand }
func (r DiscMuteRequest) Encode() []byte                    { return nil }

func decodeDiscMuteRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDiscMute, data, 0); err != nil {
		return nil, err
	}
	return DiscMuteRequest{}, nil
}

// DiscMuteResponse reports the responder's control field and, when it is
// acting as a proxy, the EUID of the device it is binding for.
type DiscMuteResponse struct {
	ControlField uint16
	BindingUID   *DeviceUID
}

func (r DiscMuteResponse) PID() ParameterId { return PidDiscMute }
func (r DiscMuteResponse) Encode() []byte {
	buf := make([]byte, 2, 8)
	binary.BigEndian.PutUint16(buf, r.ControlField)
	if r.BindingUID != nil {
		buf = append(buf, r.BindingUID.Encode()...)
	}
	return buf
}

func decodeDiscMuteResponse(data []byte) (ParameterValue, error) {
	if len(data) != 2 && len(data) != 8 {
		return nil, newParamLengthError(PidDiscMute, 2, len(data))
	}
	resp := DiscMuteResponse{ControlField: binary.BigEndian.Uint16(data[0:2])}
	if len(data) == 8 {
		uid, err := DecodeDeviceUID(data[2:8])
		if err != nil {
			return nil, err
		}
		resp.BindingUID = &uid
	}
	return resp, nil
}

// DiscUnMuteRequest asks a responder to resume answering DiscUniqueBranch
// probes. It carries no parameter data.
type DiscUnMuteRequest struct{}

func (r DiscUnMuteRequest) PID() ParameterId                  { return PidDiscUnMute }
func (r DiscUnMuteRequest) RequestCommandClass() CommandClass { return DiscoveryCommand }
func (r DiscUnMuteRequest) Encode() []byte                    { return nil }

func decodeDiscUnMuteRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDiscUnMute, data, 0); err != nil {
		return nil, err
	}
	return DiscUnMuteRequest{}, nil
}

// DiscUnMuteResponse mirrors DiscMuteResponse.
type DiscUnMuteResponse struct {
	ControlField uint16
	BindingUID   *DeviceUID
}

func (r DiscUnMuteResponse) PID() ParameterId { return PidDiscUnMute }
func (r DiscUnMuteResponse) Encode() []byte {
	buf := make([]byte, 2, 8)
	binary.BigEndian.PutUint16(buf, r.ControlField)
	if r.BindingUID != nil {
		buf = append(buf, r.BindingUID.Encode()...)
	}
	return buf
}

func decodeDiscUnMuteResponse(data []byte) (ParameterValue, error) {
	if len(data) != 2 && len(data) != 8 {
		return nil, newParamLengthError(PidDiscUnMute, 2, len(data))
	}
	resp := DiscUnMuteResponse{ControlField: binary.BigEndian.Uint16(data[0:2])}
	if len(data) == 8 {
		uid, err := DecodeDeviceUID(data[2:8])
		if err != nil {
			return nil, err
		}
		resp.BindingUID = &uid
	}
	return resp, nil
}

func init() {
	register(PidDiscUniqueBranch, DiscoveryCommand, decodeDiscUniqueBranchRequest)
	register(PidDiscMute, DiscoveryCommand, decodeDiscMuteRequest)
	register(PidDiscMute, DiscoveryCommandResponse, decodeDiscMuteResponse)
	register(PidDiscUnMute, DiscoveryCommand, decodeDiscUnMuteRequest)
	register(PidDiscUnMute, DiscoveryCommandResponse, decodeDiscUnMuteResponse)
}
