package rdm

import "encoding/binary"

// mandatoryPids are required of every RDM responder and are never listed
// in a SUPPORTED_PARAMETERS response, ANSI E1.20 section 10.5.1.
var mandatoryPids = map[uint16]bool{
	PidDiscUniqueBranch.Code():    true,
	PidDiscMute.Code():            true,
	PidDiscUnMute.Code():          true,
	PidSupportedParameters.Code(): true,
	PidDeviceInfo.Code():          true,
	PidSoftwareVersionLabel.Code(): true,
	PidDmxStartAddress.Code():     true,
	PidIdentifyDevice.Code():      true,
}

// GetSupportedParametersRequest carries no parameter data.
type GetSupportedParametersRequest struct{}

func (r GetSupportedParametersRequest) PID() ParameterId { return PidSupportedParameters }
func (r GetSupportedParametersRequest) RequestCommandClass() CommandClass {
	return GetCommand
}
func (r GetSupportedParametersRequest) Encode() []byte { return nil }

func decodeGetSupportedParametersRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidSupportedParameters, data, 0); err != nil {
		return nil, err
	}
	return GetSupportedParametersRequest{}, nil
}

// GetSupportedParametersResponse lists the additional (non-mandatory)
// PIDs a responder implements.
type GetSupportedParametersResponse struct {
	Pids []ParameterId
}

func (r GetSupportedParametersResponse) PID() ParameterId { return PidSupportedParameters }

func (r GetSupportedParametersResponse) Encode() []byte {
	buf := make([]byte, 0, len(r.Pids)*2)
	for _, pid := range r.Pids {
		if mandatoryPids[pid.Code()] {
			continue
		}
		buf = append(buf, pid.Encode()...)
	}
	return buf
}

func decodeGetSupportedParametersResponse(data []byte) (ParameterValue, error) {
	if len(data)%2 != 0 {
		return nil, newParamValueError(PidSupportedParameters, "payload length must be a multiple of 2")
	}
	pids := make([]ParameterId, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		pid := DecodePid(data[i : i+2])
		if mandatoryPids[pid.Code()] {
			continue
		}
		pids = append(pids, pid)
	}
	return GetSupportedParametersResponse{Pids: pids}, nil
}

// GetParameterDescriptionRequest asks for the description of a
// manufacturer-specific PID.
type GetParameterDescriptionRequest struct {
	Pid ParameterId
}

func (r GetParameterDescriptionRequest) PID() ParameterId { return PidParameterDescription }
func (r GetParameterDescriptionRequest) RequestCommandClass() CommandClass {
	return GetCommand
}
func (r GetParameterDescriptionRequest) Encode() []byte { return r.Pid.Encode() }

func decodeGetParameterDescriptionRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidParameterDescription, data, 2); err != nil {
		return nil, err
	}
	return GetParameterDescriptionRequest{Pid: DecodePid(data)}, nil
}

// GetParameterDescriptionResponse is the 20-byte descriptor header plus a
// description string, ANSI E1.20 Table 18.
type GetParameterDescriptionResponse struct {
	Pid                  ParameterId
	PdlSize              byte
	DataType             byte
	SupportsCommandClass byte
	Type                 byte
	Unit                 SensorUnit
	Prefix               byte
	MinValue             int32
	MaxValue             int32
	DefaultValue         int32
	Description          string
}

func (r GetParameterDescriptionResponse) PID() ParameterId { return PidParameterDescription }

func (r GetParameterDescriptionResponse) Encode() []byte {
	buf := make([]byte, 20)
	copy(buf[0:2], r.Pid.Encode())
	buf[2] = r.PdlSize
	buf[3] = r.DataType
	buf[4] = r.SupportsCommandClass
	buf[5] = r.Type
	buf[6] = r.Unit.Encode()
	buf[7] = r.Prefix
	binary.BigEndian.PutUint32(buf[8:12], uint32(r.MinValue))
	binary.BigEndian.PutUint32(buf[12:16], uint32(r.MaxValue))
	binary.BigEndian.PutUint32(buf[16:20], uint32(r.DefaultValue))
	return append(buf, encodeLabel(r.Description, maxLabelLen)...)
}

func decodeGetParameterDescriptionResponse(data []byte) (ParameterValue, error) {
	if err := requireMinLen(PidParameterDescription, data, 20); err != nil {
		return nil, err
	}
	return GetParameterDescriptionResponse{
		Pid:                  DecodePid(data[0:2]),
		PdlSize:              data[2],
		DataType:             data[3],
		SupportsCommandClass: data[4],
		Type:                 data[5],
		Unit:                 DecodeSensorUnit(data[6]),
		Prefix:               data[7],
		MinValue:             int32(binary.BigEndian.Uint32(data[8:12])),
		MaxValue:             int32(binary.BigEndian.Uint32(data[12:16])),
		DefaultValue:         int32(binary.BigEndian.Uint32(data[16:20])),
		Description:          decodeLabel(data[20:]),
	}, nil
}

func init() {
	register(PidSupportedParameters, GetCommand, decodeGetSupportedParametersRequest)
	register(PidSupportedParameters, GetCommandResponse, decodeGetSupportedParametersResponse)
	register(PidParameterDescription, GetCommand, decodeGetParameterDescriptionRequest)
	register(PidParameterDescription, GetCommandResponse, decodeGetParameterDescriptionResponse)
}
