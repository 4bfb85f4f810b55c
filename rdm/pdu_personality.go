package rdm

import "encoding/binary"

// GetDmxPersonalityRequest carries no parameter data.
type GetDmxPersonalityRequest struct{}

func (r GetDmxPersonalityRequest) PID() ParameterId                  { return PidDmxPersonality }
func (r GetDmxPersonalityRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetDmxPersonalityRequest) Encode() []byte                    { return nil }

func decodeGetDmxPersonalityRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDmxPersonality, data, 0); err != nil {
		return nil, err
	}
	return GetDmxPersonalityRequest{}, nil
}

// GetDmxPersonalityResponse reports the active personality and the total
// number available.
type GetDmxPersonalityResponse struct {
	CurrentPersonality byte
	PersonalityCount   byte
}

func (r GetDmxPersonalityResponse) PID() ParameterId { return PidDmxPersonality }
func (r GetDmxPersonalityResponse) Encode() []byte {
	return []byte{r.CurrentPersonality, r.PersonalityCount}
}

func decodeGetDmxPersonalityResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDmxPersonality, data, 2); err != nil {
		return nil, err
	}
	return GetDmxPersonalityResponse{CurrentPersonality: data[0], PersonalityCount: data[1]}, nil
}

// SetDmxPersonalityRequest selects the active personality by number.
type SetDmxPersonalityRequest struct {
	Personality byte
}

func (r SetDmxPersonalityRequest) PID() ParameterId                  { return PidDmxPersonality }
func (r SetDmxPersonalityRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetDmxPersonalityRequest) Encode() []byte                    { return []byte{r.Personality} }

func decodeSetDmxPersonalityRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDmxPersonality, data, 1); err != nil {
		return nil, err
	}
	return SetDmxPersonalityRequest{Personality: data[0]}, nil
}

// GetDmxPersonalityDescriptionRequest asks for the footprint and
// description of one personality.
type GetDmxPersonalityDescriptionRequest struct {
	Personality byte
}

func (r GetDmxPersonalityDescriptionRequest) PID() ParameterId {
	return PidDmxPersonalityDescription
}
func (r GetDmxPersonalityDescriptionRequest) RequestCommandClass() CommandClass {
	return GetCommand
}
func (r GetDmxPersonalityDescriptionRequest) Encode() []byte { return []byte{r.Personality} }

func decodeGetDmxPersonalityDescriptionRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDmxPersonalityDescription, data, 1); err != nil {
		return nil, err
	}
	return GetDmxPersonalityDescriptionRequest{Personality: data[0]}, nil
}

// GetDmxPersonalityDescriptionResponse is the personality number, its DMX
// slot requirement, and an up-to-32-byte description.
type GetDmxPersonalityDescriptionResponse struct {
	Personality   byte
	SlotsRequired uint16
	Description   string
}

func (r GetDmxPersonalityDescriptionResponse) PID() ParameterId {
	return PidDmxPersonalityDescription
}
func (r GetDmxPersonalityDescriptionResponse) Encode() []byte {
	buf := make([]byte, 3)
	buf[0] = r.Personality
	binary.BigEndian.PutUint16(buf[1:3], r.SlotsRequired)
	return append(buf, encodeLabel(r.Description, maxLabelLen)...)
}

func decodeGetDmxPersonalityDescriptionResponse(data []byte) (ParameterValue, error) {
	if err := requireMinLen(PidDmxPersonalityDescription, data, 3); err != nil {
		return nil, err
	}
	return GetDmxPersonalityDescriptionResponse{
		Personality:   data[0],
		SlotsRequired: binary.BigEndian.Uint16(data[1:3]),
		Description:   decodeLabel(data[3:]),
	}, nil
}

// GetDmxStartAddressRequest carries no parameter data.
type GetDmxStartAddressRequest struct{}

func (r GetDmxStartAddressRequest) PID() ParameterId                  { return PidDmxStartAddress }
func (r GetDmxStartAddressRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetDmxStartAddressRequest) Encode() []byte                    { return nil }

func decodeGetDmxStartAddressRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDmxStartAddress, data, 0); err != nil {
		return nil, err
	}
	return GetDmxStartAddressRequest{}, nil
}

// GetDmxStartAddressResponse reports the device's DMX start address,
// 1-512.
type GetDmxStartAddressResponse struct {
	StartAddress uint16
}

func (r GetDmxStartAddressResponse) PID() ParameterId { return PidDmxStartAddress }
func (r GetDmxStartAddressResponse) Encode() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, r.StartAddress)
	return buf
}

func decodeGetDmxStartAddressResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDmxStartAddress, data, 2); err != nil {
		return nil, err
	}
	return GetDmxStartAddressResponse{StartAddress: binary.BigEndian.Uint16(data)}, nil
}

// SetDmxStartAddressRequest sets the device's DMX start address.
type SetDmxStartAddressRequest struct {
	StartAddress uint16
}

func (r SetDmxStartAddressRequest) PID() ParameterId                  { return PidDmxStartAddress }
func (r SetDmxStartAddressRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetDmxStartAddressRequest) Encode() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, r.StartAddress)
	return buf
}

func decodeSetDmxStartAddressRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDmxStartAddress, data, 2); err != nil {
		return nil, err
	}
	return SetDmxStartAddressRequest{StartAddress: binary.BigEndian.Uint16(data)}, nil
}

func init() {
	register(PidDmxPersonality, GetCommand, decodeGetDmxPersonalityRequest)
	register(PidDmxPersonality, GetCommandResponse, decodeGetDmxPersonalityResponse)
	register(PidDmxPersonality, SetCommand, decodeSetDmxPersonalityRequest)

	register(PidDmxPersonalityDescription, GetCommand, decodeGetDmxPersonalityDescriptionRequest)
	register(PidDmxPersonalityDescription, GetCommandResponse, decodeGetDmxPersonalityDescriptionResponse)

	register(PidDmxStartAddress, GetCommand, decodeGetDmxStartAddressRequest)
	register(PidDmxStartAddress, GetCommandResponse, decodeGetDmxStartAddressResponse)
	register(PidDmxStartAddress, SetCommand, decodeSetDmxStartAddressRequest)
}
