package rdm

import "encoding/binary"

// GetLampStateRequest carries no parameter data.
type GetLampStateRequest struct{}

func (r GetLampStateRequest) PID() ParameterId                  { return PidLampState }
func (r GetLampStateRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetLampStateRequest) Encode() []byte                    { return nil }

func decodeGetLampStateRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidLampState, data, 0); err != nil {
		return nil, err
	}
	return GetLampStateRequest{}, nil
}

// GetLampStateResponse reports the lamp's current on/off/strike/failure
// state.
type GetLampStateResponse struct {
	State LampState
}

func (r GetLampStateResponse) PID() ParameterId { return PidLampState }
func (r GetLampStateResponse) Encode() []byte   { return []byte{r.State.Encode()} }

func decodeGetLampStateResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidLampState, data, 1); err != nil {
		return nil, err
	}
	return GetLampStateResponse{State: DecodeLampState(data[0])}, nil
}

// GetLampOnModeRequest carries no parameter data.
type GetLampOnModeRequest struct{}

func (r GetLampOnModeRequest) PID() ParameterId                  { return PidLampOnMode }
func (r GetLampOnModeRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetLampOnModeRequest) Encode() []byte                    { return nil }

func decodeGetLampOnModeRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidLampOnMode, data, 0); err != nil {
		return nil, err
	}
	return GetLampOnModeRequest{}, nil
}

// GetLampOnModeResponse reports the policy controlling when the lamp
// strikes.
type GetLampOnModeResponse struct {
	Mode LampOnMode
}

func (r GetLampOnModeResponse) PID() ParameterId { return PidLampOnMode }
func (r GetLampOnModeResponse) Encode() []byte   { return []byte{r.Mode.Encode()} }

func decodeGetLampOnModeResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidLampOnMode, data, 1); err != nil {
		return nil, err
	}
	return GetLampOnModeResponse{Mode: DecodeLampOnMode(data[0])}, nil
}

// SetLampOnModeRequest changes the lamp strike policy.
type SetLampOnModeRequest struct {
	Mode LampOnMode
}

func (r SetLampOnModeRequest) PID() ParameterId                  { return PidLampOnMode }
func (r SetLampOnModeRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetLampOnModeRequest) Encode() []byte                    { return []byte{r.Mode.Encode()} }

func decodeSetLampOnModeRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidLampOnMode, data, 1); err != nil {
		return nil, err
	}
	return SetLampOnModeRequest{Mode: DecodeLampOnMode(data[0])}, nil
}

// uint32Counter codecs are shared by LAMP_STRIKES, LAMP_HOURS,
// DEVICE_HOURS and DEVICE_POWER_CYCLES: a single 32-bit big-endian
// running counter, readable and (except where the device forbids it)
// resettable by the controller.
func encodeUint32Counter(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

func decodeUint32Counter(pid ParameterId, data []byte) (uint32, error) {
	if err := requireLen(pid, data, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(data), nil
}

type GetLampStrikesRequest struct{}

func (r GetLampStrikesRequest) PID() ParameterId                  { return PidLampStrikes }
func (r GetLampStrikesRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetLampStrikesRequest) Encode() []byte                    { return nil }

func decodeGetLampStrikesRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidLampStrikes, data, 0); err != nil {
		return nil, err
	}
	return GetLampStrikesRequest{}, nil
}

type GetLampStrikesResponse struct{ Count uint32 }

func (r GetLampStrikesResponse) PID() ParameterId { return PidLampStrikes }
func (r GetLampStrikesResponse) Encode() []byte   { return encodeUint32Counter(r.Count) }

func decodeGetLampStrikesResponse(data []byte) (ParameterValue, error) {
	c, err := decodeUint32Counter(PidLampStrikes, data)
	if err != nil {
		return nil, err
	}
	return GetLampStrikesResponse{Count: c}, nil
}

type SetLampStrikesRequest struct{ Count uint32 }

func (r SetLampStrikesRequest) PID() ParameterId                  { return PidLampStrikes }
func (r SetLampStrikesRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetLampStrikesRequest) Encode() []byte                    { return encodeUint32Counter(r.Count) }

func decodeSetLampStrikesRequest(data []byte) (ParameterValue, error) {
	c, err := decodeUint32Counter(PidLampStrikes, data)
	if err != nil {
		return nil, err
	}
	return SetLampStrikesRequest{Count: c}, nil
}

type GetLampHoursRequest struct{}

func (r GetLampHoursRequest) PID() ParameterId                  { return PidLampHours }
func (r GetLampHoursRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetLampHoursRequest) Encode() []byte                    { return nil }

func decodeGetLampHoursRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidLampHours, data, 0); err != nil {
		return nil, err
	}
	return GetLampHoursRequest{}, nil
}

type GetLampHoursResponse struct{ Hours uint32 }

func (r GetLampHoursResponse) PID() ParameterId { return PidLampHours }
func (r GetLampHoursResponse) Encode() []byte   { return encodeUint32Counter(r.Hours) }

func decodeGetLampHoursResponse(data []byte) (ParameterValue, error) {
	h, err := decodeUint32Counter(PidLampHours, data)
	if err != nil {
		return nil, err
	}
	return GetLampHoursResponse{Hours: h}, nil
}

type SetLampHoursRequest struct{ Hours uint32 }

func (r SetLampHoursRequest) PID() ParameterId                  { return PidLampHours }
func (r SetLampHoursRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetLampHoursRequest) Encode() []byte                    { return encodeUint32Counter(r.Hours) }

func decodeSetLampHoursRequest(data []byte) (ParameterValue, error) {
	h, err := decodeUint32Counter(PidLampHours, data)
	if err != nil {
		return nil, err
	}
	return SetLampHoursRequest{Hours: h}, nil
}

type GetDeviceHoursRequest struct{}

func (r GetDeviceHoursRequest) PID() ParameterId                  { return PidDeviceHours }
func (r GetDeviceHoursRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetDeviceHoursRequest) Encode() []byte                    { return nil }

func decodeGetDeviceHoursRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDeviceHours, data, 0); err != nil {
		return nil, err
	}
	return GetDeviceHoursRequest{}, nil
}

type GetDeviceHoursResponse struct{ Hours uint32 }

func (r GetDeviceHoursResponse) PID() ParameterId { return PidDeviceHours }
func (r GetDeviceHoursResponse) Encode() []byte   { return encodeUint32Counter(r.Hours) }

func decodeGetDeviceHoursResponse(data []byte) (ParameterValue, error) {
	h, err := decodeUint32Counter(PidDeviceHours, data)
	if err != nil {
		return nil, err
	}
	return GetDeviceHoursResponse{Hours: h}, nil
}

type SetDeviceHoursRequest struct{ Hours uint32 }

func (r SetDeviceHoursRequest) PID() ParameterId                  { return PidDeviceHours }
func (r SetDeviceHoursRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetDeviceHoursRequest) Encode() []byte                    { return encodeUint32Counter(r.Hours) }

func decodeSetDeviceHoursRequest(data []byte) (ParameterValue, error) {
	h, err := decodeUint32Counter(PidDeviceHours, data)
	if err != nil {
		return nil, err
	}
	return SetDeviceHoursRequest{Hours: h}, nil
}

type GetDevicePowerCyclesRequest struct{}

func (r GetDevicePowerCyclesRequest) PID() ParameterId { return PidDevicePowerCycles }
func (r GetDevicePowerCyclesRequest) RequestCommandClass() CommandClass {
	return GetCommand
}
func (r GetDevicePowerCyclesRequest) Encode() []byte { return nil }

func decodeGetDevicePowerCyclesRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDevicePowerCycles, data, 0); err != nil {
		return nil, err
	}
	return GetDevicePowerCyclesRequest{}, nil
}

type GetDevicePowerCyclesResponse struct{ Count uint32 }

func (r GetDevicePowerCyclesResponse) PID() ParameterId { return PidDevicePowerCycles }
func (r GetDevicePowerCyclesResponse) Encode() []byte   { return encodeUint32Counter(r.Count) }

func decodeGetDevicePowerCyclesResponse(data []byte) (ParameterValue, error) {
	c, err := decodeUint32Counter(PidDevicePowerCycles, data)
	if err != nil {
		return nil, err
	}
	return GetDevicePowerCyclesResponse{Count: c}, nil
}

type SetDevicePowerCyclesRequest struct{ Count uint32 }

func (r SetDevicePowerCyclesRequest) PID() ParameterId { return PidDevicePowerCycles }
func (r SetDevicePowerCyclesRequest) RequestCommandClass() CommandClass {
	return SetCommand
}
func (r SetDevicePowerCyclesRequest) Encode() []byte { return encodeUint32Counter(r.Count) }

func decodeSetDevicePowerCyclesRequest(data []byte) (ParameterValue, error) {
	c, err := decodeUint32Counter(PidDevicePowerCycles, data)
	if err != nil {
		return nil, err
	}
	return SetDevicePowerCyclesRequest{Count: c}, nil
}

func init() {
	register(PidLampState, GetCommand, decodeGetLampStateRequest)
	register(PidLampState, GetCommandResponse, decodeGetLampStateResponse)

	register(PidLampOnMode, GetCommand, decodeGetLampOnModeRequest)
	register(PidLampOnMode, GetCommandResponse, decodeGetLampOnModeResponse)
	register(PidLampOnMode, SetCommand, decodeSetLampOnModeRequest)

	register(PidLampStrikes, GetCommand, decodeGetLampStrikesRequest)
	register(PidLampStrikes, GetCommandResponse, decodeGetLampStrikesResponse)
	register(PidLampStrikes, SetCommand, decodeSetLampStrikesRequest)

	register(PidLampHours, GetCommand, decodeGetLampHoursRequest)
	register(PidLampHours, GetCommandResponse, decodeGetLampHoursResponse)
	register(PidLampHours, SetCommand, decodeSetLampHoursRequest)

	register(PidDeviceHours, GetCommand, decodeGetDeviceHoursRequest)
	register(PidDeviceHours, GetCommandResponse, decodeGetDeviceHoursResponse)
	register(PidDeviceHours, SetCommand, decodeSetDeviceHoursRequest)

	register(PidDevicePowerCycles, GetCommand, decodeGetDevicePowerCyclesRequest)
	register(PidDevicePowerCycles, GetCommandResponse, decodeGetDevicePowerCyclesResponse)
	register(PidDevicePowerCycles, SetCommand, decodeSetDevicePowerCyclesRequest)
}
