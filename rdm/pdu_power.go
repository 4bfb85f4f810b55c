package rdm

// GetPowerStateRequest carries no parameter data.
type GetPowerStateRequest struct{}

func (r GetPowerStateRequest) PID() ParameterId                  { return PidPowerState }
func (r GetPowerStateRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetPowerStateRequest) Encode() []byte                    { return nil }

func decodeGetPowerStateRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPowerState, data, 0); err != nil {
		return nil, err
	}
	return GetPowerStateRequest{}, nil
}

// GetPowerStateResponse reports the device's current power state.
type GetPowerStateResponse struct {
	State PowerState
}

func (r GetPowerStateResponse) PID() ParameterId { return PidPowerState }
func (r GetPowerStateResponse) Encode() []byte   { return []byte{r.State.Encode()} }

func decodeGetPowerStateResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPowerState, data, 1); err != nil {
		return nil, err
	}
	return GetPowerStateResponse{State: DecodePowerState(data[0])}, nil
}

// SetPowerStateRequest commands a power state transition.
type SetPowerStateRequest struct {
	State PowerState
}

func (r SetPowerStateRequest) PID() ParameterId                  { return PidPowerState }
func (r SetPowerStateRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetPowerStateRequest) Encode() []byte                    { return []byte{r.State.Encode()} }

func decodeSetPowerStateRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPowerState, data, 1); err != nil {
		return nil, err
	}
	return SetPowerStateRequest{State: DecodePowerState(data[0])}, nil
}

// ResetDeviceRequest commands a warm or cold reset. It is SET-only with
// no response payload.
type ResetDeviceRequest struct {
	Mode ResetMode
}

func (r ResetDeviceRequest) PID() ParameterId                  { return PidResetDevice }
func (r ResetDeviceRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r ResetDeviceRequest) Encode() []byte                    { return []byte{r.Mode.Encode()} }

func decodeResetDeviceRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidResetDevice, data, 1); err != nil {
		return nil, err
	}
	return ResetDeviceRequest{Mode: DecodeResetMode(data[0])}, nil
}

func init() {
	register(PidPowerState, GetCommand, decodeGetPowerStateRequest)
	register(PidPowerState, GetCommandResponse, decodeGetPowerStateResponse)
	register(PidPowerState, SetCommand, decodeSetPowerStateRequest)

	register(PidResetDevice, SetCommand, decodeResetDeviceRequest)
}
