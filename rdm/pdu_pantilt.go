package rdm

// PAN_INVERT, TILT_INVERT, and PAN_TILT_SWAP each carry a single boolean
// flag, non-zero meaning true.

type GetPanInvertRequest struct{}

func (r GetPanInvertRequest) PID() ParameterId                  { return PidPanInvert }
func (r GetPanInvertRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetPanInvertRequest) Encode() []byte                    { return nil }

func decodeGetPanInvertRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPanInvert, data, 0); err != nil {
		return nil, err
	}
	return GetPanInvertRequest{}, nil
}

type GetPanInvertResponse struct{ Invert bool }

func (r GetPanInvertResponse) PID() ParameterId { return PidPanInvert }
func (r GetPanInvertResponse) Encode() []byte   { return []byte{boolByte(r.Invert)} }

func decodeGetPanInvertResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPanInvert, data, 1); err != nil {
		return nil, err
	}
	return GetPanInvertResponse{Invert: decodeBool(data[0])}, nil
}

type SetPanInvertRequest struct{ Invert bool }

func (r SetPanInvertRequest) PID() ParameterId                  { return PidPanInvert }
func (r SetPanInvertRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetPanInvertRequest) Encode() []byte                    { return []byte{boolByte(r.Invert)} }

func decodeSetPanInvertRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPanInvert, data, 1); err != nil {
		return nil, err
	}
	return SetPanInvertRequest{Invert: decodeBool(data[0])}, nil
}

type GetTiltInvertRequest struct{}

func (r GetTiltInvertRequest) PID() ParameterId                  { return PidTiltInvert }
func (r GetTiltInvertRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetTiltInvertRequest) Encode() []byte                    { return nil }

func decodeGetTiltInvertRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidTiltInvert, data, 0); err != nil {
		return nil, err
	}
	return GetTiltInvertRequest{}, nil
}

type GetTiltInvertResponse struct{ Invert bool }

func (r GetTiltInvertResponse) PID() ParameterId { return PidTiltInvert }
func (r GetTiltInvertResponse) Encode() []byte   { return []byte{boolByte(r.Invert)} }

func decodeGetTiltInvertResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidTiltInvert, data, 1); err != nil {
		return nil, err
	}
	return GetTiltInvertResponse{Invert: decodeBool(data[0])}, nil
}

type SetTiltInvertRequest struct{ Invert bool }

func (r SetTiltInvertRequest) PID() ParameterId                  { return PidTiltInvert }
func (r SetTiltInvertRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetTiltInvertRequest) Encode() []byte                    { return []byte{boolByte(r.Invert)} }

func decodeSetTiltInvertRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidTiltInvert, data, 1); err != nil {
		return nil, err
	}
	return SetTiltInvertRequest{Invert: decodeBool(data[0])}, nil
}

type GetPanTiltSwapRequest struct{}

func (r GetPanTiltSwapRequest) PID() ParameterId                  { return PidPanTiltSwap }
func (r GetPanTiltSwapRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetPanTiltSwapRequest) Encode() []byte                    { return nil }

func decodeGetPanTiltSwapRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPanTiltSwap, data, 0); err != nil {
		return nil, err
	}
	return GetPanTiltSwapRequest{}, nil
}

type GetPanTiltSwapResponse struct{ Swap bool }

func (r GetPanTiltSwapResponse) PID() ParameterId { return PidPanTiltSwap }
func (r GetPanTiltSwapResponse) Encode() []byte   { return []byte{boolByte(r.Swap)} }

func decodeGetPanTiltSwapResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPanTiltSwap, data, 1); err != nil {
		return nil, err
	}
	return GetPanTiltSwapResponse{Swap: decodeBool(data[0])}, nil
}

type SetPanTiltSwapRequest struct{ Swap bool }

func (r SetPanTiltSwapRequest) PID() ParameterId                  { return PidPanTiltSwap }
func (r SetPanTiltSwapRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetPanTiltSwapRequest) Encode() []byte                    { return []byte{boolByte(r.Swap)} }

func decodeSetPanTiltSwapRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPanTiltSwap, data, 1); err != nil {
		return nil, err
	}
	return SetPanTiltSwapRequest{Swap: decodeBool(data[0])}, nil
}

func init() {
	register(PidPanInvert, GetCommand, decodeGetPanInvertRequest)
	register(PidPanInvert, GetCommandResponse, decodeGetPanInvertResponse)
	register(PidPanInvert, SetCommand, decodeSetPanInvertRequest)

	register(PidTiltInvert, GetCommand, decodeGetTiltInvertRequest)
	register(PidTiltInvert, GetCommandResponse, decodeGetTiltInvertResponse)
	register(PidTiltInvert, SetCommand, decodeSetTiltInvertRequest)

	register(PidPanTiltSwap, GetCommand, decodeGetPanTiltSwapRequest)
	register(PidPanTiltSwap, GetCommandResponse, decodeGetPanTiltSwapResponse)
	register(PidPanTiltSwap, SetCommand, decodeSetPanTiltSwapRequest)
}
