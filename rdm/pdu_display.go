package rdm

// GetDisplayInvertRequest carries no parameter data.
type GetDisplayInvertRequest struct{}

func (r GetDisplayInvertRequest) PID() ParameterId                  { return PidDisplayInvert }
func (r GetDisplayInvertRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetDisplayInvertRequest) Encode() []byte                    { return nil }

func decodeGetDisplayInvertRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDisplayInvert, data, 0); err != nil {
		return nil, err
	}
	return GetDisplayInvertRequest{}, nil
}

// GetDisplayInvertResponse reports the device's display orientation.
type GetDisplayInvertResponse struct {
	Mode DisplayInvertMode
}

func (r GetDisplayInvertResponse) PID() ParameterId { return PidDisplayInvert }
func (r GetDisplayInvertResponse) Encode() []byte   { return []byte{r.Mode.Encode()} }

func decodeGetDisplayInvertResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDisplayInvert, data, 1); err != nil {
		return nil, err
	}
	return GetDisplayInvertResponse{Mode: DecodeDisplayInvertMode(data[0])}, nil
}

// SetDisplayInvertRequest changes the device's display orientation.
type SetDisplayInvertRequest struct {
	Mode DisplayInvertMode
}

func (r SetDisplayInvertRequest) PID() ParameterId                  { return PidDisplayInvert }
func (r SetDisplayInvertRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetDisplayInvertRequest) Encode() []byte                    { return []byte{r.Mode.Encode()} }

func decodeSetDisplayInvertRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDisplayInvert, data, 1); err != nil {
		return nil, err
	}
	return SetDisplayInvertRequest{Mode: DecodeDisplayInvertMode(data[0])}, nil
}

// GetDisplayLevelRequest carries no parameter data.
type GetDisplayLevelRequest struct{}

func (r GetDisplayLevelRequest) PID() ParameterId                  { return PidDisplayLevel }
func (r GetDisplayLevelRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetDisplayLevelRequest) Encode() []byte                    { return nil }

func decodeGetDisplayLevelRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDisplayLevel, data, 0); err != nil {
		return nil, err
	}
	return GetDisplayLevelRequest{}, nil
}

// GetDisplayLevelResponse reports the device's display brightness,
// 0 (off) to 255 (full brightness).
type GetDisplayLevelResponse struct {
	Level byte
}

func (r GetDisplayLevelResponse) PID() ParameterId { return PidDisplayLevel }
func (r GetDisplayLevelResponse) Encode() []byte   { return []byte{r.Level} }

func decodeGetDisplayLevelResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDisplayLevel, data, 1); err != nil {
		return nil, err
	}
	return GetDisplayLevelResponse{Level: data[0]}, nil
}

// SetDisplayLevelRequest sets the device's display brightness.
type SetDisplayLevelRequest struct {
	Level byte
}

func (r SetDisplayLevelRequest) PID() ParameterId                  { return PidDisplayLevel }
func (r SetDisplayLevelRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetDisplayLevelRequest) Encode() []byte                    { return []byte{r.Level} }

func decodeSetDisplayLevelRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDisplayLevel, data, 1); err != nil {
		return nil, err
	}
	return SetDisplayLevelRequest{Level: data[0]}, nil
}

func init() {
	register(PidDisplayInvert, GetCommand, decodeGetDisplayInvertRequest)
	register(PidDisplayInvert, GetCommandResponse, decodeGetDisplayInvertResponse)
	register(PidDisplayInvert, SetCommand, decodeSetDisplayInvertRequest)

	register(PidDisplayLevel, GetCommand, decodeGetDisplayLevelRequest)
	register(PidDisplayLevel, GetCommandResponse, decodeGetDisplayLevelResponse)
	register(PidDisplayLevel, SetCommand, decodeSetDisplayLevelRequest)
}
