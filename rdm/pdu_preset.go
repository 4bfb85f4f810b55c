package rdm

// GetPresetPlaybackRequest carries no parameter data.
type GetPresetPlaybackRequest struct{}

func (r GetPresetPlaybackRequest) PID() ParameterId                  { return PidPresetPlayback }
func (r GetPresetPlaybackRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetPresetPlaybackRequest) Encode() []byte                    { return nil }

func decodeGetPresetPlaybackRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPresetPlayback, data, 0); err != nil {
		return nil, err
	}
	return GetPresetPlaybackRequest{}, nil
}

// GetPresetPlaybackResponse reports which preset scene, if any, is played
// back on power loss, and its playback level.
type GetPresetPlaybackResponse struct {
	Mode  PresetPlaybackMode
	Level byte
}

func (r GetPresetPlaybackResponse) PID() ParameterId { return PidPresetPlayback }
func (r GetPresetPlaybackResponse) Encode() []byte {
	return []byte{r.Mode.Encode(), r.Level}
}

func decodeGetPresetPlaybackResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPresetPlayback, data, 2); err != nil {
		return nil, err
	}
	return GetPresetPlaybackResponse{Mode: DecodePresetPlaybackMode(data[0]), Level: data[1]}, nil
}

// SetPresetPlaybackRequest configures the power-loss preset scene.
type SetPresetPlaybackRequest struct {
	Mode  PresetPlaybackMode
	Level byte
}

func (r SetPresetPlaybackRequest) PID() ParameterId                  { return PidPresetPlayback }
func (r SetPresetPlaybackRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetPresetPlaybackRequest) Encode() []byte {
	return []byte{r.Mode.Encode(), r.Level}
}

func decodeSetPresetPlaybackRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPresetPlayback, data, 2); err != nil {
		return nil, err
	}
	return SetPresetPlaybackRequest{Mode: DecodePresetPlaybackMode(data[0]), Level: data[1]}, nil
}

func init() {
	register(PidPresetPlayback, GetCommand, decodeGetPresetPlaybackRequest)
	register(PidPresetPlayback, GetCommandResponse, decodeGetPresetPlaybackResponse)
	register(PidPresetPlayback, SetCommand, decodeSetPresetPlaybackRequest)
}
