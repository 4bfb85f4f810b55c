package rdm

// GetIdentifyDeviceRequest carries no parameter data.
type GetIdentifyDeviceRequest struct{}

func (r GetIdentifyDeviceRequest) PID() ParameterId                  { return PidIdentifyDevice }
func (r GetIdentifyDeviceRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetIdentifyDeviceRequest) Encode() []byte                    { return nil }

func decodeGetIdentifyDeviceRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidIdentifyDevice, data, 0); err != nil {
		return nil, err
	}
	return GetIdentifyDeviceRequest{}, nil
}

// GetIdentifyDeviceResponse reports whether the device is currently
// flashing to help a human locate it.
type GetIdentifyDeviceResponse struct {
	Value bool
}

func (r GetIdentifyDeviceResponse) PID() ParameterId { return PidIdentifyDevice }
func (r GetIdentifyDeviceResponse) Encode() []byte   { return []byte{boolByte(r.Value)} }

func decodeGetIdentifyDeviceResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidIdentifyDevice, data, 1); err != nil {
		return nil, err
	}
	return GetIdentifyDeviceResponse{Value: decodeBool(data[0])}, nil
}

// SetIdentifyDeviceRequest turns device identification on or off.
type SetIdentifyDeviceRequest struct {
	Value bool
}

func (r SetIdentifyDeviceRequest) PID() ParameterId                  { return PidIdentifyDevice }
func (r SetIdentifyDeviceRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetIdentifyDeviceRequest) Encode() []byte                    { return []byte{boolByte(r.Value)} }

func decodeSetIdentifyDeviceRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidIdentifyDevice, data, 1); err != nil {
		return nil, err
	}
	return SetIdentifyDeviceRequest{Value: decodeBool(data[0])}, nil
}

func init() {
	register(PidIdentifyDevice, GetCommand, decodeGetIdentifyDeviceRequest)
	register(PidIdentifyDevice, GetCommandResponse, decodeGetIdentifyDeviceResponse)
	register(PidIdentifyDevice, SetCommand, decodeSetIdentifyDeviceRequest)
}
