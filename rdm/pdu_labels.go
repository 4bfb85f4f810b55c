package rdm

import "encoding/binary"

// GetDeviceLabelRequest carries no parameter data.
type GetDeviceLabelRequest struct{}

func (r GetDeviceLabelRequest) PID() ParameterId                  { return PidDeviceLabel }
func (r GetDeviceLabelRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetDeviceLabelRequest) Encode() []byte                    { return nil }

func decodeGetDeviceLabelRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDeviceLabel, data, 0); err != nil {
		return nil, err
	}
	return GetDeviceLabelRequest{}, nil
}

// GetDeviceLabelResponse is an up-to-32-byte human assigned device name.
type GetDeviceLabelResponse struct {
	Label string
}

func (r GetDeviceLabelResponse) PID() ParameterId { return PidDeviceLabel }
func (r GetDeviceLabelResponse) Encode() []byte   { return encodeLabel(r.Label, maxLabelLen) }

func decodeGetDeviceLabelResponse(data []byte) (ParameterValue, error) {
	return GetDeviceLabelResponse{Label: decodeLabel(data)}, nil
}

// SetDeviceLabelRequest assigns a new device label.
type SetDeviceLabelRequest struct {
	Label string
}

func (r SetDeviceLabelRequest) PID() ParameterId                  { return PidDeviceLabel }
func (r SetDeviceLabelRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetDeviceLabelRequest) Encode() []byte                    { return encodeLabel(r.Label, maxLabelLen) }

func decodeSetDeviceLabelRequest(data []byte) (ParameterValue, error) {
	return SetDeviceLabelRequest{Label: decodeLabel(data)}, nil
}

// GetManufacturerLabelRequest carries no parameter data.
type GetManufacturerLabelRequest struct{}

func (r GetManufacturerLabelRequest) PID() ParameterId                  { return PidManufacturerLabel }
func (r GetManufacturerLabelRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetManufacturerLabelRequest) Encode() []byte                    { return nil }

func decodeGetManufacturerLabelRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidManufacturerLabel, data, 0); err != nil {
		return nil, err
	}
	return GetManufacturerLabelRequest{}, nil
}

// GetManufacturerLabelResponse is an up-to-32-byte manufacturer name.
type GetManufacturerLabelResponse struct {
	Label string
}

func (r GetManufacturerLabelResponse) PID() ParameterId { return PidManufacturerLabel }
func (r GetManufacturerLabelResponse) Encode() []byte   { return encodeLabel(r.Label, maxLabelLen) }

func decodeGetManufacturerLabelResponse(data []byte) (ParameterValue, error) {
	return GetManufacturerLabelResponse{Label: decodeLabel(data)}, nil
}

// GetSoftwareVersionLabelRequest carries no parameter data.
type GetSoftwareVersionLabelRequest struct{}

func (r GetSoftwareVersionLabelRequest) PID() ParameterId { return PidSoftwareVersionLabel }
func (r GetSoftwareVersionLabelRequest) RequestCommandClass() CommandClass {
	return GetCommand
}
func (r GetSoftwareVersionLabelRequest) Encode() []byte { return nil }

func decodeGetSoftwareVersionLabelRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidSoftwareVersionLabel, data, 0); err != nil {
		return nil, err
	}
	return GetSoftwareVersionLabelRequest{}, nil
}

// GetSoftwareVersionLabelResponse is an up-to-32-byte firmware version
// string.
type GetSoftwareVersionLabelResponse struct {
	Label string
}

func (r GetSoftwareVersionLabelResponse) PID() ParameterId { return PidSoftwareVersionLabel }
func (r GetSoftwareVersionLabelResponse) Encode() []byte   { return encodeLabel(r.Label, maxLabelLen) }

func decodeGetSoftwareVersionLabelResponse(data []byte) (ParameterValue, error) {
	return GetSoftwareVersionLabelResponse{Label: decodeLabel(data)}, nil
}

// GetBootSoftwareVersionIdRequest carries no parameter data.
type GetBootSoftwareVersionIdRequest struct{}

func (r GetBootSoftwareVersionIdRequest) PID() ParameterId { return PidBootSoftwareVersionId }
func (r GetBootSoftwareVersionIdRequest) RequestCommandClass() CommandClass {
	return GetCommand
}
func (r GetBootSoftwareVersionIdRequest) Encode() []byte { return nil }

func decodeGetBootSoftwareVersionIdRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidBootSoftwareVersionId, data, 0); err != nil {
		return nil, err
	}
	return GetBootSoftwareVersionIdRequest{}, nil
}

// GetBootSoftwareVersionIdResponse is the 32-bit numeric boot software
// version id.
type GetBootSoftwareVersionIdResponse struct {
	VersionId uint32
}

func (r GetBootSoftwareVersionIdResponse) PID() ParameterId { return PidBootSoftwareVersionId }
func (r GetBootSoftwareVersionIdResponse) Encode() []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, r.VersionId)
	return buf
}

func decodeGetBootSoftwareVersionIdResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidBootSoftwareVersionId, data, 4); err != nil {
		return nil, err
	}
	return GetBootSoftwareVersionIdResponse{VersionId: binary.BigEndian.Uint32(data)}, nil
}

// GetBootSoftwareVersionLabelRequest carries no parameter data.
type GetBootSoftwareVersionLabelRequest struct{}

func (r GetBootSoftwareVersionLabelRequest) PID() ParameterId {
	return PidBootSoftwareVersionLabel
}
func (r GetBootSoftwareVersionLabelRequest) RequestCommandClass() CommandClass {
	return GetCommand
}
func (r GetBootSoftwareVersionLabelRequest) Encode() []byte { return nil }

func decodeGetBootSoftwareVersionLabelRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidBootSoftwareVersionLabel, data, 0); err != nil {
		return nil, err
	}
	return GetBootSoftwareVersionLabelRequest{}, nil
}

// GetBootSoftwareVersionLabelResponse is an up-to-32-byte boot software
// version string.
type GetBootSoftwareVersionLabelResponse struct {
	Label string
}

func (r GetBootSoftwareVersionLabelResponse) PID() ParameterId {
	return PidBootSoftwareVersionLabel
}
func (r GetBootSoftwareVersionLabelResponse) Encode() []byte {
	return encodeLabel(r.Label, maxLabelLen)
}

func decodeGetBootSoftwareVersionLabelResponse(data []byte) (ParameterValue, error) {
	return GetBootSoftwareVersionLabelResponse{Label: decodeLabel(data)}, nil
}

// GetLanguageCapabilitiesRequest carries no parameter data.
type GetLanguageCapabilitiesRequest struct{}

func (r GetLanguageCapabilitiesRequest) PID() ParameterId { return PidLanguageCapabilities }
func (r GetLanguageCapabilitiesRequest) RequestCommandClass() CommandClass {
	return GetCommand
}
func (r GetLanguageCapabilitiesRequest) Encode() []byte { return nil }

func decodeGetLanguageCapabilitiesRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidLanguageCapabilities, data, 0); err != nil {
		return nil, err
	}
	return GetLanguageCapabilitiesRequest{}, nil
}

// GetLanguageCapabilitiesResponse lists the 2-character ISO 639-1
// language codes a responder supports.
type GetLanguageCapabilitiesResponse struct {
	Languages []string
}

func (r GetLanguageCapabilitiesResponse) PID() ParameterId { return PidLanguageCapabilities }

func (r GetLanguageCapabilitiesResponse) Encode() []byte {
	buf := make([]byte, 0, len(r.Languages)*2)
	for _, lang := range r.Languages {
		buf = append(buf, encodeLabel(lang, 2)...)
	}
	return buf
}

func decodeGetLanguageCapabilitiesResponse(data []byte) (ParameterValue, error) {
	if len(data)%2 != 0 {
		return nil, newParamValueError(PidLanguageCapabilities, "payload length must be a multiple of 2")
	}
	langs := make([]string, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		langs = append(langs, string(data[i:i+2]))
	}
	return GetLanguageCapabilitiesResponse{Languages: langs}, nil
}

// GetLanguageRequest carries no parameter data.
type GetLanguageRequest struct{}

func (r GetLanguageRequest) PID() ParameterId                  { return PidLanguage }
func (r GetLanguageRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetLanguageRequest) Encode() []byte                    { return nil }

func decodeGetLanguageRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidLanguage, data, 0); err != nil {
		return nil, err
	}
	return GetLanguageRequest{}, nil
}

// GetLanguageResponse is the active 2-character language code.
type GetLanguageResponse struct {
	Language string
}

func (r GetLanguageResponse) PID() ParameterId { return PidLanguage }
func (r GetLanguageResponse) Encode() []byte   { return encodeLabel(r.Language, 2) }

func decodeGetLanguageResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidLanguage, data, 2); err != nil {
		return nil, err
	}
	return GetLanguageResponse{Language: string(data)}, nil
}

// SetLanguageRequest selects the active language by its 2-character code.
type SetLanguageRequest struct {
	Language string
}

func (r SetLanguageRequest) PID() ParameterId                  { return PidLanguage }
func (r SetLanguageRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetLanguageRequest) Encode() []byte                    { return encodeLabel(r.Language, 2) }

func decodeSetLanguageRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidLanguage, data, 2); err != nil {
		return nil, err
	}
	return SetLanguageRequest{Language: string(data)}, nil
}

func init() {
	register(PidDeviceLabel, GetCommand, decodeGetDeviceLabelRequest)
	register(PidDeviceLabel, GetCommandResponse, decodeGetDeviceLabelResponse)
	register(PidDeviceLabel, SetCommand, decodeSetDeviceLabelRequest)

	register(PidManufacturerLabel, GetCommand, decodeGetManufacturerLabelRequest)
	register(PidManufacturerLabel, GetCommandResponse, decodeGetManufacturerLabelResponse)

	register(PidSoftwareVersionLabel, GetCommand, decodeGetSoftwareVersionLabelRequest)
	register(PidSoftwareVersionLabel, GetCommandResponse, decodeGetSoftwareVersionLabelResponse)

	register(PidBootSoftwareVersionId, GetCommand, decodeGetBootSoftwareVersionIdRequest)
	register(PidBootSoftwareVersionId, GetCommandResponse, decodeGetBootSoftwareVersionIdResponse)

	register(PidBootSoftwareVersionLabel, GetCommand, decodeGetBootSoftwareVersionLabelRequest)
	register(PidBootSoftwareVersionLabel, GetCommandResponse, decodeGetBootSoftwareVersionLabelResponse)

	register(PidLanguageCapabilities, GetCommand, decodeGetLanguageCapabilitiesRequest)
	register(PidLanguageCapabilities, GetCommandResponse, decodeGetLanguageCapabilitiesResponse)

	register(PidLanguage, GetCommand, decodeGetLanguageRequest)
	register(PidLanguage, GetCommandResponse, decodeGetLanguageResponse)
	register(PidLanguage, SetCommand, decodeSetLanguageRequest)
}
