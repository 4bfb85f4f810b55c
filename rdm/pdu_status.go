package rdm

import "encoding/binary"

// GetStatusMessagesRequest asks for queued status messages at or above
// the given severity.
type GetStatusMessagesRequest struct {
	Type StatusType
}

func (r GetStatusMessagesRequest) PID() ParameterId                  { return PidStatusMessages }
func (r GetStatusMessagesRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetStatusMessagesRequest) Encode() []byte                    { return []byte{r.Type.Encode()} }

func decodeGetStatusMessagesRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidStatusMessages, data, 1); err != nil {
		return nil, err
	}
	return GetStatusMessagesRequest{Type: DecodeStatusType(data[0])}, nil
}

// StatusMessage is one 9-byte queued status record, ANSI E1.20 Table 20.
type StatusMessage struct {
	SubDevice       SubDeviceId
	Type            StatusType
	StatusMessageId uint16
	DataValue1      int16
	DataValue2      int16
}

func encodeStatusMessage(m StatusMessage) []byte {
	buf := make([]byte, 9)
	copy(buf[0:2], m.SubDevice.Encode())
	buf[2] = m.Type.Encode()
	binary.BigEndian.PutUint16(buf[3:5], m.StatusMessageId)
	binary.BigEndian.PutUint16(buf[5:7], uint16(m.DataValue1))
	binary.BigEndian.PutUint16(buf[7:9], uint16(m.DataValue2))
	return buf
}

func decodeStatusMessage(data []byte) (StatusMessage, error) {
	subDevice, err := DecodeSubDeviceId(data[0], data[1])
	if err != nil {
		return StatusMessage{}, err
	}
	return StatusMessage{
		SubDevice:       subDevice,
		Type:            DecodeStatusType(data[2]),
		StatusMessageId: binary.BigEndian.Uint16(data[3:5]),
		DataValue1:      int16(binary.BigEndian.Uint16(data[5:7])),
		DataValue2:      int16(binary.BigEndian.Uint16(data[7:9])),
	}, nil
}

// GetStatusMessagesResponse is zero or more queued status records.
type GetStatusMessagesResponse struct {
	Messages []StatusMessage
}

func (r GetStatusMessagesResponse) PID() ParameterId { return PidStatusMessages }

func (r GetStatusMessagesResponse) Encode() []byte {
	buf := make([]byte, 0, len(r.Messages)*9)
	for _, m := range r.Messages {
		buf = append(buf, encodeStatusMessage(m)...)
	}
	return buf
}

func decodeGetStatusMessagesResponse(data []byte) (ParameterValue, error) {
	if len(data)%9 != 0 {
		return nil, newParamValueError(PidStatusMessages, "payload length must be a multiple of 9")
	}
	messages := make([]StatusMessage, 0, len(data)/9)
	for i := 0; i < len(data); i += 9 {
		m, err := decodeStatusMessage(data[i : i+9])
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return GetStatusMessagesResponse{Messages: messages}, nil
}

// GetStatusIdDescriptionRequest asks for the human readable text of a
// manufacturer-specific status message id.
type GetStatusIdDescriptionRequest struct {
	StatusMessageId uint16
}

func (r GetStatusIdDescriptionRequest) PID() ParameterId { return PidStatusIdDescription }
func (r GetStatusIdDescriptionRequest) RequestCommandClass() CommandClass {
	return GetCommand
}
func (r GetStatusIdDescriptionRequest) Encode() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, r.StatusMessageId)
	return buf
}

func decodeGetStatusIdDescriptionRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidStatusIdDescription, data, 2); err != nil {
		return nil, err
	}
	return GetStatusIdDescriptionRequest{StatusMessageId: binary.BigEndian.Uint16(data)}, nil
}

// GetStatusIdDescriptionResponse is an up-to-32-byte description string.
type GetStatusIdDescriptionResponse struct {
	Description string
}

func (r GetStatusIdDescriptionResponse) PID() ParameterId { return PidStatusIdDescription }
func (r GetStatusIdDescriptionResponse) Encode() []byte {
	return encodeLabel(r.Description, maxLabelLen)
}

func decodeGetStatusIdDescriptionResponse(data []byte) (ParameterValue, error) {
	return GetStatusIdDescriptionResponse{Description: decodeLabel(data)}, nil
}

// GetCommsStatusRequest carries no parameter data.
type GetCommsStatusRequest struct{}

func (r GetCommsStatusRequest) PID() ParameterId                  { return PidCommsStatus }
func (r GetCommsStatusRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetCommsStatusRequest) Encode() []byte                    { return nil }

func decodeGetCommsStatusRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidCommsStatus, data, 0); err != nil {
		return nil, err
	}
	return GetCommsStatusRequest{}, nil
}

// GetCommsStatusResponse is three 16-bit running counters, ANSI E1.20
// COMMS_STATUS.
type GetCommsStatusResponse struct {
	ShortMessageCount   uint16
	LengthMismatchCount uint16
	ChecksumFailCount   uint16
}

func (r GetCommsStatusResponse) PID() ParameterId { return PidCommsStatus }

func (r GetCommsStatusResponse) Encode() []byte {
	buf := make([]byte, 6)
	binary.BigEndian.PutUint16(buf[0:2], r.ShortMessageCount)
	binary.BigEndian.PutUint16(buf[2:4], r.LengthMismatchCount)
	binary.BigEndian.PutUint16(buf[4:6], r.ChecksumFailCount)
	return buf
}

func decodeGetCommsStatusResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidCommsStatus, data, 6); err != nil {
		return nil, err
	}
	return GetCommsStatusResponse{
		ShortMessageCount:   binary.BigEndian.Uint16(data[0:2]),
		LengthMismatchCount: binary.BigEndian.Uint16(data[2:4]),
		ChecksumFailCount:   binary.BigEndian.Uint16(data[4:6]),
	}, nil
}

// SetCommsStatusRequest resets the COMMS_STATUS counters to zero. It
// carries no parameter data.
type SetCommsStatusRequest struct{}

func (r SetCommsStatusRequest) PID() ParameterId                  { return PidCommsStatus }
func (r SetCommsStatusRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetCommsStatusRequest) Encode() []byte                    { return nil }

func decodeSetCommsStatusRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidCommsStatus, data, 0); err != nil {
		return nil, err
	}
	return SetCommsStatusRequest{}, nil
}

func init() {
	register(PidStatusMessages, GetCommand, decodeGetStatusMessagesRequest)
	register(PidStatusMessages, GetCommandResponse, decodeGetStatusMessagesResponse)

	register(PidStatusIdDescription, GetCommand, decodeGetStatusIdDescriptionRequest)
	register(PidStatusIdDescription, GetCommandResponse, decodeGetStatusIdDescriptionResponse)

	register(PidCommsStatus, GetCommand, decodeGetCommsStatusRequest)
	register(PidCommsStatus, GetCommandResponse, decodeGetCommsStatusResponse)
	register(PidCommsStatus, SetCommand, decodeSetCommsStatusRequest)
}
