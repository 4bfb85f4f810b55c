package rdm

import "encoding/binary"

// GetSlotInfoRequest carries no parameter data.
type GetSlotInfoRequest struct{}

func (r GetSlotInfoRequest) PID() ParameterId                  { return PidSlotInfo }
func (r GetSlotInfoRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetSlotInfoRequest) Encode() []byte                    { return nil }

func decodeGetSlotInfoRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidSlotInfo, data, 0); err != nil {
		return nil, err
	}
	return GetSlotInfoRequest{}, nil
}

// SlotInfoRecord is one 5-byte DMX footprint slot descriptor, ANSI E1.20
// Table 27.
type SlotInfoRecord struct {
	SlotOffset uint16
	Type       SlotType
	Id         SlotId
}

// GetSlotInfoResponse is the responder's full slot table.
type GetSlotInfoResponse struct {
	Slots []SlotInfoRecord
}

func (r GetSlotInfoResponse) PID() ParameterId { return PidSlotInfo }

func (r GetSlotInfoResponse) Encode() []byte {
	buf := make([]byte, 0, len(r.Slots)*5)
	for _, s := range r.Slots {
		rec := make([]byte, 5)
		binary.BigEndian.PutUint16(rec[0:2], s.SlotOffset)
		rec[2] = s.Type.Encode()
		copy(rec[3:5], s.Id.Encode())
		buf = append(buf, rec...)
	}
	return buf
}

func decodeGetSlotInfoResponse(data []byte) (ParameterValue, error) {
	if len(data)%5 != 0 {
		return nil, newParamValueError(PidSlotInfo, "payload length must be a multiple of 5")
	}
	slots := make([]SlotInfoRecord, 0, len(data)/5)
	for i := 0; i < len(data); i += 5 {
		slots = append(slots, SlotInfoRecord{
			SlotOffset: binary.BigEndian.Uint16(data[i : i+2]),
			Type:       DecodeSlotType(data[i+2]),
			Id:         DecodeSlotId(data[i+3 : i+5]),
		})
	}
	return GetSlotInfoResponse{Slots: slots}, nil
}

// GetSlotDescriptionRequest asks for a single slot's human readable
// description.
type GetSlotDescriptionRequest struct {
	SlotOffset uint16
}

func (r GetSlotDescriptionRequest) PID() ParameterId                  { return PidSlotDescription }
func (r GetSlotDescriptionRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetSlotDescriptionRequest) Encode() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, r.SlotOffset)
	return buf
}

func decodeGetSlotDescriptionRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidSlotDescription, data, 2); err != nil {
		return nil, err
	}
	return GetSlotDescriptionRequest{SlotOffset: binary.BigEndian.Uint16(data)}, nil
}

// GetSlotDescriptionResponse is the slot offset plus an up-to-32-byte
// description.
type GetSlotDescriptionResponse struct {
	SlotOffset  uint16
	Description string
}

func (r GetSlotDescriptionResponse) PID() ParameterId { return PidSlotDescription }
func (r GetSlotDescriptionResponse) Encode() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, r.SlotOffset)
	return append(buf, encodeLabel(r.Description, maxLabelLen)...)
}

func decodeGetSlotDescriptionResponse(data []byte) (ParameterValue, error) {
	if err := requireMinLen(PidSlotDescription, data, 2); err != nil {
		return nil, err
	}
	return GetSlotDescriptionResponse{
		SlotOffset:  binary.BigEndian.Uint16(data[0:2]),
		Description: decodeLabel(data[2:]),
	}, nil
}

// DefaultSlotValueRecord is one 3-byte power-on default, ANSI E1.20 Table
// 28.
type DefaultSlotValueRecord struct {
	SlotOffset   uint16
	DefaultValue byte
}

// GetDefaultSlotValueRequest carries no parameter data.
type GetDefaultSlotValueRequest struct{}

func (r GetDefaultSlotValueRequest) PID() ParameterId                  { return PidDefaultSlotValue }
func (r GetDefaultSlotValueRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetDefaultSlotValueRequest) Encode() []byte                    { return nil }

func decodeGetDefaultSlotValueRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDefaultSlotValue, data, 0); err != nil {
		return nil, err
	}
	return GetDefaultSlotValueRequest{}, nil
}

// GetDefaultSlotValueResponse is the responder's full power-on default
// table.
type GetDefaultSlotValueResponse struct {
	Slots []DefaultSlotValueRecord
}

func (r GetDefaultSlotValueResponse) PID() ParameterId { return PidDefaultSlotValue }

func (r GetDefaultSlotValueResponse) Encode() []byte {
	buf := make([]byte, 0, len(r.Slots)*3)
	for _, s := range r.Slots {
		rec := make([]byte, 3)
		binary.BigEndian.PutUint16(rec[0:2], s.SlotOffset)
		rec[2] = s.DefaultValue
		buf = append(buf, rec...)
	}
	return buf
}

func decodeGetDefaultSlotValueResponse(data []byte) (ParameterValue, error) {
	if len(data)%3 != 0 {
		return nil, newParamValueError(PidDefaultSlotValue, "payload length must be a multiple of 3")
	}
	slots := make([]DefaultSlotValueRecord, 0, len(data)/3)
	for i := 0; i < len(data); i += 3 {
		slots = append(slots, DefaultSlotValueRecord{
			SlotOffset:   binary.BigEndian.Uint16(data[i : i+2]),
			DefaultValue: data[i+2],
		})
	}
	return GetDefaultSlotValueResponse{Slots: slots}, nil
}

func init() {
	register(PidSlotInfo, GetCommand, decodeGetSlotInfoRequest)
	register(PidSlotInfo, GetCommandResponse, decodeGetSlotInfoResponse)

	register(PidSlotDescription, GetCommand, decodeGetSlotDescriptionRequest)
	register(PidSlotDescription, GetCommandResponse, decodeGetSlotDescriptionResponse)

	register(PidDefaultSlotValue, GetCommand, decodeGetDefaultSlotValueRequest)
	register(PidDefaultSlotValue, GetCommandResponse, decodeGetDefaultSlotValueResponse)
}
