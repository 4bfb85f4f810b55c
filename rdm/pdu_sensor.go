package rdm

import "encoding/binary"

// GetSensorDefinitionRequest asks for the static description of one
// sensor.
type GetSensorDefinitionRequest struct {
	SensorNumber byte
}

func (r GetSensorDefinitionRequest) PID() ParameterId { return PidSensorDefinition }
func (r GetSensorDefinitionRequest) RequestCommandClass() CommandClass {
	return GetCommand
}
func (r GetSensorDefinitionRequest) Encode() []byte { return []byte{r.SensorNumber} }

func decodeGetSensorDefinitionRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidSensorDefinition, data, 1); err != nil {
		return nil, err
	}
	return GetSensorDefinitionRequest{SensorNumber: data[0]}, nil
}

// GetSensorDefinitionResponse is the 13-byte fixed record plus
// description, ANSI E1.20 Table 24.
type GetSensorDefinitionResponse struct {
	SensorNumber         byte
	Type                 SensorType
	Unit                 SensorUnit
	Prefix               byte
	RangeMinimumValue    int16
	RangeMaximumValue    int16
	NormalMinimumValue   int16
	NormalMaximumValue   int16
	RecordedValueSupport byte
	Description          string
}

func (r GetSensorDefinitionResponse) PID() ParameterId { return PidSensorDefinition }

func (r GetSensorDefinitionResponse) Encode() []byte {
	buf := make([]byte, 13)
	buf[0] = r.SensorNumber
	buf[1] = r.Type.Encode()
	buf[2] = r.Unit.Encode()
	buf[3] = r.Prefix
	binary.BigEndian.PutUint16(buf[4:6], uint16(r.RangeMinimumValue))
	binary.BigEndian.PutUint16(buf[6:8], uint16(r.RangeMaximumValue))
	binary.BigEndian.PutUint16(buf[8:10], uint16(r.NormalMinimumValue))
	binary.BigEndian.PutUint16(buf[10:12], uint16(r.NormalMaximumValue))
	buf[12] = r.RecordedValueSupport
	return append(buf, encodeLabel(r.Description, maxLabelLen)...)
}

func decodeGetSensorDefinitionResponse(data []byte) (ParameterValue, error) {
	if err := requireMinLen(PidSensorDefinition, data, 13); err != nil {
		return nil, err
	}
	return GetSensorDefinitionResponse{
		SensorNumber:         data[0],
		Type:                 DecodeSensorType(data[1]),
		Unit:                 DecodeSensorUnit(data[2]),
		Prefix:               data[3],
		RangeMinimumValue:    int16(binary.BigEndian.Uint16(data[4:6])),
		RangeMaximumValue:    int16(binary.BigEndian.Uint16(data[6:8])),
		NormalMinimumValue:   int16(binary.BigEndian.Uint16(data[8:10])),
		NormalMaximumValue:   int16(binary.BigEndian.Uint16(data[10:12])),
		RecordedValueSupport: data[12],
		Description:          decodeLabel(data[13:]),
	}, nil
}

// sensorAllSensors is the reserved sensor number addressing every sensor
// at once in GET/SET SENSOR_VALUE and RECORD_SENSORS.
const sensorAllSensors = 0xFF

// GetSensorValueRequest asks for one sensor's current reading, or every
// sensor's when SensorNumber is 0xFF.
type GetSensorValueRequest struct {
	SensorNumber byte
}

func (r GetSensorValueRequest) PID() ParameterId                  { return PidSensorValue }
func (r GetSensorValueRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetSensorValueRequest) Encode() []byte                    { return []byte{r.SensorNumber} }

func decodeGetSensorValueRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidSensorValue, data, 1); err != nil {
		return nil, err
	}
	return GetSensorValueRequest{SensorNumber: data[0]}, nil
}

// SensorValueRecord is the 9-byte reading, ANSI E1.20 Table 25.
type SensorValueRecord struct {
	SensorNumber  byte
	PresentValue  int16
	LowestValue   int16
	HighestValue  int16
	RecordedValue int16
}

func encodeSensorValueRecord(v SensorValueRecord) []byte {
	buf := make([]byte, 9)
	buf[0] = v.SensorNumber
	binary.BigEndian.PutUint16(buf[1:3], uint16(v.PresentValue))
	binary.BigEndian.PutUint16(buf[3:5], uint16(v.LowestValue))
	binary.BigEndian.PutUint16(buf[5:7], uint16(v.HighestValue))
	binary.BigEndian.PutUint16(buf[7:9], uint16(v.RecordedValue))
	return buf
}

func decodeSensorValueRecord(pid ParameterId, data []byte) (SensorValueRecord, error) {
	if err := requireLen(pid, data, 9); err != nil {
		return SensorValueRecord{}, err
	}
	return SensorValueRecord{
		SensorNumber:  data[0],
		PresentValue:  int16(binary.BigEndian.Uint16(data[1:3])),
		LowestValue:   int16(binary.BigEndian.Uint16(data[3:5])),
		HighestValue:  int16(binary.BigEndian.Uint16(data[5:7])),
		RecordedValue: int16(binary.BigEndian.Uint16(data[7:9])),
	}, nil
}

// GetSensorValueResponse carries one sensor's current reading.
type GetSensorValueResponse struct {
	Value SensorValueRecord
}

func (r GetSensorValueResponse) PID() ParameterId { return PidSensorValue }
func (r GetSensorValueResponse) Encode() []byte   { return encodeSensorValueRecord(r.Value) }

func decodeGetSensorValueResponse(data []byte) (ParameterValue, error) {
	v, err := decodeSensorValueRecord(PidSensorValue, data)
	if err != nil {
		return nil, err
	}
	return GetSensorValueResponse{Value: v}, nil
}

// SetSensorValueRequest resets one sensor's (or, with SensorNumber 0xFF,
// every sensor's) recorded min/max/recorded values back to the present
// reading.
type SetSensorValueRequest struct {
	SensorNumber byte
}

func (r SetSensorValueRequest) PID() ParameterId                  { return PidSensorValue }
func (r SetSensorValueRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetSensorValueRequest) Encode() []byte                    { return []byte{r.SensorNumber} }

func decodeSetSensorValueRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidSensorValue, data, 1); err != nil {
		return nil, err
	}
	return SetSensorValueRequest{SensorNumber: data[0]}, nil
}

// SetSensorValueResponse reports the sensor's values immediately after
// the reset.
type SetSensorValueResponse struct {
	Value SensorValueRecord
}

func (r SetSensorValueResponse) PID() ParameterId { return PidSensorValue }
func (r SetSensorValueResponse) Encode() []byte   { return encodeSensorValueRecord(r.Value) }

func decodeSetSensorValueResponse(data []byte) (ParameterValue, error) {
	v, err := decodeSensorValueRecord(PidSensorValue, data)
	if err != nil {
		return nil, err
	}
	return SetSensorValueResponse{Value: v}, nil
}

// RecordSensorsRequest asks the responder to latch its RECORDED value for
// one sensor (or all, with SensorNumber 0xFF). It is a SET-only PID with
// no response payload.
type RecordSensorsRequest struct {
	SensorNumber byte
}

func (r RecordSensorsRequest) PID() ParameterId                  { return PidRecordSensors }
func (r RecordSensorsRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r RecordSensorsRequest) Encode() []byte                    { return []byte{r.SensorNumber} }

func decodeRecordSensorsRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidRecordSensors, data, 1); err != nil {
		return nil, err
	}
	return RecordSensorsRequest{SensorNumber: data[0]}, nil
}

func init() {
	register(PidSensorDefinition, GetCommand, decodeGetSensorDefinitionRequest)
	register(PidSensorDefinition, GetCommandResponse, decodeGetSensorDefinitionResponse)

	register(PidSensorValue, GetCommand, decodeGetSensorValueRequest)
	register(PidSensorValue, GetCommandResponse, decodeGetSensorValueResponse)
	register(PidSensorValue, SetCommand, decodeSetSensorValueRequest)
	register(PidSensorValue, SetCommandResponse, decodeSetSensorValueResponse)

	register(PidRecordSensors, SetCommand, decodeRecordSensorsRequest)
}
