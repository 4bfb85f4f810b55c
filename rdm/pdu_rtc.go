package rdm

import "encoding/binary"

// GetRealTimeClockRequest carries no parameter data.
type GetRealTimeClockRequest struct{}

func (r GetRealTimeClockRequest) PID() ParameterId                  { return PidRealTimeClock }
func (r GetRealTimeClockRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetRealTimeClockRequest) Encode() []byte                    { return nil }

func decodeGetRealTimeClockRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidRealTimeClock, data, 0); err != nil {
		return nil, err
	}
	return GetRealTimeClockRequest{}, nil
}

// RealTimeClockValue is the 7-byte clock record, ANSI E1.20
// REAL_TIME_CLOCK.
type RealTimeClockValue struct {
	Year   uint16
	Month  byte
	Day    byte
	Hour   byte
	Minute byte
	Second byte
}

func encodeRealTimeClockValue(v RealTimeClockValue) []byte {
	buf := make([]byte, 7)
	binary.BigEndian.PutUint16(buf[0:2], v.Year)
	buf[2] = v.Month
	buf[3] = v.Day
	buf[4] = v.Hour
	buf[5] = v.Minute
	buf[6] = v.Second
	return buf
}

func decodeRealTimeClockValue(pid ParameterId, data []byte) (RealTimeClockValue, error) {
	if err := requireLen(pid, data, 7); err != nil {
		return RealTimeClockValue{}, err
	}
	return RealTimeClockValue{
		Year:   binary.BigEndian.Uint16(data[0:2]),
		Month:  data[2],
		Day:    data[3],
		Hour:   data[4],
		Minute: data[5],
		Second: data[6],
	}, nil
}

// GetRealTimeClockResponse carries the responder's current clock value.
type GetRealTimeClockResponse struct {
	Value RealTimeClockValue
}

func (r GetRealTimeClockResponse) PID() ParameterId { return PidRealTimeClock }
func (r GetRealTimeClockResponse) Encode() []byte   { return encodeRealTimeClockValue(r.Value) }

func decodeGetRealTimeClockResponse(data []byte) (ParameterValue, error) {
	v, err := decodeRealTimeClockValue(PidRealTimeClock, data)
	if err != nil {
		return nil, err
	}
	return GetRealTimeClockResponse{Value: v}, nil
}

// SetRealTimeClockRequest sets the responder's clock.
type SetRealTimeClockRequest struct {
	Value RealTimeClockValue
}

func (r SetRealTimeClockRequest) PID() ParameterId                  { return PidRealTimeClock }
func (r SetRealTimeClockRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r SetRealTimeClockRequest) Encode() []byte                    { return encodeRealTimeClockValue(r.Value) }

func decodeSetRealTimeClockRequest(data []byte) (ParameterValue, error) {
	v, err := decodeRealTimeClockValue(PidRealTimeClock, data)
	if err != nil {
		return nil, err
	}
	return SetRealTimeClockRequest{Value: v}, nil
}

func init() {
	register(PidRealTimeClock, GetCommand, decodeGetRealTimeClockRequest)
	register(PidRealTimeClock, GetCommandResponse, decodeGetRealTimeClockResponse)
	register(PidRealTimeClock, SetCommand, decodeSetRealTimeClockRequest)
}
