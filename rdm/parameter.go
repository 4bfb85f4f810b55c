package rdm

// ParameterValue is implemented by every typed parameter-data payload this
// library knows how to encode: every Get*/Set*/Disc* request and response
// struct in rdm/pdu_*.go, plus ManufacturerSpecific as the total fallback.
type ParameterValue interface {
	PID() ParameterId
	Encode() []byte
}

// RequestParameter is a ParameterValue that additionally knows which
// command class it must be framed under -- GetCommand, SetCommand, or
// DiscoveryCommand.
type RequestParameter interface {
	ParameterValue
	RequestCommandClass() CommandClass
}

// ManufacturerSpecific preserves the raw parameter-data bytes of a PID
// this library has no typed codec for (including any PID in E1.20's
// manufacturer-specific range, and any future-spec PID it has not been
// taught yet). It is the total fallback on both the encode and decode
// path: encoding returns the bytes verbatim, never an error.
type ManufacturerSpecific struct {
	Pid          ParameterId
	CommandClass CommandClass
	Data         []byte
}

func (m ManufacturerSpecific) PID() ParameterId { return m.Pid }

func (m ManufacturerSpecific) Encode() []byte {
	out := make([]byte, len(m.Data))
	copy(out, m.Data)
	return out
}

// RequestCommandClass implements RequestParameter so a caller can send a
// manufacturer-specific or not-yet-supported PID as a request.
func (m ManufacturerSpecific) RequestCommandClass() CommandClass { return m.CommandClass }

// decodeFunc decodes a parameter-data payload into a typed value for one
// (PID, command class) combination.
type decodeFunc func(data []byte) (ParameterValue, error)

// registry dispatches (PID, command class) to a typed decoder. It is
// populated by each pdu_*.go file's init function and is total by
// construction: dispatch falls back to ManufacturerSpecific for any
// combination not registered, rather than failing.
var registry = map[uint16]map[CommandClass]decodeFunc{}

func register(pid ParameterId, cc CommandClass, fn decodeFunc) {
	m, ok := registry[pid.Code()]
	if !ok {
		m = map[CommandClass]decodeFunc{}
		registry[pid.Code()] = m
	}
	m[cc] = fn
}

// dispatch decodes data as the parameter-data payload of pid under command
// class cc. It never fails on an unrecognized combination: the library is
// total over PID, per the open-set design invariant.
func dispatch(pid ParameterId, cc CommandClass, data []byte) (ParameterValue, error) {
	if byCC, ok := registry[pid.Code()]; ok {
		if fn, ok := byCC[cc]; ok {
			return fn(data)
		}
	}
	raw := make([]byte, len(data))
	copy(raw, data)
	return ManufacturerSpecific{Pid: pid, CommandClass: cc, Data: raw}, nil
}

// BuildParameter decodes payload as the parameter-data of pid under
// command class cc, exactly as an incoming frame's payload would be
// interpreted. Callers assembling an outbound request from a bare PID
// name and a hand-written payload (rather than constructing a typed
// Get*Request/Set*Request literal) use this to get the same typed value
// dispatch would produce.
func BuildParameter(pid ParameterId, cc CommandClass, payload []byte) (ParameterValue, error) {
	return dispatch(pid, cc, payload)
}

// Supports reports whether pid has a registered codec for command class
// cc.
func Supports(pid ParameterId, cc CommandClass) bool {
	return supports(pid, cc)
}

// supports reports whether pid has a registered codec for cc. Only
// Supports calls it; request and response encoding do not, so encoding
// never fails with UnsupportedCommandClass.
func supports(pid ParameterId, cc CommandClass) bool {
	byCC, ok := registry[pid.Code()]
	if !ok {
		return false
	}
	_, ok = byCC[cc]
	return ok
}
