package rdm

import "fmt"

// byteEnum is the common total-conversion shape shared by every
// single-byte, open-ended device-state enumeration below: a known flag
// plus the raw wire byte, so re-encoding always recovers the original
// value even when it was not recognized.
type byteEnum struct {
	known bool
	code  byte
}

func lookupByteEnum(names map[byte]string, code byte) byteEnum {
	_, ok := names[code]
	return byteEnum{known: ok, code: code}
}

// IsUnknown reports whether the wire byte fell outside the defined set.
func (e byteEnum) IsUnknown() bool { return !e.known }

// Code returns the raw wire byte.
func (e byteEnum) Code() byte { return e.code }

// Encode returns the raw wire byte.
func (e byteEnum) Encode() byte { return e.code }

// StatusType is the open-ended severity of a status message, ANSI E1.20
// Table A-4.
type StatusType struct{ byteEnum }

var (
	StatusTypeNone    = StatusType{byteEnum{known: true, code: 0x00}}
	StatusTypeGetLastMessage = StatusType{byteEnum{known: true, code: 0x01}}
	StatusTypeAdvisory = StatusType{byteEnum{known: true, code: 0x02}}
	StatusTypeWarning = StatusType{byteEnum{known: true, code: 0x03}}
	StatusTypeError   = StatusType{byteEnum{known: true, code: 0x04}}
	StatusTypeAdvisoryCleared = StatusType{byteEnum{known: true, code: 0x12}}
	StatusTypeWarningCleared  = StatusType{byteEnum{known: true, code: 0x13}}
	StatusTypeErrorCleared    = StatusType{byteEnum{known: true, code: 0x14}}
)

var statusTypeNames = map[byte]string{
	0x00: "NONE",
	0x01: "GET_LAST_MESSAGE",
	0x02: "ADVISORY",
	0x03: "WARNING",
	0x04: "ERROR",
	0x12: "ADVISORY_CLEARED",
	0x13: "WARNING_CLEARED",
	0x14: "ERROR_CLEARED",
}

func DecodeStatusType(b byte) StatusType { return StatusType{lookupByteEnum(statusTypeNames, b)} }
func (s StatusType) String() string {
	if name, ok := statusTypeNames[s.code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02X)", s.code)
}

// LampState is the open-ended lamp on/off/strike-failure state, ANSI
// E1.20 Table A-9.
type LampState struct{ byteEnum }

var (
	LampStateOff            = LampState{byteEnum{known: true, code: 0x00}}
	LampStateOn             = LampState{byteEnum{known: true, code: 0x01}}
	LampStateStrike         = LampState{byteEnum{known: true, code: 0x02}}
	LampStateStandby        = LampState{byteEnum{known: true, code: 0x03}}
	LampStateNotPresent     = LampState{byteEnum{known: true, code: 0x04}}
	LampStateError          = LampState{byteEnum{known: true, code: 0x05}}
)

var lampStateNames = map[byte]string{
	0x00: "LAMP_OFF",
	0x01: "LAMP_ON",
	0x02: "LAMP_STRIKE",
	0x03: "LAMP_STANDBY",
	0x04: "LAMP_NOT_PRESENT",
	0x05: "LAMP_ERROR",
}

func DecodeLampState(b byte) LampState { return LampState{lookupByteEnum(lampStateNames, b)} }
func (s LampState) String() string {
	if name, ok := lampStateNames[s.code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02X)", s.code)
}

// LampOnMode is the open-ended policy controlling when a lamp strikes,
// ANSI E1.20 Table A-10.
type LampOnMode struct{ byteEnum }

var (
	LampOnModeOff    = LampOnMode{byteEnum{known: true, code: 0x00}}
	LampOnModeDMX    = LampOnMode{byteEnum{known: true, code: 0x01}}
	LampOnModeOn     = LampOnMode{byteEnum{known: true, code: 0x02}}
	LampOnModeAfterCal = LampOnMode{byteEnum{known: true, code: 0x03}}
)

var lampOnModeNames = map[byte]string{
	0x00: "OFF",
	0x01: "DMX",
	0x02: "ON",
	0x03: "AFTER_CAL",
}

func DecodeLampOnMode(b byte) LampOnMode { return LampOnMode{lookupByteEnum(lampOnModeNames, b)} }
func (m LampOnMode) String() string {
	if name, ok := lampOnModeNames[m.code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02X)", m.code)
}

// PowerState is the open-ended device power state, ANSI E1.20 Table A-11.
type PowerState struct{ byteEnum }

var (
	PowerStateFullOff  = PowerState{byteEnum{known: true, code: 0x00}}
	PowerStateShutdown = PowerState{byteEnum{known: true, code: 0x01}}
	PowerStateStandby  = PowerState{byteEnum{known: true, code: 0x02}}
	PowerStateNormal   = PowerState{byteEnum{known: true, code: 0xFF}}
)

var powerStateNames = map[byte]string{
	0x00: "FULL_OFF",
	0x01: "SHUTDOWN",
	0x02: "STANDBY",
	0xFF: "NORMAL",
}

func DecodePowerState(b byte) PowerState { return PowerState{lookupByteEnum(powerStateNames, b)} }
func (p PowerState) String() string {
	if name, ok := powerStateNames[p.code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02X)", p.code)
}

// ResetMode selects a warm or cold device reset, ANSI E1.20 Table A-12.
type ResetMode struct{ byteEnum }

var (
	ResetModeWarm = ResetMode{byteEnum{known: true, code: 0x01}}
	ResetModeCold = ResetMode{byteEnum{known: true, code: 0xFF}}
)

var resetModeNames = map[byte]string{
	0x01: "WARM_RESET",
	0xFF: "COLD_RESET",
}

func DecodeResetMode(b byte) ResetMode { return ResetMode{lookupByteEnum(resetModeNames, b)} }
func (r ResetMode) String() string {
	if name, ok := resetModeNames[r.code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02X)", r.code)
}

// DisplayInvertMode is the open-ended display orientation setting.
type DisplayInvertMode struct{ byteEnum }

var (
	DisplayInvertOff  = DisplayInvertMode{byteEnum{known: true, code: 0x00}}
	DisplayInvertOn   = DisplayInvertMode{byteEnum{known: true, code: 0x01}}
	DisplayInvertAuto = DisplayInvertMode{byteEnum{known: true, code: 0x02}}
)

var displayInvertNames = map[byte]string{
	0x00: "OFF",
	0x01: "ON",
	0x02: "AUTO",
}

func DecodeDisplayInvertMode(b byte) DisplayInvertMode {
	return DisplayInvertMode{lookupByteEnum(displayInvertNames, b)}
}
func (d DisplayInvertMode) String() string {
	if name, ok := displayInvertNames[d.code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02X)", d.code)
}

// PresetPlaybackMode selects which stored scene, if any, a device plays
// back on power loss, ANSI E1.20 PRESET_PLAYBACK.
type PresetPlaybackMode struct{ byteEnum }

var (
	PresetPlaybackOff   = PresetPlaybackMode{byteEnum{known: true, code: 0x00}}
	PresetPlaybackScene = PresetPlaybackMode{byteEnum{known: true, code: 0xFF}}
)

var presetPlaybackNames = map[byte]string{
	0x00: "OFF",
	0xFF: "SCENE",
}

func DecodePresetPlaybackMode(b byte) PresetPlaybackMode {
	return PresetPlaybackMode{lookupByteEnum(presetPlaybackNames, b)}
}
func (p PresetPlaybackMode) String() string {
	if name, ok := presetPlaybackNames[p.code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02X)", p.code)
}

// SelfTestId identifies one of a device's self-test routines, ANSI E1.20
// PERFORM_SELF_TEST / SELF_TEST_DESCRIPTION.
type SelfTestId struct{ byteEnum }

var SelfTestIdAllTests = SelfTestId{byteEnum{known: true, code: 0xFF}}

var selfTestIdNames = map[byte]string{
	0xFF: "ALL_TESTS",
}

func DecodeSelfTestId(b byte) SelfTestId { return SelfTestId{lookupByteEnum(selfTestIdNames, b)} }
func (s SelfTestId) String() string {
	if name, ok := selfTestIdNames[s.code]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", s.code)
}
