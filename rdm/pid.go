package rdm

import (
	"encoding/binary"
	"fmt"
)

// ParameterId identifies an RDM parameter. It is open-ended: wire values
// outside the known set decode to a ManufacturerSpecific/Unknown form
// that preserves the raw value, never an error.
type ParameterId struct {
	known bool
	code  uint16
}

// Well-known parameter ids, ANSI E1.20 Table A-3 (the subset this library
// implements a typed codec for; see rdm/pdu_*.go).
var (
	PidDiscUniqueBranch          = knownPid(0x0001)
	PidDiscMute                  = knownPid(0x0002)
	PidDiscUnMute                = knownPid(0x0003)
	PidSupportedParameters       = knownPid(0x0050)
	PidParameterDescription      = knownPid(0x0051)
	PidDeviceInfo                = knownPid(0x0060)
	PidProductDetailIdList       = knownPid(0x0070)
	PidDeviceModelDescription    = knownPid(0x0080)
	PidManufacturerLabel         = knownPid(0x0081)
	PidDeviceLabel               = knownPid(0x0082)
	PidLanguageCapabilities      = knownPid(0x00A0)
	PidLanguage                  = knownPid(0x00B0)
	PidSoftwareVersionLabel      = knownPid(0x00C0)
	PidBootSoftwareVersionId     = knownPid(0x00C1)
	PidBootSoftwareVersionLabel  = knownPid(0x00C2)
	PidDmxPersonality            = knownPid(0x00E0)
	PidDmxPersonalityDescription = knownPid(0x00E1)
	PidDmxStartAddress           = knownPid(0x00F0)
	PidSlotInfo                  = knownPid(0x0120)
	PidSlotDescription           = knownPid(0x0121)
	PidDefaultSlotValue          = knownPid(0x0122)
	PidSensorDefinition          = knownPid(0x0200)
	PidSensorValue               = knownPid(0x0201)
	PidRecordSensors             = knownPid(0x0202)
	PidDeviceHours               = knownPid(0x0400)
	PidDevicePowerCycles         = knownPid(0x0405)
	PidDisplayInvert             = knownPid(0x0501)
	PidDisplayLevel              = knownPid(0x0502)
	PidPanInvert                 = knownPid(0x0600)
	PidTiltInvert                = knownPid(0x0601)
	PidPanTiltSwap               = knownPid(0x0602)
	PidRealTimeClock             = knownPid(0x0603)
	PidIdentifyDevice            = knownPid(0x1000)
	PidResetDevice               = knownPid(0x1001)
	PidPowerState                = knownPid(0x1010)
	PidPerformSelfTest           = knownPid(0x1020)
	PidSelfTestDescription       = knownPid(0x1021)
	PidPresetPlayback            = knownPid(0x1031)
	PidStatusMessages            = knownPid(0x0030)
	PidStatusIdDescription       = knownPid(0x0031)
	PidCommsStatus               = knownPid(0x0015)
	PidLampState                 = knownPid(0x0701)
	PidLampOnMode                = knownPid(0x0702)
	PidLampStrikes               = knownPid(0x0703)
	PidLampHours                 = knownPid(0x0704)
)

var pidNames = buildPidNames()

func buildPidNames() map[uint16]string {
	named := []struct {
		pid  ParameterId
		name string
	}{
		{PidDiscUniqueBranch, "DISC_UNIQUE_BRANCH"},
		{PidDiscMute, "DISC_MUTE"},
		{PidDiscUnMute, "DISC_UN_MUTE"},
		{PidSupportedParameters, "SUPPORTED_PARAMETERS"},
		{PidParameterDescription, "PARAMETER_DESCRIPTION"},
		{PidDeviceInfo, "DEVICE_INFO"},
		{PidProductDetailIdList, "PRODUCT_DETAIL_ID_LIST"},
		{PidDeviceModelDescription, "DEVICE_MODEL_DESCRIPTION"},
		{PidManufacturerLabel, "MANUFACTURER_LABEL"},
		{PidDeviceLabel, "DEVICE_LABEL"},
		{PidLanguageCapabilities, "LANGUAGE_CAPABILITIES"},
		{PidLanguage, "LANGUAGE"},
		{PidSoftwareVersionLabel, "SOFTWARE_VERSION_LABEL"},
		{PidBootSoftwareVersionId, "BOOT_SOFTWARE_VERSION_ID"},
		{PidBootSoftwareVersionLabel, "BOOT_SOFTWARE_VERSION_LABEL"},
		{PidDmxPersonality, "DMX_PERSONALITY"},
		{PidDmxPersonalityDescription, "DMX_PERSONALITY_DESCRIPTION"},
		{PidDmxStartAddress, "DMX_START_ADDRESS"},
		{PidSlotInfo, "SLOT_INFO"},
		{PidSlotDescription, "SLOT_DESCRIPTION"},
		{PidDefaultSlotValue, "DEFAULT_SLOT_VALUE"},
		{PidSensorDefinition, "SENSOR_DEFINITION"},
		{PidSensorValue, "SENSOR_VALUE"},
		{PidRecordSensors, "RECORD_SENSORS"},
		{PidDeviceHours, "DEVICE_HOURS"},
		{PidDevicePowerCycles, "DEVICE_POWER_CYCLES"},
		{PidDisplayInvert, "DISPLAY_INVERT"},
		{PidDisplayLevel, "DISPLAY_LEVEL"},
		{PidPanInvert, "PAN_INVERT"},
		{PidTiltInvert, "TILT_INVERT"},
		{PidPanTiltSwap, "PAN_TILT_SWAP"},
		{PidRealTimeClock, "REAL_TIME_CLOCK"},
		{PidIdentifyDevice, "IDENTIFY_DEVICE"},
		{PidResetDevice, "RESET_DEVICE"},
		{PidPowerState, "POWER_STATE"},
		{PidPerformSelfTest, "PERFORM_SELF_TEST"},
		{PidSelfTestDescription, "SELF_TEST_DESCRIPTION"},
		{PidPresetPlayback, "PRESET_PLAYBACK"},
		{PidStatusMessages, "STATUS_MESSAGES"},
		{PidStatusIdDescription, "STATUS_ID_DESCRIPTION"},
		{PidCommsStatus, "COMMS_STATUS"},
		{PidLampState, "LAMP_STATE"},
		{PidLampOnMode, "LAMP_ON_MODE"},
		{PidLampStrikes, "LAMP_STRIKES"},
		{PidLampHours, "LAMP_HOURS"},
	}
	names := make(map[uint16]string, len(named))
	for _, n := range named {
		names[n.pid.code] = n.name
	}
	return names
}

var pidByName = buildPidByName()

func buildPidByName() map[string]uint16 {
	byName := make(map[string]uint16, len(pidNames))
	for code, name := range pidNames {
		byName[name] = code
	}
	return byName
}

// LookupPid resolves a parameter's canonical name (e.g. "IDENTIFY_DEVICE")
// to its ParameterId.
func LookupPid(name string) (ParameterId, bool) {
	code, ok := pidByName[name]
	if !ok {
		return ParameterId{}, false
	}
	return knownPid(code), true
}

func knownPid(code uint16) ParameterId {
	return ParameterId{known: true, code: code}
}

// PidUnknown wraps any wire value, returning the known PID for codes this
// library names and an unknown one otherwise. E1.20 reserves 0x8000-0xFFDF
// for manufacturer-specific PIDs (see IsManufacturerSpecific); values in
// that range and any
// other unrecognized value both decode the same way here, since this
// library is total over PID without distinguishing "reserved standard"
// from "manufacturer-specific" -- both carry their raw PDL bytes.
func PidUnknown(code uint16) ParameterId {
	if _, ok := pidNames[code]; ok {
		return knownPid(code)
	}
	return ParameterId{known: false, code: code}
}

// IsUnknown reports whether the PID falls outside the known set.
func (p ParameterId) IsUnknown() bool {
	return !p.known
}

// IsManufacturerSpecific reports whether the PID lies in E1.20's
// manufacturer-specific range (0x8000-0xFFDF).
func (p ParameterId) IsManufacturerSpecific() bool {
	return p.code >= 0x8000 && p.code <= 0xFFDF
}

// Code returns the raw 16-bit wire value.
func (p ParameterId) Code() uint16 {
	return p.code
}

func (p ParameterId) String() string {
	if name, ok := pidNames[p.code]; ok {
		return name
	}
	if p.IsManufacturerSpecific() {
		return fmt.Sprintf("ManufacturerSpecific(0x%04X)", p.code)
	}
	return fmt.Sprintf("Unknown(0x%04X)", p.code)
}

// Encode returns the 2-byte big-endian wire value.
func (p ParameterId) Encode() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, p.code)
	return buf
}

// DecodePid is a total conversion over all 16-bit wire values.
func DecodePid(b []byte) ParameterId {
	return PidUnknown(binary.BigEndian.Uint16(b))
}
