package rdm

import "fmt"

// SensorType is the open-ended set of sensor kinds from ANSI E1.20 Table
// A-13.
type SensorType struct {
	known bool
	code  byte
}

var (
	SensorTypeTemperature = knownSensorType(0x00)
	SensorTypeVoltage     = knownSensorType(0x01)
	SensorTypeCurrent     = knownSensorType(0x02)
	SensorTypeFrequency   = knownSensorType(0x03)
	SensorTypeResistance  = knownSensorType(0x04)
	SensorTypePower       = knownSensorType(0x05)
	SensorTypeMass        = knownSensorType(0x06)
	SensorTypeLength      = knownSensorType(0x07)
	SensorTypeArea        = knownSensorType(0x08)
	SensorTypeVolume      = knownSensorType(0x09)
	SensorTypeDensity     = knownSensorType(0x0A)
	SensorTypeVelocity    = knownSensorType(0x0B)
	SensorTypeAcceleration = knownSensorType(0x0C)
	SensorTypeHumidity    = knownSensorType(0x0D)
	SensorTypeCounter16Bit = knownSensorType(0x0E)
	SensorTypeOther       = knownSensorType(0x7F)
)

var sensorTypeNames = map[byte]string{
	0x00: "TEMPERATURE",
	0x01: "VOLTAGE",
	0x02: "CURRENT",
	0x03: "FREQUENCY",
	0x04: "RESISTANCE",
	0x05: "POWER",
	0x06: "MASS",
	0x07: "LENGTH",
	0x08: "AREA",
	0x09: "VOLUME",
	0x0A: "DENSITY",
	0x0B: "VELOCITY",
	0x0C: "ACCELERATION",
	0x0D: "HUMIDITY",
	0x0E: "COUNTER_16BIT",
	0x7F: "OTHER",
}

func knownSensorType(code byte) SensorType { return SensorType{known: true, code: code} }

// SensorTypeUnknown is a total conversion over all byte values.
func SensorTypeUnknown(code byte) SensorType {
	if _, ok := sensorTypeNames[code]; ok {
		return knownSensorType(code)
	}
	return SensorType{known: false, code: code}
}

func (s SensorType) IsUnknown() bool { return !s.known }
func (s SensorType) Code() byte      { return s.code }
func (s SensorType) String() string {
	if name, ok := sensorTypeNames[s.code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02X)", s.code)
}
func (s SensorType) Encode() byte         { return s.code }
func DecodeSensorType(b byte) SensorType  { return SensorTypeUnknown(b) }

// SensorUnit is the open-ended set of measurement units from ANSI E1.20
// Table A-14.
type SensorUnit struct {
	known bool
	code  byte
}

var (
	SensorUnitNone         = knownSensorUnit(0x00)
	SensorUnitCentigrade   = knownSensorUnit(0x01)
	SensorUnitVoltsDC      = knownSensorUnit(0x02)
	SensorUnitVoltsACPeak  = knownSensorUnit(0x03)
	SensorUnitVoltsACRMS   = knownSensorUnit(0x04)
	SensorUnitAmpereDC     = knownSensorUnit(0x05)
	SensorUnitAmpereACPeak = knownSensorUnit(0x06)
	SensorUnitAmpereACRMS  = knownSensorUnit(0x07)
	SensorUnitHertz        = knownSensorUnit(0x08)
	SensorUnitOhm          = knownSensorUnit(0x09)
	SensorUnitWatt         = knownSensorUnit(0x0A)
	SensorUnitKilogram     = knownSensorUnit(0x0B)
	SensorUnitMeters       = knownSensorUnit(0x0C)
	SensorUnitPercent      = knownSensorUnit(0x0D)
)

var sensorUnitNames = map[byte]string{
	0x00: "NONE",
	0x01: "CENTIGRADE",
	0x02: "VOLTS_DC",
	0x03: "VOLTS_AC_PEAK",
	0x04: "VOLTS_AC_RMS",
	0x05: "AMPERE_DC",
	0x06: "AMPERE_AC_PEAK",
	0x07: "AMPERE_AC_RMS",
	0x08: "HERTZ",
	0x09: "OHM",
	0x0A: "WATT",
	0x0B: "KILOGRAM",
	0x0C: "METERS",
	0x0D: "PERCENT",
}

func knownSensorUnit(code byte) SensorUnit { return SensorUnit{known: true, code: code} }

// SensorUnitUnknown is a total conversion over all byte values.
func SensorUnitUnknown(code byte) SensorUnit {
	if _, ok := sensorUnitNames[code]; ok {
		return knownSensorUnit(code)
	}
	return SensorUnit{known: false, code: code}
}

func (u SensorUnit) IsUnknown() bool { return !u.known }
func (u SensorUnit) Code() byte      { return u.code }
func (u SensorUnit) String() string {
	if name, ok := sensorUnitNames[u.code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02X)", u.code)
}
func (u SensorUnit) Encode() byte        { return u.code }
func DecodeSensorUnit(b byte) SensorUnit { return SensorUnitUnknown(b) }
