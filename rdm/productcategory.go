package rdm

import (
	"encoding/binary"
	"fmt"
)

// ProductCategory is the open-ended set of device category codes from
// ANSI E1.20 Table A-6.
type ProductCategory struct {
	known bool
	code  uint16
}

var (
	ProductCategoryNotDeclared      = knownProductCategory(0x0000)
	ProductCategoryFixture          = knownProductCategory(0x0100)
	ProductCategoryFixtureFixed     = knownProductCategory(0x0101)
	ProductCategoryFixtureMovingYoke = knownProductCategory(0x0102)
	ProductCategoryFixtureMovingMirror = knownProductCategory(0x0103)
	ProductCategoryFixtureOther      = knownProductCategory(0x01FF)
	ProductCategoryFixtureAccessory = knownProductCategory(0x0200)
	ProductCategoryFixtureAccessoryColor = knownProductCategory(0x0201)
	ProductCategoryFixtureAccessoryYoke  = knownProductCategory(0x0202)
	ProductCategoryFixtureAccessoryMirror = knownProductCategory(0x0203)
	ProductCategoryFixtureAccessoryEffect = knownProductCategory(0x0204)
	ProductCategoryFixtureAccessoryBeam   = knownProductCategory(0x0205)
	ProductCategoryFixtureAccessoryOther  = knownProductCategory(0x02FF)
	ProductCategoryProjector        = knownProductCategory(0x0300)
	ProductCategoryAtmospheric      = knownProductCategory(0x0400)
	ProductCategoryDimmer           = knownProductCategory(0x0500)
	ProductCategoryPower            = knownProductCategory(0x0600)
	ProductCategoryScenic           = knownProductCategory(0x0700)
	ProductCategoryData             = knownProductCategory(0x0800)
	ProductCategoryDataDistribution = knownProductCategory(0x0801)
	ProductCategoryAV               = knownProductCategory(0x0900)
	ProductCategoryMonitor          = knownProductCategory(0x0A00)
	ProductCategoryControl          = knownProductCategory(0x0B00)
	ProductCategoryTest             = knownProductCategory(0x7E00)
	ProductCategoryOther            = knownProductCategory(0x7FFF)
)

var productCategoryNames = map[uint16]string{
	0x0000: "NOT_DECLARED",
	0x0100: "FIXTURE",
	0x0101: "FIXTURE_FIXED",
	0x0102: "FIXTURE_MOVING_YOKE",
	0x0103: "FIXTURE_MOVING_MIRROR",
	0x01FF: "FIXTURE_OTHER",
	0x0200: "FIXTURE_ACCESSORY",
	0x0201: "FIXTURE_ACCESSORY_COLOR",
	0x0202: "FIXTURE_ACCESSORY_YOKE",
	0x0203: "FIXTURE_ACCESSORY_MIRROR",
	0x0204: "FIXTURE_ACCESSORY_EFFECT",
	0x0205: "FIXTURE_ACCESSORY_BEAM",
	0x02FF: "FIXTURE_ACCESSORY_OTHER",
	0x0300: "PROJECTOR",
	0x0400: "ATMOSPHERIC",
	0x0500: "DIMMER",
	0x0600: "POWER",
	0x0700: "SCENIC",
	0x0800: "DATA",
	0x0801: "DATA_DISTRIBUTION",
	0x0900: "AV",
	0x0A00: "MONITOR",
	0x0B00: "CONTROL",
	0x7E00: "TEST",
	0x7FFF: "OTHER",
}

func knownProductCategory(code uint16) ProductCategory {
	return ProductCategory{known: true, code: code}
}

// ProductCategoryUnknown is a total conversion: it wraps any wire value
// this library does not name, known or not.
func ProductCategoryUnknown(code uint16) ProductCategory {
	if _, ok := productCategoryNames[code]; ok {
		return knownProductCategory(code)
	}
	return ProductCategory{known: false, code: code}
}

func (c ProductCategory) IsUnknown() bool { return !c.known }
func (c ProductCategory) Code() uint16    { return c.code }

func (c ProductCategory) String() string {
	if name, ok := productCategoryNames[c.code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%04X)", c.code)
}

func (c ProductCategory) Encode() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, c.code)
	return buf
}

// DecodeProductCategory is total over all 2^16 inputs.
func DecodeProductCategory(b []byte) ProductCategory {
	return ProductCategoryUnknown(binary.BigEndian.Uint16(b))
}
