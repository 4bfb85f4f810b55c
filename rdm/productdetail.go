package rdm

import (
	"encoding/binary"
	"fmt"
)

// ProductDetail is the open-ended set of detail codes from ANSI E1.20
// Table A-7, refining a ProductCategory (e.g. lamp type, scanner type).
type ProductDetail struct {
	known bool
	code  uint16
}

var (
	ProductDetailNotDeclared    = knownProductDetail(0x0000)
	ProductDetailArc            = knownProductDetail(0x0001)
	ProductDetailMetalHalide    = knownProductDetail(0x0002)
	ProductDetailIncandescent   = knownProductDetail(0x0003)
	ProductDetailLED            = knownProductDetail(0x0004)
	ProductDetailFluorescent    = knownProductDetail(0x0005)
	ProductDetailColorscroller  = knownProductDetail(0x0010)
	ProductDetailMirrorBallRotator = knownProductDetail(0x0011)
	ProductDetailOtherRotator   = knownProductDetail(0x0012)
	ProductDetailBubbleGenerator = knownProductDetail(0x0013)
	ProductDetailStrobe         = knownProductDetail(0x0014)
	ProductDetailCamera         = knownProductDetail(0x0020)
	ProductDetailMonitor        = knownProductDetail(0x0021)
	ProductDetailFanType        = knownProductDetail(0x0060)
	ProductDetailNetworkHub     = knownProductDetail(0x0061)
	ProductDetailRelayESTA      = knownProductDetail(0x0062)
	ProductDetailBackup         = knownProductDetail(0x0080)
)

var productDetailNames = map[uint16]string{
	0x0000: "NOT_DECLARED",
	0x0001: "ARC",
	0x0002: "METAL_HALIDE",
	0x0003: "INCANDESCENT",
	0x0004: "LED",
	0x0005: "FLUORESCENT",
	0x0010: "COLORSCROLLER",
	0x0011: "MIRRORBALL_ROTATOR",
	0x0012: "OTHER_ROTATOR",
	0x0013: "BUBBLE_GENERATOR",
	0x0014: "STROBE",
	0x0020: "CAMERA",
	0x0021: "MONITOR",
	0x0060: "FAN_TYPE",
	0x0061: "NETWORK_HUB",
	0x0062: "RELAY_ESTA",
	0x0080: "BACKUP",
}

func knownProductDetail(code uint16) ProductDetail {
	return ProductDetail{known: true, code: code}
}

// ProductDetailUnknown is a total conversion over all wire values.
func ProductDetailUnknown(code uint16) ProductDetail {
	if _, ok := productDetailNames[code]; ok {
		return knownProductDetail(code)
	}
	return ProductDetail{known: false, code: code}
}

func (d ProductDetail) IsUnknown() bool { return !d.known }
func (d ProductDetail) Code() uint16    { return d.code }

func (d ProductDetail) String() string {
	if name, ok := productDetailNames[d.code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%04X)", d.code)
}

func (d ProductDetail) Encode() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, d.code)
	return buf
}

func DecodeProductDetail(b []byte) ProductDetail {
	return ProductDetailUnknown(binary.BigEndian.Uint16(b))
}
