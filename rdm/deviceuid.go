package rdm

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// DeviceUID is a 48-bit RDM device identifier: a 16-bit ESTA manufacturer
// id and a 32-bit device id, unique within the manufacturer's range.
type DeviceUID struct {
	ManufacturerID uint16
	DeviceID       uint32
}

// AllDevicesID broadcasts to every responder on the bus.
var AllDevicesID = DeviceUID{ManufacturerID: 0xFFFF, DeviceID: 0xFFFFFFFF}

// AllDevicesOfManufacturerID broadcasts to every responder belonging to
// the given manufacturer.
func AllDevicesOfManufacturerID(manufacturerID uint16) DeviceUID {
	return DeviceUID{ManufacturerID: manufacturerID, DeviceID: 0xFFFFFFFF}
}

// IsBroadcast reports whether uid addresses more than one device.
func (uid DeviceUID) IsBroadcast() bool {
	return uid.DeviceID == 0xFFFFFFFF
}

// String renders the conventional MMMM:DDDDDDDD hex form.
func (uid DeviceUID) String() string {
	return fmt.Sprintf("%04X:%08X", uid.ManufacturerID, uid.DeviceID)
}

// Encode returns the 6-byte big-endian wire form.
func (uid DeviceUID) Encode() []byte {
	buf := make([]byte, 6)
	binary.BigEndian.PutUint16(buf[0:2], uid.ManufacturerID)
	binary.BigEndian.PutUint32(buf[2:6], uid.DeviceID)
	return buf
}

// ParseDeviceUID parses the conventional MMMM:DDDDDDDD hex form produced
// by String.
func ParseDeviceUID(s string) (DeviceUID, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return DeviceUID{}, fmt.Errorf("device uid %q: want MMMM:DDDDDDDD", s)
	}
	manufacturerID, err := strconv.ParseUint(parts[0], 16, 16)
	if err != nil {
		return DeviceUID{}, fmt.Errorf("device uid %q: manufacturer id: %w", s, err)
	}
	deviceID, err := strconv.ParseUint(parts[1], 16, 32)
	if err != nil {
		return DeviceUID{}, fmt.Errorf("device uid %q: device id: %w", s, err)
	}
	return DeviceUID{ManufacturerID: uint16(manufacturerID), DeviceID: uint32(deviceID)}, nil
}

// DecodeDeviceUID reads a 6-byte big-endian device id.
func DecodeDeviceUID(data []byte) (DeviceUID, error) {
	if len(data) != 6 {
		return DeviceUID{}, newError(ErrInvalidParameterDataLength, fmt.Sprintf("device uid needs 6 bytes, got %d", len(data)))
	}
	return DeviceUID{
		ManufacturerID: binary.BigEndian.Uint16(data[0:2]),
		DeviceID:       binary.BigEndian.Uint32(data[2:6]),
	}, nil
}
