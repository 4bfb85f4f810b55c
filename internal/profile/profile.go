// Package profile loads YAML device profiles describing a simulated RDM
// responder: its DEVICE_INFO record, personalities, and sensors.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mpowell90/dmx512-rdm-protocol/rdm"
)

// Profile is the YAML-decoded shape of one simulated device.
type Profile struct {
	Manufacturer         string              `yaml:"manufacturer"`
	Model                string              `yaml:"model"`
	DeviceUID            string              `yaml:"device_uid"`
	Category             string              `yaml:"category"`
	SoftwareVersionId    uint32              `yaml:"software_version_id"`
	SoftwareVersionLabel string              `yaml:"software_version_label"`
	Footprint            uint16              `yaml:"footprint"`
	Personalities        []PersonalityEntry  `yaml:"personalities"`
	Sensors              []SensorEntry       `yaml:"sensors"`
}

// PersonalityEntry describes one DMX personality a simulated device can
// be set to.
type PersonalityEntry struct {
	SlotsRequired uint16 `yaml:"slots_required"`
	Description   string `yaml:"description"`
}

// SensorEntry describes one onboard sensor a simulated device reports.
type SensorEntry struct {
	Type        string `yaml:"type"`
	Unit        string `yaml:"unit"`
	Description string `yaml:"description"`
	RangeMin    int16  `yaml:"range_min"`
	RangeMax    int16  `yaml:"range_max"`
}

// Load reads and parses a single profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile: parse %s: %w", path, err)
	}
	if p.DeviceUID == "" {
		return nil, fmt.Errorf("profile: %s: device_uid is required", path)
	}
	if _, err := rdm.ParseDeviceUID(p.DeviceUID); err != nil {
		return nil, fmt.Errorf("profile: %s: %w", path, err)
	}
	return &p, nil
}

// LoadDir reads every *.yaml/*.yml file directly under dir and returns
// them keyed by device UID string.
func LoadDir(dir string) (map[string]*Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("profile: read dir %s: %w", dir, err)
	}

	profiles := make(map[string]*Profile)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		p, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		profiles[p.DeviceUID] = p
	}
	return profiles, nil
}

// DeviceInfo builds the DEVICE_INFO response this profile would report.
func (p *Profile) DeviceInfo() rdm.GetDeviceInfoResponse {
	var personalityCount byte
	var footprint uint16
	if len(p.Personalities) > 0 {
		personalityCount = byte(len(p.Personalities))
		footprint = p.Personalities[0].SlotsRequired
	} else {
		footprint = p.Footprint
	}

	return rdm.GetDeviceInfoResponse{
		ProtocolVersionMajor: 1,
		ProtocolVersionMinor: 0,
		ModelId:              0,
		ProductCategory:      decodeCategory(p.Category),
		SoftwareVersionId:    p.SoftwareVersionId,
		DmxFootprint:         footprint,
		CurrentPersonality:   1,
		PersonalityCount:     personalityCount,
		DmxStartAddress:      1,
		SubDeviceCount:       0,
		SensorCount:          byte(len(p.Sensors)),
	}
}

// Personality returns the 1-indexed personality description response for
// number n.
func (p *Profile) Personality(n byte) (rdm.GetDmxPersonalityDescriptionResponse, error) {
	if n == 0 || int(n) > len(p.Personalities) {
		return rdm.GetDmxPersonalityDescriptionResponse{}, fmt.Errorf("profile: personality %d out of range", n)
	}
	entry := p.Personalities[n-1]
	return rdm.GetDmxPersonalityDescriptionResponse{
		Personality:   n,
		SlotsRequired: entry.SlotsRequired,
		Description:   entry.Description,
	}, nil
}

// Sensor returns the 0-indexed sensor definition response for number n.
func (p *Profile) Sensor(n byte) (rdm.GetSensorDefinitionResponse, error) {
	if int(n) >= len(p.Sensors) {
		return rdm.GetSensorDefinitionResponse{}, fmt.Errorf("profile: sensor %d out of range", n)
	}
	entry := p.Sensors[n]
	return rdm.GetSensorDefinitionResponse{
		SensorNumber:         n,
		Type:                 decodeSensorType(entry.Type),
		Unit:                 decodeSensorUnit(entry.Unit),
		RangeMinimumValue:    entry.RangeMin,
		RangeMaximumValue:    entry.RangeMax,
		NormalMinimumValue:   entry.RangeMin,
		NormalMaximumValue:   entry.RangeMax,
		RecordedValueSupport: 0,
		Description:         entry.Description,
	}, nil
}

func decodeCategory(name string) rdm.ProductCategory {
	known := map[string]rdm.ProductCategory{
		"fixture":       rdm.ProductCategoryFixture,
		"fixture_fixed": rdm.ProductCategoryFixtureFixed,
		"dimmer":        rdm.ProductCategoryDimmer,
		"control":       rdm.ProductCategoryControl,
		"data":          rdm.ProductCategoryData,
		"power":         rdm.ProductCategoryPower,
	}
	if c, ok := known[strings.ToLower(name)]; ok {
		return c
	}
	return rdm.ProductCategoryNotDeclared
}

func decodeSensorType(name string) rdm.SensorType {
	known := map[string]rdm.SensorType{
		"temperature": rdm.SensorTypeTemperature,
		"voltage":     rdm.SensorTypeVoltage,
		"current":     rdm.SensorTypeCurrent,
		"frequency":   rdm.SensorTypeFrequency,
	}
	if t, ok := known[strings.ToLower(name)]; ok {
		return t
	}
	return rdm.DecodeSensorType(0xFF)
}

func decodeSensorUnit(name string) rdm.SensorUnit {
	known := map[string]rdm.SensorUnit{
		"centigrade": rdm.SensorUnitCentigrade,
		"volts_dc":   rdm.SensorUnitVoltsDC,
		"ampere_dc":  rdm.SensorUnitAmpereDC,
		"hertz":      rdm.SensorUnitHertz,
		"none":       rdm.SensorUnitNone,
	}
	if u, ok := known[strings.ToLower(name)]; ok {
		return u
	}
	return rdm.DecodeSensorUnit(0xFF)
}
