package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpowell90/dmx512-rdm-protocol/rdm"
)

const sampleYAML = `
manufacturer: Example Lighting Co
model: Par64 RGBW
device_uid: "4859:00000001"
category: fixture
software_version_id: 16909060
software_version_label: "1.2.3"
personalities:
  - slots_required: 4
    description: "RGBW basic"
  - slots_required: 6
    description: "RGBW + strobe + dimmer curve"
sensors:
  - type: temperature
    unit: centigrade
    description: "PCB temperature"
    range_min: -20
    range_max: 80
`

func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "par64.yaml")

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Example Lighting Co", p.Manufacturer)
	assert.Equal(t, "4859:00000001", p.DeviceUID)
	assert.Len(t, p.Personalities, 2)
	assert.Len(t, p.Sensors, 1)
}

func TestLoadRejectsMissingDeviceUID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("manufacturer: X\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedDeviceUID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("device_uid: not-a-uid\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "par64.yaml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	profiles, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	p, ok := profiles["4859:00000001"]
	require.True(t, ok)
	assert.Equal(t, "Par64 RGBW", p.Model)
}

func TestProfileDeviceInfo(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "par64.yaml")
	p, err := Load(path)
	require.NoError(t, err)

	info := p.DeviceInfo()
	assert.Equal(t, byte(2), info.PersonalityCount)
	assert.Equal(t, uint16(4), info.DmxFootprint)
	assert.Equal(t, byte(1), info.SensorCount)
	assert.Equal(t, rdm.ProductCategoryFixture, info.ProductCategory)
}

func TestProfilePersonality(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "par64.yaml")
	p, err := Load(path)
	require.NoError(t, err)

	got, err := p.Personality(2)
	require.NoError(t, err)
	assert.Equal(t, uint16(6), got.SlotsRequired)
	assert.Equal(t, "RGBW + strobe + dimmer curve", got.Description)

	_, err = p.Personality(0)
	assert.Error(t, err)
	_, err = p.Personality(3)
	assert.Error(t, err)
}

func TestProfileSensor(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "par64.yaml")
	p, err := Load(path)
	require.NoError(t, err)

	got, err := p.Sensor(0)
	require.NoError(t, err)
	assert.Equal(t, rdm.SensorTypeTemperature, got.Type)
	assert.Equal(t, rdm.SensorUnitCentigrade, got.Unit)
	assert.Equal(t, int16(-20), got.RangeMinimumValue)

	_, err = p.Sensor(1)
	assert.Error(t, err)
}
