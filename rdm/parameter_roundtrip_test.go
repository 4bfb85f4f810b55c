package rdm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Each case builds a RequestParameter, wraps it in an RdmRequest, encodes
// it, decodes the frame back, and dispatches the payload through the
// registry to confirm the typed value it round-trips to equals the
// original.
func TestRequestParameterRoundTrip(t *testing.T) {
	dest := DeviceUID{ManufacturerID: 0x4859, DeviceID: 0x00000001}
	src := DeviceUID{ManufacturerID: 0x0000, DeviceID: 0x00000000}

	cases := []struct {
		name  string
		param RequestParameter
	}{
		{"DiscUniqueBranch", DiscUniqueBranchRequest{LowerBound: AllDevicesID, UpperBound: AllDevicesID}},
		{"DiscMute", DiscMuteRequest{}},
		{"DiscUnMute", DiscUnMuteRequest{}},
		{"GetSupportedParameters", GetSupportedParametersRequest{}},
		{"GetParameterDescription", GetParameterDescriptionRequest{Pid: PidUnknown(0x8080)}},
		{"GetDeviceInfo", GetDeviceInfoRequest{}},
		{"GetProductDetailIdList", GetProductDetailIdListRequest{}},
		{"GetDeviceModelDescription", GetDeviceModelDescriptionRequest{}},
		{"GetManufacturerLabel", GetManufacturerLabelRequest{}},
		{"GetDeviceLabel", GetDeviceLabelRequest{}},
		{"SetDeviceLabel", SetDeviceLabelRequest{Label: "Stage Left Par"}},
		{"GetLanguageCapabilities", GetLanguageCapabilitiesRequest{}},
		{"GetLanguage", GetLanguageRequest{}},
		{"SetLanguage", SetLanguageRequest{Language: "en"}},
		{"GetSoftwareVersionLabel", GetSoftwareVersionLabelRequest{}},
		{"GetBootSoftwareVersionId", GetBootSoftwareVersionIdRequest{}},
		{"GetBootSoftwareVersionLabel", GetBootSoftwareVersionLabelRequest{}},
		{"GetDmxPersonality", GetDmxPersonalityRequest{}},
		{"SetDmxPersonality", SetDmxPersonalityRequest{Personality: 2}},
		{"GetDmxPersonalityDescription", GetDmxPersonalityDescriptionRequest{Personality: 1}},
		{"GetDmxStartAddress", GetDmxStartAddressRequest{}},
		{"SetDmxStartAddress", SetDmxStartAddressRequest{StartAddress: 512}},
		{"GetSlotInfo", GetSlotInfoRequest{}},
		{"GetSlotDescription", GetSlotDescriptionRequest{SlotOffset: 0}},
		{"GetDefaultSlotValue", GetDefaultSlotValueRequest{}},
		{"GetSensorDefinition", GetSensorDefinitionRequest{SensorNumber: 0}},
		{"GetSensorValue", GetSensorValueRequest{SensorNumber: 0}},
		{"SetSensorValue", SetSensorValueRequest{SensorNumber: 0}},
		{"RecordSensors", RecordSensorsRequest{SensorNumber: 0xFF}},
		{"GetDeviceHours", GetDeviceHoursRequest{}},
		{"SetDeviceHours", SetDeviceHoursRequest{Hours: 1000}},
		{"GetDevicePowerCycles", GetDevicePowerCyclesRequest{}},
		{"SetDevicePowerCycles", SetDevicePowerCyclesRequest{Count: 42}},
		{"GetDisplayInvert", GetDisplayInvertRequest{}},
		{"SetDisplayInvert", SetDisplayInvertRequest{Mode: DisplayInvertAuto}},
		{"GetDisplayLevel", GetDisplayLevelRequest{}},
		{"SetDisplayLevel", SetDisplayLevelRequest{Level: 128}},
		{"GetPanInvert", GetPanInvertRequest{}},
		{"SetPanInvert", SetPanInvertRequest{Invert: true}},
		{"GetTiltInvert", GetTiltInvertRequest{}},
		{"SetTiltInvert", SetTiltInvertRequest{Invert: false}},
		{"GetPanTiltSwap", GetPanTiltSwapRequest{}},
		{"SetPanTiltSwap", SetPanTiltSwapRequest{Swap: true}},
		{"GetRealTimeClock", GetRealTimeClockRequest{}},
		{"SetRealTimeClock", SetRealTimeClockRequest{Value: RealTimeClockValue{Year: 2026, Month: 7, Day: 31, Hour: 12, Minute: 0, Second: 0}}},
		{"GetIdentifyDevice", GetIdentifyDeviceRequest{}},
		{"ResetDevice", ResetDeviceRequest{Mode: ResetModeWarm}},
		{"GetPowerState", GetPowerStateRequest{}},
		{"SetPowerState", SetPowerStateRequest{State: PowerStateNormal}},
		{"PerformSelfTest", PerformSelfTestRequest{TestId: SelfTestIdAllTests}},
		{"GetSelfTestDescription", GetSelfTestDescriptionRequest{TestId: SelfTestIdAllTests}},
		{"GetPresetPlayback", GetPresetPlaybackRequest{}},
		{"SetPresetPlayback", SetPresetPlaybackRequest{Mode: PresetPlaybackScene, Level: 255}},
		{"GetStatusMessages", GetStatusMessagesRequest{Type: StatusTypeAdvisory}},
		{"GetStatusIdDescription", GetStatusIdDescriptionRequest{StatusMessageId: 0x0001}},
		{"GetCommsStatus", GetCommsStatusRequest{}},
		{"SetCommsStatus", SetCommsStatusRequest{}},
		{"GetLampState", GetLampStateRequest{}},
		{"GetLampOnMode", GetLampOnModeRequest{}},
		{"SetLampOnMode", SetLampOnModeRequest{Mode: LampOnModeDMX}},
		{"GetLampStrikes", GetLampStrikesRequest{}},
		{"SetLampStrikes", SetLampStrikesRequest{Count: 10}},
		{"GetLampHours", GetLampHoursRequest{}},
		{"SetLampHours", SetLampHoursRequest{Hours: 500}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := RdmRequest{
				Destination: dest,
				Source:      src,
				Transaction: 7,
				PortId:      1,
				SubDevice:   RootDevice,
				Parameter:   tc.param,
			}

			encoded, err := req.Encode()
			require.NoError(t, err)

			decoded, err := DecodeRequest(encoded)
			require.NoError(t, err)

			got, err := dispatch(tc.param.PID(), tc.param.RequestCommandClass(), decoded.Parameter.Encode())
			require.NoError(t, err)
			require.Equal(t, tc.param, got)
		})
	}
}

// Each case builds a response ResponseData, wraps it in a Frame, encodes
// it, decodes the frame back, and confirms the ResponseData round-trips.
func TestResponseDataRoundTrip(t *testing.T) {
	dest := DeviceUID{ManufacturerID: 0x0000, DeviceID: 0x00000000}
	src := DeviceUID{ManufacturerID: 0x4859, DeviceID: 0x00000001}

	cases := []struct {
		name string
		pid  ParameterId
		data ResponseData
	}{
		{"DiscMute", PidDiscMute, AckData{Value: DiscMuteResponse{ControlField: 0x0001}}},
		{"DiscMuteWithBinding", PidDiscMute, AckData{Value: DiscMuteResponse{ControlField: 0x0001, BindingUID: &DeviceUID{ManufacturerID: 0x4859, DeviceID: 0x00000002}}}},
		{"DiscUnMute", PidDiscUnMute, AckData{Value: DiscUnMuteResponse{ControlField: 0x0000}}},
		{"GetSupportedParameters", PidSupportedParameters, AckData{Value: GetSupportedParametersResponse{Pids: []ParameterId{PidDeviceLabel, PidLampState}}}},
		{"GetDeviceModelDescription", PidDeviceModelDescription, AckData{Value: GetDeviceModelDescriptionResponse{Description: "Par64 RGBW"}}},
		{"GetManufacturerLabel", PidManufacturerLabel, AckData{Value: GetManufacturerLabelResponse{Label: "Example Lighting Co"}}},
		{"GetDeviceLabel", PidDeviceLabel, AckData{Value: GetDeviceLabelResponse{Label: "Stage Left Par"}}},
		{"GetLanguageCapabilities", PidLanguageCapabilities, AckData{Value: GetLanguageCapabilitiesResponse{Languages: []string{"en", "fr"}}}},
		{"GetLanguage", PidLanguage, AckData{Value: GetLanguageResponse{Language: "en"}}},
		{"GetSoftwareVersionLabel", PidSoftwareVersionLabel, AckData{Value: GetSoftwareVersionLabelResponse{Label: "1.2.3"}}},
		{"GetBootSoftwareVersionId", PidBootSoftwareVersionId, AckData{Value: GetBootSoftwareVersionIdResponse{VersionId: 0x00010203}}},
		{"GetBootSoftwareVersionLabel", PidBootSoftwareVersionLabel, AckData{Value: GetBootSoftwareVersionLabelResponse{Label: "boot-1.0"}}},
		{"GetDmxPersonality", PidDmxPersonality, AckData{Value: GetDmxPersonalityResponse{CurrentPersonality: 1, PersonalityCount: 4}}},
		{"GetDmxPersonalityDescription", PidDmxPersonalityDescription, AckData{Value: GetDmxPersonalityDescriptionResponse{Personality: 1, SlotsRequired: 4, Description: "RGBW basic"}}},
		{"GetDmxStartAddress", PidDmxStartAddress, AckData{Value: GetDmxStartAddressResponse{StartAddress: 1}}},
		{"GetSlotInfo", PidSlotInfo, AckData{Value: GetSlotInfoResponse{Slots: []SlotInfoRecord{
			{SlotOffset: 0, Type: SlotTypePrimary, Id: SlotIdIntensity},
			{SlotOffset: 1, Type: SlotTypePrimary, Id: SlotIdPan},
		}}}},
		{"GetSlotDescription", PidSlotDescription, AckData{Value: GetSlotDescriptionResponse{SlotOffset: 0, Description: "Red"}}},
		{"GetDefaultSlotValue", PidDefaultSlotValue, AckData{Value: GetDefaultSlotValueResponse{Slots: []DefaultSlotValueRecord{
			{SlotOffset: 0, DefaultValue: 0}, {SlotOffset: 1, DefaultValue: 255},
		}}}},
		{"GetDeviceHours", PidDeviceHours, AckData{Value: GetDeviceHoursResponse{Hours: 1000}}},
		{"GetDevicePowerCycles", PidDevicePowerCycles, AckData{Value: GetDevicePowerCyclesResponse{Count: 42}}},
		{"GetDisplayInvert", PidDisplayInvert, AckData{Value: GetDisplayInvertResponse{Mode: DisplayInvertAuto}}},
		{"GetDisplayLevel", PidDisplayLevel, AckData{Value: GetDisplayLevelResponse{Level: 128}}},
		{"GetPanInvert", PidPanInvert, AckData{Value: GetPanInvertResponse{Invert: true}}},
		{"GetTiltInvert", PidTiltInvert, AckData{Value: GetTiltInvertResponse{Invert: false}}},
		{"GetPanTiltSwap", PidPanTiltSwap, AckData{Value: GetPanTiltSwapResponse{Swap: true}}},
		{"GetRealTimeClock", PidRealTimeClock, AckData{Value: GetRealTimeClockResponse{Value: RealTimeClockValue{Year: 2026, Month: 7, Day: 31, Hour: 12, Minute: 0, Second: 0}}}},
		{"GetIdentifyDevice", PidIdentifyDevice, AckData{Value: GetIdentifyDeviceResponse{Value: true}}},
		{"GetPowerState", PidPowerState, AckData{Value: GetPowerStateResponse{State: PowerStateNormal}}},
		{"GetSelfTestDescription", PidSelfTestDescription, AckData{Value: GetSelfTestDescriptionResponse{TestId: SelfTestIdAllTests, Description: "Full self test"}}},
		{"GetPresetPlayback", PidPresetPlayback, AckData{Value: GetPresetPlaybackResponse{Mode: PresetPlaybackScene, Level: 255}}},
		{"GetStatusMessages", PidStatusMessages, AckData{Value: GetStatusMessagesResponse{Messages: []StatusMessage{
			{SubDevice: RootDevice, Type: StatusTypeAdvisory, StatusMessageId: 0x0001, DataValue1: 10, DataValue2: -5},
		}}}},
		{"GetStatusIdDescription", PidStatusIdDescription, AckData{Value: GetStatusIdDescriptionResponse{Description: "Lamp failure"}}},
		{"GetCommsStatus", PidCommsStatus, AckData{Value: GetCommsStatusResponse{ShortMessageCount: 1, LengthMismatchCount: 2, ChecksumFailCount: 3}}},
		{"GetLampState", PidLampState, AckData{Value: GetLampStateResponse{State: LampStateOn}}},
		{"GetLampOnMode", PidLampOnMode, AckData{Value: GetLampOnModeResponse{Mode: LampOnModeDMX}}},
		{"GetLampStrikes", PidLampStrikes, AckData{Value: GetLampStrikesResponse{Count: 10}}},
		{"GetLampHours", PidLampHours, AckData{Value: GetLampHoursResponse{Hours: 500}}},
		{"AckTimer", PidDeviceInfo, AckTimerData{EstimatedResponseTime: 200}},
		{"Nack", PidDeviceInfo, NackData{Reason: NackReasonUnknownPid}},
		{"AckOverflow", PidSlotInfo, AckOverflowData{Raw: []byte{0x01, 0x02, 0x03}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			responseType := ResponseTypeAck
			switch tc.data.(type) {
			case AckTimerData:
				responseType = ResponseTypeAckTimer
			case NackData:
				responseType = ResponseTypeNack
			case AckOverflowData:
				responseType = ResponseTypeAckOverflow
			}

			commandClass := GetCommandResponse
			if tc.pid == PidDiscMute || tc.pid == PidDiscUnMute {
				commandClass = DiscoveryCommandResponse
			}

			frame := Frame{
				Destination:  dest,
				Source:       src,
				Transaction:  3,
				ResponseType: responseType,
				SubDevice:    RootDevice,
				CommandClass: commandClass,
				PID:          tc.pid,
				Data:         tc.data,
			}

			encoded, err := frame.Encode()
			require.NoError(t, err)

			got, err := Decode(encoded)
			require.NoError(t, err)

			decodedFrame, ok := got.(*Frame)
			require.True(t, ok)
			require.Equal(t, tc.data, decodedFrame.Data)
		})
	}
}
