package rdm

import "encoding/binary"

// GetDeviceInfoRequest carries no parameter data.
type GetDeviceInfoRequest struct{}

func (r GetDeviceInfoRequest) PID() ParameterId                  { return PidDeviceInfo }
func (r GetDeviceInfoRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetDeviceInfoRequest) Encode() []byte                    { return nil }

func decodeGetDeviceInfoRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDeviceInfo, data, 0); err != nil {
		return nil, err
	}
	return GetDeviceInfoRequest{}, nil
}

// GetDeviceInfoResponse is the fixed 19-byte DEVICE_INFO record, ANSI
// E1.20 Table 6.
type GetDeviceInfoResponse struct {
	ProtocolVersionMajor byte
	ProtocolVersionMinor byte
	ModelId              uint16
	ProductCategory      ProductCategory
	SoftwareVersionId    uint32
	DmxFootprint         uint16
	CurrentPersonality   byte
	PersonalityCount     byte
	DmxStartAddress      uint16
	SubDeviceCount       uint16
	SensorCount          byte
}

func (r GetDeviceInfoResponse) PID() ParameterId { return PidDeviceInfo }

func (r GetDeviceInfoResponse) Encode() []byte {
	buf := make([]byte, 19)
	buf[0] = r.ProtocolVersionMajor
	buf[1] = r.ProtocolVersionMinor
	binary.BigEndian.PutUint16(buf[2:4], r.ModelId)
	copy(buf[4:6], r.ProductCategory.Encode())
	binary.BigEndian.PutUint32(buf[6:10], r.SoftwareVersionId)
	binary.BigEndian.PutUint16(buf[10:12], r.DmxFootprint)
	buf[12] = r.CurrentPersonality
	buf[13] = r.PersonalityCount
	binary.BigEndian.PutUint16(buf[14:16], r.DmxStartAddress)
	binary.BigEndian.PutUint16(buf[16:18], r.SubDeviceCount)
	buf[18] = r.SensorCount
	return buf
}

func decodeGetDeviceInfoResponse(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDeviceInfo, data, 19); err != nil {
		return nil, err
	}
	return GetDeviceInfoResponse{
		ProtocolVersionMajor: data[0],
		ProtocolVersionMinor: data[1],
		ModelId:              binary.BigEndian.Uint16(data[2:4]),
		ProductCategory:      DecodeProductCategory(data[4:6]),
		SoftwareVersionId:    binary.BigEndian.Uint32(data[6:10]),
		DmxFootprint:         binary.BigEndian.Uint16(data[10:12]),
		CurrentPersonality:   data[12],
		PersonalityCount:     data[13],
		DmxStartAddress:      binary.BigEndian.Uint16(data[14:16]),
		SubDeviceCount:       binary.BigEndian.Uint16(data[16:18]),
		SensorCount:          data[18],
	}, nil
}

// GetProductDetailIdListRequest carries no parameter data.
type GetProductDetailIdListRequest struct{}

func (r GetProductDetailIdListRequest) PID() ParameterId                  { return PidProductDetailIdList }
func (r GetProductDetailIdListRequest) RequestCommandClass() CommandClass { return GetCommand }
func (r GetProductDetailIdListRequest) Encode() []byte                    { return nil }

func decodeGetProductDetailIdListRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidProductDetailIdList, data, 0); err != nil {
		return nil, err
	}
	return GetProductDetailIdListRequest{}, nil
}

// GetProductDetailIdListResponse is a packed sequence of up to 6 product
// detail ids, ANSI E1.20 PRODUCT_DETAIL_ID_LIST.
type GetProductDetailIdListResponse struct {
	Details []ProductDetail
}

func (r GetProductDetailIdListResponse) PID() ParameterId { return PidProductDetailIdList }

func (r GetProductDetailIdListResponse) Encode() []byte {
	buf := make([]byte, 0, len(r.Details)*2)
	for _, d := range r.Details {
		buf = append(buf, d.Encode()...)
	}
	return buf
}

func decodeGetProductDetailIdListResponse(data []byte) (ParameterValue, error) {
	if len(data)%2 != 0 {
		return nil, newParamValueError(PidProductDetailIdList, "payload length must be a multiple of 2")
	}
	details := make([]ProductDetail, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		details = append(details, DecodeProductDetail(data[i:i+2]))
	}
	return GetProductDetailIdListResponse{Details: details}, nil
}

// GetDeviceModelDescriptionRequest carries no parameter data.
type GetDeviceModelDescriptionRequest struct{}

func (r GetDeviceModelDescriptionRequest) PID() ParameterId { return PidDeviceModelDescription }
func (r GetDeviceModelDescriptionRequest) RequestCommandClass() CommandClass {
	return GetCommand
}
func (r GetDeviceModelDescriptionRequest) Encode() []byte { return nil }

func decodeGetDeviceModelDescriptionRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidDeviceModelDescription, data, 0); err != nil {
		return nil, err
	}
	return GetDeviceModelDescriptionRequest{}, nil
}

// GetDeviceModelDescriptionResponse is an up-to-32-byte human readable
// model name.
type GetDeviceModelDescriptionResponse struct {
	Description string
}

func (r GetDeviceModelDescriptionResponse) PID() ParameterId { return PidDeviceModelDescription }
func (r GetDeviceModelDescriptionResponse) Encode() []byte {
	return encodeLabel(r.Description, maxLabelLen)
}

func decodeGetDeviceModelDescriptionResponse(data []byte) (ParameterValue, error) {
	if err := requireMinLen(PidDeviceModelDescription, data, 0); err != nil {
		return nil, err
	}
	return GetDeviceModelDescriptionResponse{Description: decodeLabel(data)}, nil
}

func init() {
	register(PidDeviceInfo, GetCommand, decodeGetDeviceInfoRequest)
	register(PidDeviceInfo, GetCommandResponse, decodeGetDeviceInfoResponse)
	register(PidProductDetailIdList, GetCommand, decodeGetProductDetailIdListRequest)
	register(PidProductDetailIdList, GetCommandResponse, decodeGetProductDetailIdListResponse)
	register(PidDeviceModelDescription, GetCommand, decodeGetDeviceModelDescriptionRequest)
	register(PidDeviceModelDescription, GetCommandResponse, decodeGetDeviceModelDescriptionResponse)
}
