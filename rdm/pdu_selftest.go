package rdm

// PerformSelfTestRequest starts the self-test routine TestId
// (SelfTestIdAllTests, encoded as 0xFF, selects every routine). It is
// SET-only with no response payload.
type PerformSelfTestRequest struct {
	TestId SelfTestId
}

func (r PerformSelfTestRequest) PID() ParameterId                  { return PidPerformSelfTest }
func (r PerformSelfTestRequest) RequestCommandClass() CommandClass { return SetCommand }
func (r PerformSelfTestRequest) Encode() []byte                    { return []byte{r.TestId.Encode()} }

func decodePerformSelfTestRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidPerformSelfTest, data, 1); err != nil {
		return nil, err
	}
	return PerformSelfTestRequest{TestId: DecodeSelfTestId(data[0])}, nil
}

// GetSelfTestDescriptionRequest asks for the description of one self-test
// routine.
type GetSelfTestDescriptionRequest struct {
	TestId SelfTestId
}

func (r GetSelfTestDescriptionRequest) PID() ParameterId { return PidSelfTestDescription }
func (r GetSelfTestDescriptionRequest) RequestCommandClass() CommandClass {
	return GetCommand
}
func (r GetSelfTestDescriptionRequest) Encode() []byte { return []byte{r.TestId.Encode()} }

func decodeGetSelfTestDescriptionRequest(data []byte) (ParameterValue, error) {
	if err := requireLen(PidSelfTestDescription, data, 1); err != nil {
		return nil, err
	}
	return GetSelfTestDescriptionRequest{TestId: DecodeSelfTestId(data[0])}, nil
}

// GetSelfTestDescriptionResponse is the test id plus an up-to-32-byte
// description.
type GetSelfTestDescriptionResponse struct {
	TestId      SelfTestId
	Description string
}

func (r GetSelfTestDescriptionResponse) PID() ParameterId { return PidSelfTestDescription }
func (r GetSelfTestDescriptionResponse) Encode() []byte {
	return append([]byte{r.TestId.Encode()}, encodeLabel(r.Description, maxLabelLen)...)
}

func decodeGetSelfTestDescriptionResponse(data []byte) (ParameterValue, error) {
	if err := requireMinLen(PidSelfTestDescription, data, 1); err != nil {
		return nil, err
	}
	return GetSelfTestDescriptionResponse{
		TestId:      DecodeSelfTestId(data[0]),
		Description: decodeLabel(data[1:]),
	}, nil
}

func init() {
	register(PidPerformSelfTest, SetCommand, decodePerformSelfTestRequest)
	register(PidSelfTestDescription, GetCommand, decodeGetSelfTestDescriptionRequest)
	register(PidSelfTestDescription, GetCommandResponse, decodeGetSelfTestDescriptionResponse)
}
