package wincamcfg

import (
	"errors"
	"fmt"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
)

var (
	ErrUnsupportedPlatform = errors.New("media foundation capture is only available on windows")
)

// HRESULT values the backend classifies.
const (
	hrENotImpl                     uint32 = 0x80004001
	hrENoInterface                 uint32 = 0x80004002
	hrEAccessDenied                uint32 = 0x80070005
	hrSharingViolation             uint32 = 0x80070020
	hrErrorBusy                    uint32 = 0x800700AA
	hrEPropIDUnsupported           uint32 = 0x80070490
	hrMFHWMFTFailedStartStreaming  uint32 = 0xC00D3704
	hrMFVideoRecordingDeviceLocked uint32 = 0xC00D3EA3
)

// HRESULTError is a failed COM call. It matches capture.ErrNotSupported and
// capture.ErrDeviceBusy under errors.Is for the codes drivers use to report
// those conditions.
type HRESULTError struct {
	Op   string
	Code uint32
}

func (e *HRESULTError) Error() string {
	return fmt.Sprintf("%s failed: 0x%08X", e.Op, e.Code)
}

func (e *HRESULTError) Is(target error) bool {
	switch target {
	case capture.ErrNotSupported:
		switch e.Code {
		case hrEPropIDUnsupported, hrENotImpl, hrENoInterface:
			return true
		}
	case capture.ErrDeviceBusy:
		switch e.Code {
		case hrErrorBusy, hrSharingViolation, hrEAccessDenied, hrMFVideoRecordingDeviceLocked, hrMFHWMFTFailedStartStreaming:
			return true
		}
	}
	return false
}

// checkHR returns nil for success codes (S_OK, S_FALSE) and an HRESULTError
// otherwise.
func checkHR(op string, hr uintptr) error {
	code := uint32(hr)
	if int32(code) >= 0 {
		return nil
	}
	return &HRESULTError{Op: op, Code: code}
}
