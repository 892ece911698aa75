package wincamcfg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
)

func TestHRESULTError_Is(t *testing.T) {
	tests := []struct {
		code        uint32
		unsupported bool
		busy        bool
	}{
		{code: hrEPropIDUnsupported, unsupported: true},
		{code: hrENotImpl, unsupported: true},
		{code: hrENoInterface, unsupported: true},
		{code: hrErrorBusy, busy: true},
		{code: hrSharingViolation, busy: true},
		{code: hrEAccessDenied, busy: true},
		{code: hrMFVideoRecordingDeviceLocked, busy: true},
		{code: hrMFHWMFTFailedStartStreaming, busy: true},
		{code: 0x80004005},
		{code: 0x80070057},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("0x%08X", tt.code), func(t *testing.T) {
			err := fmt.Errorf("get range of Zoom: %w", &HRESULTError{Op: "GetRange", Code: tt.code})
			assert.Equal(t, tt.unsupported, errors.Is(err, capture.ErrNotSupported))
			assert.Equal(t, tt.busy, errors.Is(err, capture.ErrDeviceBusy))
		})
	}
}

func TestHRESULTError_Error(t *testing.T) {
	err := &HRESULTError{Op: "Set", Code: 0x80004005}
	assert.Equal(t, "Set failed: 0x80004005", err.Error())
}

func TestCheckHR(t *testing.T) {
	assert.NoError(t, checkHR("MFStartup", 0))
	// S_FALSE is a success code.
	assert.NoError(t, checkHR("CoInitializeEx", 1))

	err := checkHR("MFEnumDeviceSources", uintptr(0x80070005))
	var hrErr *HRESULTError
	assert.ErrorAs(t, err, &hrErr)
	assert.Equal(t, uint32(0x80070005), hrErr.Code)
	assert.ErrorIs(t, err, capture.ErrDeviceBusy)
}

func TestParseDeviceInstanceID(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
		ok   bool
	}{
		{
			name: "composite device",
			path: `\\?\usb#vid_046d&pid_082d&mi_00#7&1a2b3c4d&0&0000#{e5323777-f976-4f5b-9b55-b94699c46e44}\global`,
			want: `USB\VID_046D&PID_082D&MI_00\7&1a2b3c4d&0&0000`,
			ok:   true,
		},
		{
			name: "serial number instance",
			path: `\\?\USB#VID_0C45&PID_6366#SN0001#{65e8773d-8f56-11d0-a3b9-00a0c9223196}\global`,
			want: `USB\VID_0C45&PID_6366\SN0001`,
			ok:   true,
		},
		{
			name: "virtual camera",
			path: `\\?\root#image#0000#{e5323777-f976-4f5b-9b55-b94699c46e44}\global`,
		},
		{
			name: "missing interface guid",
			path: `\\?\usb#vid_046d&pid_082d#serial`,
		},
		{
			name: "missing instance",
			path: `\\?\usb#vid_046d&pid_082d#{e5323777-f976-4f5b-9b55-b94699c46e44}`,
		},
		{name: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDeviceInstanceID(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
