package wincamcfg

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Media Foundation GUIDs
var (
	MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE                      = windows.GUID{0xc60ac5fe, 0x252a, 0x478f, [8]byte{0xa0, 0xef, 0xbc, 0x8f, 0xa5, 0xf7, 0xca, 0xd3}}
	MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE_VIDCAP               = windows.GUID{0x8ac3587a, 0x4ae7, 0x42d8, [8]byte{0x99, 0xe0, 0x0a, 0x60, 0x13, 0xee, 0xf9, 0x0f}}
	MF_DEVSOURCE_ATTRIBUTE_FRIENDLY_NAME                    = windows.GUID{0x60d0e559, 0x52f8, 0x4fa2, [8]byte{0xbb, 0xce, 0xac, 0xdb, 0x34, 0xa8, 0xec, 0x01}}
	MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE_VIDCAP_SYMBOLIC_LINK = windows.GUID{0x58f0aad8, 0x22bf, 0x4f8a, [8]byte{0xbb, 0x3d, 0xd2, 0xc4, 0x97, 0x8c, 0x6e, 0x2f}}

	IID_IMFMediaSource   = windows.GUID{0x279a808d, 0xaec7, 0x40c8, [8]byte{0x9c, 0x6b, 0xa6, 0xb4, 0x92, 0xc7, 0x8a, 0x66}}
	IID_IAMCameraControl = windows.GUID{0xc6e13370, 0x30ac, 0x11d0, [8]byte{0xa1, 0x8c, 0x00, 0xa0, 0xc9, 0x11, 0x89, 0x56}}
	IID_IAMVideoProcAmp  = windows.GUID{0xc6e13360, 0x30ac, 0x11d0, [8]byte{0xa1, 0x8c, 0x00, 0xa0, 0xc9, 0x11, 0x89, 0x56}}
)

var (
	modmfplat = windows.NewLazySystemDLL("mfplat.dll")
	modmf     = windows.NewLazySystemDLL("mf.dll")

	procMFStartup           = modmfplat.NewProc("MFStartup")
	procMFShutdown          = modmfplat.NewProc("MFShutdown")
	procMFCreateAttributes  = modmfplat.NewProc("MFCreateAttributes")
	procMFEnumDeviceSources = modmf.NewProc("MFEnumDeviceSources")
)

const MF_VERSION = 0x00020070 // MF 2.0

// IMFAttributes vtable
type IMFAttributesVtbl struct {
	QueryInterface     uintptr
	AddRef             uintptr
	Release            uintptr
	GetItem            uintptr
	GetItemType        uintptr
	CompareItem        uintptr
	Compare            uintptr
	GetUINT32          uintptr
	GetUINT64          uintptr
	GetDouble          uintptr
	GetGUID            uintptr
	GetStringLength    uintptr
	GetString          uintptr
	GetAllocatedString uintptr
	GetBlobSize        uintptr
	GetBlob            uintptr
	GetAllocatedBlob   uintptr
	GetUnknown         uintptr
	SetItem            uintptr
	DeleteItem         uintptr
	DeleteAllItems     uintptr
	SetUINT32          uintptr
	SetUINT64          uintptr
	SetDouble          uintptr
	SetGUID            uintptr
	SetString          uintptr
	SetBlob            uintptr
	SetUnknown         uintptr
	LockStore          uintptr
	UnlockStore        uintptr
	GetCount           uintptr
	GetItemByIndex     uintptr
	CopyAllItems       uintptr
}

type IMFAttributes struct {
	vtbl *IMFAttributesVtbl
}

func (a *IMFAttributes) Release() {
	if a != nil && a.vtbl != nil {
		syscall.SyscallN(a.vtbl.Release, uintptr(unsafe.Pointer(a)))
	}
}

func (a *IMFAttributes) SetGUID(key *windows.GUID, value *windows.GUID) error {
	hr, _, _ := syscall.SyscallN(a.vtbl.SetGUID,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(value)))
	return checkHR("IMFAttributes::SetGUID", hr)
}

func (a *IMFAttributes) GetString(key *windows.GUID) (string, error) {
	var length uint32
	hr, _, _ := syscall.SyscallN(a.vtbl.GetStringLength,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(&length)))
	if err := checkHR("IMFAttributes::GetStringLength", hr); err != nil {
		return "", err
	}

	buf := make([]uint16, length+1)
	hr, _, _ = syscall.SyscallN(a.vtbl.GetString,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(length+1),
		0)
	if err := checkHR("IMFAttributes::GetString", hr); err != nil {
		return "", err
	}

	return windows.UTF16ToString(buf), nil
}

// IMFActivate is an activation object that can create media sources
type IMFActivateVtbl struct {
	IMFAttributesVtbl
	ActivateObject uintptr
	ShutdownObject uintptr
	DetachObject   uintptr
}

type IMFActivate struct {
	vtbl *IMFActivateVtbl
}

func (a *IMFActivate) AsAttributes() *IMFAttributes {
	return (*IMFAttributes)(unsafe.Pointer(a))
}

func (a *IMFActivate) Release() {
	if a != nil && a.vtbl != nil {
		syscall.SyscallN(a.vtbl.Release, uintptr(unsafe.Pointer(a)))
	}
}

func (a *IMFActivate) ActivateObject(iid *windows.GUID) (uintptr, error) {
	var obj uintptr
	hr, _, _ := syscall.SyscallN(a.vtbl.ActivateObject,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&obj)))
	if err := checkHR("IMFActivate::ActivateObject", hr); err != nil {
		return 0, err
	}
	return obj, nil
}

// ShutdownObject releases the media source the activation object created.
func (a *IMFActivate) ShutdownObject() {
	if a != nil && a.vtbl != nil {
		syscall.SyscallN(a.vtbl.ShutdownObject, uintptr(unsafe.Pointer(a)))
	}
}

// IMFMediaSource vtable
type IMFMediaSourceVtbl struct {
	QueryInterface               uintptr
	AddRef                       uintptr
	Release                      uintptr
	GetEvent                     uintptr
	BeginGetEvent                uintptr
	EndGetEvent                  uintptr
	QueueEvent                   uintptr
	GetCharacteristics           uintptr
	CreatePresentationDescriptor uintptr
	Start                        uintptr
	Stop                         uintptr
	Pause                        uintptr
	Shutdown                     uintptr
}

type IMFMediaSource struct {
	vtbl *IMFMediaSourceVtbl
}

func (s *IMFMediaSource) Release() {
	if s != nil && s.vtbl != nil {
		syscall.SyscallN(s.vtbl.Release, uintptr(unsafe.Pointer(s)))
	}
}

func (s *IMFMediaSource) QueryInterface(iid *windows.GUID) (uintptr, error) {
	var obj uintptr
	hr, _, _ := syscall.SyscallN(s.vtbl.QueryInterface,
		uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&obj)))
	if err := checkHR("IMFMediaSource::QueryInterface", hr); err != nil {
		return 0, err
	}
	return obj, nil
}

func (s *IMFMediaSource) Shutdown() {
	if s != nil && s.vtbl != nil {
		syscall.SyscallN(s.vtbl.Shutdown, uintptr(unsafe.Pointer(s)))
	}
}

// IAMVideoProcAmp and IAMCameraControl share this vtable layout; only the
// property index space differs.
type amControlVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	GetRange       uintptr
	Set            uintptr
	Get            uintptr
}

type amControl struct {
	vtbl *amControlVtbl
}

func (c *amControl) Release() {
	if c != nil && c.vtbl != nil {
		syscall.SyscallN(c.vtbl.Release, uintptr(unsafe.Pointer(c)))
	}
}

func (c *amControl) GetRange(property int32) (min, max, step, def, flags int32, err error) {
	hr, _, _ := syscall.SyscallN(c.vtbl.GetRange,
		uintptr(unsafe.Pointer(c)),
		uintptr(property),
		uintptr(unsafe.Pointer(&min)),
		uintptr(unsafe.Pointer(&max)),
		uintptr(unsafe.Pointer(&step)),
		uintptr(unsafe.Pointer(&def)),
		uintptr(unsafe.Pointer(&flags)))
	if err := checkHR("GetRange", hr); err != nil {
		return 0, 0, 0, 0, 0, err
	}
	return
}

func (c *amControl) Get(property int32) (value, flags int32, err error) {
	hr, _, _ := syscall.SyscallN(c.vtbl.Get,
		uintptr(unsafe.Pointer(c)),
		uintptr(property),
		uintptr(unsafe.Pointer(&value)),
		uintptr(unsafe.Pointer(&flags)))
	if err := checkHR("Get", hr); err != nil {
		return 0, 0, err
	}
	return
}

func (c *amControl) Set(property, value, flags int32) error {
	hr, _, _ := syscall.SyscallN(c.vtbl.Set,
		uintptr(unsafe.Pointer(c)),
		uintptr(property),
		uintptr(value),
		uintptr(flags))
	return checkHR("Set", hr)
}

// MF helper functions

var (
	mfInitialized  bool
	comInitialized bool
)

// mfStartup initializes COM and Media Foundation on the calling thread, which
// callers keep locked for the lifetime of the session.
func mfStartup() error {
	if mfInitialized {
		return nil
	}

	// S_FALSE means COM was already initialized on this thread.
	err := windows.CoInitializeEx(0, windows.COINIT_MULTITHREADED)
	if errno, ok := err.(syscall.Errno); err == nil || ok && errno == 1 {
		comInitialized = true
	} else if err != nil {
		return fmt.Errorf("CoInitializeEx: %w", err)
	}

	hr, _, _ := syscall.SyscallN(procMFStartup.Addr(), MF_VERSION, 0)
	if err := checkHR("MFStartup", hr); err != nil {
		mfUninitializeCOM()
		return err
	}

	mfInitialized = true
	return nil
}

func mfShutdown() {
	if mfInitialized {
		syscall.SyscallN(procMFShutdown.Addr())
		mfInitialized = false
	}
	mfUninitializeCOM()
}

func mfUninitializeCOM() {
	if comInitialized {
		windows.CoUninitialize()
		comInitialized = false
	}
}

func mfCreateAttributes(count uint32) (*IMFAttributes, error) {
	var attrs *IMFAttributes
	hr, _, _ := syscall.SyscallN(procMFCreateAttributes.Addr(),
		uintptr(unsafe.Pointer(&attrs)),
		uintptr(count))
	if err := checkHR("MFCreateAttributes", hr); err != nil {
		return nil, err
	}
	return attrs, nil
}

// mfCamera is a video capture device found via Media Foundation
type mfCamera struct {
	FriendlyName string
	SymbolicLink string
	Activate     *IMFActivate
}

// enumerateMFCameras lists all video capture devices using Media Foundation.
// The caller owns the returned activation objects.
func enumerateMFCameras() ([]*mfCamera, error) {
	if err := mfStartup(); err != nil {
		return nil, err
	}

	attrs, err := mfCreateAttributes(1)
	if err != nil {
		return nil, err
	}
	defer attrs.Release()

	err = attrs.SetGUID(&MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE, &MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE_VIDCAP)
	if err != nil {
		return nil, err
	}

	var devices **IMFActivate
	var count uint32

	hr, _, _ := syscall.SyscallN(procMFEnumDeviceSources.Addr(),
		uintptr(unsafe.Pointer(attrs)),
		uintptr(unsafe.Pointer(&devices)),
		uintptr(unsafe.Pointer(&count)))
	if err := checkHR("MFEnumDeviceSources", hr); err != nil {
		return nil, err
	}
	if devices == nil {
		return nil, nil
	}
	defer windows.CoTaskMemFree(unsafe.Pointer(devices))

	deviceSlice := unsafe.Slice(devices, count)
	result := make([]*mfCamera, 0, count)

	for _, activate := range deviceSlice {
		device := &mfCamera{
			Activate: activate,
		}

		if name, err := activate.AsAttributes().GetString(&MF_DEVSOURCE_ATTRIBUTE_FRIENDLY_NAME); err == nil {
			device.FriendlyName = name
		}

		if link, err := activate.AsAttributes().GetString(&MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE_VIDCAP_SYMBOLIC_LINK); err == nil {
			device.SymbolicLink = link
		}

		result = append(result, device)
	}

	return result, nil
}
