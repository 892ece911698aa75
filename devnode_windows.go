package wincamcfg

import (
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
)

// driverInfo looks up the PnP device node behind a capture device's symbolic
// link and reads its description, manufacturer and driver key values. Fields
// that cannot be read are left empty.
func driverInfo(symbolicLink string) (capture.DeviceInfo, error) {
	var info capture.DeviceInfo

	instanceID, ok := parseDeviceInstanceID(symbolicLink)
	if !ok {
		return info, fmt.Errorf("no usb device instance in %q", symbolicLink)
	}

	devs, err := windows.SetupDiGetClassDevsEx(nil, instanceID, 0,
		windows.DIGCF_ALLCLASSES|windows.DIGCF_DEVICEINTERFACE|windows.DIGCF_PRESENT, 0, "")
	if err != nil {
		return info, fmt.Errorf("SetupDiGetClassDevsEx(%s): %w", instanceID, err)
	}
	defer devs.Close()

	data, err := devs.EnumDeviceInfo(0)
	if err != nil {
		return info, fmt.Errorf("locate device node %s: %w", instanceID, err)
	}

	info.Description = registryPropertyString(devs, data, windows.SPDRP_DEVICEDESC)
	info.Manufacturer = registryPropertyString(devs, data, windows.SPDRP_MFG)

	h, err := devs.OpenDevRegKey(data, windows.DICS_FLAG_GLOBAL, 0, windows.DIREG_DRV, windows.KEY_READ)
	if err != nil {
		return info, fmt.Errorf("open driver key of %s: %w", instanceID, err)
	}
	key := registry.Key(h)
	defer key.Close()

	info.DriverVersion, _, _ = key.GetStringValue("DriverVersion")
	info.DriverDate, _, _ = key.GetStringValue("DriverDate")
	info.DriverPath, _, _ = key.GetStringValue("InfPath")

	return info, nil
}

func registryPropertyString(devs windows.DevInfo, data *windows.DevInfoData, prop windows.SPDRP) string {
	v, err := devs.DeviceRegistryProperty(data, prop)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
