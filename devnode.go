package wincamcfg

import "strings"

// parseDeviceInstanceID derives the PnP device instance ID from a USB device
// interface path, e.g.
//
//	\\?\usb#vid_046d&pid_082d&mi_00#7&1a2b3c4d&0&0000#{e5323777-...}\global
//
// becomes USB\VID_046D&PID_082D&MI_00\7&1a2b3c4d&0&0000.
func parseDeviceInstanceID(path string) (string, bool) {
	start := strings.Index(strings.ToLower(path), "usb#")
	if start < 0 {
		return "", false
	}
	rest := path[start+len("usb#"):]

	end := strings.Index(rest, "#{")
	if end < 0 {
		return "", false
	}

	parts := strings.Split(rest[:end], "#")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return `USB\` + strings.ToUpper(parts[0]) + `\` + parts[1], true
}
