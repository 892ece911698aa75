package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
	"github.com/kevmo314/go-wincamcfg/pkg/manager"
	"github.com/kevmo314/go-wincamcfg/pkg/properties"
	"github.com/kevmo314/go-wincamcfg/pkg/translate"
)

var (
	runID = uuid.MustParse("7b0c6f1e-4b8f-4d0e-9a55-0c2b8f1d3e21")

	c920 = capture.Device{
		Index: 0,
		Name:  "HD Pro Webcam C920",
		Path:  `\\?\usb#vid_046d&pid_082d&mi_00#7&1a2b3c4d&0&0000#{e5323777-f976-4f5b-9b55-b94699c46e44}\global`,
		Info: capture.DeviceInfo{
			Manufacturer:  "Microsoft",
			Description:   "USB Video Device",
			DriverVersion: "10.0.22621.2506",
		},
	}
)

func display(text string, v int32, f properties.ControlFlag) *translate.Display {
	return &translate.Display{Text: text, Value: v, Flag: f}
}

func getReport() *manager.Report {
	return &manager.Report{
		RunID:     runID,
		Operation: manager.OperationGet,
		Devices:   []capture.Device{c920},
		Results: []manager.Result{
			{
				DeviceName: c920.Name, Property: properties.Brightness, Outcome: manager.Success,
				Value: display("140", 140, properties.FlagManual), Default: display("128", 128, properties.FlagManual),
				Supported: "0-255",
			},
			{DeviceName: c920.Name, Property: properties.Hue, Outcome: manager.Unsupported},
			{DeviceName: c920.Name, Property: properties.Gain, Outcome: manager.DeviceBusy, Detail: "get range of Gain: device is busy"},
			{
				DeviceName: c920.Name, Property: properties.PowerlineFrequency, Outcome: manager.Success,
				Value: display("50Hz", 1, properties.FlagManual), Default: display("60Hz", 2, properties.FlagManual),
				Supported: "Disabled, 50Hz, 60Hz, Auto",
			},
			{
				DeviceName: c920.Name, Property: properties.Focus, Outcome: manager.DeviceError,
				Default: display("Auto", 0, properties.FlagAuto), Supported: "0-250 step 5, Auto",
				Detail: "get Focus: GetValue failed: 0x80004005",
			},
		},
	}
}

func setReport(explicit bool) *manager.Report {
	return &manager.Report{
		RunID:     runID,
		Operation: manager.OperationSet,
		Explicit:  explicit,
		Devices:   []capture.Device{c920},
		Results: []manager.Result{
			{DeviceName: c920.Name, Property: properties.Brightness, Outcome: manager.Success, Requested: "default", Value: display("128", 128, properties.FlagManual)},
			{DeviceName: c920.Name, Property: properties.Iris, Outcome: manager.Unsupported, Requested: "default", Detail: "property not supported by device"},
			{DeviceName: c920.Name, Property: properties.Zoom, Outcome: manager.OutOfRange, Requested: "default", Detail: "value 500 outside range 100-400"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDevices_Text(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatText)

	require.NoError(t, r.Devices(runID, []capture.Device{c920, {Index: 1}}, false))
	assert.Contains(t, buf.String(), "[0] HD Pro Webcam C920\n")
	assert.Contains(t, buf.String(), "[1] Unknown\n")
	assert.NotContains(t, buf.String(), "vid_046d")

	buf.Reset()
	require.NoError(t, r.Devices(runID, []capture.Device{c920}, true))
	assert.Contains(t, buf.String(), "(\\\\?\\usb#vid_046d")

	buf.Reset()
	require.NoError(t, r.Devices(runID, nil, false))
	assert.Equal(t, "No video capture devices found.\n", buf.String())
}

func TestDevices_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON).Devices(runID, []capture.Device{c920}, false))

	var got struct {
		RunID   string           `json:"run_id"`
		Devices []map[string]any `json:"devices"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, runID.String(), got.RunID)
	require.Len(t, got.Devices, 1)
	assert.Equal(t, "HD Pro Webcam C920", got.Devices[0]["name"])
	assert.NotContains(t, got.Devices[0], "device_path")
}

func TestReport_GetText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Report(getReport()))

	out := buf.String()
	assert.Contains(t, out, "[0] HD Pro Webcam C920\n")
	assert.Contains(t, out, "    Manufacturer: Microsoft\n")
	assert.Contains(t, out, "    Driver Version: 10.0.22621.2506\n")
	assert.NotContains(t, out, "Driver Date")
	assert.Contains(t, out, "    Brightness: 140 (Supported: 0-255, Default: 128)\n")
	assert.Contains(t, out, "    Hue: <unsupported>\n")
	assert.Contains(t, out, "    Gain: <error: get range of Gain: device is busy>\n")
	assert.Contains(t, out, "    PowerlineFrequency: 50Hz (Supported: Disabled, 50Hz, 60Hz, Auto, Default: 60Hz)\n")
	assert.Contains(t, out, "    Focus: <error: get Focus: GetValue failed: 0x80004005>\n")

	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Brightness")), bytes.Index(buf.Bytes(), []byte("PowerlineFrequency")))
}

func TestReport_GetJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON).Report(getReport()))

	var got struct {
		RunID   string `json:"run_id"`
		Devices []struct {
			Index      int                `json:"index"`
			DeviceInfo capture.DeviceInfo `json:"device_info"`
			Properties []struct {
				Name      string  `json:"name"`
				Supported bool    `json:"supported"`
				Value     *string `json:"value"`
				Default   *string `json:"default"`
				Outcome   string  `json:"outcome"`
				Error     string  `json:"error"`
			} `json:"properties"`
		} `json:"devices"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, runID.String(), got.RunID)
	require.Len(t, got.Devices, 1)
	assert.Equal(t, "Microsoft", got.Devices[0].DeviceInfo.Manufacturer)

	props := got.Devices[0].Properties
	require.Len(t, props, 5)

	names := make([]string, 0, len(props))
	for _, p := range props {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Brightness", "Hue", "Gain", "PowerlineFrequency", "Focus"}, names)

	require.NotNil(t, props[0].Value)
	assert.Equal(t, "140", *props[0].Value)
	assert.Equal(t, "128", *props[0].Default)

	assert.False(t, props[1].Supported)
	assert.Nil(t, props[1].Value)
	assert.Empty(t, props[1].Error)

	// Support is unknown when the range query itself failed.
	assert.False(t, props[2].Supported)
	assert.Equal(t, "DeviceBusy", props[2].Outcome)
	assert.Contains(t, props[2].Error, "busy")

	assert.True(t, props[4].Supported)
	assert.Equal(t, "DeviceError", props[4].Outcome)
	assert.Nil(t, props[4].Value)
	assert.Contains(t, props[4].Error, "0x80004005")
}

func TestReport_SetText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Report(setReport(false)))

	out := buf.String()
	assert.Contains(t, out, "[0] HD Pro Webcam C920: Brightness set to 128 (default)\n")
	assert.Contains(t, out, "[0] HD Pro Webcam C920: Iris not supported, skipped\n")
	assert.Contains(t, out, "[0] HD Pro Webcam C920: Failed to set Zoom - value 500 outside range 100-400\n")

	buf.Reset()
	require.NoError(t, New(&buf, FormatText).Report(setReport(true)))
	assert.Contains(t, buf.String(), "Failed to set Iris - property not supported by device\n")
}

func TestReport_SetJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON).Report(setReport(false)))

	var got struct {
		RunID   string `json:"run_id"`
		Results []struct {
			Index    int     `json:"index"`
			Name     string  `json:"name"`
			Property string  `json:"property"`
			Value    string  `json:"value"`
			Applied  *string `json:"applied"`
			Success  bool    `json:"success"`
			Outcome  string  `json:"outcome"`
			Error    *string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Results, 3)

	ok := got.Results[0]
	assert.Equal(t, "Brightness", ok.Property)
	assert.Equal(t, "default", ok.Value)
	assert.Equal(t, "128", *ok.Applied)
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)

	bad := got.Results[2]
	assert.False(t, bad.Success)
	assert.Equal(t, "OutOfRange", bad.Outcome)
	require.NotNil(t, bad.Error)
	assert.Equal(t, "value 500 outside range 100-400", *bad.Error)
}
