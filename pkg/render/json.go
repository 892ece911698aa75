package render

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
	"github.com/kevmo314/go-wincamcfg/pkg/manager"
)

type jsonDevice struct {
	Index      int                 `json:"index"`
	Name       string              `json:"name"`
	DevicePath string              `json:"device_path,omitempty"`
	DeviceInfo *capture.DeviceInfo `json:"device_info,omitempty"`
	Properties []jsonProperty      `json:"properties,omitempty"`
}

type jsonDeviceList struct {
	RunID   uuid.UUID    `json:"run_id"`
	Devices []jsonDevice `json:"devices"`
}

func newJSONDeviceList(runID uuid.UUID, devices []capture.Device, includePath bool) jsonDeviceList {
	out := jsonDeviceList{RunID: runID, Devices: make([]jsonDevice, 0, len(devices))}
	for _, dev := range devices {
		d := jsonDevice{Index: dev.Index, Name: dev.DisplayName()}
		if includePath {
			d.DevicePath = dev.Path
		}
		out.Devices = append(out.Devices, d)
	}
	return out
}

type jsonProperty struct {
	Name            string  `json:"name"`
	Supported       bool    `json:"supported"`
	Value           *string `json:"value"`
	Flag            string  `json:"flag,omitempty"`
	Default         *string `json:"default,omitempty"`
	SupportedValues string  `json:"supported_values,omitempty"`
	Outcome         string  `json:"outcome"`
	Error           string  `json:"error,omitempty"`
}

type jsonGetReport struct {
	RunID   uuid.UUID    `json:"run_id"`
	Devices []jsonDevice `json:"devices"`
}

func newJSONGetReport(report *manager.Report) jsonGetReport {
	out := jsonGetReport{RunID: report.RunID, Devices: make([]jsonDevice, 0, len(report.Devices))}
	for _, dev := range report.Devices {
		info := dev.Info
		d := jsonDevice{
			Index:      dev.Index,
			Name:       dev.DisplayName(),
			DevicePath: dev.Path,
			DeviceInfo: &info,
			Properties: []jsonProperty{},
		}
		for _, res := range report.ResultsFor(dev.Index) {
			p := jsonProperty{
				Name:            res.Property.String(),
				Supported:       res.Default != nil,
				SupportedValues: res.Supported,
				Outcome:         res.Outcome.String(),
			}
			if res.Value != nil {
				p.Value = &res.Value.Text
				p.Flag = res.Value.Flag.String()
			}
			if res.Default != nil {
				p.Default = &res.Default.Text
			}
			if !res.OK() && res.Outcome != manager.Unsupported {
				p.Error = res.Detail
			}
			d.Properties = append(d.Properties, p)
		}
		out.Devices = append(out.Devices, d)
	}
	return out
}

type jsonSetResult struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Property string  `json:"property"`
	Value    string  `json:"value"`
	Applied  *string `json:"applied,omitempty"`
	Success  bool    `json:"success"`
	Outcome  string  `json:"outcome"`
	Error    *string `json:"error"`
}

type jsonSetReport struct {
	RunID   uuid.UUID       `json:"run_id"`
	Results []jsonSetResult `json:"results"`
}

func newJSONSetReport(report *manager.Report) jsonSetReport {
	out := jsonSetReport{RunID: report.RunID, Results: make([]jsonSetResult, 0, len(report.Results))}
	for _, res := range report.Results {
		r := jsonSetResult{
			Index:    res.DeviceIndex,
			Name:     res.DeviceName,
			Property: res.Property.String(),
			Value:    res.Requested,
			Success:  res.OK(),
			Outcome:  res.Outcome.String(),
		}
		if res.Value != nil {
			r.Applied = &res.Value.Text
		}
		if !res.OK() {
			detail := res.Detail
			r.Error = &detail
		}
		out.Results = append(out.Results, r)
	}
	return out
}

func (r *Renderer) writeJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	b = append(b, '\n')
	_, err = r.w.Write(b)
	return err
}
