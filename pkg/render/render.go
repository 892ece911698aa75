// Package render writes device lists and operation reports as styled text or
// JSON.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/kevmo314/go-wincamcfg/pkg/capture"
	"github.com/kevmo314/go-wincamcfg/pkg/manager"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (expected text or json)", ErrUnknownFormat, s)
}

// Dracula theme colors.
const (
	draculaCyan    = "#8BE9FD"
	draculaGreen   = "#50FA7B"
	draculaOrange  = "#FFB86C"
	draculaRed     = "#FF5555"
	draculaComment = "#6272A4"
)

type styles struct {
	device, section, label, success, failure, unsupported lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		device:      r.NewStyle().Foreground(lipgloss.Color(draculaCyan)).Bold(true),
		section:     r.NewStyle().Bold(true),
		label:       r.NewStyle().Foreground(lipgloss.Color(draculaOrange)),
		success:     r.NewStyle().Foreground(lipgloss.Color(draculaGreen)),
		failure:     r.NewStyle().Foreground(lipgloss.Color(draculaRed)).Bold(true),
		unsupported: r.NewStyle().Foreground(lipgloss.Color(draculaComment)),
	}
}

// Renderer writes output to a single writer. Colors are only emitted when the
// writer is a terminal that supports them.
type Renderer struct {
	w      io.Writer
	format Format
	styles styles
}

func New(w io.Writer, format Format) *Renderer {
	return &Renderer{
		w:      w,
		format: format,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

// Devices writes the result of a list operation.
func (r *Renderer) Devices(runID uuid.UUID, devices []capture.Device, includePath bool) error {
	if r.format == FormatJSON {
		return r.writeJSON(newJSONDeviceList(runID, devices, includePath))
	}
	return r.textDevices(devices, includePath)
}

// Report writes the result of a get or set operation.
func (r *Renderer) Report(report *manager.Report) error {
	switch {
	case r.format == FormatJSON && report.Operation == manager.OperationSet:
		return r.writeJSON(newJSONSetReport(report))
	case r.format == FormatJSON:
		return r.writeJSON(newJSONGetReport(report))
	case report.Operation == manager.OperationSet:
		return r.textSet(report)
	}
	return r.textGet(report)
}
