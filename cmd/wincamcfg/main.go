package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/kevmo314/go-wincamcfg"
	"github.com/kevmo314/go-wincamcfg/pkg/config"
	"github.com/kevmo314/go-wincamcfg/pkg/logger"
	"github.com/kevmo314/go-wincamcfg/pkg/manager"
	"github.com/kevmo314/go-wincamcfg/pkg/render"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd, err := parseArgs(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	cfg, err := config.Load(cmd.ConfigFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	if cmd.Output != "" {
		cfg.Output = cmd.Output
	}

	format, err := render.ParseFormat(cfg.Output)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	if err := logger.Init(&cfg.Logging); err != nil {
		fmt.Fprintf(stderr, "Error: logger: %v\n", err)
		return exitUsage
	}
	if err := applyLogLevel(cmd.LogLevel); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	op, err := newOperation(cmd)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	// COM objects are bound to the thread that created them.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	logger.Info().Str("command", cmd.SubCmd).Msg("starting")

	fw, err := wincamcfg.New(logger.WithComponent("mediafoundation"))
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize capture framework")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	defer func() {
		if err := fw.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close capture framework")
		}
	}()

	m := manager.New(fw, logger.GetLogger())
	r := render.New(stdout, format)

	code, err := op.run(m, r)
	if err != nil {
		logger.Debug().Err(err).Str("command", cmd.SubCmd).Msg("command failed")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	return code
}

// applyLogLevel lets --log-level override the level from the config file and
// environment, including DEBUG.
func applyLogLevel(s string) error {
	if s == "" {
		return nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}

// operation is a parsed, validated command ready to run against a manager.
type operation struct {
	cmd        *CmdConfig
	devices    manager.DeviceSelector
	properties manager.PropertySelector
	assignment manager.Assignment
}

func newOperation(cmd *CmdConfig) (*operation, error) {
	op := &operation{cmd: cmd}
	if cmd.SubCmd == "list" {
		return op, nil
	}

	var err error
	if op.devices, err = manager.ParseDeviceSelector(cmd.Camera); err != nil {
		return nil, err
	}
	if op.properties, err = manager.ParsePropertySelector(cmd.Property); err != nil {
		return nil, err
	}
	if cmd.Default {
		op.assignment = manager.DefaultAssignment()
	} else {
		op.assignment = manager.Assignment{Input: cmd.Value}
	}
	return op, nil
}

func (op *operation) run(m *manager.Manager, r *render.Renderer) (int, error) {
	switch op.cmd.SubCmd {
	case "list":
		devices, err := m.List()
		if err != nil {
			return exitFailure, err
		}
		return exitOK, r.Devices(uuid.New(), devices, op.cmd.IncludeDevicePath)
	case "get":
		report, err := m.Get(op.devices, op.properties)
		if err != nil {
			return exitFailure, err
		}
		return report.ExitCode(), r.Report(report)
	case "set":
		report, err := m.Set(op.devices, op.properties, op.assignment)
		if err != nil {
			return exitFailure, err
		}
		return report.ExitCode(), r.Report(report)
	}
	return exitUsage, fmt.Errorf("%w: %q", errUnknownSubcommand, op.cmd.SubCmd)
}
