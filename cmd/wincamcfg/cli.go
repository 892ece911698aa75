package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

var (
	errNoSubcommand      = errors.New("no command given")
	errUnknownSubcommand = errors.New("unknown command")
	errCameraRequired    = errors.New("--camera is required")
	errPropertyRequired  = errors.New("--property is required")
	errValueRequired     = errors.New("one of --value or --default is required")
	errValueAndDefault   = errors.New("--value and --default are mutually exclusive")
	errAllNeedsDefault   = errors.New("--property all can only be used with --default")
)

// CmdConfig holds parsed command-line configuration.
type CmdConfig struct {
	SubCmd     string
	ConfigFile string
	LogLevel   string
	// Output is empty when the flag was not given, leaving the choice to the
	// config file and environment.
	Output string

	Camera            string
	Property          string
	Value             string
	Default           bool
	IncludeDevicePath bool
}

// SubcommandHandler defines the interface for parsing subcommand flags.
type SubcommandHandler interface {
	Parse(args []string, cfg *CmdConfig, stderr io.Writer) error
}

var handlers = map[string]SubcommandHandler{
	"list": ListHandler{},
	"get":  GetHandler{},
	"set":  SetHandler{},
}

func addGlobalFlags(fs *pflag.FlagSet, cfg *CmdConfig) {
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "path to a YAML config file (default $WINCAMCFG_CONFIG)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace, debug, info, warn, error")
}

func addOutputFlag(fs *pflag.FlagSet, cfg *CmdConfig) {
	fs.StringVarP(&cfg.Output, "output", "o", "", "output format: text or json")
}

func newFlagSet(name string, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parseArgs parses global flags, picks the subcommand and lets its handler
// parse the rest.
func parseArgs(args []string, stderr io.Writer) (*CmdConfig, error) {
	cfg := &CmdConfig{}

	fs := newFlagSet("wincamcfg", stderr)
	fs.SetInterspersed(false)
	addGlobalFlags(fs, cfg)
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(stderr)
		return nil, errNoSubcommand
	}

	cfg.SubCmd = strings.ToLower(rest[0])
	handler, ok := handlers[cfg.SubCmd]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownSubcommand, rest[0])
	}

	if err := handler.Parse(rest[1:], cfg, stderr); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ListHandler handles flags for the list subcommand.
type ListHandler struct{}

func (ListHandler) Parse(args []string, cfg *CmdConfig, stderr io.Writer) error {
	fs := newFlagSet("list", stderr)
	addGlobalFlags(fs, cfg)
	addOutputFlag(fs, cfg)
	fs.BoolVar(&cfg.IncludeDevicePath, "include-device-path", false, "show each device's symbolic link")

	return fs.Parse(args)
}

// GetHandler handles flags for the get subcommand.
type GetHandler struct{}

func (GetHandler) Parse(args []string, cfg *CmdConfig, stderr io.Writer) error {
	fs := newFlagSet("get", stderr)
	addGlobalFlags(fs, cfg)
	addOutputFlag(fs, cfg)
	fs.StringVarP(&cfg.Camera, "camera", "c", "", "camera index or 'all'")
	fs.StringVarP(&cfg.Property, "property", "p", "all", "property name or 'all'")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.Camera == "" {
		return errCameraRequired
	}
	return nil
}

// SetHandler handles flags for the set subcommand.
type SetHandler struct{}

func (SetHandler) Parse(args []string, cfg *CmdConfig, stderr io.Writer) error {
	fs := newFlagSet("set", stderr)
	addGlobalFlags(fs, cfg)
	addOutputFlag(fs, cfg)
	fs.StringVarP(&cfg.Camera, "camera", "c", "", "camera index or 'all'")
	fs.StringVarP(&cfg.Property, "property", "p", "", "property name, or 'all' with --default")
	fs.StringVarP(&cfg.Value, "value", "v", "", "value to set: an integer or a named value such as Auto or 50Hz")
	fs.BoolVarP(&cfg.Default, "default", "d", false, "restore the device default")

	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case cfg.Camera == "":
		return errCameraRequired
	case cfg.Property == "":
		return errPropertyRequired
	case fs.Changed("value") && cfg.Default:
		return errValueAndDefault
	case !fs.Changed("value") && !cfg.Default:
		return errValueRequired
	case strings.EqualFold(cfg.Property, "all") && !cfg.Default:
		return errAllNeedsDefault
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: wincamcfg [--config FILE] [--log-level LEVEL] <command> [flags]

Commands:
  list  [--include-device-path] [-o text|json]
  get   -c <index|all> [-p <property|all>] [-o text|json]
  set   -c <index|all> -p <property|all> (-v <value> | -d) [-o text|json]

Properties:
  Brightness Contrast Hue Saturation Sharpness Gamma Gain WhiteBalance
  BacklightCompensation ColorEnable PowerlineFrequency
  Pan Tilt Roll Zoom Exposure Iris Focus
`)
}
