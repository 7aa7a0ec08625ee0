// Package cli parses the command line of the pong binary.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Frontend selects where the game is displayed.
type Frontend string

const (
	FrontendWindow   Frontend = "window"
	FrontendTerminal Frontend = "terminal"
	FrontendHeadless Frontend = "headless"
)

// Config holds the settings parsed from flags and environment.
type Config struct {
	Frontend Frontend
	LogLevel string
	LogFile  string        // empty means stderr
	Frames   int           // frames to run in headless mode
	Timeout  time.Duration // 0 means no timeout
	ShowHelp bool
}

// ParseArgs parses args (without the program name). Flags win over the
// PONG_FRONTEND, LOG_LEVEL and TIMEOUT environment variables.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	config := &Config{}

	var frontend string
	var timeoutSec int
	fs.StringVar(&frontend, "frontend", "", "window, terminal or headless")
	fs.StringVar(&frontend, "f", "", "window, terminal or headless (short)")
	fs.StringVar(&config.LogLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&config.LogLevel, "l", "", "debug, info, warn or error (short)")
	fs.StringVar(&config.LogFile, "log-file", "", "write logs to this file instead of stderr")
	fs.IntVar(&config.Frames, "frames", 1000, "frames to simulate in headless mode")
	fs.IntVar(&config.Frames, "n", 1000, "frames to simulate in headless mode (short)")
	fs.IntVar(&timeoutSec, "timeout", 0, "seconds before exiting, 0 for none")
	fs.IntVar(&timeoutSec, "t", 0, "seconds before exiting (short)")
	fs.BoolVar(&config.ShowHelp, "help", false, "show help")
	fs.BoolVar(&config.ShowHelp, "h", false, "show help (short)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	if frontend == "" {
		frontend = strings.ToLower(os.Getenv("PONG_FRONTEND"))
	}
	if frontend == "" {
		frontend = string(FrontendWindow)
	}
	switch Frontend(frontend) {
	case FrontendWindow, FrontendTerminal, FrontendHeadless:
		config.Frontend = Frontend(frontend)
	default:
		return nil, fmt.Errorf("invalid frontend: %s (must be window, terminal, or headless)", frontend)
	}

	if config.LogLevel == "" {
		config.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[config.LogLevel] {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.LogLevel)
	}

	if timeoutSec == 0 {
		if timeoutEnv := os.Getenv("TIMEOUT"); timeoutEnv != "" {
			if t, err := strconv.Atoi(timeoutEnv); err == nil && t > 0 {
				timeoutSec = t
			}
		}
	}
	if timeoutSec < 0 {
		return nil, fmt.Errorf("timeout must be non-negative, got %d", timeoutSec)
	}
	config.Timeout = time.Duration(timeoutSec) * time.Second

	if config.Frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", config.Frames)
	}

	return config, nil
}

// PrintHelp writes usage to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `pong - single-player Pong

Usage:
  pong [options]

Options:
  -f, --frontend <name>     window, terminal or headless (default: window)
  -l, --log-level <level>   debug, info, warn, error (default: info)
  --log-file <path>         write logs to a file (terminal frontend logs nowhere otherwise)
  -n, --frames <count>      frames to simulate in headless mode (default: 1000)
  -t, --timeout <seconds>   exit after this many seconds (default: none)
  -h, --help                show this help

Controls:
  mouse / touch             move the paddle
  R                         restart
  F1                        toggle debug overlay (window)
  Esc                       quit

Environment Variables:
  PONG_FRONTEND=<name>      frontend
  LOG_LEVEL=<level>         log level
  TIMEOUT=<seconds>         timeout
`)
}
