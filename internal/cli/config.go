// Package cli holds the command-line surface shared by the desktop and
// headless front ends: flag parsing, logger construction and the headless
// runner.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

const (
	defaultSize   = 50
	defaultExtent = 800
	defaultDelay  = 8 * time.Millisecond
)

// Config is everything the program reads from its command line.
type Config struct {
	Size     int           // cells per side
	Extent   int           // board side in pixels (window and PNG)
	Delay    time.Duration // pause after each drawn step
	Headless bool
	Layout   string // layout file for headless runs
	PNG      string // optional PNG output of the final frame
	Frames   bool   // print every intermediate frame in headless mode
	NoColor  bool
	Debug    bool
}

// DefaultConfig returns the settings used when no flag is given.
func DefaultConfig() Config {
	return Config{
		Size:   defaultSize,
		Extent: defaultExtent,
		Delay:  defaultDelay,
	}
}

// Parse reads args (without the program name) into a validated Config.
// Usage text goes to output.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Size, "size", cfg.Size, "cells per side of the grid (window only; a layout sets its own)")
	fs.IntVar(&cfg.Extent, "extent", cfg.Extent, "board side in pixels")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "pause after each search step")
	fs.BoolVar(&cfg.Headless, "headless", false, "run a layout file in the terminal instead of opening a window")
	fs.StringVar(&cfg.Layout, "layout", "", "layout file (headless mode)")
	fs.StringVar(&cfg.PNG, "png", "", "write the final frame to this PNG file (headless mode)")
	fs.BoolVar(&cfg.Frames, "frames", false, "print every intermediate frame (headless mode)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI colours")
	fs.BoolVar(&cfg.Debug, "debug", false, "verbose development logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Headless && flagSet(fs, "size") {
		return Config{}, fmt.Errorf("%w: -size does not apply with -headless, the layout sets the size", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Validate checks the settings for consistency. In headless mode the grid
// size comes from the layout, so the extent is checked by CheckExtent once
// the layout is loaded.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	case c.Extent <= 0:
		return fmt.Errorf("%w: extent must be positive, got %d", ErrInvalidConfig, c.Extent)
	case !c.Headless && c.Extent < c.Size:
		return fmt.Errorf("%w: extent %d smaller than size %d", ErrInvalidConfig, c.Extent, c.Size)
	case c.Delay < 0:
		return fmt.Errorf("%w: negative delay %s", ErrInvalidConfig, c.Delay)
	case c.Headless && c.Layout == "":
		return fmt.Errorf("%w: -headless needs -layout", ErrInvalidConfig)
	case !c.Headless && (c.Layout != "" || c.PNG != "" || c.Frames):
		return fmt.Errorf("%w: -layout, -png and -frames only apply with -headless", ErrInvalidConfig)
	}
	return nil
}

// CheckExtent reports whether a board of size cells per side fits in
// c.Extent pixels.
func (c Config) CheckExtent(size int) error {
	if c.Extent < size {
		return fmt.Errorf("%w: extent %d smaller than size %d", ErrInvalidConfig, c.Extent, size)
	}
	return nil
}

// NewLogger builds the process logger: development output when debug is
// set, production JSON otherwise.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
