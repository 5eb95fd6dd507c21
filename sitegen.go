// Package sitegen contains the maintenance tooling for a personal website:
// an image normalizer that trims and pads portfolio thumbnails to a common
// aspect ratio, and a generator that renders the portfolio page from
// per-entry descriptor files.
//
// Both tools are single-pass batch jobs over the project tree. They share
// nothing at runtime beyond the configuration, and re-running either is
// idempotent across sequential runs.
package sitegen

import (
	"io"
	"os"
)

// App wires the configuration and output streams shared by all subcommands.
type App struct {
	Config Config

	// Out receives progress lines and Errw receives warnings.
	// They default to stdout and stderr.
	Out  io.Writer
	Errw io.Writer
}

// New creates an App with the given configuration and default streams.
func New(cfg Config) *App {
	cfg.setDefaults()
	return &App{Config: cfg, Out: os.Stdout, Errw: os.Stderr}
}
