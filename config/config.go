package config

import (
	"strings"

	"pnGo/oops"
)

type OutputFormat string

const (
	PPM  OutputFormat = "ppm"
	BMP  OutputFormat = "bmp"
	TIFF OutputFormat = "tiff"
	PNG  OutputFormat = "png"
)

var OutputFormats = []OutputFormat{PPM, BMP, TIFF, PNG}

type PnGoConfig struct {
	LogLevel  string
	Output    OutputConfig
	VerifyCRC bool
}

type OutputConfig struct {
	Path   string
	Format OutputFormat
	Scale  int
}

func Default() PnGoConfig {
	return PnGoConfig{
		LogLevel: "info",
		Output: OutputConfig{
			Path:   "output.ppm",
			Format: PPM,
			Scale:  1,
		},
	}
}

// Validate normalizes the output format and rejects values the sinks cannot
// handle.
func (c *PnGoConfig) Validate() error {
	c.Output.Format = OutputFormat(strings.ToLower(string(c.Output.Format)))
	known := false
	for _, f := range OutputFormats {
		if c.Output.Format == f {
			known = true
			break
		}
	}
	if !known {
		return oops.New(nil, "unknown output format %q", c.Output.Format)
	}
	if c.Output.Scale < 1 {
		return oops.New(nil, "scale must be at least 1, got %d", c.Output.Scale)
	}
	if c.Output.Path == "" {
		return oops.New(nil, "output path is empty")
	}
	return nil
}
