// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui holds the small terminal-output helpers cmd/clinchdemo uses
// to colorize its usage and error output. Nothing under pkg/clinch or
// pkg/clinchhelp depends on it — help rendering stays a pure function of
// a CommandModel regardless of where it ends up being printed.
package tui

import (
	"os"

	"github.com/fatih/color"
)

// Colorizer decides, once, whether ANSI color is appropriate for this
// process's output, then exposes a handful of semantic wrappers built on
// github.com/fatih/color's *Color type.
type Colorizer struct {
	enabled bool
	usage   *color.Color
	errCol  *color.Color
	dim     *color.Color
}

// NewColorizer returns a Colorizer that honors NO_COLOR and TERM=dumb on
// top of fatih/color's own isatty detection.
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	if term := os.Getenv("TERM"); term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{
		enabled: true,
		usage:   color.New(color.FgCyan, color.Bold),
		errCol:  color.New(color.FgRed, color.Bold),
		dim:     color.New(color.FgHiBlack),
	}
}

// Usage wraps usage help text (the usage line and the option table).
func (c Colorizer) Usage(text string) string {
	if !c.enabled {
		return text
	}
	return c.usage.Sprint(text)
}

// Error wraps an error message for stderr output.
func (c Colorizer) Error(text string) string {
	if !c.enabled {
		return text
	}
	return c.errCol.Sprint(text)
}

// Dim wraps secondary/footer text.
func (c Colorizer) Dim(text string) string {
	if !c.enabled {
		return text
	}
	return c.dim.Sprint(text)
}
