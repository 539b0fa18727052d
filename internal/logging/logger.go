// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging provides the process-wide diagnostic logger. Diagnostics go
// to stderr so they never mix with the solver's console output.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than reaching for L directly.
var L = newLogger(os.Stderr)

func newLogger(w io.Writer) *clog.Logger {
	l := clog.NewWithOptions(w, clog.Options{Prefix: "quadsolver"})
	l.SetLevel(clog.WarnLevel)
	return l
}

// SetOutput redirects the logger, keeping its current level.
func SetOutput(w io.Writer) {
	level := L.GetLevel()
	L = newLogger(w)
	L.SetLevel(level)
}

// SetLevel parses a level name ("debug", "info", "warn", "error") and applies
// it. An empty name leaves the level unchanged.
func SetLevel(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	level, err := clog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	L.SetLevel(level)
	return nil
}

// SetDebug switches between debug and the default warn level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.WarnLevel)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
