// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging wraps the charmbracelet logger used across Shelfmaster.
// Log output goes to stderr so it never mixes with the menu on stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than touching L directly.
var L = clog.NewWithOptions(os.Stderr, clog.Options{
	Prefix: "shelfmaster",
	Level:  clog.WarnLevel,
})

// SetLevel changes the minimum level emitted by L. Accepted values are the
// charmbracelet level names ("debug", "info", "warn", "error", "fatal").
func SetLevel(level string) error {
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	L.SetLevel(lvl)
	return nil
}

// SetFormat switches between "text" (default) and "json" output.
func SetFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		L.SetFormatter(clog.TextFormatter)
	case "json":
		L.SetFormatter(clog.JSONFormatter)
	default:
		return fmt.Errorf("invalid log format %q (expected text or json)", format)
	}
	return nil
}

// SetOutput redirects L, mostly for tests.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
