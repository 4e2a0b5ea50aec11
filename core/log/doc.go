// Package log provides structured logging for the netrc toolkit.
//
// Package: log
// Title: Netrc Structured Logging
// Description: This package implements a leveled, structured logger with
//              JSON and text output formats and persistent context
//              fields. It serves the CLI, TUI, and HTTP integration; the
//              parser core never logs (errors are returned as values).
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with structured logging
//
// Usage:
//   import nrclog "github.com/msto63/netrc/core/log"
//
//   logger := nrclog.New().WithName("netrc-cli").WithLevel(nrclog.LevelDebug)
//   logger.Info("netrc file loaded", nrclog.Fields{"path": path, "hosts": n})
package log
