// Package error provides structured error handling for the netrc toolkit.
//
// Package: error
// Title: Netrc Error Handling
// Description: This package implements a structured error type with error
//              codes, severity levels, and contextual details. It gives the
//              toolkit a single error surface: I/O failures from reading a
//              netrc file and syntax failures from parsing it are wrapped
//              here without losing the underlying cause.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with codes and severities
//
// Usage:
//   import nrcerror "github.com/msto63/netrc/core/error"
//
//   err := nrcerror.Wrap(readErr, "I/O error").
//     WithCode(nrcerror.CodeIOFailure).
//     WithOperation("netrc.ParseFile").
//     WithDetail("path", path)
//
//   if nrcerror.HasCode(err, nrcerror.CodeIOFailure) {
//     // handle unreadable netrc files specifically
//   }
package error
