// File: doc.go
// Title: String Utilities Package Documentation
// Description: Package documentation for string helper functions used
//              across the netrc tools.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package stringx provides string utility functions that extend the Go
// standard library with operations the netrc tools need regularly, such
// as blank checks, Unicode-safe truncation, and secret masking for
// display and log output.
package stringx
