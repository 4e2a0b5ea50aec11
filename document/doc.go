// File: doc.go
// Title: Netrc Document Package Documentation
// Description: Defines the in-memory representation of a parsed netrc file:
//              the host-to-credential table, the macro table, lookup with
//              default fallback, and serialization back to netrc text.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial document model

/*
Package document defines the data model for parsed netrc files.

This package provides the credential and macro tables that the parser
populates, together with the operations consumers need:

  • Credential lookup by host with "default" fallback
  • Serialization back to re-parseable netrc text
  • Value semantics suitable for concurrent read-only use
*/
package document
