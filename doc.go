// File: doc.go
// Title: Netrc Package Documentation
// Description: Package documentation for the top-level netrc package
//              providing parsing, lookup, and serialization of netrc
//              credential files.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package netrc reads and writes netrc credential files.
//
// A netrc file associates hosts with login credentials and is
// traditionally stored at ~/.netrc. The package parses the established
// format including quoted values, backslash escapes, comments, the
// default fallback entry, and macro definitions:
//
//	machine example.com
//		login daniel
//		password qwerty
//
//	default login anonymous password dummy
//
// Typical use loads the user's netrc file and looks up a host:
//
//	doc, err := netrc.Load()
//	if err != nil {
//		return err
//	}
//	if cred, ok := doc.Lookup("example.com"); ok {
//		fmt.Println(cred.Login)
//	}
//
// Parse and ParseFile work on explicit content or paths, and Document's
// String method renders a document back into netrc syntax.
package netrc
