// File: doc.go
// Title: HTTP Authentication Package Documentation
// Description: Package documentation for the netrc-backed HTTP transport
//              that injects Basic authentication credentials.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package httpauth provides an http.RoundTripper that resolves Basic
// authentication credentials from a netrc document.
//
// The transport looks up the request host in the document and, when a
// matching or default entry exists, attaches an Authorization header
// before delegating to the underlying transport. Requests that already
// carry an Authorization header pass through untouched:
//
//	doc, err := netrc.Load()
//	if err != nil {
//		return err
//	}
//	client := &http.Client{
//		Transport: httpauth.NewTransport(doc),
//	}
package httpauth
