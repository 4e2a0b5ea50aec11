// File: transport.go
// Title: Netrc HTTP Transport Implementation
// Description: Implements an http.RoundTripper that injects Basic
//              authentication credentials resolved from a netrc document
//              into outgoing requests.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package httpauth

import (
	"net/http"

	"github.com/msto63/netrc/core/log"
	"github.com/msto63/netrc/document"
)

// Transport is an http.RoundTripper that resolves credentials for the
// request host from a netrc document. Existing Authorization headers
// always take precedence over netrc credentials.
type Transport struct {
	// Base is the underlying transport. http.DefaultTransport is used
	// when nil.
	Base http.RoundTripper

	// Document supplies the credentials. A nil document disables
	// credential injection.
	Document *document.Document

	// Logger receives debug output for credential decisions. The package
	// default logger is used when nil.
	Logger *log.Logger
}

// NewTransport creates a Transport backed by the given document and the
// default underlying transport.
func NewTransport(doc *document.Document) *Transport {
	return &Transport{Document: doc}
}

// RoundTrip implements http.RoundTripper. The incoming request is never
// modified; a clone carries the injected header.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if req.Header.Get("Authorization") != "" || t.Document == nil {
		return base.RoundTrip(req)
	}

	host := req.URL.Hostname()
	cred, ok := t.Document.Lookup(host)
	if !ok {
		t.logger().Debug("no netrc credentials for host", log.Fields{"host": host})
		return base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.SetBasicAuth(cred.Login, cred.Password)

	t.logger().Debug("injected netrc credentials", log.Fields{
		"host":  host,
		"login": cred.Login,
	})

	return base.RoundTrip(clone)
}

func (t *Transport) logger() *log.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return log.GetDefault()
}
