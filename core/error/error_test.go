// File: error_test.go
// Title: Core Error Unit Tests
// Description: Tests for error creation, wrapping, code and severity
//              propagation, unwrapping, and JSON marshaling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap netrc error",
			err:     New("unreadable file").WithCode(CodeIOFailure),
			message: "wrapper message",
			wantMsg: "wrapper message: unreadable file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
		})
	}
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := New("parse failed").WithCode(CodeParseSyntax)
	wrapped := Wrap(inner, "loading netrc")

	if wrapped.Code() != CodeParseSyntax {
		t.Errorf("wrapped Code() = %v, want %v", wrapped.Code(), CodeParseSyntax)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := Wrap(cause, "context")

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if wrapped.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", wrapped.Unwrap(), cause)
	}
}

func TestWithCode_AutoSeverity(t *testing.T) {
	err := New("cannot read file").WithCode(CodeIOFailure)

	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}
}

func TestWithDetail(t *testing.T) {
	err := New("lookup failed").
		WithCode(CodeNoCredentials).
		WithDetail("host", "api.example.com").
		WithOperation("httpauth.RoundTrip")

	details := err.Details()
	if details["host"] != "api.example.com" {
		t.Errorf("details[host] = %v, want api.example.com", details["host"])
	}
	if err.Operation() != "httpauth.RoundTrip" {
		t.Errorf("Operation() = %q, want %q", err.Operation(), "httpauth.RoundTrip")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("disk failure")
	mid := Wrap(root, "reading netrc")
	outer := Wrap(mid, "loading credentials")

	if outer.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", outer.RootCause(), root)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad token").WithCode(CodeParseSyntax).WithDetail("line", 3)

	data, merr := json.Marshal(err)
	if merr != nil {
		t.Fatalf("json.Marshal failed: %v", merr)
	}

	out := string(data)
	for _, want := range []string{`"message":"bad token"`, `"code":"PARSE_SYNTAX"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON %s missing %s", out, want)
		}
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeIOFailure, "io"},
		{CodeParseSyntax, "parsing"},
		{CodeNoCredentials, "lookup"},
		{CodeInvalidConfig, "configuration"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	err := New("x").WithCode(CodeFileMissing)

	if !HasCode(err, CodeFileMissing) {
		t.Error("HasCode should match the assigned code")
	}
	if HasCode(errors.New("plain"), CodeFileMissing) {
		t.Error("HasCode should not match foreign error types")
	}
}
