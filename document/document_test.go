// File: document_test.go
// Title: Netrc Document Model Unit Tests
// Description: Tests for credential lookup with default fallback, name
//              enumeration, and the quoting rules of the serializer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test suite

package document

import (
	"reflect"
	"strings"
	"testing"
)

func TestDocument_Lookup(t *testing.T) {
	doc := New()
	doc.Hosts["api.example.com"] = Credential{Login: "alice", Password: "s3cret"}
	doc.Hosts[DefaultHost] = Credential{Login: "anonymous", Password: "guest"}

	tests := []struct {
		name      string
		host      string
		wantLogin string
		wantFound bool
	}{
		{
			name:      "Exact match",
			host:      "api.example.com",
			wantLogin: "alice",
			wantFound: true,
		},
		{
			name:      "Fallback to default",
			host:      "unknown.example.com",
			wantLogin: "anonymous",
			wantFound: true,
		},
		{
			name:      "Default entry itself",
			host:      DefaultHost,
			wantLogin: "anonymous",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred, found := doc.Lookup(tt.host)
			if found != tt.wantFound {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.host, found, tt.wantFound)
			}
			if cred.Login != tt.wantLogin {
				t.Errorf("Lookup(%q) login = %q, want %q", tt.host, cred.Login, tt.wantLogin)
			}
		})
	}
}

func TestDocument_LookupNoDefault(t *testing.T) {
	doc := New()
	doc.Hosts["api.example.com"] = Credential{Login: "alice"}

	if _, found := doc.Lookup("unknown.example.com"); found {
		t.Error("Lookup without default entry should report not found")
	}
}

func TestDocument_HostNames(t *testing.T) {
	doc := New()
	doc.Hosts["zeta.example.com"] = Credential{}
	doc.Hosts["alpha.example.com"] = Credential{}
	doc.Hosts[DefaultHost] = Credential{}

	want := []string{"alpha.example.com", "default", "zeta.example.com"}
	if got := doc.HostNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("HostNames() = %v, want %v", got, want)
	}
}

func TestCredential_IsZero(t *testing.T) {
	if !(Credential{}).IsZero() {
		t.Error("empty credential should be zero")
	}
	if (Credential{Password: "x"}).IsZero() {
		t.Error("credential with password should not be zero")
	}
}

func TestDocument_String(t *testing.T) {
	doc := New()
	doc.Hosts["host.domain.com"] = Credential{Login: "log1", Account: "acct1", Password: "pass1"}
	doc.Macros["init"] = []string{"cd pub", "mget *"}

	got := doc.String()
	want := "machine host.domain.com\n" +
		"\tlogin log1\n" +
		"\taccount acct1\n" +
		"\tpassword pass1\n" +
		"macdef init\n" +
		"cd pub\n" +
		"mget *\n" +
		"\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDocument_StringOmitsEmptyAccount(t *testing.T) {
	doc := New()
	doc.Hosts["host.domain.com"] = Credential{Login: "log", Password: "pass"}

	if strings.Contains(doc.String(), "account") {
		t.Error("empty account should not be serialized")
	}
}

func TestQuoteValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "Plain value", value: "pass1", want: "pass1"},
		{name: "Empty value", value: "", want: `""`},
		{name: "Value with space", value: "pa ss", want: `"pa ss"`},
		{name: "Value with quote", value: `pa"ss`, want: `"pa\"ss"`},
		{name: "Value with backslash", value: `pa\ss`, want: `"pa\\ss"`},
		{name: "Value with tab", value: "pa\tss", want: "\"pa\tss\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quoteValue(tt.value); got != tt.want {
				t.Errorf("quoteValue(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
