// File: document.go
// Title: Netrc Document Model
// Description: Implements the Credential and Document types that hold the
//              parsed contents of a netrc file. Documents are plain value
//              containers without background resources; a parse constructs
//              one document, and callers may read it from multiple
//              goroutines as long as nobody mutates it.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial document model with lookup and serialization

package document

import (
	"sort"
	"strings"
)

// DefaultHost is the reserved host key for the fallback entry produced by
// a "default" declaration.
const DefaultHost = "default"

// Credential holds the login data for a single host. Fields that were
// omitted in the source file stay empty strings; an explicitly empty
// quoted value ("") is indistinguishable from an omitted field.
type Credential struct {
	// Login identifies a user on the remote machine.
	Login string

	// Account supplies an additional account password.
	Account string

	// Password supplies the password for the login.
	Password string
}

// IsZero reports whether all credential fields are empty.
func (c Credential) IsZero() bool {
	return c.Login == "" && c.Account == "" && c.Password == ""
}

// Document represents a fully parsed netrc file.
type Document struct {
	// Hosts maps host names to their credentials. Host names are
	// case-sensitive and unique; the last declaration for a host wins.
	// The key "default" holds the fallback entry.
	Hosts map[string]Credential

	// Macros maps macro names to their trimmed body lines in original
	// order. The last definition for a name wins.
	Macros map[string][]string
}

// New creates an empty document with initialized tables.
func New() *Document {
	return &Document{
		Hosts:  make(map[string]Credential),
		Macros: make(map[string][]string),
	}
}

// Lookup returns the credential for the given host, falling back to the
// "default" entry when no exact match exists. The second return value is
// false only when neither the host nor a default entry is present.
func (d *Document) Lookup(host string) (Credential, bool) {
	if cred, ok := d.Hosts[host]; ok {
		return cred, true
	}
	cred, ok := d.Hosts[DefaultHost]
	return cred, ok
}

// HostNames returns all host names in sorted order.
func (d *Document) HostNames() []string {
	names := make([]string, 0, len(d.Hosts))
	for name := range d.Hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MacroNames returns all macro names in sorted order.
func (d *Document) MacroNames() []string {
	names := make([]string, 0, len(d.Macros))
	for name := range d.Macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the document back to netrc text. Host entries come
// first in sorted order, then macros. Values that are empty or contain
// whitespace, quotes, or backslashes are emitted quoted so the output
// re-parses to an equal document; each macro block is terminated by a
// blank line for the same reason.
func (d *Document) String() string {
	var b strings.Builder

	for _, host := range d.HostNames() {
		cred := d.Hosts[host]
		b.WriteString("machine ")
		b.WriteString(quoteValue(host))
		b.WriteByte('\n')
		b.WriteString("\tlogin ")
		b.WriteString(quoteValue(cred.Login))
		b.WriteByte('\n')
		if cred.Account != "" {
			b.WriteString("\taccount ")
			b.WriteString(quoteValue(cred.Account))
			b.WriteByte('\n')
		}
		b.WriteString("\tpassword ")
		b.WriteString(quoteValue(cred.Password))
		b.WriteByte('\n')
	}

	for _, name := range d.MacroNames() {
		b.WriteString("macdef ")
		b.WriteString(quoteValue(name))
		b.WriteByte('\n')
		for _, line := range d.Macros[name] {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// quoteValue wraps a value in double quotes when emitting it bare would
// change its meaning on re-parse. Quotes and backslashes inside the
// value are backslash-escaped; other bytes are safe verbatim inside
// quotes.
func quoteValue(v string) string {
	if v == "" {
		return `""`
	}
	if !strings.ContainsAny(v, " \t\r\n\"\\") {
		return v
	}

	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		if v[i] == '"' || v[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(v[i])
	}
	b.WriteByte('"')
	return b.String()
}
