// File: netrc.go
// Title: Netrc Facade Implementation
// Description: Implements the top-level entry points for parsing netrc
//              content, loading netrc files from disk, and locating the
//              user's netrc file across platforms.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package netrc

import (
	"os"
	"path/filepath"
	"runtime"

	nrcerror "github.com/msto63/netrc/core/error"
	"github.com/msto63/netrc/document"
	"github.com/msto63/netrc/parser"
)

// Document holds the parsed contents of a netrc file.
type Document = document.Document

// Credential holds the login data of a single machine entry.
type Credential = document.Credential

// ParseError describes a syntax error with its line number.
type ParseError = parser.ParseError

// DefaultHost is the key under which a "default" entry is stored.
const DefaultHost = document.DefaultHost

// Parse parses netrc content into a Document.
func Parse(content string) (*Document, error) {
	return parser.Parse(content)
}

// ParseFile reads and parses the netrc file at path.
func ParseFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nrcerror.Wrap(err, "I/O error").
			WithCode(nrcerror.CodeIOFailure).
			WithOperation("netrc.ParseFile").
			WithDetail("path", path)
	}
	doc, err := parser.Parse(string(content))
	if err != nil {
		// The path gives context, the wrapped *parser.ParseError stays
		// reachable via errors.As.
		return nil, nrcerror.Wrap(err, path).
			WithCode(nrcerror.CodeParseSyntax).
			WithOperation("netrc.ParseFile")
	}
	return doc, nil
}

// Locate finds the netrc file the current user would use. The NETRC
// environment variable wins when it points to an existing file,
// otherwise the home directory is searched for .netrc and, on Windows,
// _netrc. The second return value reports whether a file was found.
func Locate() (string, bool) {
	if path := os.Getenv("NETRC"); path != "" {
		if fileExists(path) {
			return path, true
		}
		return "", false
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}

	names := []string{".netrc"}
	if runtime.GOOS == "windows" {
		names = append(names, "_netrc")
	}

	for _, name := range names {
		path := filepath.Join(home, name)
		if fileExists(path) {
			return path, true
		}
	}

	return "", false
}

// Load locates and parses the current user's netrc file.
func Load() (*Document, error) {
	path, ok := Locate()
	if !ok {
		return nil, nrcerror.New("no netrc file found").
			WithCode(nrcerror.CodeFileMissing).
			WithOperation("netrc.Load")
	}
	return ParseFile(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
