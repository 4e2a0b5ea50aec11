// File: parser.go
// Title: Netrc Recursive Descent Parser
// Description: Implements the parsing phase of netrc processing. Drives
//              the tokenizer through a small state machine recognizing
//              toplevel declarations (machine, default, macdef) and the
//              attribute keywords within an entry, and populates the
//              credential and macro tables of a document.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strings"

	"github.com/msto63/netrc/document"
)

// Netrc keywords. Attribute keywords are unordered and individually
// optional within an entry; "user" is a historical alias for "login".
const (
	kwMachine  = "machine"
	kwDefault  = "default"
	kwMacdef   = "macdef"
	kwLogin    = "login"
	kwUser     = "user"
	kwAccount  = "account"
	kwPassword = "password"
)

// ParseError represents a netrc parsing error with the 1-based line
// number at which the offending token was read.
type ParseError struct {
	Lineno  int
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing error: %s (line %d)", e.Message, e.Lineno)
}

// Parser interprets a token stream as a sequence of toplevel
// declarations. It owns the resulting document entirely; the lexer has
// no knowledge of netrc semantics.
type Parser struct {
	lexer *Lexer
}

// Parse parses the full contents of a netrc file and returns the
// populated document. A parse either succeeds completely or fails with
// a *ParseError; no partially filled document is ever returned.
func Parse(input string) (*document.Document, error) {
	p := &Parser{lexer: NewLexer(input)}
	return p.parseDocument()
}

// parseDocument is the toplevel state machine loop.
func (p *Parser) parseDocument() (*document.Document, error) {
	doc := document.New()

	for {
		saved := p.lexer.Line()
		tok := p.lexer.NextToken()
		if tok == "" {
			break
		}

		if tok[0] == '#' {
			// A lone '#' that did not cross a newline starts a
			// full-line comment; longer '#'-tokens are no-ops.
			if len(tok) == 1 && p.lexer.Line() == saved {
				p.lexer.ReadLine()
			}
			continue
		}

		var entry string
		switch tok {
		case kwMachine:
			entry = p.lexer.NextToken()
		case kwDefault:
			entry = document.DefaultHost
		case kwMacdef:
			name := p.lexer.NextToken()
			doc.Macros[name] = p.parseMacroBody()
			continue
		default:
			return nil, &ParseError{
				Lineno:  p.lexer.Line(),
				Message: fmt.Sprintf("bad toplevel token '%s'", tok),
			}
		}

		if entry == "" {
			return nil, &ParseError{
				Lineno:  p.lexer.Line(),
				Message: fmt.Sprintf("missing '%s' name", tok),
			}
		}

		cred, err := p.parseAttributes()
		if err != nil {
			return nil, err
		}
		// Last declaration for a host wins.
		doc.Hosts[entry] = cred
	}

	return doc, nil
}

// parseMacroBody collects the trimmed body lines of a macdef, stopping
// at the first line that is blank after trimming or at end of input.
func (p *Parser) parseMacroBody() []string {
	lines := []string{}
	for {
		line := strings.TrimSpace(p.lexer.ReadLine())
		if line == "" {
			return lines
		}
		lines = append(lines, line)
	}
}

// parseAttributes reads attribute tokens for one machine/default entry
// until the next toplevel keyword or end-of-stream, which is pushed back
// for the toplevel loop to reprocess.
func (p *Parser) parseAttributes() (document.Credential, error) {
	var cred document.Credential

	for {
		saved := p.lexer.Line()
		tok := p.lexer.NextToken()

		if tok != "" && tok[0] == '#' {
			if len(tok) == 1 && p.lexer.Line() == saved {
				p.lexer.ReadLine()
			}
			continue
		}

		switch tok {
		case "", kwMachine, kwDefault, kwMacdef:
			p.lexer.PushBack(tok)
			return cred, nil
		case kwLogin, kwUser:
			cred.Login = p.lexer.NextToken()
		case kwAccount:
			cred.Account = p.lexer.NextToken()
		case kwPassword:
			cred.Password = p.lexer.NextToken()
		default:
			return cred, &ParseError{
				Lineno:  p.lexer.Line(),
				Message: fmt.Sprintf("bad follower token '%s'", tok),
			}
		}
	}
}
