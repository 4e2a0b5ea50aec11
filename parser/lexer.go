// File: lexer.go
// Title: Netrc Tokenizer
// Description: Implements the lexical analysis phase of netrc parsing.
//              Splits netrc text into whitespace-delimited, quote-aware
//              tokens with backslash escaping, tracks line numbers for
//              diagnostics, and supports one-token pushback so the parser
//              can peek at the next declaration.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial tokenizer implementation

package parser

// Lexer performs lexical analysis of netrc input. It is stateless except
// for its cursor, line counter, and pushback queue; a fresh Lexer is
// created per parse.
type Lexer struct {
	input    string   // Full netrc text
	pos      int      // Current byte position in input
	lineno   int      // Current line number (1-based)
	pushback []string // Tokens queued for replay (FIFO)
}

// NewLexer creates a new lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		lineno: 1,
	}
}

// Line returns the 1-based line number at the current cursor position.
func (l *Lexer) Line() int {
	return l.lineno
}

// readChar consumes one byte and advances the line counter when the
// consumed byte is a newline. The second return value is false at end
// of input.
func (l *Lexer) readChar() (byte, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.lineno++
	}
	return ch, true
}

// ReadLine consumes and returns all bytes up to (not including) the next
// newline or end of input. The newline itself is consumed. ReadLine is
// used for comment and macro bodies only; matching the reference
// implementation, it bypasses readChar and does not advance the line
// counter.
func (l *Lexer) ReadLine() string {
	start := l.pos
	for l.pos < len(l.input) {
		if l.input[l.pos] == '\n' {
			line := l.input[start:l.pos]
			l.pos++
			return line
		}
		l.pos++
	}
	return l.input[start:]
}

// NextToken returns the next token from the input. A queued pushback
// token is replayed first. At end of input the empty string is returned;
// the parser treats it as end-of-stream. Note that a quoted empty string
// also yields an empty token, which is why values are always read
// unconditionally and never compared against the end-of-stream marker.
func (l *Lexer) NextToken() string {
	if len(l.pushback) > 0 {
		tok := l.pushback[0]
		l.pushback = l.pushback[1:]
		return tok
	}

	var tok []byte
	for {
		ch, ok := l.readChar()
		if !ok {
			return string(tok)
		}

		switch {
		case isSpace(ch):
			continue

		case ch == '"':
			// Quoted mode: accumulate verbatim until an unescaped
			// closing quote. An unterminated quote degrades to
			// returning what accumulated once input ends.
			for {
				ch, ok := l.readChar()
				if !ok {
					return string(tok)
				}
				switch ch {
				case '"':
					return string(tok)
				case '\\':
					tok = append(tok, l.readEscaped())
				default:
					tok = append(tok, ch)
				}
			}

		default:
			// Unquoted mode: accumulate until whitespace. The
			// terminating whitespace is consumed but excluded.
			if ch == '\\' {
				ch = l.readEscaped()
			}
			tok = append(tok, ch)
			for {
				ch, ok := l.readChar()
				if !ok {
					return string(tok)
				}
				if isSpace(ch) {
					return string(tok)
				}
				if ch == '\\' {
					ch = l.readEscaped()
				}
				tok = append(tok, ch)
			}
		}
	}
}

// PushBack queues a previously read token for replay before tokenization
// resumes. The parser pushes at most one token at a time, giving it
// one-token lookahead without a bidirectional cursor.
func (l *Lexer) PushBack(token string) {
	l.pushback = append(l.pushback, token)
}

// readEscaped returns the byte following a backslash, or a literal space
// when the backslash is the last byte of input.
func (l *Lexer) readEscaped() byte {
	ch, ok := l.readChar()
	if !ok {
		return ' '
	}
	return ch
}

// isSpace reports whether the byte is a token-separating whitespace
// character.
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}
