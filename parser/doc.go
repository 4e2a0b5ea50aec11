// File: doc.go
// Title: Netrc Parser Package Documentation
// Description: Documents the tokenizer and recursive-descent parser that
//              turn netrc text into a document.Document. Covers the
//              quoting, escaping, and comment rules inherited from the
//              historical reference implementation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial parser implementation

/*
Package parser implements parsing of the netrc credential file format.

The package consists of two layers:

  • Lexer: a lazy, quote-aware tokenizer with line tracking and one-token
    pushback. It has no knowledge of netrc keywords or comments.
  • Parser: a small state machine over the token stream that recognizes
    the toplevel keywords (machine, default, macdef) and the attribute
    keywords (login/user, account, password) and populates the document
    tables.

Tokenization follows the historically permissive rules: a backslash
escapes the following character both inside and outside quotes, an
unterminated quoted token yields what accumulated, and a quoted empty
string ("") is a valid empty token. Comment recognition is positional
and lives entirely in the parser: a lone '#' token that did not cross a
newline discards the remainder of its line.

Parsing is a pure, single-pass operation over an in-memory string. It
performs no I/O and no logging; errors are returned as values.
*/
package parser
