// Package scanner implements a line-oriented lexical scanner built from
// pluggable matchers. Matchers are tried in registration order against the
// unconsumed tail of the current line; the first match wins.
package scanner

import "fmt"

// Position identifies a half-open byte range [Start, End) on a zero-indexed
// line of the input. End is -1 for positions whose width is not yet known
// (used only in diagnostics).
type Position struct {
	Line  int
	Start int
	End   int
}

// String returns the position as "line:start-end".
func (p Position) String() string {
	if p.End < 0 {
		return fmt.Sprintf("%d:%d", p.Line, p.Start)
	}
	return fmt.Sprintf("%d:%d-%d", p.Line, p.Start, p.End)
}

// Lexeme is a classified unit of text, independent of where it occurred.
// Kind is an opaque tag chosen by the matcher that produced it. Text is the
// matched literal; it is empty for synthetic units such as comment markers.
type Lexeme struct {
	Kind string
	Text string
}

// Token pairs a lexeme with its source position. Tokens are immutable value
// objects; the scanner owns the sequence it returns.
type Token struct {
	Lexeme   Lexeme
	Position Position
}

// String returns a compact debug representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("(%s %q @%s)", t.Lexeme.Kind, t.Lexeme.Text, t.Position)
}
