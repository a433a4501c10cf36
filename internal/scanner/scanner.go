package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner drives a matcher set over input text line by line, skipping
// whitespace between matches. Each scanner owns an independent, initially
// empty matcher set; stateful matchers must not be shared between scanners.
type Scanner struct {
	matchers *MatcherSet
}

// New creates a scanner with no matchers registered.
func New() *Scanner {
	return &Scanner{matchers: NewMatcherSet()}
}

// AddMatcher registers a matcher. Matchers are tried in the order added.
func (s *Scanner) AddMatcher(m Matcher) {
	s.matchers.Add(m)
}

// Scan tokenizes input and returns the emitted tokens in order. It fails
// with an UnmatchedError when no matcher recognizes the text at the cursor,
// and with whatever a matcher's Finalize reports once the input is
// exhausted. On failure no tokens are returned.
func (s *Scanner) Scan(input string) ([]Token, error) {
	var tokens []Token

	for lineNumber, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		pos := 0
		for pos < len(line) {
			pos += leadingWhitespace(line[pos:])
			if pos == len(line) {
				break
			}

			lex, width, ok := s.matchers.Match(line[pos:])
			if !ok {
				return nil, &UnmatchedError{Line: lineNumber, Col: pos, LineText: line}
			}

			tokens = append(tokens, Token{
				Lexeme:   lex,
				Position: Position{Line: lineNumber, Start: pos, End: pos + width},
			})
			pos += width
		}
	}

	if err := s.matchers.Finalize(tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// leadingWhitespace returns the byte length of the whitespace run at the
// start of s.
func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !unicode.IsSpace(r) {
			break
		}
		n += size
	}
	return n
}
