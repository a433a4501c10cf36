package scanner

// Matcher recognizes zero or one lexical construct at the start of the
// unconsumed tail of a line. Implementations may carry state across calls
// within one scan (the comment matcher does); such state ties a matcher to a
// single scan at a time.
type Matcher interface {
	// Match examines rest, the unconsumed tail of the current line, and
	// returns the recognized lexeme, the number of bytes it consumes from
	// the start of rest, and whether anything matched. A successful match
	// must consume at least one byte or the scanner would never advance.
	Match(rest string) (Lexeme, int, bool)

	// Finalize is called once after the entire input has been scanned,
	// with the full emitted token sequence. A matcher left with open state
	// (an unterminated comment, say) reports it here. Stateless matchers
	// return nil.
	Finalize(tokens []Token) error
}

// MatcherSet is an ordered collection of matchers tried first-to-last.
// Registration order is the only tie-break: the first matcher to succeed
// wins, so callers must register longer literals before their own prefixes.
type MatcherSet struct {
	matchers []Matcher
}

// NewMatcherSet returns an empty matcher set. Every set owns its own
// registry; sets are never shared between scanners.
func NewMatcherSet() *MatcherSet {
	return &MatcherSet{}
}

// Add appends a matcher to the end of the try order.
func (s *MatcherSet) Add(m Matcher) {
	s.matchers = append(s.matchers, m)
}

// Len returns the number of registered matchers.
func (s *MatcherSet) Len() int {
	return len(s.matchers)
}

// Match tries each matcher in registration order and returns the first
// successful match. It reports no match only when every matcher declined.
func (s *MatcherSet) Match(rest string) (Lexeme, int, bool) {
	for _, m := range s.matchers {
		if lex, width, ok := m.Match(rest); ok {
			return lex, width, true
		}
	}
	return Lexeme{}, 0, false
}

// Finalize invokes Finalize on every matcher in registration order and
// returns the first error encountered, skipping the rest.
func (s *MatcherSet) Finalize(tokens []Token) error {
	for _, m := range s.matchers {
		if err := m.Finalize(tokens); err != nil {
			return err
		}
	}
	return nil
}
