package scanner

import "strings"

// CommentMatcher recognizes single-line and multi-line comments. It is
// stateful: once a multi-line start marker is seen, every subsequent line is
// consumed as comment body until the end marker appears. The comment body
// itself is never emitted as tokens; only the markers are.
type CommentMatcher struct {
	start  Symbol // multi-line start marker
	end    Symbol // multi-line end marker
	single Symbol // rest-of-line marker
	inside bool
}

// NewCommentMatcher creates a comment matcher for the given multi-line
// start/end markers and single-line marker.
func NewCommentMatcher(start, end, single Symbol) *CommentMatcher {
	return &CommentMatcher{start: start, end: end, single: single}
}

// Match recognizes comment markers at the start of rest. While inside a
// multi-line comment it always matches: either up to and including the end
// marker, or the whole remaining line when the end marker is absent.
func (m *CommentMatcher) Match(rest string) (Lexeme, int, bool) {
	if m.inside {
		if i := strings.Index(rest, m.end.Literal); i >= 0 {
			m.inside = false
			return Lexeme{Kind: m.end.Kind}, i + len(m.end.Literal), true
		}
		// No end marker on this line; swallow the rest as comment body
		// and stay inside for the next line.
		return Lexeme{Kind: m.end.Kind}, len(rest), true
	}

	if m.single.Literal != "" && strings.HasPrefix(rest, m.single.Literal) {
		return Lexeme{Kind: m.single.Kind}, len(rest), true
	}

	if m.start.Literal != "" && strings.HasPrefix(rest, m.start.Literal) {
		// Only the marker itself is consumed. If the end marker sits on
		// the same line the next Match call finds it from the new cursor.
		m.inside = true
		return Lexeme{Kind: m.start.Kind}, len(m.start.Literal), true
	}

	return Lexeme{}, 0, false
}

// Finalize fails when the input ended inside a multi-line comment. The
// reported position is the innermost unresolved opener: the most recent
// start-marker token in the emitted sequence.
func (m *CommentMatcher) Finalize(tokens []Token) error {
	if !m.inside {
		return nil
	}
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].Lexeme.Kind == m.start.Kind {
			return &UnterminatedError{Pos: tokens[i].Position}
		}
	}
	return nil
}

// Reset clears the multi-line state so the matcher can serve a fresh scan.
func (m *CommentMatcher) Reset() {
	m.inside = false
}
