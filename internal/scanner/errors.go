package scanner

import "fmt"

// UnmatchedError reports input that no registered matcher could classify.
// It carries the full line text so callers can render a pointer into it.
type UnmatchedError struct {
	Line     int
	Col      int
	LineText string
}

func (e *UnmatchedError) Error() string {
	return fmt.Sprintf("could not find matching token for substring %q (%d:%d)",
		e.LineText[e.Col:], e.Line, e.Col)
}

// UnterminatedError reports a construct still open at end of input,
// positioned at its innermost unresolved opening marker.
type UnterminatedError struct {
	Pos Position
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("could not find matching end comment for comment at (%d:%d)",
		e.Pos.Line, e.Pos.Start)
}
