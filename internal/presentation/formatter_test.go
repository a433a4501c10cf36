package presentation

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/scanline/internal/scanner"
)

func testTokens() []scanner.Token {
	return []scanner.Token{
		{Lexeme: scanner.Lexeme{Kind: "SYMB_LEFT_PAREN", Text: "("}, Position: scanner.Position{Line: 0, Start: 0, End: 1}},
		{Lexeme: scanner.Lexeme{Kind: "SINGLE_COMMENT"}, Position: scanner.Position{Line: 1, Start: 0, End: 7}},
	}
}

func TestFormatTokens(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	require.NoError(t, f.FormatTokens(testTokens()))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "SYMB_LEFT_PAREN")
	assert.Contains(t, lines[0], "0:0-1")
	assert.Contains(t, lines[0], `"("`)
	assert.Contains(t, lines[1], "SINGLE_COMMENT")
	assert.NotContains(t, lines[1], `""`, "synthetic tokens have no text column")
}

func TestFormatTokensJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	require.NoError(t, f.FormatTokensJSON(testTokens()))

	var decoded []TokenDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, TokenDTO{Kind: "SYMB_LEFT_PAREN", Text: "(", Line: 0, Start: 0, End: 1}, decoded[0])
	assert.Empty(t, decoded[1].Text)
}

func TestFormatSymbols(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	require.NoError(t, f.FormatSymbols([]scanner.Symbol{
		{Literal: "!==", Kind: "XOR"},
		{Literal: "!", Kind: "NOT"},
	}))

	var decoded []SymbolDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []SymbolDTO{
		{Literal: "!==", Kind: "XOR"},
		{Literal: "!", Kind: "NOT"},
	}, decoded)
}

func TestFormatDiagnostic_Unmatched(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	err := &scanner.UnmatchedError{Line: 2, Col: 4, LineText: "( ) @@"}
	require.NoError(t, f.FormatDiagnostic(err))

	out := buf.String()
	assert.Contains(t, out, "2:4")
	assert.Contains(t, out, "( ) @@")

	// Caret sits under column 4.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	caretLine := lines[len(lines)-1]
	assert.Equal(t, "  "+strings.Repeat(" ", 4)+"^", caretLine)
}

func TestFormatDiagnostic_Unterminated(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	err := &scanner.UnterminatedError{Pos: scanner.Position{Line: 3, Start: 3, End: 5}}
	require.NoError(t, f.FormatDiagnostic(err))

	assert.Contains(t, buf.String(), "3:3")
	assert.Contains(t, buf.String(), "unterminated comment")
}
