// Package presentation handles output formatting for tokens, symbol tables,
// and scan diagnostics.
package presentation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/scanline/internal/scanner"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatTokens writes one token per line: kind, position, and the matched
// text when the token carries one.
func (f *Formatter) FormatTokens(tokens []scanner.Token) error {
	kindWidth := 0
	for _, tok := range tokens {
		if w := len(tok.Lexeme.Kind); w > kindWidth {
			kindWidth = w
		}
	}

	for _, tok := range tokens {
		kind := KindStyle.Render(fmt.Sprintf("%-*s", kindWidth, tok.Lexeme.Kind))
		pos := PositionStyle.Render(tok.Position.String())
		line := fmt.Sprintf("%s  %-9s", kind, pos)
		if tok.Lexeme.Text != "" {
			line += fmt.Sprintf("  %q", tok.Lexeme.Text)
		}
		if _, err := fmt.Fprintln(f.writer, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON formats tokens as indented JSON.
func (f *Formatter) FormatTokensJSON(tokens []scanner.Token) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ToTokenDTOs(tokens))
}

// FormatSymbols formats a symbol table as indented JSON.
func (f *Formatter) FormatSymbols(symbols []scanner.Symbol) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ToSymbolDTOs(symbols))
}

// FormatDiagnostic renders a scan failure. Unmatched-input failures get the
// offending line with a caret under the failing column; the caret offset is
// computed with display widths so wide runes keep it aligned.
func (f *Formatter) FormatDiagnostic(err error) error {
	var unmatched *scanner.UnmatchedError
	if errors.As(err, &unmatched) {
		header := ErrorStyle.Render(fmt.Sprintf("%d:%d: no matching token", unmatched.Line, unmatched.Col))
		pad := strings.Repeat(" ", runewidth.StringWidth(unmatched.LineText[:unmatched.Col]))
		_, werr := fmt.Fprintf(f.writer, "%s\n  %s\n  %s\n",
			header, unmatched.LineText, pad+CaretStyle.Render("^"))
		return werr
	}

	var unterminated *scanner.UnterminatedError
	if errors.As(err, &unterminated) {
		header := ErrorStyle.Render(fmt.Sprintf("%d:%d: unterminated comment",
			unterminated.Pos.Line, unterminated.Pos.Start))
		_, werr := fmt.Fprintf(f.writer, "%s\n  %s\n", header, err.Error())
		return werr
	}

	_, werr := fmt.Fprintln(f.writer, ErrorStyle.Render(err.Error()))
	return werr
}
