package scanner

import (
	"fmt"
	"strings"
)

// Symbol pairs a literal with the token kind it produces.
type Symbol struct {
	Literal string
	Kind    string
}

// SymbolMatcher recognizes a prioritized list of literal symbols. Literals
// are tried in list order and the first one that prefixes the input wins, so
// a literal must be registered before any of its own prefixes ("!==" before
// "!=" before "!"). The matcher does not enforce this; it is a contract of
// correct configuration.
type SymbolMatcher struct {
	symbols []Symbol
}

// NewSymbolMatcher creates a symbol matcher, optionally seeded from a bulk
// table: one "literal kind" pair per line, fields separated by runs of
// whitespace. Blank lines are ignored; any other line that does not split
// into exactly two fields is a configuration error.
func NewSymbolMatcher(table string) (*SymbolMatcher, error) {
	m := &SymbolMatcher{}
	for _, line := range strings.Split(table, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("symbol table: could not find valid split for line %q", strings.TrimSpace(line))
		}
		m.symbols = append(m.symbols, Symbol{Literal: fields[0], Kind: fields[1]})
	}
	return m, nil
}

// AddSymbol appends a single symbol to the end of the try order.
func (m *SymbolMatcher) AddSymbol(literal, kind string) {
	m.symbols = append(m.symbols, Symbol{Literal: literal, Kind: kind})
}

// AddSymbols appends symbols, preserving their order.
func (m *SymbolMatcher) AddSymbols(symbols []Symbol) {
	m.symbols = append(m.symbols, symbols...)
}

// Symbols returns a copy of the configured symbol list.
func (m *SymbolMatcher) Symbols() []Symbol {
	out := make([]Symbol, len(m.symbols))
	copy(out, m.symbols)
	return out
}

// Match returns the first configured literal that prefixes rest.
func (m *SymbolMatcher) Match(rest string) (Lexeme, int, bool) {
	for _, sym := range m.symbols {
		// An empty literal would match everything with zero width and
		// stall the scanner.
		if sym.Literal == "" {
			continue
		}
		if strings.HasPrefix(rest, sym.Literal) {
			return Lexeme{Kind: sym.Kind, Text: sym.Literal}, len(sym.Literal), true
		}
	}
	return Lexeme{}, 0, false
}

// Finalize is a no-op; the symbol matcher carries no state between lines.
func (m *SymbolMatcher) Finalize([]Token) error {
	return nil
}
