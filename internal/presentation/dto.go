package presentation

import "github.com/zjrosen/scanline/internal/scanner"

// TokenDTO is the JSON shape of a token.
type TokenDTO struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Line  int    `json:"line"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// SymbolDTO is the JSON shape of a symbol table entry.
type SymbolDTO struct {
	Literal string `json:"literal"`
	Kind    string `json:"kind"`
}

// ToTokenDTOs converts tokens to their JSON representation.
func ToTokenDTOs(tokens []scanner.Token) []TokenDTO {
	out := make([]TokenDTO, len(tokens))
	for i, tok := range tokens {
		out[i] = TokenDTO{
			Kind:  tok.Lexeme.Kind,
			Text:  tok.Lexeme.Text,
			Line:  tok.Position.Line,
			Start: tok.Position.Start,
			End:   tok.Position.End,
		}
	}
	return out
}

// ToSymbolDTOs converts symbol table entries to their JSON representation.
func ToSymbolDTOs(symbols []scanner.Symbol) []SymbolDTO {
	out := make([]SymbolDTO, len(symbols))
	for i, sym := range symbols {
		out[i] = SymbolDTO{Literal: sym.Literal, Kind: sym.Kind}
	}
	return out
}
