// Package config provides language definition types, defaults, and loading
// for scanline. A language definition names the symbol table and comment
// markers a scanner is built from.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/zjrosen/scanline/internal/log"
	"github.com/zjrosen/scanline/internal/scanner"
)

// Comment kinds used when a definition does not override them.
const (
	DefaultLineKind       = "SINGLE_COMMENT"
	DefaultBlockStartKind = "MULTILINE_START"
	DefaultBlockEndKind   = "MULTILINE_END"
)

// SymbolDef defines one literal and the token kind it produces.
type SymbolDef struct {
	Literal string `mapstructure:"literal" yaml:"literal"`
	Kind    string `mapstructure:"kind" yaml:"kind"`
}

// CommentsDef defines the comment markers of a language. Line comments run
// to the end of the line; block comments may span lines. BlockStart and
// BlockEnd must be configured together or not at all.
type CommentsDef struct {
	Line           string `mapstructure:"line" yaml:"line,omitempty"`
	LineKind       string `mapstructure:"line_kind" yaml:"line_kind,omitempty"`
	BlockStart     string `mapstructure:"block_start" yaml:"block_start,omitempty"`
	BlockStartKind string `mapstructure:"block_start_kind" yaml:"block_start_kind,omitempty"`
	BlockEnd       string `mapstructure:"block_end" yaml:"block_end,omitempty"`
	BlockEndKind   string `mapstructure:"block_end_kind" yaml:"block_end_kind,omitempty"`
}

// Language is a full language definition. Symbols may be given as a bulk
// Table ("literal kind" per line) or as structured Symbols entries; when
// both are present the table entries are tried first.
type Language struct {
	Name     string      `mapstructure:"name" yaml:"name"`
	Table    string      `mapstructure:"table" yaml:"table,omitempty"`
	Symbols  []SymbolDef `mapstructure:"symbols" yaml:"symbols,omitempty"`
	Comments CommentsDef `mapstructure:"comments" yaml:"comments"`
}

// Defaults returns the built-in sample language: a small expression language
// with C-style comments. Longer literals are listed before their prefixes,
// which first-match dispatch requires.
func Defaults() Language {
	return Language{
		Name: "sample",
		Table: `?     SYMB_TERNARY_START
                :     SYMB_COLON
                !==   SYMB_XOR
                !=    SYMB_XOR
                !     SYMB_NOT
                ~^    SYMB_XNOR
                ~     SYMB_NOT
                &&    SYMB_AND
                &     SYMB_AND
                ||    SYMB_OR
                |     SYMB_OR
                ^~    SYMB_XNOR
                ^     SYMB_XOR
                ===   SYMB_XNOR
                ==    SYMB_XNOR
                =     SYMB_EQ
                <->   SYMB_XNOR
                ->    SYMB_ARROW
                ;     SYMB_SEMICOLON
                (     SYMB_LEFT_PAREN
                )     SYMB_RIGHT_PAREN
                ,     SYMB_COMMA
                *     SYMB_STAR
                begin SYMB_BEGIN
                end   SYMB_END`,
		Comments: CommentsDef{
			Line:       "//",
			BlockStart: "/*",
			BlockEnd:   "*/",
		},
	}
}

// Load reads a language definition from a yaml file at path.
func Load(path string) (Language, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Language{}, fmt.Errorf("reading language definition: %w", err)
	}

	var lang Language
	if err := v.Unmarshal(&lang); err != nil {
		return Language{}, fmt.Errorf("parsing language definition: %w", err)
	}

	if err := lang.Validate(); err != nil {
		return Language{}, err
	}

	log.Debug(log.CatConfig, "Language definition loaded", "path", path, "name", lang.Name)
	return lang, nil
}

// Validate checks the definition for configuration errors.
func (l Language) Validate() error {
	for _, sym := range l.Symbols {
		if sym.Literal == "" || sym.Kind == "" {
			return fmt.Errorf("language %q: symbol entries need both a literal and a kind", l.Name)
		}
	}
	if (l.Comments.BlockStart == "") != (l.Comments.BlockEnd == "") {
		return fmt.Errorf("language %q: block_start and block_end must be configured together", l.Name)
	}
	if l.Table == "" && len(l.Symbols) == 0 && l.Comments.Line == "" && l.Comments.BlockStart == "" {
		return fmt.Errorf("language %q: no symbols or comment markers configured", l.Name)
	}
	return nil
}

// Build constructs a scanner from the definition. Comment matchers are
// registered before the symbol matcher so comment markers are never taken
// as symbols, matching the reference configuration. A malformed bulk table
// fails here, before any scan begins.
func (l Language) Build() (*scanner.Scanner, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	s := scanner.New()

	if l.Comments.Line != "" || l.Comments.BlockStart != "" {
		s.AddMatcher(l.commentMatcher())
	}

	symbols, err := l.symbolMatcher()
	if err != nil {
		return nil, err
	}
	s.AddMatcher(symbols)

	log.Debug(log.CatConfig, "Scanner built", "language", l.Name, "symbols", len(symbols.Symbols()))
	return s, nil
}

// SymbolTable returns the full symbol list in try order: bulk table entries
// first, then structured entries.
func (l Language) SymbolTable() ([]scanner.Symbol, error) {
	m, err := l.symbolMatcher()
	if err != nil {
		return nil, err
	}
	return m.Symbols(), nil
}

func (l Language) symbolMatcher() (*scanner.SymbolMatcher, error) {
	m, err := scanner.NewSymbolMatcher(l.Table)
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", l.Name, err)
	}
	for _, sym := range l.Symbols {
		m.AddSymbol(sym.Literal, sym.Kind)
	}
	return m, nil
}

func (l Language) commentMatcher() *scanner.CommentMatcher {
	c := l.Comments
	if c.LineKind == "" {
		c.LineKind = DefaultLineKind
	}
	if c.BlockStartKind == "" {
		c.BlockStartKind = DefaultBlockStartKind
	}
	if c.BlockEndKind == "" {
		c.BlockEndKind = DefaultBlockEndKind
	}
	return scanner.NewCommentMatcher(
		scanner.Symbol{Literal: c.BlockStart, Kind: c.BlockStartKind},
		scanner.Symbol{Literal: c.BlockEnd, Kind: c.BlockEndKind},
		scanner.Symbol{Literal: c.Line, Kind: c.LineKind},
	)
}
