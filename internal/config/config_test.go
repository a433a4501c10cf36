package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/scanline/internal/scanner"
)

func TestDefaults_BuildsWorkingScanner(t *testing.T) {
	s, err := Defaults().Build()
	require.NoError(t, err)

	tokens, err := s.Scan("/* hi */ ( && ) // rest")
	require.NoError(t, err)

	kinds := make([]string, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Lexeme.Kind
	}
	assert.Equal(t, []string{
		DefaultBlockStartKind,
		DefaultBlockEndKind,
		"SYMB_LEFT_PAREN",
		"SYMB_AND",
		"SYMB_RIGHT_PAREN",
		DefaultLineKind,
	}, kinds)
}

func TestLoad_YamlDefinition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lang.yaml")
	def := `name: tiny
symbols:
  - literal: "->"
    kind: ARROW
  - literal: "-"
    kind: MINUS
comments:
  line: "#"
  line_kind: HASH_COMMENT
`
	require.NoError(t, os.WriteFile(path, []byte(def), 0644))

	lang, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", lang.Name)
	assert.Equal(t, "#", lang.Comments.Line)

	s, err := lang.Build()
	require.NoError(t, err)

	tokens, err := s.Scan("-> - # trailing")
	require.NoError(t, err)

	require.Len(t, tokens, 3)
	assert.Equal(t, "ARROW", tokens[0].Lexeme.Kind)
	assert.Equal(t, "MINUS", tokens[1].Lexeme.Kind)
	assert.Equal(t, "HASH_COMMENT", tokens[2].Lexeme.Kind)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		lang    Language
		wantErr string
	}{
		{
			name:    "empty definition",
			lang:    Language{Name: "empty"},
			wantErr: "no symbols or comment markers",
		},
		{
			name: "symbol missing kind",
			lang: Language{
				Name:    "bad",
				Symbols: []SymbolDef{{Literal: "!"}},
			},
			wantErr: "need both a literal and a kind",
		},
		{
			name: "block start without end",
			lang: Language{
				Name:     "bad",
				Table:    "! NOT",
				Comments: CommentsDef{BlockStart: "/*"},
			},
			wantErr: "must be configured together",
		},
		{
			name: "comments only is fine",
			lang: Language{
				Name:     "comments",
				Comments: CommentsDef{Line: ";"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lang.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBuild_MalformedTableFailsBeforeScan(t *testing.T) {
	lang := Language{
		Name:  "bad",
		Table: "! NOT\n&& AND extra-field",
	}

	_, err := lang.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbol table")
}

func TestBuild_ScannersAreIndependent(t *testing.T) {
	lang := Defaults()

	first, err := lang.Build()
	require.NoError(t, err)
	second, err := lang.Build()
	require.NoError(t, err)

	// Leave the first scanner inside an open block comment; a scanner
	// built separately must not inherit that state.
	_, err = first.Scan("/* left open")
	var unterminated *scanner.UnterminatedError
	require.ErrorAs(t, err, &unterminated)

	tokens, err := second.Scan(";")
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}

func TestWriteDefault_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langs", "sample.yaml")

	require.NoError(t, WriteDefault(path))

	lang, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults().Name, lang.Name)
	assert.Equal(t, Defaults().Comments, lang.Comments)

	_, err = lang.Build()
	require.NoError(t, err)

	// Never clobber an existing definition.
	require.Error(t, WriteDefault(path))
}
