// SPDX-License-Identifier: MIT
package grammar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/canto/expect"
	"gitlab.com/fisherprime/canto/lexer"
)

const yamlGrammar = `
language: pairs
types:
  - standard: whitespace
  - name: name
    pattern: "^[a-z]+"
    role: [entity, name]
  - standard: comma
    name: separator
  - literal: "."
    name: end
  - name: number
    pattern: "^[0-9]+"
    interpret: integer
`

const tomlGrammar = `
language = "pairs"

[[types]]
standard = "whitespace"

[[types]]
name = "name"
pattern = "^[a-z]+"
role = ["entity", "name"]

[[types]]
standard = "comma"
name = "separator"

[[types]]
literal = "."
name = "end"

[[types]]
name = "number"
pattern = "^[0-9]+"
interpret = "integer"
`

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"grammar.yaml", FormatYAML},
		{"grammar.YML", FormatYAML},
		{"grammar.toml", FormatTOML},
		{"grammar", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{name: "yaml", content: yamlGrammar, format: FormatYAML},
		{name: "toml", content: tomlGrammar, format: FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Parse([]byte(tt.content), tt.format)
			require.NoError(t, err)
			assert.Equal(t, "pairs", def.Language)
			require.Len(t, def.TokenTypes, 5)

			l, err := def.Lexer()
			require.NoError(t, err)
			assert.Equal(t, "pairs", l.LanguageName())

			tokens, err := l.Tokenize("foo 1, bar 2.")
			require.NoError(t, err)

			expect.TokenTypes(t, tokens, "name", "number", "separator", "name", "number", "end")
			expect.TokenContent(t, tokens, "foo", 1, ",", "bar", 2, ".")
			expect.At(t, tokens[5], 1, 13)
		})
	}
}

func TestParse_invalid(t *testing.T) {
	_, err := Parse([]byte("language: [unterminated"), FormatYAML)
	assert.ErrorIs(t, err, ErrGrammar)

	_, err = Parse([]byte(`language = `), FormatTOML)
	assert.ErrorIs(t, err, ErrGrammar)

	_, err = Parse(nil, Format(42))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestTokenTypeDefinition_Build(t *testing.T) {
	yes := true

	tests := []struct {
		name    string
		def     TokenTypeDefinition
		wantErr error
		check   func(t *testing.T, tt lexer.TokenType)
	}{
		{
			name: "standard",
			def:  TokenTypeDefinition{Standard: "open-paren"},
			check: func(t *testing.T, tt lexer.TokenType) {
				assert.Equal(t, lexer.NameOpenParen, tt.Name)
				assert.Equal(t, []string{lexer.RolePunctuation}, tt.Role)
			},
		},
		{
			name: "standard overrides",
			def:  TokenTypeDefinition{Standard: "integer", Name: "n", Role: []string{"number"}, Ignore: &yes},
			check: func(t *testing.T, tt lexer.TokenType) {
				assert.Equal(t, "n", tt.Name)
				assert.Equal(t, []string{"number"}, tt.Role)
				assert.True(t, tt.Ignore)
				assert.NotNil(t, tt.Interpret)
			},
		},
		{
			name: "literal",
			def:  TokenTypeDefinition{Literal: "let", Name: "let"},
			check: func(t *testing.T, tt lexer.TokenType) {
				src, ok := tt.PatternSource()
				assert.True(t, ok)
				assert.Equal(t, "let", src)
				assert.Equal(t, []string{lexer.RoleKeyword}, tt.Role)
			},
		},
		{
			name: "string interpreter",
			def:  TokenTypeDefinition{Pattern: "^[a-z]+", Name: "word", Interpret: InterpretString},
			check: func(t *testing.T, tt lexer.TokenType) {
				assert.Nil(t, tt.Interpret)
			},
		},
		{
			name: "float interpreter",
			def:  TokenTypeDefinition{Pattern: `^\d+\.\d+`, Name: "real", Interpret: InterpretFloat},
			check: func(t *testing.T, tt lexer.TokenType) {
				require.NotNil(t, tt.Interpret)

				v, err := tt.Interpret("1.5")
				require.NoError(t, err)
				assert.Equal(t, 1.5, v)
			},
		},
		{
			name:    "unknown standard",
			def:     TokenTypeDefinition{Standard: "semicolon"},
			wantErr: ErrUnknownStandard,
		},
		{
			name:    "unknown interpreter",
			def:     TokenTypeDefinition{Pattern: "^a", Name: "a", Interpret: "date"},
			wantErr: ErrUnknownInterpreter,
		},
		{
			name:    "ambiguous",
			def:     TokenTypeDefinition{Pattern: "^a", Literal: "a", Name: "a"},
			wantErr: ErrAmbiguousRecognizer,
		},
		{
			name:    "invalid pattern",
			def:     TokenTypeDefinition{Pattern: "^(a", Name: "a"},
			wantErr: lexer.ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.def.Build()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestDefinition_Lexer_invalid(t *testing.T) {
	def := &Definition{TokenTypes: []TokenTypeDefinition{{Standard: "comma"}, {Name: "nothing"}}}

	_, err := def.Lexer()
	assert.ErrorIs(t, err, lexer.ErrMissingRecognizer)
	assert.Contains(t, err.Error(), "token type 1")

	def = &Definition{TokenTypes: []TokenTypeDefinition{{Pattern: "^a"}}}
	_, err = def.Lexer()
	assert.ErrorIs(t, err, lexer.ErrMissingName)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "pairs.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlGrammar), 0o600))

	tomlPath := filepath.Join(dir, "pairs.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlGrammar), 0o600))

	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)

	fromTOML, err := Load(tomlPath)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)

	_, err = Load(filepath.Join(dir, "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	// YAML content behind a TOML extension.
	mislabeled := filepath.Join(dir, "pairs.conf")
	require.NoError(t, os.WriteFile(mislabeled, []byte(yamlGrammar), 0o600))
	_, err = Load(mislabeled)
	assert.ErrorIs(t, err, ErrGrammar)
}
