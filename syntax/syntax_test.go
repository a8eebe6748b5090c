// SPDX-License-Identifier: MIT
package syntax

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"

	"gitlab.com/fisherprime/canto/example"
	"gitlab.com/fisherprime/canto/lexer"
)

func TestBuild(t *testing.T) {
	l, err := example.NewLexer(lexer.WithLanguageName("pairs"))
	require.NoError(t, err)

	def, err := Build(l)
	require.NoError(t, err)

	assert.Equal(t, "pairs", def.Name)
	assert.Equal(t, "source.pairs", def.ScopeName)
	assert.Equal(t, []Rule{
		{Match: `[ \t]+`, Name: "ws.pairs"},
		{Match: `[a-z]+`, Name: "entity.name.pairs"},
		{Match: `,`, Name: "punctuation.comma.pairs"},
		{Match: `\.`, Name: "punctuation.period.pairs"},
		{Match: `-?\d+`, Name: "constant.numeric.integer.pairs"},
	}, def.Patterns)
}

func TestBuild_noPattern(t *testing.T) {
	l := lexer.New()
	require.NoError(t, l.AddTokenTypes(lexer.Comma(), lexer.JSONString()))

	_, err := Build(l)
	assert.ErrorIs(t, err, ErrNoPattern)
	assert.Contains(t, err.Error(), lexer.NameString)

	_, err = Generate(l)
	assert.ErrorIs(t, err, ErrNoPattern)

	assert.ErrorIs(t, Write(&bytes.Buffer{}, l), ErrNoPattern)
}

func TestScopeName(t *testing.T) {
	tests := []struct {
		name     string
		tt       lexer.TokenType
		language string
		want     string
	}{
		{
			name:     "keyword",
			tt:       lexer.Constant("let", "let"),
			language: "mylanguage",
			want:     "keyword.let.mylanguage",
		},
		{
			name: "no roles",
			tt:   lexer.TokenType{Name: "word"},
			want: "word",
		},
		{
			name:     "repeated parts",
			tt:       lexer.TokenType{Name: "name", Role: []string{"entity", "name", "entity"}},
			language: "name",
			want:     "entity.name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScopeName(&tt.tt, tt.language))
		})
	}
}

func TestGenerate(t *testing.T) {
	l, err := example.NewLexer(lexer.WithLanguageName("pairs"))
	require.NoError(t, err)

	output, err := Generate(l)
	require.NoError(t, err)
	require.NotEmpty(t, output)

	assert.Contains(t, string(output), "<string>source.pairs</string>")
	assert.Contains(t, string(output), "<string>punctuation.comma.pairs</string>")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, l))

	var fromGenerate, fromWrite Definition
	_, err = plist.Unmarshal(output, &fromGenerate)
	require.NoError(t, err)
	_, err = plist.Unmarshal(buf.Bytes(), &fromWrite)
	require.NoError(t, err)

	assert.Equal(t, fromGenerate, fromWrite)
	assert.Len(t, fromWrite.Patterns, 5)
}
