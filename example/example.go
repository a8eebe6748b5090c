// SPDX-License-Identifier: MIT

// Package example is a sample grammar for comma-separated, period-terminated name/value pairs,
// e.g. `foo 1, bar 2.`.
package example

import (
	"gitlab.com/fisherprime/canto/lexer"
	"gitlab.com/fisherprime/canto/parser"
)

type (
	// Pair is a recognized name/value pair.
	Pair struct {
		Name  string `json:"name" yaml:"name"`
		Value int    `json:"value" yaml:"value"`
	}

	// Parser recognizes lists of name/value pairs.
	Parser struct {
		*parser.Parser
	}
)

// Token type names.
const (
	NameType       = "name"
	WhitespaceType = "ws"
)

// NewLexer instantiates a Lexer for the name/value pair language.
func NewLexer(opts ...lexer.Option) (l *lexer.Lexer, err error) {
	l = lexer.New(opts...)

	err = l.AddTokenTypes(
		lexer.TokenType{
			Name:       WhitespaceType,
			Recognizer: lexer.MustPattern(`[ \t]+`),
			Ignore:     true,
		},
		lexer.TokenType{
			Name:       NameType,
			Recognizer: lexer.MustPattern(`^[a-z]+`),
			Role:       []string{"entity", "name"},
		},
		lexer.Comma(),
		lexer.Period(),
		lexer.Integer(),
	)
	if err != nil {
		l = nil
	}

	return
}

// NewParser instantiates a Parser; Initialize it with Tokens before use.
func NewParser(opts ...parser.Option) *Parser { return &Parser{Parser: parser.New(opts...)} }

// Parse tokenizes & parses text.
func Parse(l *lexer.Lexer, text string, opts ...parser.Option) (pairs []Pair, err error) {
	tokens, err := l.Tokenize(text)
	if err != nil {
		return
	}

	p := NewParser(opts...)
	if err = p.Initialize(tokens); err != nil {
		return
	}

	return p.ListOfNameValuePairs()
}

// ListOfNameValuePairs recognizes `pair (',' pair)* '.'`.
func (p *Parser) ListOfNameValuePairs() (pairs []Pair, err error) {
	pair, err := p.nameValuePair()
	if err != nil {
		return
	}
	pairs = append(pairs, pair)

	for !p.EOF() {
		if ok, _ := p.LA1(lexer.NameComma); !ok {
			break
		}

		if _, err = p.Match(lexer.NameComma); err != nil {
			return
		}

		if pair, err = p.nameValuePair(); err != nil {
			return
		}
		pairs = append(pairs, pair)
	}

	if _, err = p.Match(lexer.NamePeriod); err != nil {
		return
	}

	return
}

// nameValuePair recognizes `name integer`.
func (p *Parser) nameValuePair() (pair Pair, err error) {
	if pair.Name, err = parser.MatchContent[string](p.Parser, NameType); err != nil {
		return
	}

	pair.Value, err = parser.MatchContent[int](p.Parser, lexer.NameInteger)

	return
}
