// SPDX-License-Identifier: MIT

// Package parser provides the lookahead & match primitives recursive-descent grammars are
// built from.
package parser

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/canto/lexer"
)

type (
	// Parser is a cursor over a Token sequence.
	//
	// Grammars embed it & compose LA1, Match, EOF & ExpectEOF into rules. A Parser has a single
	// owner; synchronization is unnecessary.
	Parser struct {
		logger logrus.FieldLogger
		debug  bool

		tokens []lexer.Token
		// cursor indexes the next unconsumed Token.
		cursor int
	}

	// Option defines the Parser functional option type.
	Option func(*Parser)
)

// Error kind.
var ErrParse = errors.New("parse error")

// Parsing errors.
var (
	ErrNoTokens          = fmt.Errorf("%w: no tokens provided to the parser", ErrParse)
	ErrNoTokensAvailable = fmt.Errorf("%w: no tokens available", ErrParse)
	ErrUnexpectedEOF     = fmt.Errorf("%w: unexpected EOF", ErrParse)
	ErrUnexpectedToken   = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrExpectedEOF       = fmt.Errorf("%w: expected EOF", ErrParse)
	ErrUnexpectedContent = fmt.Errorf("%w: unexpected token content", ErrParse)
)

// New instantiates a Parser without tokens.
func New(opts ...Option) *Parser {
	p := &Parser{logger: logrus.New()}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(p *Parser) { p.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(p *Parser) { p.logger = logger } }

// Initialize installs the Token sequence, resetting the cursor.
//
// A nil sequence is rejected; an empty one is at EOF.
func (p *Parser) Initialize(tokens []lexer.Token) (err error) {
	if tokens == nil {
		err = ErrNoTokens
		return
	}

	p.tokens, p.cursor = tokens, 0

	return
}

// EOF reports whether all Tokens have been consumed.
func (p *Parser) EOF() bool { return p.cursor >= len(p.tokens) }

// LA1 reports whether the next Token is of tokenType, without consuming it.
func (p *Parser) LA1(tokenType string) (ok bool, err error) {
	if p.EOF() {
		err = ErrNoTokensAvailable
		return
	}

	return p.tokens[p.cursor].Type == tokenType, nil
}

// Match consumes & returns the next Token, provided it is of tokenType.
func (p *Parser) Match(tokenType string) (token lexer.Token, err error) {
	if p.EOF() {
		err = fmt.Errorf("%w: expected %s but found EOF", ErrUnexpectedEOF, tokenType)
		return
	}

	next := p.tokens[p.cursor]
	if next.Type != tokenType {
		err = fmt.Errorf("%w: expected %s but found %s at l%d.%d", ErrUnexpectedToken,
			tokenType, next.Type, next.Line, next.Character)
		p.dump(err)

		return
	}
	p.cursor++

	if p.debug && p.logger != nil {
		p.logger.Debug("parser match: ", next)
	}

	return next, nil
}

// ExpectEOF fails if unconsumed Tokens remain.
func (p *Parser) ExpectEOF() (err error) {
	if p.EOF() {
		return
	}

	next := p.tokens[p.cursor]
	err = fmt.Errorf("%w but found %s at l%d.%d", ErrExpectedEOF, next.Type, next.Line, next.Character)
	p.dump(err)

	return
}

// Peek obtains the next Token without consuming it.
func (p *Parser) Peek() (token lexer.Token, ok bool) {
	if p.EOF() {
		return
	}

	return p.tokens[p.cursor], true
}

// Remaining lists the unconsumed Tokens.
func (p *Parser) Remaining() []lexer.Token {
	if p.EOF() {
		return []lexer.Token{}
	}

	return p.tokens[p.cursor:]
}

// MatchContent matches a Token of tokenType & asserts its content is a T.
//
// The Token is consumed even when its content is not a T.
func MatchContent[T any](p *Parser, tokenType string) (content T, err error) {
	token, err := p.Match(tokenType)
	if err != nil {
		return
	}

	content, ok := token.Content.(T)
	if !ok {
		err = fmt.Errorf("%w: %s at l%d.%d holds %T, wanted %T", ErrUnexpectedContent,
			tokenType, token.Line, token.Character, token.Content, content)
	}

	return
}

// dump logs the unconsumed Tokens following a failure.
func (p *Parser) dump(err error) {
	// Skip expensive operation if not debug.
	if !p.debug || p.logger == nil {
		return
	}

	p.logger.Debugf("parser: %v; remaining tokens: %s", err, spew.Sdump(p.Remaining()))
}
