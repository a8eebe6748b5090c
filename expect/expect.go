// SPDX-License-Identifier: MIT

// Package expect provides Token assertions for tests of lexers & grammars.
package expect

import (
	"errors"
	"fmt"

	"github.com/stretchr/testify/assert"

	"gitlab.com/fisherprime/canto/lexer"
)

type tHelper interface {
	Helper()
}

// Assertion errors.
var (
	ErrTokenCount = errors.New("token count mismatch")
	ErrTokenType  = errors.New("token type mismatch")
	ErrContent    = errors.New("token content mismatch")
	ErrPosition   = errors.New("token position mismatch")
)

// CheckTokenTypes verifies tokens have the expected types, in order.
func CheckTokenTypes(tokens []lexer.Token, expected ...string) error {
	if len(tokens) != len(expected) {
		return fmt.Errorf("%w: expected %d tokens but found %d", ErrTokenCount, len(expected), len(tokens))
	}

	for index := range tokens {
		if tokens[index].Type != expected[index] {
			return fmt.Errorf("%w: expected token type '%s' but found '%s' at index %d", ErrTokenType,
				expected[index], tokens[index].Type, index)
		}
	}

	return nil
}

// CheckTokenContent verifies tokens have the expected content, in order.
func CheckTokenContent(tokens []lexer.Token, expected ...any) error {
	if len(tokens) != len(expected) {
		return fmt.Errorf("%w: expected %d tokens but found %d", ErrTokenCount, len(expected), len(tokens))
	}

	for index := range tokens {
		if !assert.ObjectsAreEqual(expected[index], tokens[index].Content) {
			return fmt.Errorf("%w: expected token content '%v' but found '%v' at index %d", ErrContent,
				expected[index], tokens[index].Content, index)
		}
	}

	return nil
}

// CheckAt verifies a token's 1-based position.
func CheckAt(token lexer.Token, line, character int) error {
	if token.Line != line {
		return fmt.Errorf("%w: expected line to be %d but it was %d", ErrPosition, line, token.Line)
	}

	if token.Character != character {
		return fmt.Errorf("%w: expected character to be %d but it was %d", ErrPosition, character, token.Character)
	}

	return nil
}

// TokenTypes asserts tokens have the expected types, in order.
func TokenTypes(t assert.TestingT, tokens []lexer.Token, expected ...string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return report(t, CheckTokenTypes(tokens, expected...))
}

// TokenContent asserts tokens have the expected content, in order.
func TokenContent(t assert.TestingT, tokens []lexer.Token, expected ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return report(t, CheckTokenContent(tokens, expected...))
}

// At asserts a token's 1-based position.
func At(t assert.TestingT, token lexer.Token, line, character int) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return report(t, CheckAt(token, line, character))
}

func report(t assert.TestingT, err error) bool {
	if err == nil {
		return true
	}

	return assert.Fail(t, err.Error())
}
