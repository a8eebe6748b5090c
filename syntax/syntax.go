// SPDX-License-Identifier: MIT

// Package syntax generates TextMate (tmLanguage) syntax-highlighting definitions from a
// Lexer's registered token types.
package syntax

import (
	"errors"
	"fmt"
	"io"

	"howett.net/plist"

	"gitlab.com/fisherprime/canto/lexer"
	"gitlab.com/fisherprime/canto/types"
)

type (
	// Registry is the read-only view of a Lexer the generator consumes.
	Registry interface {
		LanguageName() string
		TokenTypes() []lexer.TokenType
	}

	// Definition is a tmLanguage document.
	Definition struct {
		Name      string `plist:"name"`
		ScopeName string `plist:"scopeName"`
		Patterns  []Rule `plist:"patterns"`
	}

	// Rule highlights the text matched by Match with the Name scope.
	Rule struct {
		Match string `plist:"match"`
		Name  string `plist:"name"`
	}
)

const (
	scopeSeparator = "."
	scopePrefix    = "source"
	indent         = "\t"
)

// ErrNoPattern is returned for token types lacking a pattern, e.g. those using a Consumer.
var ErrNoPattern = errors.New("no pattern for token type")

var _ Registry = (*lexer.Lexer)(nil)

// Build assembles the Definition for the registered token types, in registration order.
func Build(r Registry) (def *Definition, err error) {
	language := r.LanguageName()
	tokenTypes := r.TokenTypes()

	def = &Definition{
		Name:      language,
		ScopeName: scopePrefix + scopeSeparator + language,
		Patterns:  make([]Rule, 0, len(tokenTypes)),
	}

	for index := range tokenTypes {
		tt := &tokenTypes[index]

		src, ok := tt.PatternSource()
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoPattern, tt.Name)
		}

		def.Patterns = append(def.Patterns, Rule{
			Match: src,
			Name:  ScopeName(tt, language),
		})
	}

	return
}

// ScopeName joins a token type's roles, its name & the language, dropping repeated parts.
//
// E.g. "keyword.let.mylanguage".
func ScopeName(tt *lexer.TokenType, language string) string {
	parts := make(types.StringSlice, 0, len(tt.Role)+2)
	parts.UniqueAppend(tt.Role...)
	parts.UniqueAppend(tt.Name)
	if language != "" {
		parts.UniqueAppend(language)
	}

	return parts.Join(scopeSeparator)
}

// Generate renders the Definition as an XML property list.
func Generate(r Registry) (output []byte, err error) {
	def, err := Build(r)
	if err != nil {
		return
	}

	return plist.MarshalIndent(def, plist.XMLFormat, indent)
}

// Write renders the Definition as an XML property list to w.
func Write(w io.Writer, r Registry) (err error) {
	def, err := Build(r)
	if err != nil {
		return
	}

	enc := plist.NewEncoderForFormat(w, plist.XMLFormat)
	enc.Indent(indent)

	return enc.Encode(def)
}
