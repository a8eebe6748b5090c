// SPDX-License-Identifier: MIT
package lexer

import (
	"regexp"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Token type roles.
const (
	RoleConstant    = "constant"
	RoleKeyword     = "keyword"
	RoleNumeric     = "numeric"
	RolePunctuation = "punctuation"
)

// Standard token type names.
const (
	NameInteger       = "integer"
	NameFloatingPoint = "floating point"
	NameWhitespace    = "whitespace"
	NameString        = "string"

	NameComma              = "comma"
	NamePeriod             = "period"
	NameStar               = "star"
	NameColon              = "colon"
	NameOpenParen          = "open paren"
	NameCloseParen         = "close paren"
	NameOpenBracket        = "open bracket"
	NameCloseBracket       = "close bracket"
	NameOpenSquareBracket  = "open square bracket"
	NameCloseSquareBracket = "close square bracket"
)

// standard maps reference names, as used in grammar files, to TokenType factories.
var standard = map[string]func() TokenType{
	"integer":              Integer,
	"floating-point":       FloatingPoint,
	"whitespace":           Whitespace,
	"whitespace-newlines":  WhitespaceWithNewlines,
	"json-string":          JSONString,
	"comma":                Comma,
	"period":               Period,
	"star":                 Star,
	"colon":                Colon,
	"open-paren":           OpenParen,
	"close-paren":          CloseParen,
	"open-bracket":         OpenBracket,
	"close-bracket":        CloseBracket,
	"open-square-bracket":  OpenSquareBracket,
	"close-square-bracket": CloseSquareBracket,
}

// Standard obtains a fresh standard TokenType by its reference name, e.g. "open-paren".
func Standard(ref string) (tt TokenType, ok bool) {
	factory, ok := standard[ref]
	if !ok {
		return
	}

	return factory(), true
}

// Constant matches the exact literal; role defaults to "keyword".
func Constant(literal, name string, role ...string) TokenType {
	if len(role) < 1 {
		role = []string{RoleKeyword}
	}

	return TokenType{
		Name:       name,
		Recognizer: MustPattern("^" + regexp.QuoteMeta(literal)),
		Role:       role,
	}
}

// Integer matches optionally negative decimal integers, interpreted as int.
func Integer() TokenType { return IntegerOf[int](NameInteger) }

// IntegerOf matches optionally negative decimal integers, interpreted as T.
func IntegerOf[T constraints.Signed](name string) TokenType {
	var zero T
	bitSize := int(unsafe.Sizeof(zero)) * 8

	return TokenType{
		Name:       name,
		Recognizer: MustPattern(`^-?\d+`),
		Role:       []string{RoleConstant, RoleNumeric},
		Interpret: func(consumed string) (any, error) {
			v, err := strconv.ParseInt(consumed, 10, bitSize)
			if err != nil {
				return nil, err
			}

			return T(v), nil
		},
	}
}

// FloatingPoint matches numbers with a mandatory fractional part, interpreted as float64.
//
// Leading digits are optional: ".5" is 0.5.
func FloatingPoint() TokenType { return FloatOf[float64](NameFloatingPoint) }

// FloatOf matches numbers with a mandatory fractional part, interpreted as T.
func FloatOf[T constraints.Float](name string) TokenType {
	var zero T
	bitSize := int(unsafe.Sizeof(zero)) * 8

	return TokenType{
		Name:       name,
		Recognizer: MustPattern(`^-?\d*\.\d+`),
		Role:       []string{RoleConstant, RoleNumeric},
		Interpret: func(consumed string) (any, error) {
			v, err := strconv.ParseFloat(consumed, bitSize)
			if err != nil {
				return nil, err
			}

			return T(v), nil
		},
	}
}

// Whitespace matches spaces & tabs; ignored by default.
func Whitespace() TokenType {
	return TokenType{
		Name:       NameWhitespace,
		Recognizer: MustPattern(`^[ \t]+`),
		Ignore:     true,
	}
}

// WhitespaceWithNewlines matches spaces, tabs, carriage returns & line feeds; ignored by default.
func WhitespaceWithNewlines() TokenType {
	return TokenType{
		Name:       NameWhitespace,
		Recognizer: MustPattern(`^[ \t\r\n]+`),
		Ignore:     true,
	}
}

func punctuation(literal, name string) TokenType { return Constant(literal, name, RolePunctuation) }

// Comma matches ",".
func Comma() TokenType { return punctuation(",", NameComma) }

// Period matches ".".
func Period() TokenType { return punctuation(".", NamePeriod) }

// Star matches "*".
func Star() TokenType { return punctuation("*", NameStar) }

// Colon matches ":".
func Colon() TokenType { return punctuation(":", NameColon) }

// OpenParen matches "(".
func OpenParen() TokenType { return punctuation("(", NameOpenParen) }

// CloseParen matches ")".
func CloseParen() TokenType { return punctuation(")", NameCloseParen) }

// OpenBracket matches "{".
func OpenBracket() TokenType { return punctuation("{", NameOpenBracket) }

// CloseBracket matches "}".
func CloseBracket() TokenType { return punctuation("}", NameCloseBracket) }

// OpenSquareBracket matches "[".
func OpenSquareBracket() TokenType { return punctuation("[", NameOpenSquareBracket) }

// CloseSquareBracket matches "]".
func CloseSquareBracket() TokenType { return punctuation("]", NameCloseSquareBracket) }
