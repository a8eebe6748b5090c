// SPDX-License-Identifier: MIT
package lexer

import (
	"strconv"
	"strings"
)

const (
	unicodeEscapeDigits = 4
)

// JSONString matches double-quoted strings, decoding escape sequences into the Token content.
//
// Recognized escapes are `\t`, `\r`, `\n` & `\u` followed by four decimal digits; a `\u` not
// followed by four digits is kept verbatim. Any other escape, `\"` included, and unterminated
// strings are not matched.
func JSONString() TokenType {
	return TokenType{
		Name:       NameString,
		Recognizer: Consumer(consumeJSONString),
	}
}

func consumeJSONString(remaining string) ConsumeResult {
	if !strings.HasPrefix(remaining, `"`) {
		return NoMatch()
	}

	var content strings.Builder
	for pos := 1; pos < len(remaining); {
		ch := remaining[pos]
		pos++

		switch ch {
		case '"':
			return Match(remaining[:pos], content.String())
		case '\\':
			if pos >= len(remaining) {
				return NoMatch()
			}
			escaped := remaining[pos]
			pos++

			switch escaped {
			case 't':
				content.WriteByte('\t')
			case 'r':
				content.WriteByte('\r')
			case 'n':
				content.WriteByte('\n')
			case 'u':
				digits, ok := unicodeDigits(remaining[pos:])
				if !ok {
					content.WriteString(`\u`)
					continue
				}
				pos += unicodeEscapeDigits

				// Digits are always decimal & within range.
				codePoint, _ := strconv.Atoi(digits)
				content.WriteRune(rune(codePoint))
			default:
				// `\"` & meaningless escapes like `\q`.
				return NoMatch()
			}
		default:
			// Multi-byte runes are copied a byte at a time.
			content.WriteByte(ch)
		}
	}

	// Unterminated.
	return NoMatch()
}

// unicodeDigits obtains the four decimal digits starting src.
func unicodeDigits(src string) (digits string, ok bool) {
	if len(src) < unicodeEscapeDigits {
		return
	}

	digits = src[:unicodeEscapeDigits]
	for index := 0; index < unicodeEscapeDigits; index++ {
		if digits[index] < '0' || digits[index] > '9' {
			return "", false
		}
	}

	return digits, true
}
