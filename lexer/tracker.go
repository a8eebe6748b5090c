// SPDX-License-Identifier: MIT
package lexer

// LineTracker accounts for line & character positions of consumed text.
//
// `\r\n` counts as one line break; lone `\r` or `\n` count as one each.
// The zero value is positioned at 1.1.
type LineTracker struct {
	// breaks & column are zero-based; see Line & Character.
	breaks int
	column int

	justSawCR bool
}

// NewLineTracker instantiates a LineTracker at 1.1.
func NewLineTracker() *LineTracker { return &LineTracker{} }

// Line obtains the 1-based line.
func (t *LineTracker) Line() int { return t.breaks + 1 }

// Character obtains the 1-based character within the line.
func (t *LineTracker) Character() int { return t.column + 1 }

// Consume advances the position past text, one rune at a time.
//
// State persists across calls.
func (t *LineTracker) Consume(text string) {
	for _, r := range text {
		switch r {
		case '\r':
			t.breaks++
			t.column = 0
			t.justSawCR = true
		case '\n':
			if !t.justSawCR {
				t.breaks++
			}
			t.column = 0
			t.justSawCR = false
		default:
			t.column++
			t.justSawCR = false
		}
	}
}
