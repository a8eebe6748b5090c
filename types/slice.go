// SPDX-License-Identifier: MIT
package types

import (
	"strings"
)

type (
	// StringSlice for `string`.
	StringSlice []string
)

// Locate for `StringSlice`.
//
// Returns -1 for absent values.
func (sl *StringSlice) Locate(val string) (resl int) {
	resl = -1

	for index := range *sl {
		if (*sl)[index] == val {
			resl = index
			return
		}
	}

	return
}

// UniqueAppend to `StringSlice`, preserving the first occurrence of each value.
func (sl *StringSlice) UniqueAppend(values ...string) {
	if len(values) < 1 {
		return
	}

	for index := range values {
		newValue := values[index]
		if sl.Locate(newValue) > -1 {
			continue
		}

		*sl = append(*sl, newValue)
	}
}

// Join the `StringSlice` values with sep.
func (sl *StringSlice) Join(sep string) string { return strings.Join(*sl, sep) }
