// Package hexpattern expands patterns in which every circumflex is a
// placeholder for a random hexadecimal digit, such as "0x^^^^^^^" or
// "^^:^^:^^:^^:^^:^^".
package hexpattern

import (
	"strings"

	"github.com/buildbarn/bb-synthgen/pkg/random"
)

// Placeholder character that is replaced by a hexadecimal digit.
const Placeholder = '^'

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// Expand replaces every placeholder in a pattern with a random
// hexadecimal digit. All other characters are copied literally.
func Expand(generator random.SingleThreadedGenerator, pattern string, upper bool) string {
	digits := lowerDigits
	if upper {
		digits = upperDigits
	}
	var sb strings.Builder
	sb.Grow(len(pattern))
	for _, c := range pattern {
		if c == Placeholder {
			sb.WriteByte(digits[generator.IntN(len(digits))])
		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
