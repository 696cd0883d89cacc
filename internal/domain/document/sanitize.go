package document

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReplacementChar stands in for anything the page encoding cannot hold.
const ReplacementChar = '?'

var typography = strings.NewReplacer(
	"₹", "Rs.", // rupee sign
	"—", "-",
	"–", "-",
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"…", "...",
)

// Sanitize maps text to ISO-8859-1 bytes. Known typographic characters are
// replaced by plain equivalents first; every other rune that has no Latin-1
// code point, and every invalid UTF-8 byte, becomes ReplacementChar.
// The returned string holds raw Latin-1 bytes, not UTF-8. lost counts the
// runes that were replaced by ReplacementChar.
func Sanitize(text string) (latin1 string, lost int) {
	text = typography.Replace(text)

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size

		if r == utf8.RuneError && size <= 1 {
			b.WriteByte(ReplacementChar)
			lost++
			continue
		}

		c, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b.WriteByte(ReplacementChar)
			lost++
			continue
		}
		b.WriteByte(c)
	}

	return b.String(), lost
}

// ToUTF8 decodes Latin-1 bytes produced by Sanitize back into a Go string.
func ToUTF8(latin1 string) string {
	out, err := charmap.ISO8859_1.NewDecoder().String(latin1)
	if err != nil {
		// every byte is a valid ISO-8859-1 code point
		return latin1
	}
	return out
}
