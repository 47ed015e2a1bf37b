package coding

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// lookalikes are characters word processors like to insert in place of
// their GSM-7 counterparts.
var lookalikes = map[rune]rune{
	'\u2018': '\'', // left single quote
	'\u2019': '\'', // right single quote
	'\u201A': '\'',
	'\u2032': '\'', // prime
	'`':      '\'',
	'\u00B4': '\'', // acute accent
	'\u201C': '"',  // left double quote
	'\u201D': '"',  // right double quote
	'\u201E': '"',
	'\u2033': '"',
	'\u00AB': '"',
	'\u00BB': '"',
	'\u2010': '-', // hyphen
	'\u2013': '-', // en dash
	'\u2014': '-', // em dash
	'\u2212': '-', // minus sign
	'\u00A0': ' ', // no-break space
	'\u2009': ' ', // thin space
	'\u202F': ' ', // narrow no-break space
	'\t':     ' ',
}

// replacement is written for characters with no GSM-7 equivalent.
const replacement = '?'

// Sanitize forces text into the GSM-7 alphabet so it is sent as GSM7.
// Look-alike punctuation is substituted, accented letters lose their accent
// when the bare letter exists in the alphabet, and anything else becomes '?'.
func Sanitize(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))

	for _, r := range text {
		switch {
		case IsGSM7(r):
			builder.WriteRune(r)
		case lookalikes[r] != 0:
			builder.WriteRune(lookalikes[r])
		default:
			if base, ok := stripAccent(r); ok {
				builder.WriteRune(base)
			} else {
				builder.WriteRune(replacement)
			}
		}
	}
	return builder.String()
}

// stripAccent decomposes r and returns its base letter when r is that
// letter followed only by combining marks, and the letter is GSM-7.
func stripAccent(r rune) (rune, bool) {
	decomposed := norm.NFD.String(string(r))
	base, size := utf8.DecodeRuneInString(decomposed)
	if size == len(decomposed) {
		return 0, false
	}
	for _, mark := range decomposed[size:] {
		if !unicode.Is(unicode.Mn, mark) {
			return 0, false
		}
	}
	return base, IsGSM7(base)
}
