package coding

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// linkPattern finds link candidates. Go's \b only knows ASCII word
// characters, so the word boundaries around a link are checked by findLinks.
var linkPattern = regexp.MustCompile(`(?i)(https?://|www\.)[^\s\v\x{85}\p{Z}]+`)

// Block is a run of text that word wrap keeps in one part whenever it fits.
// Length is the cost of Content under the message encoding.
type Block struct {
	Content string
	Length  int
	IsLink  bool
}

// SplitBlocks cuts text into links, words and single punctuation or
// whitespace characters. Concatenating the contents gives back text.
func SplitBlocks(text string, enc Encoding) ([]Block, error) {
	meter := enc.Meter()
	var blocks []Block

	emit := func(content string, isLink bool) error {
		length, err := meter.Len(content)
		if err != nil {
			return err
		}
		blocks = append(blocks, Block{Content: content, Length: length, IsLink: isLink})
		return nil
	}

	prev := 0
	for _, loc := range findLinks(text) {
		if err := splitWords(text[prev:loc[0]], emit); err != nil {
			return nil, err
		}
		if err := emit(text[loc[0]:loc[1]], true); err != nil {
			return nil, err
		}
		prev = loc[1]
	}
	if err := splitWords(text[prev:], emit); err != nil {
		return nil, err
	}
	return blocks, nil
}

// splitWords emits maximal runs of word characters, and every punctuation
// or whitespace rune on its own.
func splitWords(span string, emit func(string, bool) error) error {
	start := 0
	for i := 0; i < len(span); {
		r, size := utf8.DecodeRuneInString(span[i:])
		if unicode.IsPunct(r) || unicode.IsSpace(r) {
			if start < i {
				if err := emit(span[start:i], false); err != nil {
					return err
				}
			}
			if err := emit(span[i:i+size], false); err != nil {
				return err
			}
			start = i + size
		}
		i += size
	}
	if start < len(span) {
		return emit(span[start:], false)
	}
	return nil
}

// findLinks returns the byte ranges of the links in text. A link starts at a
// word boundary and ends after the last word rune of its run of non-space
// characters, so trailing punctuation stays outside.
func findLinks(text string) [][2]int {
	var links [][2]int
	for pos := 0; pos < len(text); {
		loc := linkPattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start, schemeEnd, end := pos+loc[0], pos+loc[3], pos+loc[1]
		_, size := utf8.DecodeRuneInString(text[start:])

		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if start > 0 && isWordRune(prev) {
			pos = start + size
			continue
		}

		end = lastWordEnd(text, schemeEnd, end)
		if end < 0 {
			pos = start + size
			continue
		}

		links = append(links, [2]int{start, end})
		pos = end
	}
	return links
}

// lastWordEnd returns the offset just past the last word rune in
// text[from:to], or -1 when there is none.
func lastWordEnd(text string, from, to int) int {
	for i := to; i > from; {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if isWordRune(r) {
			return i
		}
		i -= size
	}
	return -1
}

// isWordRune matches the regexp word class in its Unicode form: letters,
// non-spacing marks, decimal digits and connector punctuation.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Nd, r) || unicode.Is(unicode.Pc, r)
}
