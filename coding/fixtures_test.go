package coding_test

import (
	"strings"
)

const googleLink = "https://www.google.com/search?s=a&gs_l=gbb-ab.3..00.1365.188"

var (
	digits20  = strings.Repeat("0123456789", 2)
	digits40  = strings.Repeat("0123456789", 4)
	digits60  = strings.Repeat("0123456789", 6)
	digits100 = strings.Repeat("0123456789", 10)
	digits150 = strings.Repeat("0123456789", 15)

	// each whale is a surrogate pair: two UTF-16 code units
	whales30 = strings.Repeat("🐳", 30)
	whales35 = strings.Repeat("🐳", 35)
)

func joinParts(parts []string) string {
	return strings.Join(parts, "")
}
