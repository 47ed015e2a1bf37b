package coding

// Count returns the number of parts text needs without building them.
// It never returns less than one, even for empty text.
func Count(text string) int {
	units := utf16Len(text)
	if units <= UCS2SinglePart {
		return 1
	}

	if Detect(text) == UCS2 {
		return ceilDiv(units, UCS2MultiPart)
	}

	septets, err := gsm7Meter.Len(text)
	if err != nil {
		panic(err)
	}
	if septets <= GSM7SinglePart {
		return 1
	}
	return ceilDiv(septets, GSM7MultiPart)
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
