package coding

// The functions below take *string so that callers decoding optional input
// (JSON null, an unset field) can pass it through unchanged.

// DetectEncoding is Detect for optional input. It fails with ErrNullInput
// when text is nil.
func DetectEncoding(text *string) (Encoding, error) {
	if text == nil {
		return GSM7, ErrNullInput
	}
	return Detect(*text), nil
}

// CountParts is Count for optional input. It fails with ErrNullInput when
// text is nil.
func CountParts(text *string) (int, error) {
	if text == nil {
		return 0, ErrNullInput
	}
	return Count(*text), nil
}

// NormalizeNewlinesPtr is NormalizeNewlines for optional input; nil stays nil.
func NormalizeNewlinesPtr(text *string) *string {
	if text == nil {
		return nil
	}
	normalized := NormalizeNewlines(*text)
	return &normalized
}

// SplitWithWordWrap is Split for optional input; nil is treated as empty.
func SplitWithWordWrap(text *string) Result {
	if text == nil {
		return Split("")
	}
	return Split(*text)
}
