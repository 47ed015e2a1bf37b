package coding

// Result is the outcome of segmenting a message.
type Result struct {
	Encoding Encoding `json:"encoding"`
	Parts    []Part   `json:"parts"`
}

// Split detects the encoding of text and word-wraps it into parts.
// Empty text gives GSM7 and no parts.
func Split(text string) Result {
	if text == "" {
		return Result{Encoding: GSM7, Parts: []Part{}}
	}

	enc := Detect(text)
	blocks, err := SplitBlocks(text, enc)
	if err != nil {
		// Detect only reports GSM7 when every rune has a width.
		panic(err)
	}
	parts, err := Pack(blocks, enc)
	if err != nil {
		panic(err)
	}
	return Result{Encoding: enc, Parts: parts}
}

// Contents returns the text of every part, in order.
func (r Result) Contents() []string {
	contents := make([]string, len(r.Parts))
	for i, part := range r.Parts {
		contents[i] = part.Content
	}
	return contents
}
