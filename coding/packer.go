package coding

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Part is one transport segment. Length is its cost under the message
// encoding.
type Part struct {
	Content string `json:"content"`
	Length  int    `json:"length"`
}

// packer fills parts greedily under a fixed budget. A packer is used for a
// single pass; the multipart retry gets a fresh one.
type packer struct {
	meter   Meter
	budget  int
	parts   []Part
	current strings.Builder
	length  int
}

func newPacker(meter Meter, budget int) *packer {
	return &packer{meter: meter, budget: budget}
}

// Pack distributes blocks over parts. Blocks are packed against the
// single-part budget first; once a second part is needed the whole message
// is packed again against the multipart budget.
func Pack(blocks []Block, enc Encoding) ([]Part, error) {
	single, multi := enc.Budgets()
	meter := enc.Meter()

	trial := newPacker(meter, single)
	for _, block := range blocks {
		if err := trial.add(block); err != nil {
			return nil, err
		}
		if trial.multipart() {
			return packAll(blocks, meter, multi)
		}
	}
	return trial.finish(), nil
}

func packAll(blocks []Block, meter Meter, budget int) ([]Part, error) {
	p := newPacker(meter, budget)
	for _, block := range blocks {
		if err := p.add(block); err != nil {
			return nil, err
		}
	}
	return p.finish(), nil
}

// add appends block to the current part. A block that would overflow the
// current part but fits an empty one starts a new part; anything larger is
// cut rune by rune, never splitting the units of one rune (an escaped
// extension character or a surrogate pair) across parts.
func (p *packer) add(block Block) error {
	if p.length+block.Length > p.budget && block.Length <= p.budget {
		p.flush()
	}

	content := block.Content
	start := 0
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRuneInString(content[i:])
		cost, err := p.meter(r)
		if err != nil {
			return fmt.Errorf("pack %q: %w", block.Content, err)
		}
		if p.length+cost > p.budget {
			p.current.WriteString(content[start:i])
			start = i
			p.flush()
		}
		p.length += cost
		i += size
	}
	p.current.WriteString(content[start:])
	return nil
}

func (p *packer) flush() {
	if p.length == 0 && p.current.Len() == 0 {
		return
	}
	p.parts = append(p.parts, Part{Content: p.current.String(), Length: p.length})
	p.current.Reset()
	p.length = 0
}

// multipart reports whether the message has outgrown a single part.
func (p *packer) multipart() bool {
	return len(p.parts) > 1 || len(p.parts) == 1 && p.length > 0
}

func (p *packer) finish() []Part {
	if p.length > 0 {
		p.flush()
	}
	return p.parts
}
