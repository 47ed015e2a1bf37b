// Package coding decides how a text message is encoded for SMS transport and
// splits it into transport-legal parts.
//
// A message is sent either in the GSM 03.38 7-bit alphabet or, as soon as one
// character falls outside it, in UCS-2 where every UTF-16 code unit counts.
// Single-part messages get the full budget (160 septets or 70 code units);
// concatenated messages lose room to the user data header and every part is
// limited to 153 or 67.
package coding

import (
	"fmt"
	"strings"

	smppcoding "github.com/M2MGateway/go-smpp/coding"
)

// Encoding is the alphabet a message is sent in.
type Encoding int

const (
	// GSM7 is the narrow alphabet: default table characters cost one
	// septet, extension table characters two.
	GSM7 Encoding = iota
	// UCS2 is the wide alphabet: one unit per UTF-16 code unit.
	UCS2
)

// Per-part budgets, in septets for GSM7 and UTF-16 code units for UCS2.
const (
	GSM7SinglePart = 160
	GSM7MultiPart  = 153
	UCS2SinglePart = 70
	UCS2MultiPart  = 67
)

// DataCoding returns the SMPP data_coding value for the encoding.
func (e Encoding) DataCoding() smppcoding.DataCoding {
	if e == UCS2 {
		return smppcoding.UCS2Coding
	}
	return smppcoding.GSM7BitCoding
}

// Budgets returns the single-part and per-part multipart limits.
func (e Encoding) Budgets() (single, multi int) {
	if e == UCS2 {
		return UCS2SinglePart, UCS2MultiPart
	}
	return GSM7SinglePart, GSM7MultiPart
}

// String returns "gsm7" or "ucs2".
func (e Encoding) String() string {
	switch e {
	case GSM7:
		return "gsm7"
	case UCS2:
		return "ucs2"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// MarshalText encodes the encoding by name, so it reads as "gsm7" or
// "ucs2" in JSON.
func (e Encoding) MarshalText() ([]byte, error) {
	switch e {
	case GSM7, UCS2:
		return []byte(e.String()), nil
	default:
		return nil, fmt.Errorf("coding: unknown encoding %d", int(e))
	}
}

// UnmarshalText accepts the names written by MarshalText in any case.
func (e *Encoding) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "gsm7":
		*e = GSM7
	case "ucs2":
		*e = UCS2
	default:
		return fmt.Errorf("coding: unknown encoding %q", text)
	}
	return nil
}

// Detect returns GSM7 when every character of text is in the GSM 03.38
// default or extension table, UCS2 otherwise. Empty text is GSM7.
func Detect(text string) Encoding {
	for _, r := range text {
		if !IsGSM7(r) {
			return UCS2
		}
	}
	return GSM7
}

// Meter reports the transport cost of a single rune.
type Meter func(rune) (int, error)

var (
	gsm7Meter Meter = Width
	ucs2Meter Meter = func(r rune) (int, error) {
		if r > 0xFFFF {
			return 2, nil // surrogate pair
		}
		return 1, nil
	}
)

// Meter returns the per-rune cost function of the encoding.
func (e Encoding) Meter() Meter {
	if e == UCS2 {
		return ucs2Meter
	}
	return gsm7Meter
}

// Len sums the cost of every rune of input.
func (fn Meter) Len(input string) (n int, err error) {
	for _, point := range input {
		cost, err := fn(point)
		if err != nil {
			return 0, err
		}
		n += cost
	}
	return n, nil
}

// utf16Len counts UTF-16 code units, the unit UCS-2 budgets are expressed in.
func utf16Len(text string) int {
	n := 0
	for _, r := range text {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}
