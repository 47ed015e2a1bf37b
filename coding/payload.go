package coding

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/M2MGateway/go-smpp/coding/gsm7bit"
)

const cr = 0x0D

// EncodeGSM7 packs text into GSM 7-bit octets, the short_message form for
// data_coding 0. Seven spare bits in the last octet hold a padding CR, and
// a closing CR that ends on an octet boundary is followed by another one so
// the receiver does not take it for padding.
func EncodeGSM7(text string) ([]byte, error) {
	septets, err := gsm7Meter.Len(text)
	if err != nil {
		return nil, fmt.Errorf("encode gsm7: %w", err)
	}
	packed, err := gsm7bit.Packed.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode gsm7: %w: %w", ErrInvalidCharacter, err)
	}
	if septets%8 == 0 && strings.HasSuffix(text, "\r") {
		packed = append(packed, cr)
	}
	return packed, nil
}

// DecodeGSM7 unpacks GSM 7-bit octets. When the octets hold a whole number
// of septet groups, a final CR is padding and is dropped.
func DecodeGSM7(packed []byte) (string, error) {
	if len(packed) == 0 {
		return "", nil
	}

	// gsm7bit drops a byte whenever a CR is among the last two it decodes.
	// Two zero octets push the real tail away from that check; they come
	// back as '@' and are trimmed below.
	padded := make([]byte, len(packed)+2)
	copy(padded, packed)
	decoded, err := gsm7bit.Packed.NewDecoder().Bytes(padded)
	if err != nil {
		return "", fmt.Errorf("decode gsm7: %w: %w", ErrInvalidGSM7, err)
	}

	for extra := len(padded)*8/7 - len(packed)*8/7; extra > 0; extra-- {
		_, size := utf8.DecodeLastRune(decoded)
		decoded = decoded[:len(decoded)-size]
	}
	text := string(decoded)
	if len(packed)%7 == 0 {
		text = strings.TrimSuffix(text, "\r")
	}
	return text, nil
}

// EncodeUCS2 converts text to big endian UTF-16 without a BOM.
func EncodeUCS2(text string) ([]byte, error) {
	data, err := UCS2.DataCoding().Encoding().NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode ucs2: %w", err)
	}
	return data, nil
}

// DecodeUCS2 converts big endian UTF-16 back to a string.
func DecodeUCS2(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", fmt.Errorf("decode ucs2: odd payload length %d", len(data))
	}
	text, err := UCS2.DataCoding().Encoding().NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode ucs2: %w", err)
	}
	return string(text), nil
}

// Payload returns the short_message octets of one part under enc.
func Payload(part Part, enc Encoding) ([]byte, error) {
	if enc == UCS2 {
		return EncodeUCS2(part.Content)
	}
	return EncodeGSM7(part.Content)
}

// DecodePayload turns short_message octets back into text.
func DecodePayload(data []byte, enc Encoding) (string, error) {
	if enc == UCS2 {
		return DecodeUCS2(data)
	}
	return DecodeGSM7(data)
}
