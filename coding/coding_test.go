package coding_test

import (
	"encoding/json"
	"testing"

	smppcoding "github.com/M2MGateway/go-smpp/coding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smsseg/coding"
)

const (
	gsm7Default   = "@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞ\x1bÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑÜ§¿abcdefghijklmnopqrstuvwxyzäöñüà"
	gsm7Extension = "\f^{}\\[~]|€"
)

func TestDetect(t *testing.T) {
	tcs := []struct {
		Text     string
		Encoding coding.Encoding
	}{
		{"", coding.GSM7},
		{"a", coding.GSM7},
		{"≀", coding.UCS2},
		{"a≀", coding.UCS2},
		{"price: 10€ {net}", coding.GSM7},
		{"hello 🐳", coding.UCS2},
		{"façade", coding.UCS2},
		{"\xff", coding.UCS2},
	}

	for _, tc := range tcs {
		assert.Equal(t, tc.Encoding, coding.Detect(tc.Text), "unexpected encoding for: %q", tc.Text)
	}
}

func TestDetectEveryGSM7Character(t *testing.T) {
	for _, r := range gsm7Default + gsm7Extension {
		assert.Equal(t, coding.GSM7, coding.Detect(string(r)), "character %U", r)
	}
}

func TestWidth(t *testing.T) {
	for _, r := range gsm7Default {
		width, err := coding.Width(r)
		require.NoError(t, err)
		assert.Equal(t, 1, width, "character %U", r)
	}
	for _, r := range gsm7Extension {
		width, err := coding.Width(r)
		require.NoError(t, err)
		assert.Equal(t, 2, width, "character %U", r)
	}

	_, err := coding.Width('≀')
	assert.ErrorIs(t, err, coding.ErrInvalidCharacter)
}

func TestMeter(t *testing.T) {
	n, err := coding.GSM7.Meter().Len("a€b")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = coding.UCS2.Meter().Len("aю🐳")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = coding.GSM7.Meter().Len("ю")
	assert.ErrorIs(t, err, coding.ErrInvalidCharacter)
}

func TestBudgets(t *testing.T) {
	single, multi := coding.GSM7.Budgets()
	assert.Equal(t, 160, single)
	assert.Equal(t, 153, multi)

	single, multi = coding.UCS2.Budgets()
	assert.Equal(t, 70, single)
	assert.Equal(t, 67, multi)

	assert.Equal(t, smppcoding.GSM7BitCoding, coding.GSM7.DataCoding())
	assert.Equal(t, smppcoding.UCS2Coding, coding.UCS2.DataCoding())
}

func TestEncodingText(t *testing.T) {
	data, err := json.Marshal(map[string]coding.Encoding{"a": coding.GSM7, "b": coding.UCS2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"gsm7","b":"ucs2"}`, string(data))

	var enc coding.Encoding
	require.NoError(t, enc.UnmarshalText([]byte("UCS2")))
	assert.Equal(t, coding.UCS2, enc)
	assert.Error(t, enc.UnmarshalText([]byte("latin1")))

	_, err = coding.Encoding(7).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Encoding(7)", coding.Encoding(7).String())
}
