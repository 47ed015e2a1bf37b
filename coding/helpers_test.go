package coding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smsseg/coding"
)

func ptr(s string) *string {
	return &s
}

func TestDetectEncodingNull(t *testing.T) {
	_, err := coding.DetectEncoding(nil)
	assert.ErrorIs(t, err, coding.ErrNullInput)

	enc, err := coding.DetectEncoding(ptr(""))
	require.NoError(t, err)
	assert.Equal(t, coding.GSM7, enc)

	enc, err = coding.DetectEncoding(ptr("≀"))
	require.NoError(t, err)
	assert.Equal(t, coding.UCS2, enc)
}

func TestCountPartsNull(t *testing.T) {
	_, err := coding.CountParts(nil)
	assert.ErrorIs(t, err, coding.ErrNullInput)

	n, err := coding.CountParts(ptr(""))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNormalizeNewlinesPtr(t *testing.T) {
	assert.Nil(t, coding.NormalizeNewlinesPtr(nil))

	normalized := coding.NormalizeNewlinesPtr(ptr("a\r\n\r\na"))
	require.NotNil(t, normalized)
	assert.Equal(t, "a\r\ra", *normalized)
}

func TestSplitWithWordWrap(t *testing.T) {
	for _, text := range []*string{nil, ptr("")} {
		result := coding.SplitWithWordWrap(text)
		assert.Equal(t, coding.GSM7, result.Encoding)
		assert.Empty(t, result.Parts)
	}

	result := coding.SplitWithWordWrap(ptr(digits150 + "123ABCDEFGHIKL"))
	assert.Equal(t, []string{digits150 + "123", "ABCDEFGHIKL"}, result.Contents())
}
