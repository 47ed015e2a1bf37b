package coding_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smsseg/coding"
)

func TestPackOversizedBlock(t *testing.T) {
	blocks := []coding.Block{{Content: strings.Repeat("a", 400), Length: 400}}

	parts, err := coding.Pack(blocks, coding.GSM7)
	require.NoError(t, err)
	assert.Equal(t, []coding.Part{
		{Content: strings.Repeat("a", 153), Length: 153},
		{Content: strings.Repeat("a", 153), Length: 153},
		{Content: strings.Repeat("a", 94), Length: 94},
	}, parts)
}

func TestPackOversizedBlockFillsCurrentPart(t *testing.T) {
	blocks, err := coding.SplitBlocks("hi "+strings.Repeat("a", 200), coding.GSM7)
	require.NoError(t, err)

	parts, err := coding.Pack(blocks, coding.GSM7)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, "hi "+strings.Repeat("a", 150), parts[0].Content)
	assert.Equal(t, strings.Repeat("a", 50), parts[1].Content)
}

func TestPackMovesWholeWords(t *testing.T) {
	blocks, err := coding.SplitBlocks(digits150+" tail", coding.GSM7)
	require.NoError(t, err)

	parts, err := coding.Pack(blocks, coding.GSM7)
	require.NoError(t, err)
	assert.Equal(t, []coding.Part{{Content: digits150 + " tail", Length: 155}}, parts)

	blocks, err = coding.SplitBlocks(digits150+" tailtailtail", coding.GSM7)
	require.NoError(t, err)

	parts, err = coding.Pack(blocks, coding.GSM7)
	require.NoError(t, err)
	assert.Equal(t, []coding.Part{
		{Content: digits150 + " ", Length: 151},
		{Content: "tailtailtail", Length: 12},
	}, parts)
}

func TestPackBetweenBudgets(t *testing.T) {
	// 155 septets: over the multipart budget but still a single part
	blocks, err := coding.SplitBlocks(digits150+"abcde", coding.GSM7)
	require.NoError(t, err)

	parts, err := coding.Pack(blocks, coding.GSM7)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, 155, parts[0].Length)
}

func TestPackNothing(t *testing.T) {
	parts, err := coding.Pack(nil, coding.UCS2)
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestPackInvalidCharacter(t *testing.T) {
	_, err := coding.Pack([]coding.Block{{Content: "ю", Length: 1}}, coding.GSM7)
	assert.ErrorIs(t, err, coding.ErrInvalidCharacter)
}
