package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"smsseg/coding"
)

// readRaw returns --text when given, otherwise all of stdin.
func readRaw(cmd *cobra.Command, opts *cliOptions) (string, error) {
	if cmd.Flags().Changed("text") {
		return opts.text, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// readText is readRaw for commands that measure the message. Input from
// stdin loses its final line break, and --normalize is applied.
func readText(cmd *cobra.Command, opts *cliOptions) (string, error) {
	text, err := readRaw(cmd, opts)
	if err != nil {
		return "", err
	}
	if !cmd.Flags().Changed("text") {
		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
	}
	if opts.normalize {
		text = coding.NormalizeNewlines(text)
	}
	return text, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// partPayloads hex-encodes the short_message octets of every part.
func partPayloads(result coding.Result) ([]string, error) {
	payloads := make([]string, len(result.Parts))
	for i, part := range result.Parts {
		data, err := coding.Payload(part, result.Encoding)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i+1, err)
		}
		payloads[i] = hex.EncodeToString(data)
	}
	return payloads, nil
}
