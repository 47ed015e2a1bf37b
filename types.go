package main

import (
	"smsseg/coding"
)

// TextRequest is the body of every /api/v1 call. Text is a pointer so that
// an explicit null reaches the coding wrappers as nil.
type TextRequest struct {
	Text *string `json:"text"`
}

// SplitResponse carries the parts of a message. Payloads, when asked for,
// holds the hex short_message octets of each part in the same order.
type SplitResponse struct {
	Encoding coding.Encoding `json:"encoding"`
	Parts    []coding.Part   `json:"parts"`
	Payloads []string        `json:"payloads,omitempty"`
}

type CountResponse struct {
	Parts int `json:"parts"`
}

type EncodingResponse struct {
	Encoding coding.Encoding `json:"encoding"`
}

type TextResponse struct {
	Text *string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
