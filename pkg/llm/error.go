// Package llm holds the wire-level representations of LLM inference API
// requests and the response shapes the client knows how to normalize.
package llm

// ErrorResponse is the error envelope some backends return instead of a completion.
type ErrorResponse struct {
	Error string `json:"error"`
}
