package client

import (
	"fmt"
	"strconv"
)

// RequestError reports a failed HTTP exchange: a network-level failure,
// a timeout, or a non-2xx status from the backend.
type RequestError struct {
	URL        string
	StatusCode int    // 0 when the request never completed
	Timeout    bool   // true when the failure was a deadline or network timeout
	Body       string // truncated response body, for diagnostics
	Err        error  // underlying cause, nil for plain status failures
}

func (e *RequestError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("llm request to %s timed out: %v", e.URL, e.Err)
	case e.StatusCode != 0 && e.Err == nil:
		msg := "llm request to " + e.URL + " returned status " + strconv.Itoa(e.StatusCode)
		if e.Body != "" {
			msg += ": " + e.Body
		}
		return msg
	default:
		return fmt.Sprintf("llm request to %s failed: %v", e.URL, e.Err)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

// ResponseParseError reports a response body that is not valid JSON.
type ResponseParseError struct {
	Err error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("llm response is not valid JSON: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error { return e.Err }

// ResponseShapeError reports a response that parsed as JSON but does not
// carry a field the recognized service is expected to provide.
type ResponseShapeError struct {
	Service string
	Field   string
	Err     error // set when the mismatch surfaced during decoding
}

func (e *ResponseShapeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s response is missing or mistypes %q", e.Service, e.Field)
	}
	return fmt.Sprintf("%s response has an unexpected shape: %v", e.Service, e.Err)
}

func (e *ResponseShapeError) Unwrap() error { return e.Err }

// UnsupportedServiceError reports a service identifier that is neither the
// Ollama keyword nor a member of the configured OpenAI-compatible set.
type UnsupportedServiceError struct {
	Service string
}

func (e *UnsupportedServiceError) Error() string {
	return fmt.Sprintf("unsupported llm service %q", e.Service)
}
