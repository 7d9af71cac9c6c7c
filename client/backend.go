package client

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/probeworks/llmprobe/pkg/llm"
)

// KeywordOllama is the service identifier for Ollama's native chat API.
const KeywordOllama = "ollama"

// backend decodes one recognized response shape into a Result. The set of
// backends is closed: adding a new shape means adding a variant here, not
// growing a conditional chain in Complete.
type backend interface {
	// decode normalizes a raw response body. prompt and model are echoed
	// into the Result unchanged.
	decode(body []byte, prompt, model string) (*Result, error)
}

// resolveBackend maps a service identifier to its backend variant.
// Unknown identifiers fail here, before any request is built, so an
// unsupported service never costs a network roundtrip.
func resolveBackend(service string, compatible []string) (backend, error) {
	if service == KeywordOllama {
		return &ollamaBackend{service: service}, nil
	}
	for _, s := range compatible {
		if service == s {
			return &openAIBackend{service: service}, nil
		}
	}
	return nil, &UnsupportedServiceError{Service: service}
}

// unmarshalShape parses body into v, classifying failures: invalid JSON is
// a parse error, valid JSON of the wrong type is a shape error.
func unmarshalShape(body []byte, v any, service string) error {
	err := json.Unmarshal(body, v)
	if err == nil {
		return nil
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ResponseParseError{Err: err}
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ResponseShapeError{Service: service, Field: typeErr.Field, Err: err}
	}
	return &ResponseShapeError{Service: service, Err: err}
}

// ollamaBackend decodes Ollama's native chat response, which reports
// per-phase durations in nanoseconds alongside token counts.
type ollamaBackend struct {
	service string
}

func (b *ollamaBackend) decode(body []byte, prompt, model string) (*Result, error) {
	var resp llm.ChatResponse
	if err := unmarshalShape(body, &resp, b.service); err != nil {
		return nil, err
	}
	if resp.Message == nil {
		return nil, &ResponseShapeError{Service: b.service, Field: "message"}
	}
	if resp.Message.Content == nil {
		return nil, &ResponseShapeError{Service: b.service, Field: "message.content"}
	}

	res := &Result{
		Model:            model,
		TotalDuration:    resp.TotalDuration,
		LoadDuration:     resp.LoadDuration,
		PromptTokens:     resp.PromptEvalCount,
		PromptDuration:   resp.PromptEvalDuration,
		ResponseTokens:   resp.EvalCount,
		ResponseDuration: resp.EvalDuration,
		Prompt:           prompt,
		Response:         *resp.Message.Content,
	}
	if !resp.CreatedAt.IsZero() {
		created := resp.CreatedAt
		res.CreatedAt = &created
	}
	return res, nil
}

// openAIBackend decodes the OpenAI-compatible chat response. The four
// duration fields have no equivalent in this shape and stay nil.
type openAIBackend struct {
	service string
}

func (b *openAIBackend) decode(body []byte, prompt, model string) (*Result, error) {
	var resp llm.OpenAIChatResponse
	if err := unmarshalShape(body, &resp, b.service); err != nil {
		return nil, err
	}
	if resp.Usage == nil {
		return nil, &ResponseShapeError{Service: b.service, Field: "usage"}
	}
	if len(resp.Choices) == 0 {
		return nil, &ResponseShapeError{Service: b.service, Field: "choices"}
	}
	content := resp.Choices[0].Message.Content
	if content == nil {
		return nil, &ResponseShapeError{Service: b.service, Field: "choices[0].message.content"}
	}

	res := &Result{
		Model:          model,
		PromptTokens:   resp.Usage.PromptTokens,
		ResponseTokens: resp.Usage.CompletionTokens,
		Prompt:         prompt,
		Response:       *content,
	}
	if resp.Created != 0 {
		created := time.Unix(resp.Created, 0).UTC()
		res.CreatedAt = &created
	}
	return res, nil
}
