package llm

import "time"

// ResponseMessage is the assistant message carried in a chat response.
// Content is a pointer so an absent field can be told apart from an
// empty reply.
type ResponseMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

// ChatResponse is the Ollama-native chat completion response.
// The metric fields are pointers because Ollama omits them on
// intermediate chunks and some proxies strip them entirely.
type ChatResponse struct {
	Model     string           `json:"model"`      // Model that generated the response
	CreatedAt time.Time        `json:"created_at"` // Backend-reported creation time
	Message   *ResponseMessage `json:"message"`    // The assistant's response
	Done      bool             `json:"done"`       // Whether generation is complete

	TotalDuration      *int64 `json:"total_duration,omitempty"`       // Total time in nanoseconds
	LoadDuration       *int64 `json:"load_duration,omitempty"`        // Model load time
	PromptEvalCount    *int   `json:"prompt_eval_count,omitempty"`    // Tokens in prompt
	PromptEvalDuration *int64 `json:"prompt_eval_duration,omitempty"` // Prompt processing time
	EvalCount          *int   `json:"eval_count,omitempty"`           // Generated tokens
	EvalDuration       *int64 `json:"eval_duration,omitempty"`        // Generation time
}
