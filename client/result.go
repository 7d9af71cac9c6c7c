package client

import "time"

// Result is the uniform completion record produced for every backend.
// The duration fields are nanoseconds as reported by Ollama; the
// OpenAI-compatible branch leaves all four nil. Pointer fields stay nil
// when the backend omitted the value.
type Result struct {
	Model            string     `json:"model_name"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	TotalDuration    *int64     `json:"total_duration,omitempty"`
	LoadDuration     *int64     `json:"load_duration,omitempty"`
	PromptTokens     *int       `json:"prompt_token_length,omitempty"`
	PromptDuration   *int64     `json:"prompt_duration,omitempty"`
	ResponseTokens   *int       `json:"response_token_length,omitempty"`
	ResponseDuration *int64     `json:"response_duration,omitempty"`
	Prompt           string     `json:"prompt"`
	Response         string     `json:"response"`
}
