package llm

// OpenAIChatResponse is the chat completion response shape shared by the
// OpenAI API and its compatible servers (llamafile, vLLM, ...).
type OpenAIChatResponse struct {
	ID      string         `json:"id,omitempty"`
	Object  string         `json:"object,omitempty"`
	Created int64          `json:"created"` // Epoch seconds
	Model   string         `json:"model,omitempty"`
	Choices []OpenAIChoice `json:"choices"`
	Usage   *OpenAIUsage   `json:"usage"`
}

// OpenAIChoice is one candidate completion; non-streaming responses
// carry the full message.
type OpenAIChoice struct {
	Index        int             `json:"index"`
	Message      ResponseMessage `json:"message"`
	FinishReason string          `json:"finish_reason,omitempty"`
}

// OpenAIUsage reports token accounting for a completion. The fields are
// pointers so a server that omits one does not report a count of zero.
type OpenAIUsage struct {
	PromptTokens     *int `json:"prompt_tokens"`
	CompletionTokens *int `json:"completion_tokens"`
	TotalTokens      *int `json:"total_tokens,omitempty"`
}
