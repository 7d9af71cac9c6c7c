package llm

// ChatRequest is the body posted to a chat-completion endpoint. The same
// shape is accepted by Ollama and by OpenAI-compatible servers.
type ChatRequest struct {
	Model    string    `json:"model"`    // Model name (e.g. "llama3", "mistral")
	Messages []Message `json:"messages"` // Conversation history
	Stream   bool      `json:"stream"`   // Always serialized; backends default to true when omitted

	// Generation options (Ollama)
	Options *Options `json:"options,omitempty"`
}
