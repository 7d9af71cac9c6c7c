package llm

// Options contains model inference parameters.
type Options struct {
	Temperature *float64 `json:"temperature,omitempty"` // Sampling temperature (0.0-2.0)
	TopP        *float64 `json:"top_p,omitempty"`       // Nucleus sampling threshold
	TopK        *int     `json:"top_k,omitempty"`       // Top-k sampling
	Seed        *int     `json:"seed,omitempty"`        // Random seed for reproducibility

	NumPredict *int `json:"num_predict,omitempty"` // Max tokens to generate
	NumCtx     *int `json:"num_ctx,omitempty"`     // Context window size

	Stop []string `json:"stop,omitempty"` // Stop generation at these sequences
}
