package completecmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/probeworks/llmprobe/client"
	"github.com/probeworks/llmprobe/config"
	"github.com/probeworks/llmprobe/pkg/logger"
)

const completeLongDesc string = `Send one prompt to an LLM chat-completion endpoint and print the
normalized completion record as JSON.

The service identifier selects the response shape: "ollama" for the
native Ollama API, or any identifier from the configured
OpenAI-compatible set (default: openai, llamafile, vllm).

Examples:
  llmprobe complete --url http://localhost:11434/api/chat --model llama3 "Say hi"
  llmprobe complete --service openai --url http://localhost:8000/v1/chat/completions \
      --model mistral "Summarize this repo"`

const completeShortDesc string = "Run one completion and print the normalized record"

type completeCommander struct {
	service    string
	url        string
	model      string
	role       string
	stream     bool
	timeout    time.Duration
	configPath string
	debug      bool
}

func NewCompleteCmd() *cobra.Command {
	cmder := &completeCommander{}

	cmd := &cobra.Command{
		Use:   "complete <prompt>",
		Short: completeShortDesc,
		Long:  completeLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&cmder.service, "service", client.KeywordOllama, "Service identifier selecting the response shape")
	cmd.Flags().StringVarP(&cmder.url, "url", "u", "http://localhost:11434/api/chat", "Chat-completion endpoint URL")
	cmd.Flags().StringVarP(&cmder.model, "model", "m", "", "Model name (required)")
	cmd.Flags().StringVar(&cmder.role, "role", "", "Message role (default: user)")
	cmd.Flags().BoolVar(&cmder.stream, "stream", false, "Set the stream flag on the request body")
	cmd.Flags().DurationVar(&cmder.timeout, "timeout", client.DefaultTimeout, "Request timeout")
	cmd.Flags().StringVarP(&cmder.configPath, "config", "c", "", "Path to a TOML config file")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")
	cobra.CheckErr(cmd.MarkFlagRequired("model"))

	return cmd
}

func (c *completeCommander) run(ctx context.Context, cmd *cobra.Command, prompt string) error {
	log := logger.New(c.debug)
	defer log.Sync()

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	cl, err := client.New(client.Config{
		Service:            c.service,
		URL:                c.url,
		Model:              c.model,
		Role:               c.role,
		Timeout:            c.timeout,
		CompatibleServices: cfg.OpenAICompatibleServices,
	}, client.WithLogger(log))
	if err != nil {
		return err
	}

	var opts []client.CallOption
	if c.role != "" {
		opts = append(opts, client.WithRole(c.role))
	}
	if c.stream {
		opts = append(opts, client.WithStream(true))
	}

	result, err := cl.Complete(ctx, prompt, opts...)
	if err != nil {
		return err
	}

	log.Debug("completion succeeded", zap.String("model", result.Model))

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}
