package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/probeworks/llmprobe/cmd/llmprobe/completecmd"
)

func main() {
	root := &cobra.Command{
		Use:           "llmprobe",
		Short:         "Probe LLM inference endpoints and report normalized completion metrics",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(completecmd.NewCompleteCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
