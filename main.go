package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/agentverse/create-agentverse-agent/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
