package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"postalform/internal/adapters/cli"
)

const (
	exitError   = 1
	exitInvalid = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		if cli.InvalidInput(err) {
			stop()
			os.Exit(exitInvalid)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(exitError)
	}
}
