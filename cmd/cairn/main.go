// Package main is the entry point for the cairn dependency resolver.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/cairn/cmd/cairn/commands"
	"go.trai.ch/cairn/internal/app"
	_ "go.trai.ch/cairn/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, err := app.NewApp(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.App.Close() }()

	// 2. Interface - CLI
	cli := commands.New(components)
	cli.SetArgs(args)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if cli.Verbose() {
			components.Logger.Error(err)
		}
		components.Reporter.Error(err)
		return 1
	}
	return 0
}
