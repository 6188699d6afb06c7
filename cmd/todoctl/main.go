// Package main is the entry point for todoctl. It builds the cobra command
// tree and defers configuration and dependency wiring until a command runs.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen11/todo-lifecycle/internal/adapters/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(bootstrap)
	return cli.Execute(ctx, root, os.Args[1:], os.Stderr)
}
