package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grovetools/hyprdispatch/cmd"
	"github.com/grovetools/hyprdispatch/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Execute(ctx, os.Args[1:], cmd.Options{
		Env: config.EnvironmentFromOS(),
	})
	stop()
	os.Exit(code)
}
