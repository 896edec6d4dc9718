package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/mtr/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, cli.NewRootCmd())
	stop()
	os.Exit(code)
}
