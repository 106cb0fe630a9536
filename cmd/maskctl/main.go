package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/masks/internal/cmd/maskctl"
	"github.com/louisbranch/masks/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := maskctl.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("maskctl: %v", err)
	}
}
