package main

import (
	"fmt"
	"os"

	"go-ats/internal/app"

	"go.uber.org/zap"
)

func main() {
	cfg, logger, err := app.Init("consumer")
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup:", err)
		os.Exit(1)
	}

	if err := app.RunConsumer(cfg); err != nil {
		logger.Error("consumer stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
