package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/saturnines/product-search/pkg/cli"
	"github.com/saturnines/product-search/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real environment variables win over it
	envErr := godotenv.Load()

	logger, err := logging.New(os.Getenv("LOG_LEVEL"), os.Stderr)
	if err != nil {
		logger.Warn("falling back to info level", zap.Error(err))
	}
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn(".env file not loaded", zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, os.Args[1:], cli.Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
		Getenv: os.Getenv,
	})

	stop()
	_ = logger.Sync()
	os.Exit(code)
}
