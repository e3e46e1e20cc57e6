package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/futdash/futdash/internal/dispatch"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		if dispatch.IsInvalidated(err) {
			fmt.Fprintln(os.Stderr, `your session has ended, run "futdash login" to sign in again`)
		}
		os.Exit(1)
	}
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
