package main

import (
	"log/slog"
	"os"

	"github.com/keyforge/jwkforge/cmd"
	"github.com/keyforge/jwkforge/pkg/utils"
)

func init() {
	var programLevel = new(slog.LevelVar) // Default to Info
	programLevel.Set(slog.LevelInfo)

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel != "" {
		if level, err := utils.ParseLogLevel(logLevel); err == nil {
			programLevel.Set(level)
		} else {
			slog.Info("Invalid LOG_LEVEL, defaulting to Info", "value", logLevel, "error", err)
		}
	}

	logHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: programLevel,
	})
	slog.SetDefault(slog.New(logHandler))
}

func main() {
	cmd.Execute()
}
