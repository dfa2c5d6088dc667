package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jaminalder/tictactoe-time-travel/internal/application"
	"github.com/jaminalder/tictactoe-time-travel/internal/config"
)

// main - is the entry point of the web server. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := application.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if conf.LogLevel == "debug" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
