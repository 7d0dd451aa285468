package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gioui.org/app"
	"github.com/spf13/pflag"

	application "github.com/rocketscienceinc/tictactoe-desktop/internal"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
)

var (
	configPath = "config.yml"
	logLevel   = ""
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "path to the config file")
	pflag.StringVar(&logLevel, "log-level", logLevel, "overrides the configured log level (debug, info, warn, error)")
	pflag.Parse()
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
// The game runs on its own goroutine because app.Main must own the main one.
func main() {
	conf := initConfig()
	logger := initLogger(conf)

	go func() {
		defer func() {
			if err := recover(); err != nil {
				fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
				os.Exit(1)
			}
		}()

		if err := application.RunApp(context.Background(), logger, conf); err != nil {
			logger.Error("app run failed", "error", err)
			os.Exit(1)
		}

		os.Exit(0)
	}()

	app.Main()
}

// initialize config.
func initConfig() *config.Config {
	path := configPath
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}
		path = filepath.Join(baseDir, path)
	}

	conf := config.MustLoad(path)
	if logLevel != "" {
		conf.LogLevel = logLevel
	}

	return conf
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
