package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/aqua-prebuild/internal/application"
	"github.com/eugenenazirov/aqua-prebuild/internal/config"
	"github.com/eugenenazirov/aqua-prebuild/internal/logging"
	"github.com/eugenenazirov/aqua-prebuild/internal/resolver"
)

const (
	exitOK      = 0
	exitFailure = 1
)

var osExit = os.Exit

func main() {
	osExit(run(os.Args[1:]))
}

func run(args []string) int {
	kingpinApp := kingpin.New("prebuild", "ESP32 Aqua pre-build step - ensures data/config.json exists before compiling")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	projectDir := kingpinApp.Flag("project-dir", "Firmware project root (defaults to $PROJECT_DIR or the working directory)").String()
	logFormat := kingpinApp.Flag("log-format", "Log output format: console or json").String()
	logLevel := kingpinApp.Flag("log-level", "Minimum log level").String()

	if _, err := kingpinApp.Parse(args); err != nil {
		kingpinApp.Errorf("%s", err)
		return exitFailure
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *projectDir != "" {
		overrides.ProjectRoot = projectDir
	}

	if *logFormat != "" {
		overrides.LogFormat = logFormat
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return exitFailure
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return exitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return exitFailure
	}

	if _, err := app.Run(); err != nil {
		if errors.Is(err, resolver.ErrMissingConfigSource) {
			logger.Error("aborting build: no configuration available", zap.Error(err))
		} else {
			logger.Error("pre-build configuration check failed", zap.Error(err))
		}
		return exitCode(err)
	}

	return exitOK
}

// exitCode maps a pre-build error to the status reported to the build pipeline.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	return exitFailure
}
