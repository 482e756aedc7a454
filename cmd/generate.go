package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/xll-gen/bin2c/internal/config"
	"github.com/xll-gen/bin2c/internal/generator"
	"github.com/xll-gen/bin2c/internal/naming"
	"github.com/xll-gen/bin2c/internal/reader"
	"github.com/xll-gen/bin2c/internal/ui"
	"github.com/xll-gen/bin2c/pkg/log"
)

// runGenerate loads the configuration, sets up logging and converts input.
func runGenerate(cmd *cobra.Command, input string, opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return err
	}
	defer log.Close()

	// Read, derive, emit.
	data, err := reader.ReadAll(input)
	if err != nil {
		slog.Debug("read failed", "path", input, "error", fmt.Sprintf("%+v", err))
		return err
	}
	ui.PrintRead(cmd.ErrOrStderr(), len(data), input)

	name := naming.BaseName(input)
	outPath := name + ".c"
	slog.Debug("derived name", "input", input, "name", name, "output", outPath)

	if err := generator.WriteSource(outPath, name, data, generator.Options{Atomic: cfg.Output.AtomicEnabled()}); err != nil {
		slog.Debug("write failed", "path", outPath, "error", fmt.Sprintf("%+v", err))
		return err
	}
	slog.Info("generated source", "path", outPath, "size", len(data))
	return nil
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	path, required := config.DefaultPath, false
	if opts.configPath != "" {
		path, required = opts.configPath, true
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Logging.Path = opts.logFile
	}
	if opts.noAtomic {
		f := false
		cfg.Output.Atomic = &f
	}

	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
