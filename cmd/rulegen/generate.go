package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/skincarelab/rulegen/config"
	"github.com/skincarelab/rulegen/export"
	"github.com/skincarelab/rulegen/rules"
)

// loadConfig resolves the effective configuration: an explicit config
// file when given, otherwise the layered loader (defaults plus any
// project rulegen.yaml).
func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(logger).Load()
}

// runGenerate builds the full catalog and writes it to the configured
// path, printing a one-line confirmation with the rule count.
func runGenerate(configPath, logLevel string, stdout io.Writer) error {
	logger := setupLogging(logLevel)

	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		return err
	}

	cards := rules.Generate()
	logger.Debug("Catalog generated", slog.Int("count", len(cards)))

	if err := export.WriteFile(cfg.Output.Path, cards); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	fmt.Fprintf(stdout, "Wrote %d rules to %s\n", len(cards), cfg.Output.Path)
	return nil
}
