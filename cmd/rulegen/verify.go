package main

import (
	"fmt"
	"io"

	"github.com/skincarelab/rulegen/export"
	"github.com/skincarelab/rulegen/rules"
)

// runVerify loads a catalog file and checks it against the generation
// invariants. An empty path falls back to the configured output path.
func runVerify(configPath, logLevel, path string, stdout io.Writer) error {
	logger := setupLogging(logLevel)

	if path == "" {
		cfg, err := loadConfig(configPath, logger)
		if err != nil {
			return err
		}
		path = cfg.Output.Path
	}

	cards, err := export.ReadFile(path)
	if err != nil {
		return err
	}

	if len(cards) != rules.ExpectedCount {
		return fmt.Errorf("catalog has %d rules, want %d", len(cards), rules.ExpectedCount)
	}
	if err := rules.Validate(cards); err != nil {
		return fmt.Errorf("catalog validation failed: %w", err)
	}

	fmt.Fprintf(stdout, "Catalog verification passed: %d rules in %s\n", len(cards), path)
	return nil
}
