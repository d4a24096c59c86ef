package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/funvibe/typegen/internal/config"
)

// loadSettings resolves the run configuration: the explicit --config file,
// else the nearest typegen.yaml, else defaults. Flags the user set on cmd
// take precedence over the file.
func loadSettings(cmd *cobra.Command) (*config.File, error) {
	path := configPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		if path, err = config.FindConfig(cwd); err != nil {
			return nil, err
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		log().Debug("loaded config", zap.String("path", path))
	}

	flags := cmd.Flags()
	var err error
	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetInt64("seed"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("size") {
		if cfg.Size, err = flags.GetInt("size"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("count") {
		if cfg.Count, err = flags.GetInt("count"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("record") != nil && flags.Changed("record") {
		if cfg.Corpus, err = flags.GetString("record"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("db") != nil && flags.Changed("db") {
		if cfg.Corpus, err = flags.GetString("db"); err != nil {
			return nil, err
		}
	}

	if cfg.Size < 0 || cfg.Count < 0 {
		return nil, fmt.Errorf("size and count must not be negative")
	}
	if cfg.Format != config.FormatText && cfg.Format != config.FormatYAML {
		return nil, fmt.Errorf("unknown format %q (want %q or %q)", cfg.Format, config.FormatText, config.FormatYAML)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		log().Debug("picked seed from clock", zap.Int64("seed", cfg.Seed))
	}
	return cfg, nil
}

// addRunFlags registers the flags shared by sample and check.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("seed", 0, "Seed of the first pair; pair i uses seed+i (0 picks one from the clock)")
	cmd.Flags().Int("size", config.DefaultSize, "Size budget of each pair")
	cmd.Flags().IntP("count", "n", config.DefaultCount, "Number of pairs")
}

func log() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
