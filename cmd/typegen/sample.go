package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/funvibe/typegen/internal/arbitrary"
	"github.com/funvibe/typegen/internal/config"
	"github.com/funvibe/typegen/internal/corpus"
	"github.com/funvibe/typegen/internal/mutator"
	"github.com/funvibe/typegen/internal/sampling"
)

func newSampleCmd() *cobra.Command {
	var mutate bool
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print random (type, sample) pairs",
		Long: `Prints random type descriptors, each with a sample that conforms to it.

Example:
  typegen sample --seed 42 --size 20 -n 5 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			return runSample(cmd.Context(), cmd, cfg, mutate)
		},
	}
	addRunFlags(cmd)
	cmd.Flags().String("format", config.FormatText, "Output format: text or yaml")
	cmd.Flags().BoolVar(&mutate, "mutate", false, "Also print a mutated sample and whether it still conforms")
	cmd.Flags().String("record", "", "Record every pair in this SQLite corpus")
	return cmd
}

func runSample(ctx context.Context, cmd *cobra.Command, cfg *config.File, mutate bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := drawRows(cfg, mutate)
	if err != nil {
		return err
	}

	if cfg.Corpus != "" {
		if err := recordRows(ctx, cfg.Corpus, cfg.TerminalSize, rows); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if cfg.Format == config.FormatYAML {
		return writeYAML(out, rows)
	}
	return writeText(out, rows, useColor(out))
}

// drawPair regenerates the pair for seed and size from a fresh source.
func drawPair(cat *arbitrary.Catalogue, seed int64, size int) (arbitrary.Pair, error) {
	src, err := sampling.NewSource(seed)
	if err != nil {
		return arbitrary.Pair{}, err
	}
	return cat.Sample(src, size)
}

func drawRows(cfg *config.File, mutate bool) ([]row, error) {
	cat := &arbitrary.Catalogue{TerminalSize: cfg.TerminalSize}
	mut := mutator.New(cfg.Seed)

	rows := make([]row, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		seed := cfg.Seed + int64(i)
		pair, err := drawPair(cat, seed, cfg.Size)
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		r := row{
			Index:  i,
			Seed:   seed,
			Size:   cfg.Size,
			Type:   pair.Type.String(),
			Sample: pair.Sample.Inspect(),
		}
		if mutate {
			mutant := mut.Mutate(pair.Sample)
			conforms := pair.Type.Check(mutant) == nil
			r.Mutated = mutant.Inspect()
			r.MutatedConforms = &conforms
		}
		rows = append(rows, r)
	}
	log().Debug("drew pairs", zap.Int("count", len(rows)), zap.Int64("seed", cfg.Seed), zap.Int("size", cfg.Size))
	return rows, nil
}

func recordRows(ctx context.Context, path string, terminalSize int, rows []row) error {
	store, err := corpus.Open(ctx, path, log())
	if err != nil {
		return err
	}
	defer store.Close()

	run := corpus.NewRunID()
	for _, r := range rows {
		if _, err := store.Record(ctx, corpus.Entry{
			RunID:        run,
			Seed:         r.Seed,
			Size:         r.Size,
			TerminalSize: terminalSize,
			Type:         r.Type,
			Sample:       r.Sample,
		}); err != nil {
			return err
		}
	}
	log().Info("recorded run", zap.String("run", run), zap.Int("entries", len(rows)), zap.String("corpus", path))
	return nil
}
