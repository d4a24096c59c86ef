package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/funvibe/typegen/internal/arbitrary"
	"github.com/funvibe/typegen/internal/config"
	"github.com/funvibe/typegen/internal/corpus"
)

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Regenerate a recorded corpus and report changed pairs",
		Long: `Regenerates every pair recorded by 'typegen sample --record' from its
seed, size and terminal size. Any pair whose rendering changed is a determinism
regression; replay then exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if cfg.Corpus == "" {
				return fmt.Errorf("no corpus: pass --db or set corpus in typegen.yaml")
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runReplay(ctx, cmd, cfg)
		},
	}
	cmd.Flags().String("db", "", "SQLite corpus to replay")
	return cmd
}

func runReplay(ctx context.Context, cmd *cobra.Command, cfg *config.File) error {
	store, err := corpus.Open(ctx, cfg.Corpus, log())
	if err != nil {
		return err
	}
	defer store.Close()

	mismatches, err := store.Replay(ctx, regenerate)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := useColor(out)
	for _, m := range mismatches {
		fmt.Fprintf(out, "%s seed=%d size=%d\n  want: %s :: %s\n  got:  %s :: %s\n",
			paint("changed", colorRed, color), m.Entry.Seed, m.Entry.Size,
			m.Entry.Type, m.Entry.Sample, m.GotType, m.GotSample)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d recorded pairs changed on replay", len(mismatches))
	}
	fmt.Fprintln(out, paint("ok", colorGreen, color)+": corpus replays unchanged")
	return nil
}

// regenerate redraws e with the terminal size it was recorded under, not
// the one currently configured.
func regenerate(e corpus.Entry) (string, string, error) {
	pair, err := drawPair(&arbitrary.Catalogue{TerminalSize: e.TerminalSize}, e.Seed, e.Size)
	if err != nil {
		return "", "", err
	}
	return pair.Type.String(), pair.Sample.Inspect(), nil
}
