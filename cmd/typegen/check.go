package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/funvibe/typegen/internal/arbitrary"
	"github.com/funvibe/typegen/internal/config"
)

// ViolationError is returned by check when a generated sample does not
// conform to its own type.
type ViolationError struct {
	Seed   int64
	Size   int
	Type   string
	Sample string
	Err    error
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("seed %d size %d: sample %s does not conform to %s: %v", e.Seed, e.Size, e.Sample, e.Type, e.Err)
}

func (e *ViolationError) Unwrap() error { return e.Err }

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Assert that generated samples conform to their types",
		Long: `Generates pairs and checks each sample against its type. Exits with
status 1 on the first violation and prints the seed that reproduces it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			n, err := runCheck(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d pairs conform (seed %d, size %d)\n", n, cfg.Seed, cfg.Size)
			return nil
		},
	}
	addRunFlags(cmd)
	return cmd
}

// runCheck returns the number of pairs checked.
func runCheck(cfg *config.File) (int, error) {
	cat := &arbitrary.Catalogue{TerminalSize: cfg.TerminalSize}
	for i := 0; i < cfg.Count; i++ {
		seed := cfg.Seed + int64(i)
		pair, err := drawPair(cat, seed, cfg.Size)
		if err != nil {
			return i, fmt.Errorf("pair %d: %w", i, err)
		}
		if err := pair.Type.Check(pair.Sample); err != nil {
			return i, &ViolationError{
				Seed:   seed,
				Size:   cfg.Size,
				Type:   pair.Type.String(),
				Sample: pair.Sample.Inspect(),
				Err:    err,
			}
		}
		log().Debug("pair conforms", zap.Int64("seed", seed), zap.String("type", pair.Type.String()))
	}
	return cfg.Count, nil
}
