package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
)

// row is one rendered pair.
type row struct {
	Index           int    `yaml:"index"`
	Seed            int64  `yaml:"seed"`
	Size            int    `yaml:"size"`
	Type            string `yaml:"type"`
	Sample          string `yaml:"sample"`
	Mutated         string `yaml:"mutated,omitempty"`
	MutatedConforms *bool  `yaml:"mutated_conforms,omitempty"`
}

// useColor reports whether w is an interactive terminal.
func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func paint(s, color string, enabled bool) string {
	if !enabled {
		return s
	}
	return color + s + colorReset
}

func writeText(w io.Writer, rows []row, color bool) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "#%d seed=%d size=%d\n  type:   %s\n  sample: %s\n",
			r.Index, r.Seed, r.Size, paint(r.Type, colorCyan, color), r.Sample); err != nil {
			return err
		}
		if r.MutatedConforms == nil {
			continue
		}
		verdict := paint("rejected", colorRed, color)
		if *r.MutatedConforms {
			verdict = paint("conforms", colorGreen, color)
		}
		if _, err := fmt.Fprintf(w, "  mutant: %s (%s)\n", r.Mutated, verdict); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, rows []row) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
