package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File represents the top-level typegen.yaml configuration.
// Every field is optional; zero values are replaced by defaults.
type File struct {
	// Seed for the random source. Zero means "pick one from the clock".
	Seed int64 `yaml:"seed,omitempty"`

	// Size is the starting size budget.
	Size int `yaml:"size,omitempty"`

	// Count is how many (type, sample) pairs a run produces.
	Count int `yaml:"count,omitempty"`

	// Format selects the output rendering: "text" or "yaml".
	Format string `yaml:"format,omitempty"`

	// Corpus is a path to the SQLite regression corpus. When set, the
	// sample command records every pair it prints.
	Corpus string `yaml:"corpus,omitempty"`

	// TerminalSize overrides the budget at which composite types stop
	// being generated. Must be at least TerminalSize.
	TerminalSize int `yaml:"terminal_size,omitempty"`
}

// Default returns a File populated with default values.
func Default() *File {
	f := &File{}
	f.setDefaults()
	return f
}

// LoadConfig reads and parses a typegen.yaml file.
func LoadConfig(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses typegen.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*File, error) {
	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for typegen.yaml starting from dir and walking up
// to parent directories.
// Returns the path to the config file, or empty string and nil error if
// not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *File) validate(path string) error {
	if c.Size < 0 {
		return fmt.Errorf("%s: size must not be negative, got %d", path, c.Size)
	}
	if c.Count < 0 {
		return fmt.Errorf("%s: count must not be negative, got %d", path, c.Count)
	}
	switch c.Format {
	case "", FormatText, FormatYAML:
	default:
		return fmt.Errorf("%s: unknown format %q (want %q or %q)", path, c.Format, FormatText, FormatYAML)
	}
	if c.TerminalSize != 0 && c.TerminalSize < TerminalSize {
		return fmt.Errorf("%s: terminal_size must be at least %d, got %d", path, TerminalSize, c.TerminalSize)
	}
	return nil
}

func (c *File) setDefaults() {
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.Count == 0 {
		c.Count = DefaultCount
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.TerminalSize == 0 {
		c.TerminalSize = TerminalSize
	}
}
