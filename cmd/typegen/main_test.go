//go:build !nosampling

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args against a config file written
// to a temp dir, and returns stdout.
func run(t *testing.T, cfgYAML string, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "typegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfgYAML), 0644))

	verbose, configPath, logger = false, "", nil
	t.Cleanup(func() { configPath, logger = "", nil })

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", path}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestSampleCommand_Deterministic(t *testing.T) {
	a, err := run(t, "", "sample", "--seed", "5", "--size", "10", "-n", "4")
	require.NoError(t, err)
	b, err := run(t, "", "sample", "--seed", "5", "--size", "10", "-n", "4")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 4, strings.Count(a, "  type:   "))
	assert.Contains(t, a, "#3 seed=8 size=10")
}

func TestSampleCommand_ConfigDefaultsAndFlagOverride(t *testing.T) {
	out, err := run(t, "seed: 100\nsize: 6\ncount: 2\nformat: yaml\n", "sample", "--size", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "seed: 100")
	assert.Contains(t, out, "seed: 101")
	assert.Contains(t, out, "size: 3")
	assert.NotContains(t, out, "size: 6")
}

func TestSampleCommand_Mutate(t *testing.T) {
	out, err := run(t, "", "sample", "--seed", "1", "--size", "8", "-n", "3", "--mutate", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "mutated_conforms:"))
}

func TestSampleCommand_RejectsUnknownFormat(t *testing.T) {
	_, err := run(t, "", "sample", "--format", "json")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "", "check", "--seed", "9", "--size", "12", "-n", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 25 pairs conform (seed 9, size 12)")
}

func TestRecordAndReplay(t *testing.T) {
	db := filepath.Join(t.TempDir(), "corpus.db")

	_, err := run(t, "", "sample", "--seed", "3", "--size", "10", "-n", "5", "--record", db)
	require.NoError(t, err)

	out, err := run(t, "", "replay", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "corpus replays unchanged")
}

func TestReplay_UsesRecordedTerminalSize(t *testing.T) {
	db := filepath.Join(t.TempDir(), "corpus.db")

	_, err := run(t, "terminal_size: 100\n", "sample", "--seed", "3", "--size", "20", "-n", "20", "--record", db)
	require.NoError(t, err)

	// Replayed under the default terminal size.
	out, err := run(t, "", "replay", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "corpus replays unchanged")

	// And the other way round.
	db2 := filepath.Join(t.TempDir(), "corpus.db")
	_, err = run(t, "", "sample", "--seed", "3", "--size", "20", "-n", "20", "--record", db2)
	require.NoError(t, err)
	_, err = run(t, "terminal_size: 100\n", "replay", "--db", db2)
	require.NoError(t, err)
}

func TestReplayCommand_RequiresCorpus(t *testing.T) {
	_, err := run(t, "", "replay")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no corpus")
}
