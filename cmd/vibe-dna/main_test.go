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

// execute runs the root command with an empty config file so the user's
// home config does not leak into tests.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "vibe-dna.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: error\n"), 0o644))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnalyze(t *testing.T) {
	stdout, _, err := execute(t, "analyze", "ATCGATCG")
	require.NoError(t, err)

	want := "#Codon\tCount\tAmino_acid\n" +
		"ATC\t1\tI\n" +
		"CG\t1\t-\n" +
		"GAT\t1\tD\n" +
		"\n" +
		"#Base\tName\tCount\tProportion\n" +
		"A\tAdenine\t2\t0.2500\n" +
		"T\tThymine\t2\t0.2500\n" +
		"C\tCytosine\t2\t0.2500\n" +
		"G\tGuanine\t2\t0.2500\n"
	assert.Equal(t, want, stdout)
}

func TestAnalyze_Invalid(t *testing.T) {
	stdout, stderr, err := execute(t, "analyze", "ATXG")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid characters")
}

func TestAnalyze_RequiresSequence(t *testing.T) {
	_, _, err := execute(t, "analyze")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "vibe-dna version dev"))
}

func TestConfigGet(t *testing.T) {
	stdout, _, err := execute(t, "config", "get", "charts.width")
	require.NoError(t, err)
	assert.Equal(t, "1000\n", stdout)
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		l, err := newLogger(level)
		require.NoError(t, err, level)
		assert.NotNil(t, l)
	}

	_, err := newLogger("loud")
	assert.Error(t, err)
}
