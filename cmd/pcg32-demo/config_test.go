package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sot-tech/pcg32"
	"github.com/sot-tech/pcg32/pkg/conf"
	"github.com/sot-tech/pcg32/pkg/seed"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.Nil(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseConfigFile(t *testing.T) {
	path := writeConfig(t, "rounds: 3\ngenerator:\n  state: 42\n  sequence: 54\n")
	cfg, err := ParseConfigFile(path)
	require.Nil(t, err)
	require.Equal(t, 3, cfg.Rounds)

	g, err := cfg.NewGenerator()
	require.Nil(t, err)
	require.Equal(t, pcg32.FromSeed(42, 54), g)
}

func TestParseConfigFileEmptyPath(t *testing.T) {
	_, err := ParseConfigFile("")
	require.NotNil(t, err)
}

func TestNewGeneratorDefaults(t *testing.T) {
	g, err := DefaultConfig.NewGenerator()
	require.Nil(t, err)
	require.Equal(t, pcg32.FromSeed(42, 54), g)
}

func TestNewGeneratorNilSection(t *testing.T) {
	cfg := new(Config)
	g, err := cfg.NewGenerator()
	require.Nil(t, err)
	require.Equal(t, pcg32.FromSeed(42, 54), g)
}

func TestNewGeneratorLabel(t *testing.T) {
	cfg := &Config{Generator: conf.MapConfig{"label": "dealer"}}
	g, err := cfg.NewGenerator()
	require.Nil(t, err)
	require.Equal(t, pcg32.FromSeed(seed.FromLabel("dealer")), g)
}

func TestNewGeneratorLabelPrecedence(t *testing.T) {
	cfg := &Config{Generator: conf.MapConfig{"label": "dealer", "state": 7}}
	g, err := cfg.NewGenerator()
	require.Nil(t, err)
	require.Equal(t, pcg32.FromSeed(seed.FromLabel("dealer")), g)
}

func TestNewGeneratorEntropy(t *testing.T) {
	cfg := &Config{Generator: conf.MapConfig{"entropy": true}}
	a, err := cfg.NewGenerator()
	require.Nil(t, err)
	b, err := cfg.NewGenerator()
	require.Nil(t, err)
	require.NotEqual(t, a, b)
}
