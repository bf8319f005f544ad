package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_YAMLScenario(t *testing.T) {
	path := writeFile(t, "duel.yaml", `
grid: { width: 8, height: 6 }
steps: 40
defaults:
  ammo: 5
profiles:
  ThirtyShotBot:
    lives: 0
robots:
  - { kind: ThirtyShotBot, name: Thirty, x: 1, y: random }
  - { kind: HideBot, name: Shade, x: random, y: 5 }
`)
	s, err := Load(path, stock)
	require.NoError(t, err)

	assert.Equal(t, GridConfig{Width: 8, Height: 6}, s.Grid)
	assert.Equal(t, 40, s.Steps)
	require.Len(t, s.Robots, 2)
	assert.Equal(t, Fixed(1), s.Robots[0].X)
	assert.Equal(t, RandomCoord, s.Robots[0].Y)
	assert.Equal(t, Vitals{Health: 1, Ammo: 5, Lives: 0}, s.VitalsFor("ThirtyShotBot", stock))
}

func TestLoad_YAMLDefaultsGrid(t *testing.T) {
	path := writeFile(t, "min.yml", "robots:\n  - {kind: GenericRobot, name: Kidd, x: 0, y: 0}\n")
	s, err := Load(path, stock)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, s.Grid.Width)
	assert.Equal(t, DefaultSteps, s.Steps)
}

func TestLoad_YAMLBadCoordinate(t *testing.T) {
	path := writeFile(t, "bad.yaml", "robots:\n  - {kind: GenericRobot, name: Kidd, x: left, y: 0}\n")
	_, err := Load(path, stock)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoad_TextFile(t *testing.T) {
	path := writeFile(t, "setup.txt", "M by N : 5 5\nsteps: 10\nrobots: 1\nGenericRobot Kidd random 2\n")
	s, err := Load(path, stock)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Steps)
	assert.Equal(t, Fixed(2), s.Robots[0].Y)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), stock)
	assert.ErrorIs(t, err, ErrConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), stock)
	assert.ErrorIs(t, err, ErrConfig)

	path := writeFile(t, "empty.txt", "robots: 0\n")
	_, err = Load(path, stock)
	assert.ErrorIs(t, err, ErrConfig, "an empty roster fails validation")
}
