package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadYAML reads a YAML scenario. Missing grid and steps fall back to the
// text format defaults.
func LoadYAML(path string) (*Setup, error) {
	s := Setup{
		Grid:  GridConfig{Width: DefaultWidth, Height: DefaultHeight},
		Steps: DefaultSteps,
	}
	if err := loadYAML(path, &s); err != nil {
		return nil, configErrorf("load %s: %v", path, err)
	}
	return &s, nil
}

// LoadText reads a setup in the line-oriented text format.
func LoadText(path string) (*Setup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, configErrorf("open setup: %v", err)
	}
	defer f.Close()
	s, err := ParseText(f)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Load picks the parser by extension: .yaml and .yml are scenarios, anything
// else is the text format. The result is validated against base.
func Load(path string, base Vitals) (*Setup, error) {
	var (
		s   *Setup
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err = LoadYAML(path)
	default:
		s, err = LoadText(path)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Validate(base); err != nil {
		return nil, err
	}
	return s, nil
}
