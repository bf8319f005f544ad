package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfig marks every setup problem that must stop a run before it starts.
var ErrConfig = errors.New("config error")

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

const (
	DefaultWidth  = 10
	DefaultHeight = 10
	DefaultSteps  = 100
)

// Coord is a roster coordinate: a fixed cell index or "random".
type Coord struct {
	Value  int
	Random bool
}

func Fixed(v int) Coord { return Coord{Value: v} }

var RandomCoord = Coord{Random: true}

func (c Coord) String() string {
	if c.Random {
		return "random"
	}
	return strconv.Itoa(c.Value)
}

func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "random") {
		return RandomCoord, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Coord{}, configErrorf("coordinate %q is neither an integer nor \"random\"", s)
	}
	return Fixed(v), nil
}

func (c *Coord) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return configErrorf("line %d: coordinate must be a scalar", node.Line)
	}
	parsed, err := ParseCoord(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

func (c Coord) MarshalYAML() (any, error) {
	if c.Random {
		return "random", nil
	}
	return c.Value, nil
}

// RobotSpec is one roster entry.
type RobotSpec struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
	X    Coord  `yaml:"x"`
	Y    Coord  `yaml:"y"`
}

type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Setup is everything the engine needs to place the first turn.
type Setup struct {
	Grid     GridConfig               `yaml:"grid"`
	Steps    int                      `yaml:"steps"`
	Defaults ProfileConfig            `yaml:"defaults"`
	Profiles map[string]ProfileConfig `yaml:"profiles"`
	Robots   []RobotSpec              `yaml:"robots"`
}

func (s *Setup) Validate(base Vitals) error {
	if s.Grid.Width <= 0 || s.Grid.Height <= 0 {
		return configErrorf("battlefield must be at least 1x1, got %dx%d", s.Grid.Width, s.Grid.Height)
	}
	if s.Steps <= 0 {
		return configErrorf("steps must be positive, got %d", s.Steps)
	}
	if len(s.Robots) == 0 {
		return configErrorf("roster is empty")
	}
	if len(s.Robots) > s.Grid.Width*s.Grid.Height {
		return configErrorf("%d robots do not fit on a %dx%d battlefield", len(s.Robots), s.Grid.Width, s.Grid.Height)
	}
	for i, r := range s.Robots {
		if r.Name == "" {
			return configErrorf("robot #%d has no name", i+1)
		}
		if r.Kind == "" {
			return configErrorf("robot %q has no kind", r.Name)
		}
		if err := s.VitalsFor(r.Kind, base).validate(); err != nil {
			return fmt.Errorf("robot %q: %w", r.Name, err)
		}
	}
	return nil
}

// ParseText reads the line-oriented setup format:
//
//	M by N : 10 10
//	steps: 100
//	robots: 2
//	GenericRobot Kidd 3 6
//	JumpBot Jet random random
//
// Header lines may come in any order; roster tokens may wrap across lines.
func ParseText(r io.Reader) (*Setup, error) {
	s := &Setup{
		Grid:  GridConfig{Width: DefaultWidth, Height: DefaultHeight},
		Steps: DefaultSteps,
	}
	sc := bufio.NewScanner(r)
	lineNo := 0
	count := -1
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case strings.Contains(line, "M by N"):
			if _, err := fmt.Sscanf(afterColon(line), "%d %d", &s.Grid.Width, &s.Grid.Height); err != nil {
				return nil, configErrorf("line %d: bad battlefield size %q", lineNo, line)
			}
		case strings.HasPrefix(strings.ToLower(line), "steps"):
			if _, err := fmt.Sscanf(afterColon(line), "%d", &s.Steps); err != nil {
				return nil, configErrorf("line %d: bad step count %q", lineNo, line)
			}
		case strings.HasPrefix(strings.ToLower(line), "robots"):
			if _, err := fmt.Sscanf(afterColon(line), "%d", &count); err != nil || count < 0 {
				return nil, configErrorf("line %d: bad robot count %q", lineNo, line)
			}
		default:
			return nil, configErrorf("line %d: unexpected %q before the robots header", lineNo, line)
		}
		if count >= 0 {
			break
		}
	}
	if count < 0 {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: read setup: %v", ErrConfig, err)
		}
		return nil, configErrorf("missing \"robots: N\" header")
	}

	var tokens []string
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read setup: %v", ErrConfig, err)
	}
	if len(tokens) != count*4 {
		return nil, configErrorf("roster declares %d robots but has %d fields (want 4 per robot)", count, len(tokens))
	}
	for i := 0; i < count; i++ {
		f := tokens[i*4 : i*4+4]
		x, err := ParseCoord(f[2])
		if err != nil {
			return nil, fmt.Errorf("robot %q: %w", f[1], err)
		}
		y, err := ParseCoord(f[3])
		if err != nil {
			return nil, fmt.Errorf("robot %q: %w", f[1], err)
		}
		s.Robots = append(s.Robots, RobotSpec{Kind: f[0], Name: f[1], X: x, Y: y})
	}
	return s, nil
}

func afterColon(line string) string {
	if i := strings.Index(line, ":"); i >= 0 {
		return line[i+1:]
	}
	return line
}
