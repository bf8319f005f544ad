package combat

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"robot_arena/internal/config"
	"robot_arena/internal/util"
)

var (
	// ErrIntegrity reports a robot found off the battlefield or stacked on
	// another live robot. It means a resolver bug and ends the run.
	ErrIntegrity = errors.New("integrity violation")
	// ErrPlacement reports a roster entry that could not be put on the field.
	ErrPlacement = errors.New("placement failed")
)

// PlacementAttempts bounds the retries for a "random" roster coordinate.
const PlacementAttempts = 100

// Renderer draws the battlefield before a turn and the status lines after it.
type Renderer interface {
	Board(turn int, field Battlefield, robots []*Robot) error
	Status(turn int, robots []*Robot) error
}

type Options struct {
	Dice     *util.Dice
	Policy   UpgradePolicy
	MaxTurns int
	Log      *zerolog.Logger
	Emit     func(Event)
	Renderer Renderer
	// Record keeps every event on the battle for Result.Events.
	Record bool
	RunID  string
	Seed   int64
}

// Battle owns the roster, the respawn queue and the random source for one run.
type Battle struct {
	Field    Battlefield
	Robots   []*Robot
	Dice     *util.Dice
	Policy   UpgradePolicy
	MaxTurns int
	Turn     int
	Log      zerolog.Logger
	Emit     func(Event)
	Renderer Renderer
	RunID    string
	Seed     int64

	record bool
	events []Event
	queue  []*Robot
}

// New wraps an already placed roster.
func New(field Battlefield, robots []*Robot, opts Options) *Battle {
	b := &Battle{
		Field:    field,
		Robots:   robots,
		Dice:     opts.Dice,
		Policy:   opts.Policy,
		MaxTurns: opts.MaxTurns,
		Log:      zerolog.Nop(),
		Emit:     opts.Emit,
		Renderer: opts.Renderer,
		RunID:    opts.RunID,
		Seed:     opts.Seed,
		record:   opts.Record,
	}
	if b.Dice == nil {
		b.Dice = util.NewDice(util.New(opts.Seed), util.DefaultHitChance)
	}
	if opts.Log != nil {
		b.Log = opts.Log.With().Str("run", opts.RunID).Logger()
	}
	return b
}

// NewBattle builds the roster from a loaded setup. Symbols run A, B, C... in
// roster order. opts.MaxTurns of zero takes the setup's step count.
func NewBattle(setup *config.Setup, base config.Vitals, opts Options) (*Battle, error) {
	field := Battlefield{Width: setup.Grid.Width, Height: setup.Grid.Height}
	if opts.MaxTurns == 0 {
		opts.MaxTurns = setup.Steps
	}
	b := New(field, nil, opts)

	for i, spec := range setup.Robots {
		p, err := b.place(spec)
		if err != nil {
			return nil, err
		}
		v := setup.VitalsFor(spec.Kind, base)
		r, ok := NewRobot(spec.Kind, spec.Name, rune('A'+i), p, Profile{Health: v.Health, Ammo: v.Ammo, Lives: v.Lives})
		if !ok {
			b.Log.Warn().Str("robot", spec.Name).Str("kind", spec.Kind).Msg("unknown robot kind, using " + GenericKind)
		}
		b.Robots = append(b.Robots, r)
	}
	return b, nil
}

func (b *Battle) place(spec config.RobotSpec) (Pos, error) {
	if !spec.X.Random && (spec.X.Value < 0 || spec.X.Value >= b.Field.Width) ||
		!spec.Y.Random && (spec.Y.Value < 0 || spec.Y.Value >= b.Field.Height) {
		return Pos{}, fmt.Errorf("%w: %s at (%s,%s) is outside the %dx%d battlefield",
			ErrPlacement, spec.Name, spec.X, spec.Y, b.Field.Width, b.Field.Height)
	}
	for attempt := 0; attempt < PlacementAttempts; attempt++ {
		p := Pos{X: spec.X.Value, Y: spec.Y.Value}
		if spec.X.Random {
			p.X = b.Dice.Pick(b.Field.Width)
		}
		if spec.Y.Random {
			p.Y = b.Dice.Pick(b.Field.Height)
		}
		other := OccupantAt(b.Robots, p)
		if other == nil {
			return p, nil
		}
		if !spec.X.Random && !spec.Y.Random {
			return Pos{}, fmt.Errorf("%w: %s at (%d,%d) collides with %s", ErrPlacement, spec.Name, p.X, p.Y, other.Name)
		}
	}
	return Pos{}, fmt.Errorf("%w: no free cell for %s after %d attempts", ErrPlacement, spec.Name, PlacementAttempts)
}

func (b *Battle) emit(ev Event) {
	ev.Turn = b.Turn
	b.Log.Trace().Str("type", ev.Type).Str("actor", ev.Actor).Str("target", ev.Target).Int("turn", ev.Turn).Msg("event")
	if b.Emit != nil {
		b.Emit(ev)
	}
	if b.record {
		b.events = append(b.events, ev)
	}
}

// Events returns what was recorded so far.
func (b *Battle) Events() []Event { return b.events }

// Tee fans one event out to several consumers; nil entries are skipped.
func Tee(fns ...func(Event)) func(Event) {
	return func(ev Event) {
		for _, fn := range fns {
			if fn != nil {
				fn(ev)
			}
		}
	}
}

// AliveCount counts robots currently on the field.
func (b *Battle) AliveCount() int {
	n := 0
	for _, r := range b.Robots {
		if r.Alive {
			n++
		}
	}
	return n
}

// Robot finds a roster entry by name.
func (b *Battle) Robot(name string) *Robot {
	for _, r := range b.Robots {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Queue lists the respawn queue, head first.
func (b *Battle) Queue() []*Robot {
	return append([]*Robot(nil), b.queue...)
}

// CheckIntegrity verifies every live robot is in bounds and alone on its cell.
func (b *Battle) CheckIntegrity() error {
	seen := make(map[Pos]*Robot, len(b.Robots))
	for _, r := range b.Robots {
		if !r.Alive {
			continue
		}
		if !b.Field.InBounds(r.Pos) {
			return fmt.Errorf("%w: turn %d: %s at (%d,%d) outside %dx%d",
				ErrIntegrity, b.Turn, r.Name, r.Pos.X, r.Pos.Y, b.Field.Width, b.Field.Height)
		}
		if other, ok := seen[r.Pos]; ok {
			return fmt.Errorf("%w: turn %d: %s and %s share (%d,%d)",
				ErrIntegrity, b.Turn, other.Name, r.Name, r.Pos.X, r.Pos.Y)
		}
		seen[r.Pos] = r
	}
	return nil
}
