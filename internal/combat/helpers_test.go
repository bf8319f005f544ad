package combat

import (
	"robot_arena/internal/util"
)

// script replays fixed Intn results (taken mod n); once exhausted every
// roll is 0, which is a hit and the first choice. Shuffle keeps order.
type script struct {
	rolls []int
	used  int
}

func (s *script) Intn(n int) int {
	if s.used >= len(s.rolls) {
		return 0
	}
	v := s.rolls[s.used] % n
	s.used++
	return v
}

func (s *script) Shuffle(n int, swap func(i, j int)) {}

const (
	hit  = 0
	miss = 99
)

func scripted(w, h int, rolls []int, robots ...*Robot) (*Battle, *[]Event) {
	var events []Event
	b := New(Battlefield{Width: w, Height: h}, robots, Options{
		Dice:     util.NewDice(&script{rolls: rolls}, util.DefaultHitChance),
		MaxTurns: 100,
		Emit:     func(ev Event) { events = append(events, ev) },
	})
	return b, &events
}

func seeded(w, h int, seed int64, robots ...*Robot) *Battle {
	return New(Battlefield{Width: w, Height: h}, robots, Options{
		Dice:     util.NewDice(util.New(seed), util.DefaultHitChance),
		MaxTurns: 200,
		Seed:     seed,
	})
}

func bot(kind, name string, x, y int) *Robot {
	r, _ := NewRobot(kind, name, rune(name[0]), Pos{X: x, Y: y}, DefaultProfile)
	return r
}

func see(r *Robot, targets ...*Robot) {
	r.SeenTargets = targets
	r.SawTarget = len(targets) > 0
}

func countType(events []Event, typ string) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}
