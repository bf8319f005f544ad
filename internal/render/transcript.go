package render

import (
	"fmt"
	"io"
	"strings"

	"robot_arena/internal/combat"
)

// Transcript writes the human-readable record of a run: a board before each
// turn, one status line per robot after it, and optionally a narration line
// per event. The first write error sticks and later writes are skipped.
type Transcript struct {
	w       io.Writer
	err     error
	narrate bool
}

func New(w io.Writer, narrate bool) *Transcript {
	return &Transcript{w: w, narrate: narrate}
}

// Err returns the first write error, if any.
func (t *Transcript) Err() error { return t.err }

func (t *Transcript) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// Header opens a run.
func (t *Transcript) Header(runID string, seed int64, field combat.Battlefield, robots int) error {
	t.printf("=== run %s seed=%d battlefield=%dx%d robots=%d ===\n", runID, seed, field.Width, field.Height, robots)
	return t.err
}

func (t *Transcript) Board(turn int, field combat.Battlefield, robots []*combat.Robot) error {
	t.printf("\nTurn %d\n%s", turn, Grid(field, robots))
	return t.err
}

func (t *Transcript) Status(turn int, robots []*combat.Robot) error {
	for _, r := range robots {
		t.printf("%s\n", StatusLine(r))
	}
	return t.err
}

// Event narrates ev when narration is on. Its signature fits combat.Options.Emit.
func (t *Transcript) Event(ev combat.Event) {
	if !t.narrate {
		return
	}
	if line := Narrate(ev); line != "" {
		t.printf("  %s\n", line)
	}
}

// Footer closes a run with its outcome.
func (t *Transcript) Footer(res combat.Result) error {
	if res.Draw() {
		t.printf("\nGame over after %d turns: draw\n", res.Turns)
	} else {
		t.printf("\nGame over after %d turns: %s wins\n", res.Turns, res.Winner)
	}
	return t.err
}

// Grid draws the battlefield row by row. Hidden robots are left off the map.
func Grid(field combat.Battlefield, robots []*combat.Robot) string {
	cells := make([][]byte, field.Height)
	for y := range cells {
		cells[y] = []byte(strings.Repeat(".", field.Width))
	}
	var sb strings.Builder
	var extra []string
	for _, r := range robots {
		if !r.Alive || r.Hidden || !field.InBounds(r.Pos) {
			continue
		}
		if r.Symbol < 0x80 {
			cells[r.Pos.Y][r.Pos.X] = byte(r.Symbol)
		} else {
			cells[r.Pos.Y][r.Pos.X] = '*'
			extra = append(extra, fmt.Sprintf("* = %s", r.Name))
		}
	}
	sb.WriteString("+" + strings.Repeat("-", field.Width) + "+\n")
	for _, row := range cells {
		sb.WriteByte('|')
		sb.Write(row)
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", field.Width) + "+\n")
	for _, e := range extra {
		sb.WriteString(e + "\n")
	}
	return sb.String()
}

// StatusLine renders one robot, e.g.
//
//	Kidd at (3,6) shells=9 lives=2 kills=1 | Upgrades: JumpBot(2) SemiAutoBot
func StatusLine(r *combat.Robot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at (%d,%d) shells=%d lives=%d kills=%d | Upgrades:", r.Name, r.Pos.X, r.Pos.Y, r.Ammo, r.Lives, r.Kills)
	ups := upgrades(r)
	if len(ups) == 0 {
		sb.WriteString(" none")
	}
	for _, u := range ups {
		sb.WriteString(" " + u)
	}
	switch {
	case r.Eliminated():
		sb.WriteString(" [ELIMINATED]")
	case r.Queued():
		sb.WriteString(" [DEAD, respawning]")
	case !r.Alive:
		sb.WriteString(" [DEAD]")
	case r.Hidden:
		sb.WriteString(" [HIDDEN]")
	}
	return sb.String()
}

func upgrades(r *combat.Robot) []string {
	var out []string
	switch r.Movement {
	case combat.MoveJump:
		out = append(out, fmt.Sprintf("%s(%d)", r.Movement, r.JumpsLeft))
	case combat.MoveHide:
		out = append(out, fmt.Sprintf("%s(%d)", r.Movement, r.HidesLeft))
	}
	if r.Shooting != combat.ShootNone {
		out = append(out, r.Shooting.String())
	}
	switch r.Vision {
	case combat.VisionScout:
		out = append(out, fmt.Sprintf("%s(%d)", r.Vision, r.ScansLeft))
	case combat.VisionTrack:
		out = append(out, fmt.Sprintf("%s(%d)", r.Vision, len(r.Tracked)))
	}
	return out
}
