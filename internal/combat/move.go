package combat

import "math"

// nearest returns the closest live, visible robot in list by Manhattan
// distance; ties keep list order.
func nearest(from Pos, list []*Robot) *Robot {
	var best *Robot
	bestDist := math.MaxInt32
	for _, t := range list {
		if !t.Alive || t.Hidden {
			continue
		}
		if d := Manhattan(from, t.Pos); d < bestDist {
			bestDist = d
			best = t
		}
	}
	return best
}

// pursuitTarget prefers a tracked robot, then anything seen this turn.
func (b *Battle) pursuitTarget(r *Robot) *Robot {
	if r.Vision == VisionTrack {
		if t := nearest(r.Pos, r.Tracked); t != nil {
			return t
		}
	}
	if r.SawTarget {
		return nearest(r.Pos, r.SeenTargets)
	}
	return nil
}

// Move runs the move phase. The new cell is always in bounds and free of
// other live robots; with nowhere to go the robot stays put.
func (b *Battle) Move(r *Robot) {
	if !r.Alive {
		return
	}
	if !r.hideArmed {
		r.Hidden = false
	}
	r.hideArmed = false

	if r.Movement == MoveJump && r.JumpsLeft > 0 && r.SawTarget {
		if t := nearest(r.Pos, r.SeenTargets); t != nil {
			if opts := b.Field.freeNeighbors(t.Pos, b.Robots); len(opts) > 0 {
				r.Pos = opts[b.Dice.Pick(len(opts))]
				r.JumpsLeft--
				b.emit(Event{Type: EvJump, Actor: r.Name, Target: t.Name, Payload: map[string]any{
					"x": r.Pos.X, "y": r.Pos.Y, "left": r.JumpsLeft,
				}})
				return
			}
		}
	}

	if t := b.pursuitTarget(r); t != nil {
		np := StepToward(r.Pos, t.Pos)
		if np != r.Pos && b.Field.InBounds(np) && OccupantAt(b.Robots, np) == nil {
			r.Pos = np
			b.emit(Event{Type: EvMove, Actor: r.Name, Target: t.Name, Payload: map[string]any{"x": np.X, "y": np.Y}})
			return
		}
	}

	opts := b.Field.freeNeighbors(r.Pos, b.Robots)
	if len(opts) == 0 {
		b.emit(Event{Type: EvStuck, Actor: r.Name})
		return
	}
	r.Pos = opts[b.Dice.Pick(len(opts))]
	b.emit(Event{Type: EvMove, Actor: r.Name, Payload: map[string]any{"x": r.Pos.X, "y": r.Pos.Y}})
}
