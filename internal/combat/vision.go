package combat

// Think runs the robot's think phase. A HideBot with charges left goes
// hidden for this turn.
func (b *Battle) Think(r *Robot) {
	r.hideArmed = false
	if r.Movement == MoveHide && r.HidesLeft > 0 {
		r.Hidden = true
		r.hideArmed = true
		r.HidesLeft--
		b.emit(Event{Type: EvHide, Actor: r.Name, Payload: map[string]any{"left": r.HidesLeft}})
		return
	}
	b.emit(Event{Type: EvThink, Actor: r.Name})
}

// visibleTo reports whether t can be seen by r through any source.
func visibleTo(r, t *Robot) bool {
	return t != r && t.Alive && !t.Hidden
}

// Look rebuilds r.SeenTargets. Tracked and scanned robots come first, then
// anything in the Moore neighborhood; the list never repeats a robot.
func (b *Battle) Look(r *Robot) []*Robot {
	seen := make([]*Robot, 0, 4)
	in := map[*Robot]bool{}
	add := func(t *Robot) {
		if in[t] {
			return
		}
		in[t] = true
		seen = append(seen, t)
	}

	if r.Vision == VisionTrack {
		if !r.trackAcquired {
			b.acquireTracks(r)
		}
		for _, t := range r.Tracked {
			if visibleTo(r, t) {
				add(t)
			}
		}
	}

	// A scan is charged once per turn so repeated looks agree.
	if r.Vision == VisionScout && (r.ScansLeft > 0 || r.lastScanTurn == b.Turn) {
		if r.lastScanTurn != b.Turn {
			r.ScansLeft--
			r.lastScanTurn = b.Turn
			b.emit(Event{Type: EvScan, Actor: r.Name, Payload: map[string]any{"left": r.ScansLeft}})
		}
		for _, t := range b.Robots {
			if visibleTo(r, t) {
				add(t)
			}
		}
	}

	for _, np := range Neighbors(r.Pos) {
		for _, t := range b.Robots {
			if t.Pos == np && visibleTo(r, t) {
				add(t)
			}
		}
	}

	r.SeenTargets = seen
	r.SawTarget = len(seen) > 0
	if !r.SawTarget {
		b.emit(Event{Type: EvSeeNone, Actor: r.Name})
	}
	for _, t := range seen {
		b.emit(Event{Type: EvSee, Actor: r.Name, Target: t.Name, Payload: map[string]any{
			"x": t.Pos.X, "y": t.Pos.Y,
		}})
	}
	return seen
}

func (b *Battle) acquireTracks(r *Robot) {
	var pool []*Robot
	for _, t := range b.Robots {
		if visibleTo(r, t) {
			pool = append(pool, t)
		}
	}
	b.Dice.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	n := TrackLimit
	if len(pool) < n {
		n = len(pool)
	}
	r.Tracked = append([]*Robot(nil), pool[:n]...)
	r.trackAcquired = true

	names := make([]string, 0, n)
	for _, t := range r.Tracked {
		names = append(names, t.Name)
	}
	b.emit(Event{Type: EvTrack, Actor: r.Name, Payload: map[string]any{"tracked": names}})
}
