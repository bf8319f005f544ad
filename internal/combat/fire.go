package combat

// Fire runs the fire phase for r against its current SeenTargets.
func (b *Battle) Fire(r *Robot) {
	if !r.Alive || r.Ammo <= 0 {
		return
	}
	switch r.Shooting {
	case ShootSemiAuto:
		if r.SawTarget {
			b.fireSemiAuto(r)
			return
		}
	case ShootLongShot:
		if r.SawTarget {
			b.fireLongShot(r)
			return
		}
	case ShootPlus, ShootCross, ShootDoubleRow:
		if b.firePattern(r) {
			return
		}
	}
	b.fireAdjacent(r)
}

// fireAdjacent is the default shot: one random seen robot in the Moore
// neighborhood. Pattern shooters with nothing in their pattern land here too.
func (b *Battle) fireAdjacent(r *Robot) {
	var cands []*Robot
	for _, t := range r.SeenTargets {
		if t.Alive && Adjacent(r.Pos, t.Pos) {
			cands = append(cands, t)
		}
	}
	if len(cands) == 0 {
		b.emit(Event{Type: EvNoTarget, Actor: r.Name, Payload: map[string]any{"reason": "adjacent"}})
		return
	}
	t := cands[b.Dice.Pick(len(cands))]
	b.volley(r, t, 1, true)
}

// fireSemiAuto spends one shell on three trials against one seen robot.
func (b *Battle) fireSemiAuto(r *Robot) {
	t := r.SeenTargets[b.Dice.Pick(len(r.SeenTargets))]
	b.volley(r, t, 3, false)
}

func (b *Battle) fireLongShot(r *Robot) {
	var cands []*Robot
	for _, t := range r.SeenTargets {
		d := Manhattan(r.Pos, t.Pos)
		if t.Alive && d > 0 && d <= LongShotRange {
			cands = append(cands, t)
		}
	}
	if len(cands) == 0 {
		b.emit(Event{Type: EvNoTarget, Actor: r.Name, Payload: map[string]any{"reason": "range"}})
		return
	}
	t := cands[b.Dice.Pick(len(cands))]
	b.volley(r, t, 1, false)
}

// inPattern reports whether the offset d from the shooter lies in the
// shooting kind's firing pattern.
func inPattern(k ShootingKind, d Pos) bool {
	if d.X == 0 && d.Y == 0 {
		return false
	}
	switch k {
	case ShootPlus:
		return d.X == 0 || d.Y == 0
	case ShootCross:
		return abs(d.X) == abs(d.Y)
	case ShootDoubleRow:
		return abs(d.Y) <= 1
	}
	return false
}

// firePattern shoots once at every seen robot in the pattern. It reports
// false when the pattern was empty and the default shot should run.
func (b *Battle) firePattern(r *Robot) bool {
	var cands []*Robot
	for _, t := range r.SeenTargets {
		if t.Alive && inPattern(r.Shooting, t.Pos.Sub(r.Pos)) {
			cands = append(cands, t)
		}
	}
	if len(cands) == 0 {
		b.emit(Event{Type: EvPatternMiss, Actor: r.Name, Payload: map[string]any{"pattern": r.Shooting.String()}})
		return false
	}
	for _, t := range cands {
		if b.volley(r, t, 1, false) {
			break
		}
	}
	return true
}

// volley spends one shell on t and resolves shots independent trials. It
// reports whether the shooter ran dry and self-destructed.
func (b *Battle) volley(r, t *Robot, shots int, defaultPath bool) bool {
	r.Ammo--
	b.emit(Event{Type: EvFire, Actor: r.Name, Target: t.Name, Payload: map[string]any{
		"shots": shots, "ammo": r.Ammo, "dist": Manhattan(r.Pos, t.Pos), "kind": r.Shooting.String(),
	}})
	killed := false
	for i := 0; i < shots; i++ {
		if !b.Dice.Hit() {
			b.emit(Event{Type: EvMiss, Actor: r.Name, Target: t.Name})
			continue
		}
		out := t.TakeHit()
		switch out {
		case HitIgnored:
			continue
		case HitShielded:
			b.emit(Event{Type: EvShielded, Actor: r.Name, Target: t.Name})
			continue
		}
		b.emit(Event{Type: EvHit, Actor: r.Name, Target: t.Name, Payload: map[string]any{
			"health": t.Health, "outcome": out.String(),
		}})
		if out == HitKilled {
			killed = true
		}
	}

	destroyed := false
	if r.Ammo <= 0 && r.SelfDestruct() {
		destroyed = true
		b.emit(Event{Type: EvSelfDestruct, Actor: r.Name})
	}
	if killed {
		b.creditKill(r, t, defaultPath)
	}
	return destroyed
}
