package combat

// Battlefield is the bounded grid the robots fight on.
type Battlefield struct {
	Width  int
	Height int
}

func (f Battlefield) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < f.Width && p.Y >= 0 && p.Y < f.Height
}

func (f Battlefield) Area() int { return f.Width * f.Height }

// occupied indexes live robot positions. Hidden robots still hold their cell.
func occupied(robots []*Robot) map[Pos]*Robot {
	m := make(map[Pos]*Robot, len(robots))
	for _, r := range robots {
		if r.Alive {
			m[r.Pos] = r
		}
	}
	return m
}

// OccupantAt returns the live robot standing on p, if any.
func OccupantAt(robots []*Robot, p Pos) *Robot {
	for _, r := range robots {
		if r.Alive && r.Pos == p {
			return r
		}
	}
	return nil
}

// AdjacentTo lists live robots in the Moore neighborhood of p, in roster order.
func AdjacentTo(robots []*Robot, p Pos) []*Robot {
	var out []*Robot
	for _, r := range robots {
		if r.Alive && Adjacent(p, r.Pos) {
			out = append(out, r)
		}
	}
	return out
}

// freeNeighbors lists in-bounds, unoccupied Moore cells around center.
func (f Battlefield) freeNeighbors(center Pos, robots []*Robot) []Pos {
	occ := occupied(robots)
	var out []Pos
	for _, np := range Neighbors(center) {
		if !f.InBounds(np) {
			continue
		}
		if _, taken := occ[np]; taken {
			continue
		}
		out = append(out, np)
	}
	return out
}

// freeCells lists every unoccupied cell, row by row.
func (f Battlefield) freeCells(robots []*Robot) []Pos {
	occ := occupied(robots)
	out := make([]Pos, 0, f.Area())
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := Pos{x, y}
			if _, taken := occ[p]; !taken {
				out = append(out, p)
			}
		}
	}
	return out
}
