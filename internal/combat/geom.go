package combat

// Pos is a grid cell; X is the column, Y the row.
type Pos struct{ X, Y int }

func (a Pos) Add(b Pos) Pos { return Pos{a.X + b.X, a.Y + b.Y} }
func (a Pos) Sub(b Pos) Pos { return Pos{a.X - b.X, a.Y - b.Y} }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func Manhattan(a, b Pos) int { return abs(a.X-b.X) + abs(a.Y-b.Y) }

// Adjacent reports whether b lies in the Moore neighborhood of a.
func Adjacent(a, b Pos) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// mooreOffsets walks the 8 neighbors column-major, dx outer and dy inner.
var mooreOffsets = [8]Pos{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the Moore neighborhood of p in a stable order.
func Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, len(mooreOffsets))
	for _, d := range mooreOffsets {
		out = append(out, p.Add(d))
	}
	return out
}

// StepToward moves at most one cell per axis from p toward q.
func StepToward(p, q Pos) Pos {
	return Pos{p.X + sign(q.X-p.X), p.Y + sign(q.Y-p.Y)}
}
