package coord

type Point struct{ X, Y int }

func (p Point) Equal(b Point) bool {
	return p.X == b.X && p.Y == b.Y
}

// Add will add the target values to p.
func (p Point) Add(target Point) Point {
	p.X += target.X
	p.Y += target.Y
	return p
}

// Sub will subtract the target values from p.
func (p Point) Sub(target Point) Point {
	p.X -= target.X
	p.Y -= target.Y
	return p
}

// Wrap will map p onto a w-by-h grid, taking the positive
// remainder so negative values come in from the far edge.
func (p Point) Wrap(w, h int) Point {
	p.X %= w
	if p.X < 0 {
		p.X += w
	}
	p.Y %= h
	if p.Y < 0 {
		p.Y += h
	}
	return p
}
