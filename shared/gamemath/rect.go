package gamemath

import "math"

// Rect is an axis-aligned box in integer world pixels.
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether the two boxes overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Center returns the box center in floating point.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// MidBottom returns the bottom-center anchor.
func (r Rect) MidBottom() (int, int) {
	return r.X + r.W/2, r.Y + r.H
}

// WithMidBottom returns a copy of r moved so its bottom-center sits on (x, y).
func (r Rect) WithMidBottom(x, y int) Rect {
	r.X = x - r.W/2
	r.Y = y - r.H
	return r
}

func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Shrink scales the box around its bottom-center. Used for hazard damage regions.
func (r Rect) Shrink(scaleW, scaleH float64) Rect {
	x, y := r.MidBottom()
	s := Rect{
		W: int(math.Round(float64(r.W) * scaleW)),
		H: int(math.Round(float64(r.H) * scaleH)),
	}
	return s.WithMidBottom(x, y)
}

// CenterDistance is the Euclidean distance between two box centers.
func CenterDistance(a, b Rect) float64 {
	ax, ay := a.Center()
	bx, by := b.Center()
	return math.Hypot(bx-ax, by-ay)
}
