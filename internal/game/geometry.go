package game

import "math"

// Vec is a point or a direction in arena space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec) Scale(k float64) Vec { return Vec{X: v.X * k, Y: v.Y * k} }

// Len returns the euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return b.Sub(a).Len()
}

// Unit returns v scaled to length 1. A zero-length vector has no direction:
// the zero vector and false are returned.
func Unit(v Vec) (Vec, bool) {
	l := v.Len()
	if l < 1e-9 {
		return Vec{}, false
	}
	return Vec{X: v.X / l, Y: v.Y / l}, true
}

// PointAlong returns the point dist units from 'from' in the direction of 'to'.
// When from and to coincide, from is returned unchanged.
func PointAlong(from, to Vec, dist float64) Vec {
	dir, ok := Unit(to.Sub(from))
	if !ok {
		return from
	}
	return from.Add(dir.Scale(dist))
}

// ScaleLength maps value out of max onto a bar that is fullLength long.
// Values past max produce bars longer than fullLength; callers clamp.
func ScaleLength(value, max, fullLength float64) float64 {
	if max <= 0 {
		return 0
	}
	return fullLength * value / max
}

// Ratio returns value/max clamped to [0,1]. A non-positive max reads as full.
func Ratio(value, max float64) float64 {
	if max <= 0 {
		return 1
	}
	return clamp(value/max, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota + 1
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// stepToward moves pos at most step units toward target along a single axis.
// X is resolved first; Y only moves once X is aligned. The step snaps onto the
// target coordinate when it is closer than step.
func stepToward(pos, target Vec, step float64) Vec {
	switch {
	case pos.X < target.X:
		pos.X = math.Min(pos.X+step, target.X)
	case pos.X > target.X:
		pos.X = math.Max(pos.X-step, target.X)
	case pos.Y < target.Y:
		pos.Y = math.Min(pos.Y+step, target.Y)
	case pos.Y > target.Y:
		pos.Y = math.Max(pos.Y-step, target.Y)
	}
	return pos
}
