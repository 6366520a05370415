package geometry

import "math"

// XY is a point, or an offset, on the drawing surface.
type XY struct {
	X, Y float64
}

func (xy XY) Add(other XY) XY {
	return XY{X: xy.X + other.X, Y: xy.Y + other.Y}
}

// Segment is the straight line a branch occupies.
type Segment struct {
	Start, End XY
}

func (s Segment) Length() float64 {
	return math.Hypot(s.End.X-s.Start.X, s.End.Y-s.Start.Y)
}

// Slope is dy/dx of the segment.
//
// Vertical segments have an infinite slope whose sign follows dy. A zero-length
// segment reports +Inf rather than NaN, so callers only ever have to check
// math.IsInf.
func (s Segment) Slope() float64 {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	if dx == 0 {
		if dy < 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return dy / dx
}

func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// NextPoint returns the far end of a branch leaving origin at angle degrees.
// Branches shrink linearly with level, so the root is the longest.
func NextPoint(origin XY, angle float64, level, depth int, unit float64) XY {
	length := unit * float64(depth-level)
	rad := Radians(angle)
	return origin.Add(XY{
		X: math.Cos(rad) * length,
		Y: math.Sin(rad) * length,
	})
}

// PointAtDistance walks distance along s from s.Start towards s.End, given the
// segment's precomputed slope.
func PointAtDistance(s Segment, slope, distance float64) XY {
	if distance == 0 || s.Start == s.End {
		return s.Start
	}

	dirX := sign(s.End.X - s.Start.X)
	dirY := sign(s.End.Y - s.Start.Y)

	if math.IsInf(slope, 0) {
		return XY{X: s.Start.X, Y: s.Start.Y + dirY*distance}
	}

	dx := distance / math.Sqrt(1+slope*slope)
	return XY{
		X: s.Start.X + dirX*dx,
		Y: s.Start.Y + math.Abs(slope)*dx*dirY,
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1.0
	case v < 0:
		return -1.0
	}
	return 0.0
}
