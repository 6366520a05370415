package geometry

import (
	"math"
	"math/rand"
	"testing"
)

const tolerance = 1e-9

func near(a, b XY) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}

func TestSegmentLength(t *testing.T) {
	tests := []struct {
		name string
		s    Segment
		want float64
	}{
		{"zero", Segment{XY{1, 1}, XY{1, 1}}, 0},
		{"horizontal", Segment{XY{0, 0}, XY{-4, 0}}, 4},
		{"vertical", Segment{XY{0, 0}, XY{0, 10}}, 10},
		{"3-4-5", Segment{XY{1, 2}, XY{4, 6}}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Length(); math.Abs(got-tt.want) > tolerance {
				t.Errorf("%v.Length() = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestSegmentSlope(t *testing.T) {
	tests := []struct {
		name string
		s    Segment
		want float64
	}{
		{"down", Segment{XY{0, 0}, XY{0, 10}}, math.Inf(1)},
		{"up", Segment{XY{0, 10}, XY{0, 0}}, math.Inf(-1)},
		{"zero length", Segment{XY{3, 3}, XY{3, 3}}, math.Inf(1)},
		{"flat", Segment{XY{0, 0}, XY{5, 0}}, 0},
		{"diagonal", Segment{XY{0, 0}, XY{-2, 4}}, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.s.Slope()
			if math.IsNaN(got) {
				t.Fatalf("%v.Slope() = NaN", tt.s)
			}
			if got != tt.want {
				t.Errorf("%v.Slope() = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestPointAtDistanceVertical(t *testing.T) {
	s := Segment{XY{0, 0}, XY{0, 10}}
	got := PointAtDistance(s, s.Slope(), 5)
	if !near(got, XY{0, 5}) {
		t.Errorf("PointAtDistance = %v, want (0, 5)", got)
	}

	up := Segment{XY{0, 10}, XY{0, 0}}
	got = PointAtDistance(up, up.Slope(), 4)
	if !near(got, XY{0, 6}) {
		t.Errorf("PointAtDistance upward = %v, want (0, 6)", got)
	}
}

func TestPointAtDistanceZeroLength(t *testing.T) {
	s := Segment{XY{2, 7}, XY{2, 7}}
	got := PointAtDistance(s, s.Slope(), s.Length())
	if got != s.Start {
		t.Errorf("PointAtDistance = %v, want %v", got, s.Start)
	}
}

func TestPointAtDistanceRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		s := Segment{
			Start: XY{X: r.Float64()*200 - 100, Y: r.Float64()*200 - 100},
			End:   XY{X: r.Float64()*200 - 100, Y: r.Float64()*200 - 100},
		}
		got := PointAtDistance(s, s.Slope(), s.Length())
		if math.Abs(got.X-s.End.X) > 1e-6 || math.Abs(got.Y-s.End.Y) > 1e-6 {
			t.Fatalf("PointAtDistance(%v, full length) = %v, want %v", s, got, s.End)
		}
	}
}

func TestPointAtDistanceRoundTripOnAngles(t *testing.T) {
	origin := XY{X: 400, Y: 600}
	for angle := -180.0; angle <= 180.0; angle += 2.5 {
		end := NextPoint(origin, angle, 0, 20, 3)
		s := Segment{Start: origin, End: end}
		got := PointAtDistance(s, s.Slope(), s.Length())
		if math.Abs(got.X-end.X) > 1e-6 || math.Abs(got.Y-end.Y) > 1e-6 {
			t.Errorf("angle %v: PointAtDistance = %v, want %v", angle, got, end)
		}
	}
}

func TestNextPoint(t *testing.T) {
	tests := []struct {
		name         string
		angle        float64
		level, depth int
		want         XY
	}{
		{"right at root", 0, 0, 10, XY{30, 0}},
		{"down half way", 90, 5, 10, XY{0, 15}},
		{"left leaf", 180, 9, 10, XY{-3, 0}},
		{"past depth", 0, 10, 10, XY{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPoint(XY{}, tt.angle, tt.level, tt.depth, 3)
			if !near(got, tt.want) {
				t.Errorf("NextPoint(%v, %d, %d) = %v, want %v", tt.angle, tt.level, tt.depth, got, tt.want)
			}
		})
	}
}
