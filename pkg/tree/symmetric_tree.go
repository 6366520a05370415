package tree

import (
	"fmt"
	"github.com/willbeason/growing-tree/pkg/geometry"
	"math"
)

// Symmetric returns a perfectly-symmetric tree where every branch forks into
// two children deviating by exactly spread degrees. Level i holds 2^i branches.
func Symmetric(base geometry.XY, startAngle, unit float64, depth int, spread float64) (Levels, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDepth, depth)
	}
	if !(spread > 0) || math.IsInf(spread, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrSpread, spread)
	}

	b := Builder{Unit: unit}

	levels := make(Levels, depth)
	levels[0] = []Branch{{
		Angle: startAngle,
		Segment: geometry.Segment{
			Start: base,
			End:   geometry.NextPoint(base, startAngle, 0, depth, unit),
		},
	}}

	for level := 1; level < depth; level++ {
		children := make([]Branch, 0, 2*len(levels[level-1]))
		for _, parent := range levels[level-1] {
			children = append(children,
				b.child(parent, parent.Angle-spread, level, depth),
				b.child(parent, parent.Angle+spread, level, depth),
			)
		}
		levels[level] = children
	}

	return levels, nil
}
