package tree

import (
	"errors"
	"fmt"
	"github.com/willbeason/growing-tree/pkg/geometry"
	"math"
	"math/rand"
)

var (
	ErrDepth  = errors.New("tree depth must be a positive integer")
	ErrSpread = errors.New("spread angle must be positive")
)

// A Branch is a single straight piece of the tree.
type Branch struct {
	// Angle is the direction from Start to End in degrees, clockwise from the
	// positive X axis since the surface's Y axis points down.
	Angle float64

	geometry.Segment
}

// Levels holds a tree breadth-first. Every Branch in Levels[i+1] starts at the
// End of some Branch in Levels[i].
type Levels [][]Branch

// Count is the total number of branches in the tree.
func (l Levels) Count() int {
	n := 0
	for _, level := range l {
		n += len(level)
	}
	return n
}

// A Builder grows random trees from a fixed root.
type Builder struct {
	// Base is where the root branch starts.
	Base geometry.XY

	// StartAngle is the root branch's direction in degrees. -90 is straight up.
	StartAngle float64

	// Unit is the length a branch gains per level it sits above the leaves.
	Unit float64

	// RootSpan scatters the root horizontally over [0, RootSpan) when positive,
	// ignoring Base.X.
	RootSpan float64

	Rand *rand.Rand
}

// Build returns a tree with exactly depth levels. Each branch forks into two
// candidates deviating by up to spread degrees on either side, of which one or
// both survive.
func (b Builder) Build(depth int, spread float64) (Levels, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDepth, depth)
	}
	if !(spread > 0) || math.IsInf(spread, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrSpread, spread)
	}

	root := b.Base
	if b.RootSpan > 0 {
		root.X = b.RootSpan * b.Rand.Float64()
	}

	levels := make(Levels, depth)
	levels[0] = []Branch{{
		Angle: b.StartAngle,
		Segment: geometry.Segment{
			Start: root,
			End:   geometry.NextPoint(root, b.StartAngle, 0, depth, b.Unit),
		},
	}}

	for level := 1; level < depth; level++ {
		parents := levels[level-1]
		children := make([]Branch, 0, 2*len(parents))

		for _, parent := range parents {
			a := b.child(parent, parent.Angle-spread*b.Rand.Float64(), level, depth)
			c := b.child(parent, parent.Angle+spread*b.Rand.Float64(), level, depth)

			// The surviving side depends on the first draw; the other side gets a
			// second, independent coin flip.
			if b.Rand.Float64() > 0.5 {
				if b.Rand.Float64() > 0.5 {
					children = append(children, a)
				}
				children = append(children, c)
			} else {
				children = append(children, a)
				if b.Rand.Float64() > 0.5 {
					children = append(children, c)
				}
			}
		}

		levels[level] = children
	}

	return levels, nil
}

func (b Builder) child(parent Branch, angle float64, level, depth int) Branch {
	return Branch{
		Angle: angle,
		Segment: geometry.Segment{
			Start: parent.End,
			End:   geometry.NextPoint(parent.End, angle, level, depth, b.Unit),
		},
	}
}
