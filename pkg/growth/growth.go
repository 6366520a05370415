package growth

import (
	"github.com/willbeason/growing-tree/pkg/geometry"
	"github.com/willbeason/growing-tree/pkg/tree"
	"math/rand"
)

// Speed is the distribution of per-branch growth speeds: Base plus up to Range.
type Speed struct {
	Base, Range float64
}

var DefaultSpeed = Speed{Base: 2.0, Range: 2.0}

// A Node tracks how much of one branch has been drawn.
type Node struct {
	geometry.Segment

	// Length and Slope are precomputed from Segment.
	Length float64
	Slope  float64

	LengthDrawn float64
	Complete    bool

	// Speed is how far the branch grows per tick.
	Speed float64
}

// Grow extends the node by its speed, snapping to the full length once the
// remainder fits in one step. It returns the new tip of the drawn branch.
func (n *Node) Grow() geometry.XY {
	if n.Complete {
		return n.End
	}

	if n.Length-n.LengthDrawn <= n.Speed {
		n.LengthDrawn = n.Length
		n.Complete = true
	} else {
		n.LengthDrawn += n.Speed
	}

	return n.Tip()
}

// Tip is the point the branch has been drawn to so far.
func (n *Node) Tip() geometry.XY {
	return geometry.PointAtDistance(n.Segment, n.Slope, n.LengthDrawn)
}

// Progress mirrors tree.Levels one node per branch.
type Progress [][]Node

func New(levels tree.Levels, speed Speed, r *rand.Rand) Progress {
	progress := make(Progress, len(levels))
	for i, level := range levels {
		progress[i] = make([]Node, len(level))
		for j, branch := range level {
			progress[i][j] = Node{
				Segment: branch.Segment,
				Length:  branch.Length(),
				Slope:   branch.Slope(),
				Speed:   speed.Base + speed.Range*r.Float64(),
			}
		}
	}
	return progress
}

// LevelComplete reports whether every branch at level has been fully drawn.
func (p Progress) LevelComplete(level int) bool {
	for i := range p[level] {
		if !p[level][i].Complete {
			return false
		}
	}
	return true
}
