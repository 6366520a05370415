package animation

import (
	"fmt"
	"github.com/golang/glog"
	"github.com/willbeason/growing-tree/pkg/growth"
	"github.com/willbeason/growing-tree/pkg/palette"
	"github.com/willbeason/growing-tree/pkg/schedule"
	"github.com/willbeason/growing-tree/pkg/tree"
	"image/color"
	"math/rand"
)

type State int

const (
	// Growing means branches at the current level are still being extended.
	Growing State = iota
	// LevelDone means the last tick finished a level and moved the cursor on.
	LevelDone
	// TreeDone means every level is drawn and the next tree is scheduled.
	TreeDone
)

func (s State) String() string {
	switch s {
	case Growing:
		return "growing"
	case LevelDone:
		return "level done"
	case TreeDone:
		return "tree done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// A Session animates one tree at a time onto a Surface, starting the next
// tree a short while after each finishes.
//
// All of a Session's methods, and the callbacks it hands its Scheduler, must
// run on one goroutine.
type Session struct {
	cfg       Config
	surface   Surface
	scheduler Scheduler
	rng       *rand.Rand

	levels   tree.Levels
	progress growth.Progress
	level    int
	state    State

	depth  int
	spread float64
	color  color.Color
	width  float64

	tick    schedule.Handle
	ticking bool
	stopped bool

	// cycle counts trees started; onSurface counts finished trees not yet
	// cleared away.
	cycle     int
	onSurface int

	// OnTreeDone, if set, is called each time a tree finishes growing, before
	// the next one is scheduled.
	OnTreeDone func(cycle int)
}

func NewSession(cfg Config, surface Surface, scheduler Scheduler, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		cfg:       cfg,
		surface:   surface,
		scheduler: scheduler,
		rng:       rng,
	}, nil
}

// Start begins growing the first tree.
func (s *Session) Start() error {
	s.stopped = false
	return s.begin(s.cfg.Depth, s.cfg.Spread)
}

// Stop halts the animation. A tree waiting to start never will.
func (s *Session) Stop() {
	s.stopped = true
	s.cancelTick()
}

// Tick advances the animation by one step: it either finishes the tree, moves
// on from a completed level, or grows every unfinished branch at the current
// level and draws the newly grown piece.
func (s *Session) Tick() {
	if s.state == TreeDone || s.levels == nil {
		return
	}

	if s.level >= len(s.levels) {
		s.finish()
		return
	}

	if s.progress.LevelComplete(s.level) {
		s.level++
		s.state = LevelDone
		s.width = s.cfg.Stroke.LevelDone(s.width, s.level, s.depth)
		s.surface.SetLineWidth(s.width)
		return
	}

	s.state = Growing
	nodes := s.progress[s.level]
	for i := range nodes {
		n := &nodes[i]
		if n.Complete {
			continue
		}

		tip := n.Grow()
		s.surface.DrawSegment(n.Start.X, n.Start.Y, tip.X, tip.Y)
	}
}

func (s *Session) finish() {
	s.state = TreeDone
	s.cancelTick()
	s.onSurface++

	glog.V(1).Infof("tree %d done: %d levels, %d branches", s.cycle, len(s.levels), s.levels.Count())

	if s.OnTreeDone != nil {
		s.OnTreeDone(s.cycle)
	}

	if s.stopped {
		return
	}
	cycle := s.cycle
	s.scheduler.Delay(s.cfg.ResetDelay, func() { s.regrow(cycle) })
}

// regrow starts the tree after cycle, unless the session was stopped or
// restarted while it waited.
func (s *Session) regrow(cycle int) {
	if s.stopped || s.cycle != cycle {
		return
	}

	if s.cfg.KeepTrees > 0 && s.onSurface >= s.cfg.KeepTrees {
		s.surface.Clear(s.cfg.Width, s.cfg.Height)
		s.onSurface = 0
	}

	depth := s.cfg.RegrowDepth.Min + int(float64(s.cfg.RegrowDepth.Span)*s.rng.Float64())
	spread := s.cfg.RegrowSpread.Min + int(float64(s.cfg.RegrowSpread.Span)*s.rng.Float64())

	if err := s.begin(depth, float64(spread)); err != nil {
		glog.Errorf("starting tree %d: %v", s.cycle+1, err)
	}
}

func (s *Session) begin(depth int, spread float64) error {
	levels, err := s.build(depth, spread)
	if err != nil {
		return err
	}

	s.levels = levels
	s.progress = growth.New(levels, s.cfg.Growth, s.rng)
	s.level = 0
	s.state = Growing
	s.depth = depth
	s.spread = spread
	s.cycle++

	s.color = s.cfg.Palette.Pick(s.rng)
	s.width = s.cfg.Stroke.Start()
	s.surface.SetStrokeColor(s.color)
	s.surface.SetLineWidth(s.width)
	s.surface.SetLineCap(s.cfg.Stroke.Cap())

	glog.V(1).Infof("tree %d: depth %d, spread %v, color %s", s.cycle, depth, spread, palette.Hex(s.color))

	s.cancelTick()
	s.tick = s.scheduler.StartPeriodic(s.cfg.TickInterval, s.Tick)
	s.ticking = true
	return nil
}

func (s *Session) build(depth int, spread float64) (tree.Levels, error) {
	if s.cfg.Shape == ShapeSymmetric {
		return tree.Symmetric(s.cfg.Base, s.cfg.StartAngle, s.cfg.Unit, depth, spread)
	}

	return tree.Builder{
		Base:       s.cfg.Base,
		StartAngle: s.cfg.StartAngle,
		Unit:       s.cfg.Unit,
		RootSpan:   s.cfg.RootSpan,
		Rand:       s.rng,
	}.Build(depth, spread)
}

func (s *Session) cancelTick() {
	if s.ticking {
		s.scheduler.CancelPeriodic(s.tick)
		s.ticking = false
	}
}

func (s *Session) State() State { return s.state }

// Level is the index of the level currently growing.
func (s *Session) Level() int { return s.level }

func (s *Session) Levels() tree.Levels { return s.levels }

func (s *Session) Progress() growth.Progress { return s.progress }

func (s *Session) Depth() int { return s.depth }

func (s *Session) Spread() float64 { return s.spread }

// Cycle is the number of trees started so far, including the current one.
func (s *Session) Cycle() int { return s.cycle }

func (s *Session) LineWidth() float64 { return s.width }

func (s *Session) Color() color.Color { return s.color }
