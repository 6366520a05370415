package palette

import (
	"errors"
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"image/color"
	"math/rand"
)

var ErrEmpty = errors.New("palette has no colors")

// Default is the set of stroke colors a tree may be drawn in.
var Default = []string{
	"#F7A43E", "#EA6675", "#FA425C", "#6880FF", "#1AEBFD", "#76E707",
	"#E54B11", "#79CEBB", "#1AD75E", "#EC0180", "#72BA8F", "#66F098",
	"#0EE68C", "#AB6229", "#F0D2EB", "#A405FB", "#78C464", "#BFE0F4",
}

type Palette []color.Color

// Parse reads "#rrggbb" colors.
func Parse(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, ErrEmpty
	}

	p := make(Palette, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette color %d: %w", i, err)
		}
		p[i] = c
	}
	return p, nil
}

func MustParse(hexes []string) Palette {
	p, err := Parse(hexes)
	if err != nil {
		panic(err)
	}
	return p
}

// Pick returns a uniformly random color from p.
func (p Palette) Pick(r *rand.Rand) color.Color {
	return p[r.Intn(len(p))]
}

// Hex formats c as "#rrggbb".
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
