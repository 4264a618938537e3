package picking

import (
	"fmt"

	"github.com/Faultbox/boxview/pkg/math"
)

// Mode selects the picking algorithm.
type Mode int

const (
	// ModeMarch samples the ray at fixed steps and returns the first box
	// containing a sample. Boxes sharing a sample resolve by list order.
	ModeMarch Mode = iota
	// ModeNearest intersects every box in closed form and returns the one
	// with the smallest entry distance.
	ModeNearest
)

// ParseMode converts a config string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "march":
		return ModeMarch, nil
	case "nearest":
		return ModeNearest, nil
	default:
		return ModeMarch, fmt.Errorf("unknown pick mode %q", s)
	}
}

func (m Mode) String() string {
	if m == ModeNearest {
		return "nearest"
	}
	return "march"
}

// Default march parameters: 100,000 steps of 0.005 starting 5 units out.
const (
	DefaultStart       = 5.0
	DefaultStep        = 0.005
	DefaultMaxDistance = DefaultStart + 100000*DefaultStep
)

// Hit describes a picked box.
type Hit struct {
	Index    int       // position of the box in the list passed to Pick
	Distance float32   // distance along the ray
	Point    math.Vec3 // sample or entry point
}

// Marcher walks a ray in fixed increments.
type Marcher struct {
	Start       float32
	Step        float32
	MaxDistance float32
}

// DefaultMarcher returns the default march parameters.
func DefaultMarcher() Marcher {
	return Marcher{
		Start:       DefaultStart,
		Step:        DefaultStep,
		MaxDistance: DefaultMaxDistance,
	}
}

// Steps returns how many samples a full march takes.
func (m Marcher) Steps() int {
	if m.Step <= 0 || m.MaxDistance < m.Start {
		return 0
	}
	return int((m.MaxDistance-m.Start)/m.Step) + 1
}

// March samples r at Start, Start+Step, ... up to MaxDistance and stops at the
// first sample contained in any box, testing boxes in order.
func (m Marcher) March(r Ray, boxes []AABB) (Hit, bool) {
	n := m.Steps()
	if len(boxes) == 0 {
		return Hit{}, false
	}

	for i := 0; i < n; i++ {
		d := m.Start + float32(i)*m.Step
		p := r.At(d)
		for idx, b := range boxes {
			if b.Contains(p) {
				return Hit{Index: idx, Distance: d, Point: p}, true
			}
		}
	}
	return Hit{}, false
}

// Nearest returns the box whose ray interval, clipped to [Start, MaxDistance],
// begins closest to the origin. Ties go to the earlier box.
func (m Marcher) Nearest(r Ray, boxes []AABB) (Hit, bool) {
	best := Hit{Index: -1}

	for idx, b := range boxes {
		tmin, tmax, ok := r.Slab(b)
		if !ok {
			continue
		}
		if tmin < m.Start {
			tmin = m.Start
		}
		if tmax > m.MaxDistance {
			tmax = m.MaxDistance
		}
		if tmin > tmax {
			continue
		}
		if best.Index < 0 || tmin < best.Distance {
			best = Hit{Index: idx, Distance: tmin, Point: r.At(tmin)}
		}
	}

	return best, best.Index >= 0
}

// Picker finds the box under a ray.
type Picker struct {
	Mode    Mode
	Marcher Marcher
}

// NewPicker creates a picker using mode and the default march parameters.
func NewPicker(mode Mode) Picker {
	return Picker{Mode: mode, Marcher: DefaultMarcher()}
}

// Pick returns the picked box, if any. A miss is not an error.
func (p Picker) Pick(r Ray, boxes []AABB) (Hit, bool) {
	if p.Mode == ModeNearest {
		return p.Marcher.Nearest(r, boxes)
	}
	return p.Marcher.March(r, boxes)
}
