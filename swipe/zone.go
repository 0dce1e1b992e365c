package swipe

import (
	"math"
	"slices"
)

// MaxActions is the number of actions kept per side.
const MaxActions = 4

// zoneTolerance is how far (in units) an offset may sit from an anchor and
// still count as resting there.
const zoneTolerance = 0.5

// Zone is a resting position of the strip.
type Zone int

const (
	ZoneUnsettled Zone = iota
	ZoneLeading
	ZoneCentered
	ZoneTrailing
)

func (z Zone) String() string {
	switch z {
	case ZoneLeading:
		return "leading"
	case ZoneCentered:
		return "centered"
	case ZoneTrailing:
		return "trailing"
	default:
		return "unsettled"
	}
}

// Layout is the fixed geometry of a row: the capped action snapshots and their
// widths. Offsets follow the scroll convention where 0 shows the leading
// actions and more negative values move toward the trailing actions.
type Layout struct {
	leading       []Action
	trailing      []Action
	leadingWidth  float64
	trailingWidth float64
}

// NewLayout snapshots the supplied actions. Leading actions are reversed so
// the first declared one sits next to the content; both sides keep at most
// MaxActions entries.
func NewLayout(leading, trailing []Action) Layout {
	lead := slices.Clone(leading)
	slices.Reverse(lead)
	lead = capActions(lead)
	trail := capActions(slices.Clone(trailing))
	return Layout{
		leading:       lead,
		trailing:      trail,
		leadingWidth:  totalWidth(lead),
		trailingWidth: totalWidth(trail),
	}
}

func capActions(actions []Action) []Action {
	if len(actions) > MaxActions {
		actions = actions[:MaxActions]
	}
	return slices.Clip(actions)
}

// Leading returns a copy of the original leading actions in display order.
func (l Layout) Leading() []Action { return slices.Clone(l.leading) }

// Trailing returns a copy of the original trailing actions in display order.
func (l Layout) Trailing() []Action { return slices.Clone(l.trailing) }

func (l Layout) LeadingWidth() float64  { return l.leadingWidth }
func (l Layout) TrailingWidth() float64 { return l.trailingWidth }

// Offset returns the anchor offset of a zone. ZoneUnsettled maps to centered.
func (l Layout) Offset(z Zone) float64 {
	switch z {
	case ZoneLeading:
		return 0
	case ZoneTrailing:
		return -(l.leadingWidth + l.trailingWidth)
	default:
		return -l.leadingWidth
	}
}

func (l Layout) isLeadingRevealed(offset float64) bool {
	return near(offset, l.Offset(ZoneLeading))
}

func (l Layout) isTrailingRevealed(offset float64) bool {
	return near(offset, l.Offset(ZoneTrailing))
}

func (l Layout) isCentered(offset float64) bool {
	return near(offset, l.Offset(ZoneCentered))
}

// Classify maps an offset to its zone. Centered wins when anchors coincide,
// which happens when a side has no actions.
func (l Layout) Classify(offset float64) Zone {
	switch {
	case l.isCentered(offset):
		return ZoneCentered
	case l.isLeadingRevealed(offset):
		return ZoneLeading
	case l.isTrailingRevealed(offset):
		return ZoneTrailing
	default:
		return ZoneUnsettled
	}
}

// Nearest returns the zone whose anchor is closest to offset. Ties resolve
// toward centered.
func (l Layout) Nearest(offset float64) Zone {
	best := ZoneCentered
	dist := math.Abs(offset - l.Offset(ZoneCentered))
	for _, z := range []Zone{ZoneLeading, ZoneTrailing} {
		if d := math.Abs(offset - l.Offset(z)); d < dist {
			best, dist = z, d
		}
	}
	return best
}

// Bounds returns the scrollable offset range for a state. A cleared side
// cannot be scrolled into, so the range stops at the centered anchor on that
// side.
func (l Layout) Bounds(s State) (lo, hi float64) {
	lo = -(l.leadingWidth + totalWidth(s.Trailing))
	hi = -(l.leadingWidth - totalWidth(s.Leading))
	return lo, hi
}

// Clamp limits offset to Bounds(s).
func (l Layout) Clamp(s State, offset float64) float64 {
	lo, hi := l.Bounds(s)
	return math.Max(lo, math.Min(hi, offset))
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= zoneTolerance
}
