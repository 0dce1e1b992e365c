package swipe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scenarioLayout() Layout {
	return NewLayout(
		[]Action{labelAction("archive", 100, nil)},
		[]Action{labelAction("delete", 80, nil), labelAction("star", 80, nil)},
	)
}

func TestLayoutAnchors(t *testing.T) {
	l := scenarioLayout()
	require.Equal(t, 100.0, l.LeadingWidth())
	require.Equal(t, 160.0, l.TrailingWidth())
	require.Equal(t, 0.0, l.Offset(ZoneLeading))
	require.Equal(t, -100.0, l.Offset(ZoneCentered))
	require.Equal(t, -260.0, l.Offset(ZoneTrailing))
}

func TestClassify(t *testing.T) {
	l := scenarioLayout()
	tests := []struct {
		name   string
		offset float64
		want   Zone
	}{
		{"leading anchor", 0, ZoneLeading},
		{"leading within tolerance", -0.4, ZoneLeading},
		{"centered anchor", -100, ZoneCentered},
		{"centered within tolerance", -100.3, ZoneCentered},
		{"trailing anchor", -260, ZoneTrailing},
		{"mid drag leading side", -50, ZoneUnsettled},
		{"mid drag trailing side", -180, ZoneUnsettled},
		{"just outside tolerance", -99, ZoneUnsettled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, l.Classify(tt.offset))
		})
	}
}

func TestClassifyPrefersCenteredWhenSideIsEmpty(t *testing.T) {
	l := NewLayout(nil, []Action{labelAction("delete", 80, nil)})
	require.Equal(t, ZoneCentered, l.Classify(0))
	require.Equal(t, ZoneTrailing, l.Classify(-80))
}

func TestNearest(t *testing.T) {
	l := scenarioLayout()
	require.Equal(t, ZoneLeading, l.Nearest(-20))
	require.Equal(t, ZoneCentered, l.Nearest(-60))
	require.Equal(t, ZoneCentered, l.Nearest(-170))
	require.Equal(t, ZoneTrailing, l.Nearest(-200))
	require.Equal(t, ZoneCentered, l.Nearest(-50), "ties resolve toward centered")
}

func TestCapsAndReversesActions(t *testing.T) {
	var leading, trailing []Action
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		leading = append(leading, labelAction(s, 80, nil))
		trailing = append(trailing, labelAction(s, 80, nil))
	}
	l := NewLayout(leading, trailing)

	require.Equal(t, []string{"f", "e", "d", "c"}, labels(l.Leading()))
	require.Equal(t, []string{"a", "b", "c", "d"}, labels(l.Trailing()))
	require.Equal(t, 320.0, l.LeadingWidth())
	require.Equal(t, 320.0, l.TrailingWidth())
}

func TestCapDoesNotAliasCallerSlice(t *testing.T) {
	trailing := []Action{labelAction("a", 80, nil), labelAction("b", 80, nil)}
	l := NewLayout(nil, trailing)
	trailing[0] = labelAction("z", 80, nil)
	require.Equal(t, []string{"a", "b"}, labels(l.Trailing()))
}

func TestBoundsFollowHiddenSides(t *testing.T) {
	l := scenarioLayout()
	full := l.Initial()
	lo, hi := l.Bounds(full)
	require.Equal(t, -260.0, lo)
	require.Equal(t, 0.0, hi)

	noTrailing := full
	noTrailing.Trailing = nil
	lo, hi = l.Bounds(noTrailing)
	require.Equal(t, -100.0, lo)
	require.Equal(t, 0.0, hi)

	noLeading := full
	noLeading.Leading = nil
	lo, hi = l.Bounds(noLeading)
	require.Equal(t, -260.0, lo)
	require.Equal(t, -100.0, hi)
	require.Equal(t, -100.0, l.Clamp(noLeading, 0))
}

func TestZoneString(t *testing.T) {
	require.Equal(t, "leading", ZoneLeading.String())
	require.Equal(t, "centered", ZoneCentered.String())
	require.Equal(t, "trailing", ZoneTrailing.String())
	require.Equal(t, "unsettled", ZoneUnsettled.String())
}
