package swipe

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestActionConstructionForms(t *testing.T) {
	fg, bg := lipgloss.Color("15"), lipgloss.Color("9")

	label := NewLabelAction("Delete", fg, bg, nil)
	require.True(t, label.IsLabelOnly())
	require.False(t, label.IsIconOnly())
	require.Equal(t, DefaultActionWidth, label.Width())

	icon := NewIconAction("★", fg, bg, nil, WithWidth(48))
	require.True(t, icon.IsIconOnly())
	require.False(t, icon.IsLabelOnly())
	require.Equal(t, 48.0, icon.Width())

	both := NewAction("Trash", "🗑", fg, bg, nil)
	require.False(t, both.IsLabelOnly())
	require.False(t, both.IsIconOnly())
	require.Equal(t, "Trash", both.Label())
	require.Equal(t, "🗑", both.Icon())
	require.Equal(t, fg, both.Foreground())
	require.Equal(t, bg, both.Background())
}

func TestActionWithoutLabelOrIconIsAccepted(t *testing.T) {
	a := NewAction("", "", nil, nil, nil)
	require.False(t, a.IsLabelOnly())
	require.False(t, a.IsIconOnly())
	require.NotEmpty(t, a.ID())
	require.NotPanics(t, a.invoke)

	cell := renderCell(a, true, 1)
	require.Equal(t, actionColumns(a), ansi.StringWidth(cell))
}

func TestActionIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewLabelAction("x", nil, nil, nil).ID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestWithWidthIgnoresNonPositive(t *testing.T) {
	require.Equal(t, DefaultActionWidth, NewLabelAction("x", nil, nil, nil, WithWidth(0)).Width())
	require.Equal(t, DefaultActionWidth, NewLabelAction("x", nil, nil, nil, WithWidth(-5)).Width())
}

func TestActionListBuilderKeepsOrder(t *testing.T) {
	first := NewLabelAction("first", nil, nil, nil)
	list := Actions(first).
		Label("second", nil, nil, nil).
		Icon("3", nil, nil, nil).
		LabelIcon("fourth", "4", nil, nil, nil)

	require.Equal(t, 4, list.Len())
	built := list.Build()
	require.Equal(t, []string{"first", "second", "", "fourth"}, labels(built))
	require.Equal(t, first.ID(), built[0].ID())

	built[0] = NewLabelAction("changed", nil, nil, nil)
	require.Equal(t, "first", list.Build()[0].Label())
}
