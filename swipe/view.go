package swipe

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// unitsPerColumn converts action widths to terminal cells: the default
// 80-unit action is 10 columns wide.
const unitsPerColumn = 8.0

func actionColumns(a Action) int {
	return max(1, int(math.Round(a.width/unitsPerColumn)))
}

func columnsOf(actions []Action) int {
	n := 0
	for _, a := range actions {
		n += actionColumns(a)
	}
	return n
}

// scrollColumn is the first strip column visible in the viewport. Offsets map
// piecewise linearly onto columns so the three anchors land on exact cell
// boundaries even when action widths are not multiples of a cell.
func (m Model) scrollColumn() int {
	return columnForOffset(m.layout, m.state.Offset)
}

func columnForOffset(l Layout, offset float64) int {
	u := -offset
	lc, tc := columnsOf(l.leading), columnsOf(l.trailing)
	switch {
	case u <= 0:
		return 0
	case u <= l.leadingWidth:
		return int(math.Round(u / l.leadingWidth * float64(lc)))
	case l.trailingWidth <= 0:
		return lc
	default:
		u = math.Min(u-l.leadingWidth, l.trailingWidth)
		return lc + int(math.Round(u/l.trailingWidth*float64(tc)))
	}
}

func (m Model) offsetForColumn(col int) float64 {
	l := m.layout
	lc, tc := columnsOf(l.leading), columnsOf(l.trailing)
	switch {
	case col <= 0:
		return 0
	case col <= lc:
		return -float64(col) / float64(lc) * l.leadingWidth
	case tc == 0:
		return -l.leadingWidth
	default:
		col = min(col-lc, tc)
		return -(l.leadingWidth + float64(col)/float64(tc)*l.trailingWidth)
	}
}

// actionAt hit-tests column x of the viewport against the actions currently
// shown.
func (m Model) actionAt(x int) (Action, bool) {
	if x < 0 || x >= m.width {
		return Action{}, false
	}
	col := m.scrollColumn() + x
	lc := columnsOf(m.layout.leading)
	if col < lc {
		return hit(m.state.Leading, col)
	}
	col -= lc + m.width
	if col >= 0 {
		return hit(m.state.Trailing, col)
	}
	return Action{}, false
}

func hit(actions []Action, col int) (Action, bool) {
	for _, a := range actions {
		w := actionColumns(a)
		if col < w {
			return a, true
		}
		col -= w
	}
	return Action{}, false
}

func (m Model) View() string {
	width := max(1, m.width)
	content := m.contentStyle.Width(width).Render(m.content.View(width))
	lines := strings.Split(content, "\n")
	height := len(lines)

	leading := renderSide(m.layout.leading, len(m.state.Leading) > 0, height)
	trailing := renderSide(m.layout.trailing, len(m.state.Trailing) > 0, height)

	start := m.scrollColumn()
	out := make([]string, height)
	for i, line := range lines {
		strip := leading[i] + padRight(line, width) + trailing[i]
		out[i] = padRight(ansi.Cut(strip, start, start+width), width)
	}
	return strings.Join(out, "\n")
}

// renderSide renders one action strip line by line. A hidden side keeps its
// width but paints nothing.
func renderSide(actions []Action, visible bool, height int) []string {
	lines := make([]string, height)
	for _, a := range actions {
		cell := strings.Split(renderCell(a, visible, height), "\n")
		for i := range lines {
			if i < len(cell) {
				lines[i] += cell[i]
			}
		}
	}
	return lines
}

func renderCell(a Action, visible bool, height int) string {
	cols := actionColumns(a)
	if !visible {
		return strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", cols)+"\n", height), "\n")
	}

	var text string
	switch {
	case a.IsLabelOnly():
		text = ansi.Truncate(a.label, cols, "…")
	case a.IsIconOnly():
		text = ansi.Truncate(a.icon, cols, "")
	case a.label != "" && height < 2:
		text = ansi.Truncate(a.icon+" "+a.label, cols, "…")
	case a.label != "":
		text = ansi.Truncate(a.icon, cols, "") + "\n" + ansi.Truncate(a.label, cols, "…")
	}

	style := lipgloss.NewStyle().
		Width(cols).
		Height(height).
		MaxHeight(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(a.foreground).
		Background(a.background)
	rendered := strings.Split(style.Render(text), "\n")
	for i := range rendered {
		rendered[i] = padRight(rendered[i], cols)
	}
	return strings.Join(rendered, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
