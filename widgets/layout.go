package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// VStack stacks pre-rendered blocks with blank lines between them.
type VStack struct {
	Blocks  []string
	Spacing int
}

func (v VStack) Render(width int) string {
	if len(v.Blocks) == 0 || width <= 0 {
		return ""
	}
	lines := make([]string, 0, len(v.Blocks)*2)
	for i, b := range v.Blocks {
		for _, l := range strings.Split(b, "\n") {
			lines = append(lines, PadRight(l, width))
		}
		if i < len(v.Blocks)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, strings.Repeat(" ", width))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// Offsets returns the first line of each block in the rendered stack.
func (v VStack) Offsets() []int {
	out := make([]int, len(v.Blocks))
	y := 0
	for i, b := range v.Blocks {
		out[i] = y
		y += Height(b) + v.Spacing
	}
	return out
}

// Height is the number of lines in a rendered block.
func Height(block string) int {
	return strings.Count(block, "\n") + 1
}

// Header is a one-line bar with a left title and right-aligned detail.
type Header struct {
	Title string
	Right string
	Style lipgloss.Style
}

func (h Header) Render(width int) string {
	if width <= 0 {
		return ""
	}
	gap := width - ansi.StringWidth(h.Title) - ansi.StringWidth(h.Right)
	line := h.Title
	if gap > 0 {
		line += strings.Repeat(" ", gap) + h.Right
	}
	return h.Style.Render(PadRight(line, width))
}

// PadRight truncates or pads s to exactly width cells.
func PadRight(s string, width int) string {
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
