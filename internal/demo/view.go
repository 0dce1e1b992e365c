package demo

import (
	"fmt"
	"strings"

	"github.com/jask/swipeview/widgets"
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	header := widgets.Header{
		Title: m.cfg.UI.Title,
		Right: fmt.Sprintf("%d messages", m.box.Len()),
		Style: m.styles.header,
	}.Render(m.width)

	parts := []string{header}
	if m.showSearch() {
		parts = append(parts, widgets.PadRight(m.search.View(), m.width))
	}

	list := m.styles.status.Render("Nothing here.")
	if len(m.rows) > 0 {
		list = m.stack().Render(m.width)
	}
	parts = append(parts, fill(list, m.width, m.listHeight()))

	status := m.status
	if status == "" {
		status = "Swipe a row, or focus it and use ←/→."
	}
	parts = append(parts, widgets.PadRight(m.styles.status.Render(status), m.width))
	parts = append(parts, m.help.View(m.keys))

	body := strings.Join(parts, "\n")
	if m.toast != "" {
		body = widgets.RenderToast(body, m.toast, m.width, m.height)
	}
	return body
}

// fill pads block with blank lines up to height.
func fill(block string, width, height int) string {
	lines := strings.Split(block, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = widgets.PadRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
