package demo

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/swipeview/internal/inbox"
	"github.com/jask/swipeview/swipe"
	"github.com/jask/swipeview/widgets"
)

type op int

const (
	opArchive op = iota
	opFlag
	opDelete
	opStar
	opPin
	opUnread
)

func (o op) String() string {
	switch o {
	case opArchive:
		return "archive"
	case opFlag:
		return "flag"
	case opDelete:
		return "delete"
	case opStar:
		return "star"
	case opPin:
		return "pin"
	case opUnread:
		return "mark unread"
	}
	return "unknown"
}

// removes reports whether the message leaves the inbox.
func (o op) removes() bool { return o == opArchive || o == opDelete }

// binding ties an action id back to the message and operation it stands for.
type binding struct {
	msgID string
	op    op
}

type row struct {
	msgID string
	swipe swipe.Model
}

var (
	white  = lipgloss.Color("#ffffff")
	blue   = lipgloss.Color("#1e66f5")
	orange = lipgloss.Color("#fe640b")
	red    = lipgloss.Color("#d20f39")
	yellow = lipgloss.Color("#df8e1d")
	gray   = lipgloss.Color("#6c6f85")
	teal   = lipgloss.Color("#179299")
)

// newRow builds the swipe row for one message: archive and flag on the
// leading edge, delete, star, pin and mark-unread on the trailing edge. The
// returned bindings map each action id to what it does.
func newRow(box *inbox.Box, msg inbox.Message, logger *slog.Logger, opts ...swipe.Option) (row, map[string]binding) {
	id := msg.ID
	handler := func(o op) func() {
		return func() {
			logger.Info("action", "op", o.String(), "message", id)
		}
	}

	leading := swipe.Actions().
		Label("Archive", white, blue, handler(opArchive), swipe.WithWidth(100)).
		Label("Flag", white, orange, handler(opFlag), swipe.WithWidth(100)).
		Build()
	trailing := swipe.Actions().
		LabelIcon("Delete", "✗", white, red, handler(opDelete)).
		Icon("★", white, yellow, handler(opStar)).
		Icon("▲", white, gray, handler(opPin)).
		Icon("✉", white, teal, handler(opUnread)).
		Build()

	bindings := make(map[string]binding, len(leading)+len(trailing))
	for i, o := range []op{opArchive, opFlag} {
		bindings[leading[i].ID()] = binding{msgID: id, op: o}
	}
	for i, o := range []op{opDelete, opStar, opPin, opUnread} {
		bindings[trailing[i].ID()] = binding{msgID: id, op: o}
	}

	content := swipe.ContentFunc(func(width int) string {
		m, ok := box.Get(id)
		if !ok {
			return ""
		}
		return renderMessage(m, width)
	})
	return row{msgID: id, swipe: swipe.New(content, leading, trailing, opts...)}, bindings
}

var (
	fromStyle    = lipgloss.NewStyle().Bold(true)
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func renderMessage(m inbox.Message, width int) string {
	var marks strings.Builder
	if m.Unread {
		marks.WriteString("● ")
	}
	if m.Pinned {
		marks.WriteString("▲ ")
	}
	if m.Flagged {
		marks.WriteString("⚑ ")
	}
	if m.Starred {
		marks.WriteString("★ ")
	}
	first := marks.String() + fromStyle.Render(m.From) + "  " + m.Subject
	second := previewStyle.Render(m.Preview)
	return widgets.PadRight(first, width) + "\n" + widgets.PadRight(second, width)
}
