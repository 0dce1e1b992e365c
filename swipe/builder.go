package swipe

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ActionList collects actions in declaration order.
//
//	leading := swipe.Actions().
//		Label("Archive", white, green, archive).
//		Icon("⚑", white, orange, flag).
//		Build()
type ActionList struct {
	actions []Action
}

func Actions(actions ...Action) *ActionList {
	return &ActionList{actions: slices.Clone(actions)}
}

func (l *ActionList) Add(a Action) *ActionList {
	l.actions = append(l.actions, a)
	return l
}

func (l *ActionList) Label(label string, fg, bg lipgloss.TerminalColor, handler func(), opts ...ActionOption) *ActionList {
	return l.Add(NewLabelAction(label, fg, bg, handler, opts...))
}

func (l *ActionList) Icon(icon string, fg, bg lipgloss.TerminalColor, handler func(), opts ...ActionOption) *ActionList {
	return l.Add(NewIconAction(icon, fg, bg, handler, opts...))
}

func (l *ActionList) LabelIcon(label, icon string, fg, bg lipgloss.TerminalColor, handler func(), opts ...ActionOption) *ActionList {
	return l.Add(NewAction(label, icon, fg, bg, handler, opts...))
}

func (l *ActionList) Len() int {
	return len(l.actions)
}

// Build returns a copy of the collected actions.
func (l *ActionList) Build() []Action {
	return slices.Clone(l.actions)
}
