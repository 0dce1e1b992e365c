package swipe

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// DefaultActionWidth is the width of an action when none is given.
const DefaultActionWidth = 80.0

// Action is an immutable button description shown when a row is swiped open.
type Action struct {
	id         string
	label      string
	icon       string
	foreground lipgloss.TerminalColor
	background lipgloss.TerminalColor
	width      float64
	handler    func()
}

type ActionOption func(*Action)

// WithWidth overrides the action width. Non-positive widths keep the default.
func WithWidth(width float64) ActionOption {
	return func(a *Action) {
		if width > 0 {
			a.width = width
		}
	}
}

// NewLabelAction returns a text-only action.
func NewLabelAction(label string, fg, bg lipgloss.TerminalColor, handler func(), opts ...ActionOption) Action {
	return newAction(label, "", fg, bg, handler, opts)
}

// NewIconAction returns a glyph-only action.
func NewIconAction(icon string, fg, bg lipgloss.TerminalColor, handler func(), opts ...ActionOption) Action {
	return newAction("", icon, fg, bg, handler, opts)
}

// NewAction returns an action showing its icon above its label.
func NewAction(label, icon string, fg, bg lipgloss.TerminalColor, handler func(), opts ...ActionOption) Action {
	return newAction(label, icon, fg, bg, handler, opts)
}

func newAction(label, icon string, fg, bg lipgloss.TerminalColor, handler func(), opts []ActionOption) Action {
	if fg == nil {
		fg = lipgloss.NoColor{}
	}
	if bg == nil {
		bg = lipgloss.NoColor{}
	}
	a := Action{
		id:         uuid.NewString(),
		label:      label,
		icon:       icon,
		foreground: fg,
		background: bg,
		width:      DefaultActionWidth,
		handler:    handler,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func (a Action) ID() string                         { return a.id }
func (a Action) Label() string                      { return a.label }
func (a Action) Icon() string                       { return a.icon }
func (a Action) Foreground() lipgloss.TerminalColor { return a.foreground }
func (a Action) Background() lipgloss.TerminalColor { return a.background }
func (a Action) Width() float64                     { return a.width }

func (a Action) IsLabelOnly() bool { return a.label != "" && a.icon == "" }
func (a Action) IsIconOnly() bool  { return a.label == "" && a.icon != "" }

// invoke runs the handler, if any.
func (a Action) invoke() {
	if a.handler != nil {
		a.handler()
	}
}

func totalWidth(actions []Action) float64 {
	var w float64
	for _, a := range actions {
		w += a.width
	}
	return w
}
