package swipe

import (
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

const defaultRowWidth = 60

// Content is whatever a row wraps. It is rendered at the row width.
type Content interface {
	View(width int) string
}

type ContentFunc func(width int) string

func (f ContentFunc) View(width int) string { return f(width) }

// Text is static row content.
type Text string

func (t Text) View(int) string { return string(t) }

type Option func(*Model)

// WithScheduler replaces the tea.Tick based scheduler.
func WithScheduler(s Scheduler) Option {
	return func(m *Model) {
		if s != nil {
			m.sched = s
		}
	}
}

func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

func WithRowWidth(width int) Option {
	return func(m *Model) { m.width = width }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithContentStyle sets the style painted under the content.
func WithContentStyle(s lipgloss.Style) Option {
	return func(m *Model) { m.contentStyle = s }
}

type dragState struct {
	active   bool
	moved    bool
	startX   int
	startCol int
}

// Model is a single swipeable row.
type Model struct {
	id           string
	content      Content
	contentStyle lipgloss.Style
	layout       Layout
	state        State
	width        int
	enabled      bool
	closed       bool
	focused      bool
	keys         KeyMap
	sched        Scheduler
	logger       *slog.Logger
	spring       harmonica.Spring
	snap         snapState
	drag         dragState
	wheelSeq     int
	tapSeq       int
}

// New builds a centered row around content. Only the first MaxActions of
// each side are kept.
func New(content Content, leading, trailing []Action, opts ...Option) Model {
	if content == nil {
		content = Text("")
	}
	layout := NewLayout(leading, trailing)
	m := Model{
		id:           uuid.NewString(),
		content:      content,
		contentStyle: lipgloss.NewStyle(),
		layout:       layout,
		state:        layout.Initial(),
		width:        defaultRowWidth,
		enabled:      true,
		keys:         DefaultKeyMap(),
		sched:        TickScheduler{},
		logger:       slog.New(slog.DiscardHandler),
		spring:       newSpring(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) ID() string       { return m.id }
func (m Model) Layout() Layout   { return m.layout }
func (m Model) Zone() Zone       { return m.state.Zone }
func (m Model) Offset() float64  { return m.state.Offset }
func (m Model) Enabled() bool    { return m.enabled }
func (m Model) Closed() bool     { return m.closed }
func (m Model) Focused() bool    { return m.focused }
func (m Model) Width() int       { return m.width }
func (m Model) KeyMap() KeyMap   { return m.keys }
func (m Model) Animating() bool  { return m.snap.active }
func (m Model) Dragging() bool   { return m.drag.active }
func (m Model) Content() Content { return m.content }

// State returns the current derived state. The action slices are copies.
func (m Model) State() State {
	s := m.state
	s.Leading = append([]Action(nil), s.Leading...)
	s.Trailing = append([]Action(nil), s.Trailing...)
	return s
}

func (m *Model) SetWidth(width int) {
	if width > 0 {
		m.width = width
	}
}

func (m *Model) SetContent(c Content) {
	if c != nil {
		m.content = c
	}
}

func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur()  { m.focused = false }

// Close tears the row down. Continuations still in flight become no-ops and
// handlers of pending taps are not run.
func (m Model) Close() Model {
	m.closed = true
	m.drag = dragState{}
	return m.cancelSnap()
}

// Reveal snaps the row to z, as if the user had swiped there.
func (m Model) Reveal(z Zone) (Model, tea.Cmd) {
	if m.closed || z == ZoneUnsettled {
		return m, nil
	}
	return m.snapTo(z)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}
	switch msg := msg.(type) {
	case frameMsg:
		if msg.rowID != m.id || !m.snap.active || msg.seq != m.snap.seq {
			return m, nil
		}
		return m.stepSnap()

	case settleMsg:
		if msg.rowID != m.id || msg.seq != m.wheelSeq || m.drag.active || m.snap.active {
			return m, nil
		}
		return m.snapTo(m.layout.Nearest(m.state.Offset))

	case fireMsg:
		if msg.rowID != m.id || msg.seq != m.tapSeq {
			return m, nil
		}
		return m, m.runAction(msg.action)

	case enableMsg:
		if msg.rowID != m.id || msg.seq != m.tapSeq {
			return m, nil
		}
		m.enabled = true
		return m, nil

	case tea.KeyMsg:
		if !m.focused || !m.enabled {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.enabled {
			return m, nil
		}
		return m.handleMouse(msg)
	}
	return m, nil
}

// setOffset moves the strip and reconciles the zone state. A re-center
// request is only honored while the strip is at rest.
func (m Model) setOffset(offset float64) Model {
	offset = m.layout.Clamp(m.state, offset)
	prev := m.state.Zone
	next, recenter := m.layout.Reconcile(m.state, offset)
	if recenter && !m.drag.active && !m.snap.active {
		next.Offset = m.layout.Offset(ZoneCentered)
	}
	m.state = next
	if next.Zone != prev && next.Zone != ZoneUnsettled {
		m.logger.Debug("zone", "row", m.id, "from", prev.String(), "to", next.Zone.String())
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.RevealLeading):
		switch m.state.Zone {
		case ZoneLeading:
			return m, nil
		case ZoneTrailing:
			return m.snapTo(ZoneCentered)
		}
		if len(m.state.Leading) == 0 {
			return m, nil
		}
		return m.snapTo(ZoneLeading)

	case key.Matches(msg, m.keys.RevealTrailing):
		switch m.state.Zone {
		case ZoneTrailing:
			return m, nil
		case ZoneLeading:
			return m.snapTo(ZoneCentered)
		}
		if len(m.state.Trailing) == 0 {
			return m, nil
		}
		return m.snapTo(ZoneTrailing)

	case key.Matches(msg, m.keys.Close):
		return m.snapTo(ZoneCentered)

	case key.Matches(msg, m.keys.Primary):
		switch m.state.Zone {
		case ZoneLeading:
			if n := len(m.state.Leading); n > 0 {
				return m.tap(m.state.Leading[n-1])
			}
		case ZoneTrailing:
			if len(m.state.Trailing) > 0 {
				return m.tap(m.state.Trailing[0])
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Nth):
		n, err := strconv.Atoi(msg.String())
		if err != nil || n < 1 {
			return m, nil
		}
		visible := m.revealedActions()
		if n > len(visible) {
			return m, nil
		}
		return m.tap(visible[n-1])
	}
	return m, nil
}

// revealedActions lists the actions of the fully revealed side in display
// order, left to right.
func (m Model) revealedActions() []Action {
	switch m.state.Zone {
	case ZoneLeading:
		return m.state.Leading
	case ZoneTrailing:
		return m.state.Trailing
	}
	return nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m = m.cancelSnap()
		m.drag = dragState{active: true, startX: msg.X, startCol: m.scrollColumn()}
		return m, nil

	case msg.Action == tea.MouseActionMotion && m.drag.active:
		col := m.drag.startCol + (m.drag.startX - msg.X)
		if col != m.drag.startCol {
			m.drag.moved = true
		}
		return m.setOffset(m.offsetForColumn(col)), nil

	case msg.Action == tea.MouseActionRelease && m.drag.active:
		moved := m.drag.moved
		m.drag = dragState{}
		if !moved {
			return m.click(msg.X)
		}
		return m.snapTo(m.layout.Nearest(m.state.Offset))

	case msg.Button == tea.MouseButtonWheelLeft || msg.Button == tea.MouseButtonWheelRight:
		step := 1
		if msg.Button == tea.MouseButtonWheelLeft {
			step = -1
		}
		m = m.cancelSnap()
		m = m.setOffset(m.offsetForColumn(m.scrollColumn() + step))
		m.wheelSeq++
		return m, m.sched.After(settleDelay, settleMsg{rowID: m.id, seq: m.wheelSeq})
	}
	return m, nil
}

// click handles a press and release without movement at column x of the row.
// Tapping an action runs it; tapping the content of an open row closes it.
func (m Model) click(x int) (Model, tea.Cmd) {
	if a, ok := m.actionAt(x); ok {
		return m.tap(a)
	}
	if m.state.Zone != ZoneCentered {
		return m.snapTo(ZoneCentered)
	}
	return m.snapTo(m.layout.Nearest(m.state.Offset))
}

// tap disables the row, snaps it back to the content and schedules the
// handler and the re-enable independently of each other.
func (m Model) tap(a Action) (Model, tea.Cmd) {
	m.enabled = false
	m.drag = dragState{}
	m.tapSeq++
	m.logger.Debug("tap", "row", m.id, "action", a.ID(), "label", a.Label())

	m, snap := m.snapTo(ZoneCentered)
	return m, tea.Batch(
		snap,
		m.sched.After(callbackDelay, fireMsg{rowID: m.id, seq: m.tapSeq, action: a}),
		m.sched.After(enableDelay, enableMsg{rowID: m.id, seq: m.tapSeq}),
	)
}

// runAction runs the handler off the update loop so a slow handler cannot
// hold back the re-enable.
func (m Model) runAction(a Action) tea.Cmd {
	rowID := m.id
	return func() tea.Msg {
		a.invoke()
		return ActionTriggeredMsg{RowID: rowID, ActionID: a.ID(), Label: a.Label(), Icon: a.Icon()}
	}
}
