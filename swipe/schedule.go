package swipe

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timings of the row. They are part of the widget's feel and are not exposed
// for tuning.
const (
	snapDuration  = 800 * time.Millisecond
	callbackDelay = 200 * time.Millisecond
	enableDelay   = 600 * time.Millisecond
	settleDelay   = 150 * time.Millisecond
	frameInterval = time.Second / 60
)

// Scheduler delivers msg back to the program after d.
type Scheduler interface {
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

// TickScheduler is the default Scheduler, backed by tea.Tick.
type TickScheduler struct{}

func (TickScheduler) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// scheduled messages carry the row id so a parent can broadcast them to all
// rows; each row drops messages that are not its own.

type frameMsg struct {
	rowID string
	seq   int
}

type settleMsg struct {
	rowID string
	seq   int
}

type fireMsg struct {
	rowID  string
	seq    int
	action Action
}

type enableMsg struct {
	rowID string
	seq   int
}

// ActionTriggeredMsg is emitted after an action handler has run.
type ActionTriggeredMsg struct {
	RowID    string
	ActionID string
	Label    string
	Icon     string
}
