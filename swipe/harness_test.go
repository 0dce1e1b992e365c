package swipe

import (
	"sort"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fakeScheduler queues messages against a manual clock instead of sleeping.
type fakeScheduler struct {
	now     time.Duration
	seq     int
	pending []scheduled
}

type scheduled struct {
	due   time.Duration
	delay time.Duration
	order int
	msg   tea.Msg
}

func (s *fakeScheduler) After(d time.Duration, msg tea.Msg) tea.Cmd {
	s.seq++
	s.pending = append(s.pending, scheduled{due: s.now + d, delay: d, order: s.seq, msg: msg})
	return nil
}

// pendingOf returns the queued entries whose message has the type of sample.
func pendingOf[T tea.Msg](s *fakeScheduler) []scheduled {
	var out []scheduled
	for _, p := range s.pending {
		if _, ok := p.msg.(T); ok {
			out = append(out, p)
		}
	}
	return out
}

// rowHarness drives a Model through the fake clock, running every command it
// returns and feeding the resulting messages back.
type rowHarness struct {
	t         *testing.T
	sched     *fakeScheduler
	row       Model
	triggered []ActionTriggeredMsg
}

func newHarness(t *testing.T, leading, trailing []Action) *rowHarness {
	t.Helper()
	sched := &fakeScheduler{}
	row := New(Text("content"), leading, trailing, WithScheduler(sched), WithRowWidth(40))
	row.Focus()
	return &rowHarness{t: t, sched: sched, row: row}
}

func (h *rowHarness) send(msg tea.Msg) {
	var cmd tea.Cmd
	h.row, cmd = h.row.Update(msg)
	h.run(cmd)
}

func (h *rowHarness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	case ActionTriggeredMsg:
		h.triggered = append(h.triggered, msg)
	default:
		h.send(msg)
	}
}

// advance moves the clock forward, delivering due messages in order.
func (h *rowHarness) advance(d time.Duration) {
	end := h.sched.now + d
	for {
		sort.SliceStable(h.sched.pending, func(i, j int) bool {
			a, b := h.sched.pending[i], h.sched.pending[j]
			if a.due != b.due {
				return a.due < b.due
			}
			return a.order < b.order
		})
		if len(h.sched.pending) == 0 || h.sched.pending[0].due > end {
			break
		}
		next := h.sched.pending[0]
		h.sched.pending = h.sched.pending[1:]
		h.sched.now = next.due
		h.send(next.msg)
	}
	h.sched.now = end
}

// settle runs all pending animation frames.
func (h *rowHarness) settle() {
	h.advance(2 * time.Second)
}

func (h *rowHarness) key(s string) {
	switch s {
	case "left":
		h.send(tea.KeyMsg{Type: tea.KeyLeft})
	case "right":
		h.send(tea.KeyMsg{Type: tea.KeyRight})
	case "enter":
		h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		h.send(tea.KeyMsg{Type: tea.KeyEsc})
	default:
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

func labelAction(label string, width float64, handler func()) Action {
	return NewLabelAction(label, lipgloss.Color("15"), lipgloss.Color("1"), handler, WithWidth(width))
}

func labels(actions []Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Label())
	}
	return out
}

func ids(actions []Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.ID())
	}
	return out
}
