package swipe

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	springFrequency = 8.0
	springDamping   = 1.0
	settleEpsilon   = 0.05
)

type snapState struct {
	active   bool
	target   float64
	velocity float64
	elapsed  int // frames
	seq      int
}

func newSpring() harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(60), springFrequency, springDamping)
}

// snapTo animates the strip to the anchor of z.
func (m Model) snapTo(z Zone) (Model, tea.Cmd) {
	target := m.layout.Clamp(m.state, m.layout.Offset(z))
	m.snap.seq++
	if near(m.state.Offset, target) {
		m.snap.active = false
		m = m.setOffset(target)
		return m, nil
	}
	m.snap.active = true
	m.snap.target = target
	m.snap.velocity = 0
	m.snap.elapsed = 0
	m.logger.Debug("snap", "row", m.id, "zone", z.String(), "from", m.state.Offset, "to", target)
	return m, m.sched.After(frameInterval, frameMsg{rowID: m.id, seq: m.snap.seq})
}

func (m Model) stepSnap() (Model, tea.Cmd) {
	m.snap.elapsed++
	pos, vel := m.spring.Update(m.state.Offset, m.snap.velocity, m.snap.target)
	m.snap.velocity = vel

	done := m.snap.elapsed >= int(snapDuration/frameInterval) ||
		(math.Abs(pos-m.snap.target) < settleEpsilon && math.Abs(vel) < settleEpsilon)
	if done {
		m.snap.active = false
		return m.setOffset(m.snap.target), nil
	}
	m = m.setOffset(pos)
	return m, m.sched.After(frameInterval, frameMsg{rowID: m.id, seq: m.snap.seq})
}

func (m Model) cancelSnap() Model {
	m.snap.active = false
	m.snap.seq++
	return m
}
