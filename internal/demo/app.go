package demo

import (
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/swipeview/internal/config"
	"github.com/jask/swipeview/internal/inbox"
	"github.com/jask/swipeview/internal/logging"
	"github.com/jask/swipeview/swipe"
	"github.com/jask/swipeview/widgets"
)

const (
	toastDuration = 2 * time.Second
	gutterWidth   = 2
	rowHeight     = 2
)

type toastExpiredMsg struct{ seq int }

type Option func(*Model)

// WithScheduler drives the rows and the toast timer from s.
func WithScheduler(s swipe.Scheduler) Option {
	return func(m *Model) {
		if s != nil {
			m.sched = s
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

type styles struct {
	header lipgloss.Style
	gutter lipgloss.Style
	status lipgloss.Style
}

// Model is the inbox screen: a list of swipe rows over an inbox.Box.
type Model struct {
	cfg       config.Config
	box       *inbox.Box
	rows      []row
	bindings  map[string]binding
	focus     int
	top       int
	width     int
	height    int
	search    textinput.Model
	searching bool
	help      help.Model
	keys      keyMap
	status    string
	toast     string
	toastSeq  int
	dragRow   int
	sched     swipe.Scheduler
	logger    *slog.Logger
	rowOpts   []swipe.Option
	styles    styles
}

func New(cfg config.Config, box *inbox.Box, opts ...Option) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search"
	search.Cursor.SetMode(cursor.CursorStatic)

	accent := lipgloss.Color(cfg.UI.Accent)
	m := Model{
		cfg:      cfg,
		box:      box,
		bindings: map[string]binding{},
		width:    80,
		height:   24,
		search:   search,
		help:     help.New(),
		keys:     newKeyMap(),
		dragRow:  -1,
		sched:    swipe.TickScheduler{},
		logger:   logging.WithModule("demo"),
		styles: styles{
			header: lipgloss.NewStyle().Bold(true).Foreground(accent),
			gutter: lipgloss.NewStyle().Foreground(accent),
			status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.rowOpts = []swipe.Option{
		swipe.WithScheduler(m.sched),
		swipe.WithLogger(m.logger.With("component", "row")),
		swipe.WithKeyMap(m.keys.Row),
	}
	m.syncRows()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Status() string { return m.status }
func (m Model) Toast() string  { return m.toast }
func (m Model) Len() int       { return len(m.rows) }

// Focused returns the focused row, if any.
func (m Model) Focused() (swipe.Model, bool) {
	if m.focus >= len(m.rows) {
		return swipe.Model{}, false
	}
	return m.rows[m.focus].swipe, true
}

// Row returns the i-th visible row and the id of its message.
func (m Model) Row(i int) (swipe.Model, string) {
	return m.rows[i].swipe, m.rows[i].msgID
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(1, msg.Width-4)
		for i := range m.rows {
			m.rows[i].swipe.SetWidth(m.rowWidth())
		}
		m.scrollToFocus()
		return m, nil

	case swipe.ActionTriggeredMsg:
		return m.apply(msg)

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m.broadcast(msg)
}

// broadcast hands msg to every row. Rows drop timer messages that are not
// their own.
func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.rows))
	for i := range m.rows {
		var cmd tea.Cmd
		m.rows[i].swipe, cmd = m.rows[i].swipe.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		m.scrollToFocus()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.scrollToFocus()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		return m.moveFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Down):
		return m.moveFocus(m.focus + 1)
	}
	if len(m.rows) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.rows[m.focus].swipe, cmd = m.rows[m.focus].swipe.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Accept):
		m.searching = false
		m.search.Blur()
		m.scrollToFocus()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.syncRows()
		return m, nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.syncRows()
		m.setFocus(0)
	}
	return m, cmd
}

// moveFocus closes the row losing focus before focusing next.
func (m Model) moveFocus(next int) (tea.Model, tea.Cmd) {
	if next < 0 || next >= len(m.rows) || next == m.focus {
		return m, nil
	}
	cmd := m.closeRow(m.focus)
	m.setFocus(next)
	return m, cmd
}

func (m *Model) closeRow(i int) tea.Cmd {
	if i < 0 || i >= len(m.rows) || m.rows[i].swipe.Zone() == swipe.ZoneCentered {
		return nil
	}
	var cmd tea.Cmd
	m.rows[i].swipe, cmd = m.rows[i].swipe.Reveal(swipe.ZoneCentered)
	return cmd
}

func (m *Model) setFocus(i int) {
	m.focus = max(0, min(i, len(m.rows)-1))
	for k := range m.rows {
		if k == m.focus {
			m.rows[k].swipe.Focus()
		} else {
			m.rows[k].swipe.Blur()
		}
	}
	m.scrollToFocus()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	i := m.dragRow
	if i < 0 {
		i = m.rowAt(msg.Y)
	}
	y, ok := m.rowTop(i)
	if !ok {
		m.dragRow = -1
		return m, nil
	}

	var cmds []tea.Cmd
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragRow = i
		if i != m.focus {
			cmds = append(cmds, m.closeRow(m.focus))
			m.setFocus(i)
		}
	case msg.Action == tea.MouseActionRelease:
		m.dragRow = -1
	}

	local := msg
	local.X -= gutterWidth
	local.Y -= y
	var cmd tea.Cmd
	m.rows[i].swipe, cmd = m.rows[i].swipe.Update(local)
	return m, tea.Batch(append(cmds, cmd)...)
}

// apply performs the inbox change behind a triggered action.
func (m Model) apply(msg swipe.ActionTriggeredMsg) (tea.Model, tea.Cmd) {
	b, ok := m.bindings[msg.ActionID]
	if !ok {
		return m, nil
	}
	current, ok := m.box.Get(b.msgID)
	if !ok {
		return m, nil
	}

	var text string
	switch b.op {
	case opArchive:
		m.box.Remove(b.msgID)
		text = "Archived"
	case opDelete:
		m.box.Remove(b.msgID)
		text = "Deleted"
	case opFlag:
		m.box.Update(b.msgID, func(x *inbox.Message) { x.Flagged = !x.Flagged })
		text = toggled(!current.Flagged, "Flagged", "Unflagged")
	case opStar:
		m.box.Update(b.msgID, func(x *inbox.Message) { x.Starred = !x.Starred })
		text = toggled(!current.Starred, "Starred", "Unstarred")
	case opPin:
		m.box.Update(b.msgID, func(x *inbox.Message) { x.Pinned = !x.Pinned })
		text = toggled(!current.Pinned, "Pinned", "Unpinned")
	case opUnread:
		m.box.Update(b.msgID, func(x *inbox.Message) { x.Unread = !x.Unread })
		text = toggled(!current.Unread, "Marked unread", "Marked read")
	}
	m.logger.Info("applied", "op", b.op.String(), "message", b.msgID, "removed", b.op.removes())

	m.status = fmt.Sprintf("%s: %s", text, current.Subject)
	m.syncRows()
	return m, m.showToast(text)
}

func toggled(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toast = text
	m.toastSeq++
	return m.sched.After(toastDuration, toastExpiredMsg{seq: m.toastSeq})
}

// syncRows lines the rows up with the filtered inbox. Existing rows keep
// their state; rows whose message is gone are dropped with their bindings.
func (m *Model) syncRows() {
	focused := ""
	if m.focus < len(m.rows) {
		focused = m.rows[m.focus].msgID
	}
	existing := make(map[string]row, len(m.rows))
	for _, r := range m.rows {
		existing[r.msgID] = r
	}

	visible := inbox.Filter(m.box.Messages(), m.search.Value())
	rows := make([]row, 0, len(visible))
	for _, msg := range visible {
		if r, ok := existing[msg.ID]; ok {
			rows = append(rows, r)
			delete(existing, msg.ID)
			continue
		}
		r, b := newRow(m.box, msg, m.logger, m.rowOpts...)
		r.swipe.SetWidth(m.rowWidth())
		maps.Copy(m.bindings, b)
		rows = append(rows, r)
	}
	for id := range existing {
		maps.DeleteFunc(m.bindings, func(_ string, b binding) bool { return b.msgID == id })
	}

	m.rows = rows
	m.dragRow = -1
	next := 0
	for i, r := range rows {
		if r.msgID == focused {
			next = i
		}
	}
	m.setFocus(next)
}

func (m Model) rowWidth() int {
	return max(1, m.width-gutterWidth)
}

func (m Model) showSearch() bool {
	return m.searching || m.search.Value() != ""
}

// listTop is the screen line of the first row.
func (m Model) listTop() int {
	if m.showSearch() {
		return 2
	}
	return 1
}

func (m Model) listHeight() int {
	chrome := m.listTop() + 1 + widgets.Height(m.help.View(m.keys))
	return max(rowHeight, m.height-chrome)
}

func (m Model) visibleRows() int {
	gap := m.cfg.UI.RowGap
	return max(1, (m.listHeight()+gap)/(rowHeight+gap))
}

func (m *Model) scrollToFocus() {
	n := m.visibleRows()
	if m.focus < m.top {
		m.top = m.focus
	}
	if m.focus >= m.top+n {
		m.top = m.focus - n + 1
	}
	m.top = max(0, min(m.top, len(m.rows)-n))
}

// stack renders the rows currently on screen, starting at m.top.
func (m Model) stack() widgets.VStack {
	end := min(len(m.rows), m.top+m.visibleRows())
	blocks := make([]string, 0, max(0, end-m.top))
	for i := m.top; i < end; i++ {
		gutter := strings.Repeat(" ", gutterWidth)
		if i == m.focus {
			gutter = m.styles.gutter.Render("▌ ")
		}
		lines := strings.Split(m.rows[i].swipe.View(), "\n")
		for k := range lines {
			lines[k] = gutter + lines[k]
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return widgets.VStack{Blocks: blocks, Spacing: m.cfg.UI.RowGap}
}

// rowAt maps a screen line to a row index, or -1.
func (m Model) rowAt(y int) int {
	st := m.stack()
	y -= m.listTop()
	for k, off := range st.Offsets() {
		if y >= off && y < off+widgets.Height(st.Blocks[k]) {
			return m.top + k
		}
	}
	return -1
}

// rowTop is the screen line of row i, when it is on screen.
func (m Model) rowTop(i int) (int, bool) {
	if i < m.top || i >= len(m.rows) {
		return 0, false
	}
	offsets := m.stack().Offsets()
	if i-m.top >= len(offsets) {
		return 0, false
	}
	return m.listTop() + offsets[i-m.top], true
}
