package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wxlv/scrub/pkg/scrub/logging"
	"github.com/wxlv/scrub/pkg/scrub/session"
	"github.com/wxlv/scrub/pkg/scrub/trash"
	"github.com/wxlv/scrub/pkg/scrub/watch"
)

// Options configures the TUI application.
type Options struct {
	// Session drives the scan/clean lifecycle. Required.
	Session *session.Session

	// Cooldown is the input debounce window for navigation and toggle
	// keys. Zero uses the default.
	Cooldown time.Duration

	// EmptyTrash also empties the system trash as part of a clean.
	EmptyTrash bool

	// DryRun is displayed so the user knows nothing will be deleted.
	DryRun bool

	// FreeBytes is the free space on the primary target volume at
	// launch, shown in the header. Zero hides it.
	FreeBytes uint64
}

// staleMsg signals that a watched root changed after the scan, so the
// displayed sizes may no longer be accurate.
type staleMsg struct{}

// Model is the main Bubble Tea model for the scrub TUI.
type Model struct {
	sess     *session.Session
	opts     Options
	keys     keyMap
	help     help.Model
	debounce *session.Debouncer

	// now is the clock for debouncing, injectable in tests.
	now func() time.Time

	watcher    *watch.Watcher
	stale      bool
	trashNote  string
	showHelp   bool
	width      int
	height     int
}

// NewModel creates a new TUI model with the given options.
func NewModel(opts Options) Model {
	return Model{
		sess:     opts.Session,
		opts:     opts,
		keys:     keys,
		help:     help.New(),
		debounce: session.NewDebouncer(opts.Cooldown),
		now:      time.Now,
		width:    80,
		height:   24,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages. Scans and cleans run synchronously inside the
// update loop: the session is single-threaded by contract, and the targets
// are small enough that the pause reads as the Scanning/Cleaning phase.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case staleMsg:
		m.stale = true
		return m, nil
	}

	return m, nil
}

// handleKey handles keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopWatching()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.debounce.Allow(m.now()) {
			m.sess.MovePrev()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.debounce.Allow(m.now()) {
			m.sess.MoveNext()
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.debounce.Allow(m.now()) {
			m.sess.Toggle()
		}
		return m, nil

	case key.Matches(msg, m.keys.SelectAll):
		m.sess.SelectAll()
		return m, nil

	case key.Matches(msg, m.keys.DeselectAll):
		m.sess.DeselectAll()
		return m, nil

	case key.Matches(msg, m.keys.Invert):
		m.sess.InvertSelection()
		return m, nil

	case key.Matches(msg, m.keys.Scan):
		return m.runScan()

	case key.Matches(msg, m.keys.Clean):
		return m.runClean()

	case key.Matches(msg, m.keys.Reset):
		m.stopWatching()
		m.stale = false
		m.trashNote = ""
		m.sess.Reset()
		return m, nil
	}

	return m, nil
}

// runScan performs a scan and starts watching the scanned roots so the
// display can flag itself stale when something changes underneath it.
func (m Model) runScan() (tea.Model, tea.Cmd) {
	m.stopWatching()
	m.stale = false
	m.sess.Scan()
	if m.sess.Phase() != session.PhaseScanned {
		return m, nil
	}

	w, err := watch.New(m.sess.EnabledRoots())
	if err != nil {
		logging.Get("tui").Debug("watcher unavailable", "error", err)
		return m, nil
	}
	m.watcher = w
	return m, waitForChange(w)
}

// runClean performs a clean, and optionally empties the system trash.
func (m Model) runClean() (tea.Model, tea.Cmd) {
	if m.sess.Phase() != session.PhaseScanned {
		return m, nil
	}

	m.stopWatching()
	m.sess.Clean()

	if m.opts.EmptyTrash {
		switch err := trash.Empty(m.opts.DryRun); {
		case err == nil:
			m.trashNote = "trash emptied"
		case errors.Is(err, trash.ErrNotSupported):
			m.trashNote = "trash not supported here"
		default:
			m.trashNote = "trash: " + err.Error()
		}
	}
	return m, nil
}

// waitForChange blocks on the watcher until a root changes or the watcher
// closes.
func waitForChange(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Events(); !ok {
			return nil
		}
		return staleMsg{}
	}
}

// stopWatching closes the active watcher, if any.
func (m *Model) stopWatching() {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
}

// Run starts the TUI program and blocks until it exits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
