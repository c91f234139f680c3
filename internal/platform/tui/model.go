package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keysmash/internal/board"
	"github.com/vovakirdan/keysmash/internal/config"
	"github.com/vovakirdan/keysmash/internal/core"
	"github.com/vovakirdan/keysmash/internal/game"
	"github.com/vovakirdan/keysmash/internal/storage"
)

const (
	helpHeight   = 1 // Help bar below the game screen
	weakestShown = 3
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options wires a Model to its collaborators. Journal and Logger may be nil.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Tones   game.ToneSink
	Journal *storage.Store
	Logger  *log.Logger
	Clock   func() time.Time
}

// Model is the Bubble Tea model that runs one keysmash session.
type Model struct {
	session  *game.Session
	geometry board.Geometry
	screen   *core.Screen
	keys     *KeyMapper
	help     help.Model
	journal  *storage.Store
	logger   *log.Logger
	debounce time.Duration

	runID     int64
	weakest   []rune
	resizeSeq int
	quitting  bool
}

// NewModel creates the model and its session.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := opts.Runtime
	rt.ScreenH -= helpHeight
	session, err := game.New(opts.Config, rt,
		game.WithTones(opts.Tones),
		game.WithLogger(logger),
		game.WithClock(opts.Clock),
	)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		session:  session,
		geometry: opts.Config.Geometry(),
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:     NewKeyMapper(),
		help:     h,
		journal:  opts.Journal,
		logger:   logger,
		debounce: opts.Config.ResizeDebounce(),
	}, nil
}

// Session returns the game session driven by the model.
func (m Model) Session() *game.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleInput(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleInput(m.keys.MapMouse(msg))

	case tea.BlurMsg:
		return m.handleInput(m.keys.MapFocus(msg))

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case resizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleInput applies one mapped input to the session.
func (m Model) handleInput(in core.Input) (tea.Model, tea.Cmd) {
	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		m.endRun()
		return m, tea.Quit

	case core.ActionStart:
		before := m.session.State()
		m.session.Start()
		if before == game.NotStarted || before == game.GameOver {
			m.beginRun()
		}

	case core.ActionPause:
		m.session.Pause()

	case core.ActionHide:
		m.session.Hide()

	case core.ActionType:
		res := m.session.Keystroke(in.Rune)
		m.record(res)
	}

	return m, nil
}

// handleWindowSize resizes the screen at once and schedules the board
// rebuild after the debounce delay.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, msg.Height-helpHeight)

	m.resizeSeq++
	return m, resizeCmd(m.resizeSeq, msg.Width, msg.Height-helpHeight, m.debounce)
}

// handleResize rebuilds the board if no newer size arrived meanwhile.
func (m Model) handleResize(msg resizeMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.resizeSeq {
		return m, nil
	}
	if m.session.Resize(msg.width, msg.height) {
		b := m.session.Board()
		m.logger.Debug("board resized", "rows", b.Rows(), "cols", b.Cols())
	}
	return m, nil
}

// handleTick runs one simulation step and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.session.State()
	snap := m.session.Step()

	if before == game.Started && snap.State == game.GameOver {
		m.endRun()
	}

	return m, tickCmd(m.session.TickInterval())
}

// beginRun opens a journal run for a freshly reset session.
func (m *Model) beginRun() {
	m.weakest = nil
	if m.journal == nil {
		return
	}

	id, err := m.journal.BeginRun(m.session.Seed(), m.session.Stats().StartedAt)
	if err != nil {
		m.logger.Warn("journal unavailable", "err", err)
		m.runID = 0
		return
	}
	m.runID = id
}

// record journals a keystroke of the current run.
func (m *Model) record(res game.KeyResult) {
	if m.journal == nil || m.runID == 0 || res.Outcome == game.OutcomeIgnored {
		return
	}

	err := m.journal.RecordKeystroke(m.runID, storage.Keystroke{
		Expected: res.Expected,
		Typed:    res.Typed,
		Outcome:  res.Outcome.String(),
		Level:    res.Level,
		At:       time.Now(),
	})
	if err != nil {
		m.logger.Warn("cannot journal keystroke", "err", err)
	}
}

// endRun closes the current journal run and loads its weakest letters.
func (m *Model) endRun() {
	if m.journal == nil || m.runID == 0 {
		return
	}

	id := m.runID
	m.runID = 0
	if err := m.journal.EndRun(id, m.session.Score(), m.session.Level().Number, time.Now()); err != nil {
		m.logger.Warn("cannot close journal run", "run", id, "err", err)
		return
	}

	weakest, err := m.journal.WeakestLetters(id, weakestShown)
	if err != nil {
		m.logger.Warn("cannot load letter stats", "run", id, "err", err)
		return
	}
	m.weakest = weakest
	m.logger.Info("run journaled", "run", id, "weakest", string(weakest))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	var extra []string
	if snap.State == game.GameOver && len(m.weakest) > 0 {
		extra = append(extra, "Weakest: "+spaced(m.weakest))
	}
	game.Render(snap, m.screen, m.geometry, extra...)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

func spaced(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to start
		tea.WithReportFocus(),     // Pause when the terminal loses focus
	)

	_, err = p.Run()
	return err
}
