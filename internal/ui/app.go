package ui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artex/internal/gallery"
	"github.com/five82/artex/internal/met"
	"github.com/five82/artex/internal/prefs"
	"github.com/five82/artex/internal/state"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Fetcher    Fetcher
	Store      *state.Store
	Controller *gallery.Controller
	Debounce   time.Duration
	PrefsPath  string
	// InitialQuery pre-fills the search field and fetches at start.
	InitialQuery string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	fetcher    Fetcher
	store      *state.Store
	controller *gallery.Controller
	prefsPath  string
	debounce   time.Duration
	keys       keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	modal    Modal

	// Search field
	search    textinput.Model
	searching bool
	editSeq   uint64

	// Fetch state
	spinner  spinner.Model
	snapshot state.Snapshot
	cancel   context.CancelFunc

	// Grid state
	visible   []met.Artwork
	selected  int
	rowOffset int

	help help.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	controller := opts.Controller
	if controller == nil {
		controller = gallery.NewController(false)
	}
	debounce := opts.Debounce
	if debounce < 0 {
		debounce = 0
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = "Type a term, e.g. sunflowers"
	ti.CharLimit = 200
	ti.Prompt = "› "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:        ctx,
		fetcher:    opts.Fetcher,
		store:      store,
		controller: controller,
		prefsPath:  prefsPath,
		debounce:   debounce,
		keys:       DefaultKeyMap(),
		search:     ti,
		spinner:    sp,
		snapshot:   store.Snapshot(),
		help:       help.New(),
	}
	m.applyTheme(GetTheme(controller.Dark()))

	if q := opts.InitialQuery; q != "" {
		controller.SetQuery(q)
		m.search.SetValue(q)
		m.editSeq = 1
	}
	m.refreshVisible()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if q := m.controller.Query(); q != "" {
		cmds = append(cmds, debounceCmd(0, m.editSeq, q))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = max(m.width/3, 20)
		m.help.Width = m.width
		m.clampRowOffset()
		return m, nil

	case debounceMsg:
		return m, m.handleDebounce(msg)

	case fetchResultMsg:
		m.handleFetchResult(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other input plumbing.
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// contentHeight leaves room for the header, command bar and footer.
func (m Model) contentHeight() int {
	return max(m.height-3, 1)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, done := m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		} else {
			m.modal = modal
		}
		if cmd != nil {
			m.stopFetch()
		}
		return m, cmd
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopFetch()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Reset):
		if m.controller.Reset() {
			m.search.SetValue("")
			return m, m.queryEdited()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleDark):
		dark := m.controller.ToggleDark()
		m.applyTheme(GetTheme(dark))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Dark: dark}); err != nil {
				log.Printf("save prefs: %v", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleFilter):
		m.controller.CycleFilter()
		m.refreshVisible()
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		m.controller.CycleSort()
		m.refreshVisible()
		return m, nil

	case key.Matches(msg, m.keys.ToggleFavorite):
		if art, ok := m.selectedArtwork(); ok {
			m.controller.ToggleFavorite(art.ObjectID)
			m.refreshVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Details):
		if art, ok := m.selectedArtwork(); ok {
			m.modal = newDetailModal(art, m.controller.IsFavorite(art.ObjectID), m.theme, m.width, m.height)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1, 0)
	case key.Matches(msg, m.keys.Top):
		m.selectIndex(0)
	case key.Matches(msg, m.keys.Bottom):
		m.selectIndex(len(m.visible) - 1)
	}
	return m, nil
}

// handleSearchKey routes keys to the search field. Every edit that changes
// the value becomes the new query.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.stopFetch()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		m.controller.Submit()
		m.blurSearch()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.blurSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.controller.SetQuery(m.search.Value()) {
		return m, tea.Batch(cmd, m.queryEdited())
	}
	return m, cmd
}

func (m *Model) blurSearch() {
	m.searching = false
	m.search.Blur()
}

func (m *Model) stopFetch() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	styles := t.Styles().WithBackground(t.Surface)
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning))
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.stopFetch()
	}
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Interrupted by signal.
		return nil
	}
	return err
}
