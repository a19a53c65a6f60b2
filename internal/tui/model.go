package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/ytget/sample-gallery/internal/config"
	"github.com/ytget/sample-gallery/internal/debounce"
	"github.com/ytget/sample-gallery/internal/logging"
	"github.com/ytget/sample-gallery/internal/model"
	"github.com/ytget/sample-gallery/internal/platform"
	"github.com/ytget/sample-gallery/internal/state"
	"github.com/ytget/sample-gallery/internal/view"
)

// Messages shown by the terminal surface
const (
	MsgLoadFailed   = "Failed to load sample apps. Please check the catalog and try again."
	MsgNoSampleLink = "This sample has no live preview link."
	MsgLinkFailed   = "Could not open link"
	MsgOpening      = "Opening %s"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// rows kept for the header, notice and help lines
	chromeHeight = 6
)

// CatalogLoader loads and normalizes the sample catalog
type CatalogLoader interface {
	Load(ctx context.Context) ([]model.CatalogEntry, error)
}

type catalogLoadedMsg struct {
	entries []model.CatalogEntry
	err     error
}

type searchTickMsg struct {
	token debounce.Token
}

type noticeExpiredMsg struct {
	id string
}

// Model is the bubbletea model of the terminal gallery
type Model struct {
	ctx    context.Context
	loader CatalogLoader
	logger *zap.Logger

	snapshot state.Snapshot
	cursor   int
	detail   bool

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	styles   Styles

	debouncer     *debounce.Debouncer
	noticeTimeout time.Duration
	markdownStyle string
	openURL       func(string) error

	width  int
	height int
}

// Option configures a Model
type Option func(*Model)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		m.logger = logging.OrNop(logger)
	}
}

// WithOptions applies the shared startup options
func WithOptions(opts config.Options) Option {
	return func(m *Model) {
		m.debouncer = debounce.New(opts.SearchDebounce)
		if opts.NoticeTimeout > 0 {
			m.noticeTimeout = opts.NoticeTimeout
		}
	}
}

// WithMarkdownStyle selects the glamour style of the detail pane
func WithMarkdownStyle(style string) Option {
	return func(m *Model) {
		m.markdownStyle = style
	}
}

// WithURLOpener replaces the browser launcher
func WithURLOpener(open func(string) error) Option {
	return func(m *Model) {
		m.openURL = open
	}
}

// WithQuery pre-fills the search field
func WithQuery(query string) Option {
	return func(m *Model) {
		m.input.SetValue(query)
		m.snapshot = m.snapshot.WithQuery(query)
	}
}

// New creates the terminal gallery model
func New(ctx context.Context, loader CatalogLoader, opts ...Option) Model {
	styles := DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = "Search samples..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.Title
	ti.CharLimit = 256
	ti.Width = defaultWidth - 4
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Title

	m := Model{
		ctx:           ctx,
		loader:        loader,
		logger:        zap.NewNop(),
		snapshot:      state.New(),
		input:         ti,
		spinner:       sp,
		viewport:      viewport.New(defaultWidth, defaultHeight-chromeHeight),
		help:          help.New(),
		keys:          DefaultKeyMap(),
		styles:        styles,
		debouncer:     debounce.New(debounce.DefaultSearchDelay),
		noticeTimeout: config.DefaultNoticeTimeout,
		markdownStyle: "dark",
		openURL:       platform.OpenURL,
		width:         defaultWidth,
		height:        defaultHeight,
	}

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the catalog load and the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalog(), m.spinner.Tick, textinput.Blink)
}

// Snapshot returns the current application state
func (m Model) Snapshot() state.Snapshot {
	return m.snapshot
}

// Cursor is the index of the highlighted visible sample
func (m Model) Cursor() int {
	return m.cursor
}

// DetailOpen reports whether the detail pane is showing
func (m Model) DetailOpen() bool {
	return m.detail
}

func (m Model) loadCatalog() tea.Cmd {
	loader := m.loader
	ctx := m.ctx
	return func() tea.Msg {
		if loader == nil {
			return catalogLoadedMsg{err: errors.New("no catalog loader configured")}
		}
		entries, err := loader.Load(ctx)
		return catalogLoadedMsg{entries: entries, err: err}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case catalogLoadedMsg:
		if msg.err != nil {
			m.logger.Error("catalog load failed", zap.Error(msg.err))
			m.snapshot = m.snapshot.WithLoadFailure(MsgLoadFailed)
			m.cursor = 0
			return m, m.noticeCmd()
		}
		m.logger.Debug("catalog loaded", zap.Int("entries", len(msg.entries)))
		m.snapshot = m.snapshot.WithCatalog(msg.entries)
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.Loaded() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchTickMsg:
		if !m.debouncer.IsCurrent(msg.token) {
			return m, nil
		}
		m.applySearch(m.input.Value())
		return m, nil

	case noticeExpiredMsg:
		m.snapshot = m.snapshot.DismissNotice(msg.id)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.debouncer.Cancel()
			return m, tea.Quit
		}
		if m.detail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snapshot.Visible())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		// a pending query is applied before picking the entry under the cursor
		if m.input.Value() != m.snapshot.Query() {
			m.debouncer.Cancel()
			m.applySearch(m.input.Value())
		}
		next, ok := m.snapshot.Select(m.cursor)
		if !ok {
			return m, nil
		}
		m.snapshot = next
		m.openDetail()
		return m, nil

	case key.Matches(msg, m.keys.Close):
		if m.input.Value() == "" {
			return m, nil
		}
		m.input.SetValue("")
		m.debouncer.Cancel()
		m.applySearch("")
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.searchCmd())
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entry, ok := m.snapshot.Selected()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		m.detail = false
		m.snapshot = m.snapshot.ClearSelection()
		return m, nil

	case key.Matches(msg, m.keys.OpenSample):
		return m, m.open(entry.SampleLink)

	case key.Matches(msg, m.keys.OpenCode):
		if !entry.HasCodeLink() {
			return m, nil
		}
		return m, m.open(entry.CodeLink)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// searchCmd restarts the quiet period; only the newest tick applies
func (m Model) searchCmd() tea.Cmd {
	token := m.debouncer.Next()
	return tea.Tick(m.debouncer.Duration(), func(time.Time) tea.Msg {
		return searchTickMsg{token: token}
	})
}

func (m *Model) applySearch(query string) {
	if query == m.snapshot.Query() {
		return
	}
	m.snapshot = m.snapshot.WithQuery(query)
	m.cursor = 0
}

// open launches link in the browser and reports the outcome as a notice
func (m *Model) open(link string) tea.Cmd {
	u, err := platform.ValidateLink(link)
	switch {
	case errors.Is(err, platform.ErrNoLink):
		m.snapshot = m.snapshot.WithNotice(state.NoticeInfo, MsgNoSampleLink)
	case err != nil:
		m.logger.Warn("invalid link", zap.String("link", link), zap.Error(err))
		m.snapshot = m.snapshot.WithNotice(state.NoticeError, MsgLinkFailed)
	default:
		if err := m.openURL(u.String()); err != nil {
			m.logger.Warn("open link failed", zap.String("link", link), zap.Error(err))
			m.snapshot = m.snapshot.WithNotice(state.NoticeError, MsgLinkFailed)
		} else {
			m.snapshot = m.snapshot.WithNotice(state.NoticeInfo, fmt.Sprintf(MsgOpening, u.Host))
		}
	}
	return m.noticeCmd()
}

// noticeCmd schedules the dismissal of the current notice
func (m Model) noticeCmd() tea.Cmd {
	notice, ok := m.snapshot.Notice()
	if !ok {
		return nil
	}
	id := notice.ID
	return tea.Tick(m.noticeTimeout, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func (m *Model) openDetail() {
	entry, ok := m.snapshot.Selected()
	if !ok {
		return
	}
	m.detail = true
	m.viewport.SetContent(m.renderDetail(view.BuildDetail(entry)))
	m.viewport.GotoTop()
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(width-4, 10)
	m.help.Width = width
	m.viewport.Width = width
	m.viewport.Height = max(height-chromeHeight, 3)
	if m.detail {
		if entry, ok := m.snapshot.Selected(); ok {
			m.viewport.SetContent(m.renderDetail(view.BuildDetail(entry)))
		}
	}
}

// renderDetail renders the detail markdown, falling back to the raw text
// when glamour cannot render it
func (m Model) renderDetail(detail view.DetailViewModel) string {
	source := detailMarkdown(detail)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.markdownStyle),
		glamour.WithWordWrap(max(m.width-4, 20)),
	)
	if err != nil {
		m.logger.Debug("markdown renderer unavailable", zap.Error(err))
		return source
	}
	out, err := renderer.Render(source)
	if err != nil {
		m.logger.Debug("markdown render failed", zap.Error(err))
		return source
	}
	return out
}

// Run starts the terminal program and blocks until it exits
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
