// Package tui provides a Bubble Tea terminal user interface for vidscribe.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/vidscribe/internal/audio"
	"github.com/handiism/vidscribe/internal/backend"
	"github.com/handiism/vidscribe/internal/config"
	"github.com/handiism/vidscribe/internal/dispatch"
	vhttp "github.com/handiism/vidscribe/internal/http"
	ioutils "github.com/handiism/vidscribe/internal/io"
	"github.com/handiism/vidscribe/internal/locale"
	"github.com/handiism/vidscribe/internal/model"
	"github.com/handiism/vidscribe/internal/view"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E1E1E")).
			Background(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// Focus is the section that receives key presses.
type Focus int

const (
	FocusURL Focus = iota
	FocusFormats
	FocusFile
)

const maxLogs = 10

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   dispatch.NoticeLevel
}

// thumbnailClient fetches thumbnail bytes from the backend.
type thumbnailClient interface {
	Get(ctx context.Context, url string) ([]byte, error)
	BaseURL() string
}

// session is the state shared between the model copies and the command
// goroutines.
type session struct {
	page       *view.Memory
	dispatcher *dispatch.Dispatcher
	thumbs     thumbnailClient
	images     *ioutils.ImageService

	mu   sync.Mutex
	logs []LogEntry

	uploadSent  atomic.Int64
	uploadTotal atomic.Int64
}

func (s *session) log(entry LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
	if len(s.logs) > maxLogs {
		s.logs = s.logs[len(s.logs)-maxLogs:]
	}
}

func (s *session) recentLogs() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LogEntry(nil), s.logs...)
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	s        *session
	settings *config.Settings
	catalog  locale.Catalog

	urlInput  textinput.Model
	fileInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model

	focus     Focus
	cursor    int
	pending   int
	fetching  bool
	uploading bool
	preview   string

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model talking to the backend in settings.
func NewModel(settings *config.Settings) Model {
	client := vhttp.NewClient(settings.BaseURL, settings.RequestTimeout())
	return newModel(settings, backend.New(client), client)
}

func newModel(settings *config.Settings, api dispatch.Backend, thumbs thumbnailClient) Model {
	catalog := settings.Catalog()

	s := &session{
		page:   view.NewMemory(catalog.VideoInfoButton, nil),
		thumbs: thumbs,
		images: ioutils.NewImageService(),
	}
	s.dispatcher = dispatch.New(settings, api, s.page, func(n dispatch.Notice) {
		if n.Level == dispatch.LevelVerbose && !settings.Verbose {
			return
		}
		s.log(LogEntry{Message: n.Message, Level: n.Level})
	})
	s.dispatcher.SetUploadProgress(func(sent, total int64) {
		s.uploadSent.Store(sent)
		s.uploadTotal.Store(total)
	})

	ui := textinput.New()
	ui.Placeholder = "https://www.youtube.com/watch?v=..."
	ui.Focus()
	ui.CharLimit = 2000
	ui.Width = 60

	fi := textinput.New()
	fi.Placeholder = "/path/to/audio-or-video file"
	fi.CharLimit = 4096
	fi.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		s:         s,
		settings:  settings,
		catalog:   catalog,
		urlInput:  ui,
		fileInput: fi,
		spinner:   sp,
		progress:  prog,
		focus:     FocusURL,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// InfoDoneMsg is sent when a video info lookup completes.
	InfoDoneMsg struct {
		Info    *model.VideoInfo
		Outcome model.Outcome
	}

	// ActionDoneMsg is sent when a download or transcription request completes.
	ActionDoneMsg struct {
		Outcome model.Outcome
		Upload  bool
	}

	// PreviewMsg carries a rendered thumbnail preview.
	PreviewMsg struct {
		Source  string
		Preview string
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case InfoDoneMsg:
		m.pending--
		m.fetching = false
		if msg.Outcome.OK() {
			m.cursor = 0
			m.preview = ""
			m.focus = FocusFormats
			m.urlInput.Blur()
			if msg.Info != nil && msg.Info.HasThumbnail() {
				cmds = append(cmds, m.loadPreview(msg.Info.ThumbnailURL))
			}
		}

	case ActionDoneMsg:
		m.pending--
		if msg.Upload {
			m.uploading = false
		}
		// The dispatcher may have cleared the URL field or the file picker.
		state := m.s.page.Snapshot()
		if msg.Outcome.OK() && !msg.Upload && state.URL == "" {
			m.urlInput.SetValue("")
		}
		if msg.Outcome.OK() && msg.Upload && state.File == nil {
			m.fileInput.SetValue("")
		}

	case PreviewMsg:
		if msg.Err != nil && m.settings.Verbose {
			m.s.log(LogEntry{Message: fmt.Sprintf("Thumbnail preview unavailable: %v", msg.Err), Level: dispatch.LevelVerbose})
		} else if msg.Err == nil && msg.Source == m.s.page.Snapshot().Thumbnail {
			m.preview = msg.Preview
		}

	case TickMsg:
		if m.uploading {
			var percent float64
			if total := m.s.uploadTotal.Load(); total > 0 {
				percent = float64(m.s.uploadSent.Load()) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update the focused text input
	switch m.focus {
	case FocusURL:
		var cmd tea.Cmd
		m.urlInput, cmd = m.urlInput.Update(msg)
		cmds = append(cmds, cmd)
	case FocusFile:
		var cmd tea.Cmd
		m.fileInput, cmd = m.fileInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes key presses that are not plain text input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancel()
		return tea.Quit, true

	case "tab":
		return m.setFocus((m.focus + 1) % 3), true

	case "shift+tab":
		return m.setFocus((m.focus + 2) % 3), true

	case "enter":
		switch m.focus {
		case FocusURL:
			return m.startInfo(), true
		case FocusFormats:
			return m.startDownload(), true
		case FocusFile:
			return m.startTranscription(), true
		}
	}

	if m.focus != FocusFormats {
		return nil, false
	}

	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)
		return nil, true
	case "down", "j":
		m.moveCursor(1)
		return nil, true
	case " ", "space", "s":
		if box := m.s.page.SubtitleCheckbox(); box != nil {
			box.SetChecked(!box.Checked())
		}
		return nil, true
	}

	return nil, false
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.urlInput.Blur()
	m.fileInput.Blur()
	switch f {
	case FocusURL:
		return m.urlInput.Focus()
	case FocusFile:
		return m.fileInput.Focus()
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	sel := m.s.page.FormatSelect()
	if sel == nil {
		return
	}
	opts := sel.Options()
	if len(opts) == 0 {
		return
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(opts) {
		m.cursor = len(opts) - 1
	}
	sel.SetValue(opts[m.cursor].Value)
}

// startInfo triggers a lookup unless one is already running.
func (m *Model) startInfo() tea.Cmd {
	if m.fetching {
		return nil
	}
	if btn := m.s.page.InfoButton(); btn != nil && btn.Disabled() {
		return nil
	}
	m.syncURL()

	m.fetching = true
	m.pending++
	s, ctx := m.s, m.ctx
	return tea.Batch(func() tea.Msg {
		info, outcome := s.dispatcher.GetVideoInfo(ctx)
		return InfoDoneMsg{Info: info, Outcome: outcome}
	}, m.spinner.Tick)
}

func (m *Model) startDownload() tea.Cmd {
	m.syncURL()
	m.pending++
	s, ctx := m.s, m.ctx
	return tea.Batch(func() tea.Msg {
		return ActionDoneMsg{Outcome: s.dispatcher.StartDownload(ctx)}
	}, m.spinner.Tick)
}

func (m *Model) startTranscription() tea.Cmd {
	path := strings.TrimSpace(m.fileInput.Value())
	if path == "" {
		m.s.page.SetFile(nil)
	} else if upload, err := ioutils.OpenUpload(path); err != nil {
		m.s.log(LogEntry{Message: fmt.Sprintf("Cannot open %s: %v", path, err), Level: dispatch.LevelError})
		m.s.page.SetFile(nil)
	} else {
		m.s.page.SetFile(upload)
		m.s.log(LogEntry{Message: fmt.Sprintf("Selected: %s", audio.Describe(path)), Level: dispatch.LevelInfo})
	}

	m.pending++
	m.uploading = true
	m.s.uploadSent.Store(0)
	m.s.uploadTotal.Store(0)

	s, ctx := m.s, m.ctx
	return tea.Batch(func() tea.Msg {
		return ActionDoneMsg{Outcome: s.dispatcher.StartTranscription(ctx), Upload: true}
	}, m.spinner.Tick, m.tickProgress())
}

// syncURL copies the text input into the page's URL field.
func (m *Model) syncURL() {
	if input := m.s.page.URLInput(); input != nil {
		input.SetValue(m.urlInput.Value())
	}
}

// loadPreview fetches and renders the thumbnail at url.
func (m Model) loadPreview(url string) tea.Cmd {
	if !m.settings.ThumbnailPreview || m.s.thumbs == nil {
		return nil
	}
	s, ctx, width := m.s, m.ctx, m.settings.ThumbnailWidth

	return func() tea.Msg {
		data, err := s.thumbs.Get(ctx, url)
		if err != nil {
			return PreviewMsg{Source: url, Err: err}
		}
		img, err := s.images.Fit(ctx, data, width, width)
		if err != nil {
			return PreviewMsg{Source: url, Err: err}
		}
		return PreviewMsg{Source: url, Preview: renderHalfBlocks(img)}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder
	state := m.s.page.Snapshot()

	// Header
	b.WriteString(titleStyle.Render("🎬 vidscribe"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Video download & transcription · " + m.backendURL()))
	b.WriteString("\n\n")

	b.WriteString(m.viewURL(state))
	b.WriteString("\n")

	if state.InfoVisible {
		b.WriteString(m.viewInfo(state))
		b.WriteString("\n")
	}

	b.WriteString(m.viewFile())
	b.WriteString("\n")

	if m.pending > 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Working..."))
		b.WriteString("\n")
	}

	if len(state.Alerts) > 0 {
		b.WriteString(boxStyle.Render(state.Alerts[len(state.Alerts)-1]))
		b.WriteString("\n")
	}

	b.WriteString(m.renderLogs())

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

// backendURL returns the base URL requests are sent to.
func (m Model) backendURL() string {
	if m.s.thumbs != nil {
		return m.s.thumbs.BaseURL()
	}
	return m.settings.BaseURL
}

func (m Model) viewURL(state view.State) string {
	var b strings.Builder

	b.WriteString(m.sectionTitle("Video URL:", FocusURL))
	b.WriteString("\n")
	b.WriteString(m.urlInput.View())
	b.WriteString("  ")
	if state.ButtonDisabled {
		b.WriteString(dimStyle.Render("[" + state.ButtonText + "]"))
	} else {
		b.WriteString(buttonStyle.Render(state.ButtonText))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewInfo(state view.State) string {
	var b strings.Builder

	b.WriteString(successStyle.Render(state.Title))
	b.WriteString("\n")
	if m.preview != "" {
		b.WriteString(m.preview)
		b.WriteString("\n")
	} else if state.Thumbnail != "" {
		b.WriteString(dimStyle.Render(state.Thumbnail))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.sectionTitle("Formats:", FocusFormats))
	b.WriteString("\n")
	for i, opt := range state.Options {
		line := "    " + opt.Label
		if i == m.cursor {
			line = "  › " + opt.Label
			if m.focus == FocusFormats {
				line = selectedStyle.Render(line)
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	subtitleCheck := "[ ]"
	if state.Subtitle {
		subtitleCheck = "[×]"
	}
	b.WriteString(fmt.Sprintf("  %s Subtitles (space)\n", subtitleCheck))

	return b.String()
}

func (m Model) viewFile() string {
	var b strings.Builder

	b.WriteString(m.sectionTitle("Transcribe file:", FocusFile))
	b.WriteString("\n")
	b.WriteString(m.fileInput.View())
	b.WriteString("\n")

	if m.uploading {
		var percent float64
		if total := m.s.uploadTotal.Load(); total > 0 {
			percent = float64(m.s.uploadSent.Load()) / float64(total)
		}
		b.WriteString(m.progress.ViewAs(percent))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) sectionTitle(title string, f Focus) string {
	if m.focus == f {
		return subtitleStyle.Render("› " + title)
	}
	return infoStyle.Render("  " + title)
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.s.recentLogs() {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case dispatch.LevelError:
			style = errorStyle
			prefix = "✗"
		case dispatch.LevelWarning:
			style = warningStyle
			prefix = "!"
		case dispatch.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case dispatch.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.focus {
	case FocusURL:
		return "enter: get video info • tab: next section • esc: quit"
	case FocusFormats:
		return "↑/↓: choose format • space: subtitles • enter: download • tab: next section • esc: quit"
	case FocusFile:
		return "enter: transcribe • tab: next section • esc: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
