package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bamsammich/termchart/internal/dataset"
	"github.com/bamsammich/termchart/internal/series"
)

// DefaultInterval is the reload period when none is configured.
const DefaultInterval = 2 * time.Second

// Loader fetches the current dataset. It is called once at start, on every
// tick and whenever the user asks for a reload.
type Loader func() (*dataset.Dataset, error)

type (
	tickMsg   time.Time
	loadedMsg struct {
		data *dataset.Dataset
		err  error
		at   time.Time
	}
	savedMsg struct {
		path string
		err  error
	}
)

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func loadCmd(load Loader) tea.Cmd {
	return func() tea.Msg {
		d, err := load()
		return loadedMsg{data: d, err: err, at: time.Now()}
	}
}

// Model is the dashboard state. It is a value type; Update returns the
// next state.
type Model struct {
	load     Loader
	source   string
	interval time.Duration

	data     *dataset.Dataset
	err      error // last reload failure, cleared by the next success
	loadedAt time.Time
	live     *series.Ring
	cache    *renderCache

	mode     viewMode
	width    int
	height   int
	status   string
	quitting bool
	prompt   pathPrompt
}

// NewModel creates a dashboard over load. source names the input in the
// header; a non-positive interval falls back to DefaultInterval.
func NewModel(load Loader, source string, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Model{
		load:     load,
		source:   source,
		interval: interval,
		live:     series.NewRing(series.DefaultRingSize),
		cache:    newRenderCache(),
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCmd(m.load), tickCmd(m.interval))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompt.open {
			return m.promptKey(msg)
		}
		return m.key(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		return m, tea.Batch(loadCmd(m.load), tickCmd(m.interval))
	case loadedMsg:
		m = m.applyLoad(msg)
	case savedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
		} else {
			m.status = "saved to " + msg.path
		}
	}
	return m, nil
}

// applyLoad keeps the previous dataset on failure so a half-written file
// does not blank the screen.
func (m Model) applyLoad(msg loadedMsg) Model {
	if msg.err != nil {
		m.err = msg.err
		m.status = "reload failed: " + msg.err.Error()
		return m
	}
	if m.err != nil {
		m.err = nil
		m.status = ""
	}
	m.data = msg.data
	m.loadedAt = msg.at
	if v, ok := msg.data.Latest(); ok {
		m.live.Push(msg.at, v)
	}
	return m
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k := msg.String(); k {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "1", "2", "3", "4":
		m.setMode(viewMode(k[0] - '1'))
	case "tab", "right", "l":
		m.setMode((m.mode + 1) % viewCount)
	case "shift+tab", "left", "h":
		m.setMode((m.mode + viewCount - 1) % viewCount)
	case "r":
		m.status = "reloading…"
		return m, loadCmd(m.load)
	case "c":
		m.live.Reset()
		m.status = "live samples cleared"
	case "s":
		if m.data == nil {
			break
		}
		m.status = ""
		m.prompt.start(fmt.Sprintf("termchart-%s-%s.txt", m.mode, time.Now().Format("2006-01-02-150405")))
	}
	return m, nil
}

func (m *Model) setMode(v viewMode) {
	m.mode = v
	m.status = ""
}

func (m Model) promptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.prompt.key(msg) {
	case promptSubmit:
		path := m.prompt.value()
		m.prompt.close()
		if path == "" {
			return m, nil
		}
		return m, m.writeView(path)
	case promptCancel:
		m.prompt.close()
	}
	return m, nil
}

// writeView saves the current view as unstyled text, titled with the
// dataset title when there is one.
func (m Model) writeView(path string) tea.Cmd {
	mode, data := m.mode, m.data
	live := m.live.Series().Values()
	width, height := m.width, m.bodyHeight()

	return func() tea.Msg {
		var b strings.Builder
		if data != nil && data.Title != "" {
			b.WriteString(data.Title + "\n\n")
		}
		b.WriteString(renderRows(layout(mode, data, live, width, height), false))
		b.WriteByte('\n')
		err := os.WriteFile(path, []byte(b.String()), 0o644) //nolint:gosec // path typed by the user
		return savedMsg{path: path, err: err}
	}
}

// bodyHeight is what remains after the header, its spacer, the status line
// and the key help.
func (m Model) bodyHeight() int {
	return max(m.height-4, 3)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.data == nil && m.err != nil {
		body = styleError.Render(m.err.Error())
	} else {
		live := m.live.Series().Values()
		height := m.bodyHeight()
		key := viewKey(m.mode, m.width, height, m.data, live)
		body = m.cache.get(key, func() string {
			return renderRows(layout(m.mode, m.data, live, m.width-2, height), true)
		})
	}

	status := ""
	switch {
	case m.prompt.open:
		status = m.prompt.view()
	case m.status != "":
		status = styleStatus.Render(m.status)
	}

	return strings.Join([]string{
		m.renderHeader(),
		"",
		indent(body, "  "),
		"  " + status,
		m.renderFooter(),
	}, "\n")
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

func (m Model) renderHeader() string {
	title := m.source
	if m.data != nil && m.data.Title != "" {
		title = m.data.Title
	}

	tabs := make([]string, 0, viewCount)
	for v := range viewCount {
		style := styleTab
		if v == m.mode {
			style = styleTabActive
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", v+1, v)))
	}

	freshness := "loading"
	if !m.loadedAt.IsZero() {
		freshness = "updated " + m.loadedAt.Format("15:04:05")
	}

	return fmt.Sprintf("  %s  %s   %s   %s",
		styleHeaderLabel.Render("termchart"),
		styleHeader.Render(title),
		strings.Join(tabs, "  "),
		styleStat.Render(freshness),
	)
}

var keyHelp = [][2]string{
	{"q", "quit"},
	{"1-4/tab", "view"},
	{"r", "reload"},
	{"c", "clear live"},
	{"s", "save"},
}

func (m Model) renderFooter() string {
	parts := make([]string, len(keyHelp))
	for i, kh := range keyHelp {
		parts[i] = styleKeybindKey.Render(kh[0]) + " " + styleKeybindLabel.Render(kh[1])
	}
	return "  " + strings.Join(parts, "   ")
}
