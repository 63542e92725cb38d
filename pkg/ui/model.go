package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/pianofolio/pkg/audio"
	"github.com/vanderheijden86/pianofolio/pkg/config"
	"github.com/vanderheijden86/pianofolio/pkg/debug"
	"github.com/vanderheijden86/pianofolio/pkg/input"
	"github.com/vanderheijden86/pianofolio/pkg/interaction"
	"github.com/vanderheijden86/pianofolio/pkg/layout"
	"github.com/vanderheijden86/pianofolio/pkg/resume"
	"github.com/vanderheijden86/pianofolio/pkg/watcher"
)

// PanelSettleDelay is the wait between toggling the keyboard panel and
// refitting the keyboard to the panel's width.
const PanelSettleDelay = 150 * time.Millisecond

// noteReleaseMsg clears one press. One is scheduled per press and none is
// ever cancelled.
type noteReleaseMsg struct {
	press interaction.Press
}

// layoutSettleMsg triggers a refit once the panel has settled.
type layoutSettleMsg struct{}

// audioReadyMsg reports that the one audio activation attempt finished.
type audioReadyMsg struct{}

// ContentReloadedMsg carries a freshly loaded content registry. On error the
// registry is ignored and the previous one stays in place.
type ContentReloadedMsg struct {
	Registry *resume.Registry
	Err      error
}

// WatchContentCmd waits for the content file to change, then reloads it.
func WatchContentCmd(w *watcher.Watcher, path string) tea.Cmd {
	return func() tea.Msg {
		<-w.Changed()
		reg, err := resume.LoadRegistry(path)
		return ContentReloadedMsg{Registry: reg, Err: err}
	}
}

func releaseCmd(p interaction.Press) tea.Cmd {
	return tea.Tick(interaction.ReleaseDelay, func(time.Time) tea.Msg {
		return noteReleaseMsg{press: p}
	})
}

func settleCmd() tea.Cmd {
	return tea.Tick(PanelSettleDelay, func(time.Time) tea.Msg {
		return layoutSettleMsg{}
	})
}

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// Model is the piano résumé screen.
type Model struct {
	state  *interaction.State
	fitter *layout.Fitter
	router *input.Router
	repeat *input.RepeatDetector
	synth  *audio.Synth

	registry *resume.Registry
	profile  resume.Profile
	theme    Theme
	md       *markdownRenderer

	watcher     *watcher.Watcher
	contentPath string

	search textinput.Model
	body   viewport.Model

	width, height int
	panelOpen     bool

	audioRequested bool
	pendingNote    resume.Note
	hasPending     bool

	statusMsg     string
	statusIsError bool
}

// NewModel returns the initial screen: modal closed, nothing pressed, sized
// for a 120x40 terminal until the first WindowSizeMsg arrives.
func NewModel(registry *resume.Registry, synth *audio.Synth) Model {
	if registry == nil {
		registry = resume.DefaultRegistry()
	}
	if synth == nil {
		synth = audio.NewSynth(audio.WithDisabled(true))
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search sections..."
	ti.CharLimit = 40
	ti.Width = 30

	m := Model{
		state:    interaction.New(),
		fitter:   layout.NewFitter(layout.DefaultSmallBreakpoint),
		router:   input.NewRouter(),
		repeat:   input.NewRepeatDetector(input.DefaultInitialRepeatDelay, input.DefaultRepeatWindow),
		synth:    synth,
		registry: registry,
		profile:  resume.DefaultProfile(),
		theme:    NewTheme(lipgloss.NewRenderer(os.Stdout), ThemeDark),
		md:       &markdownRenderer{},
		search:   ti,
		body:     viewport.New(60, 10),
		width:    120,
		height:   40,
	}
	m.refit()
	return m
}

// WithConfig applies profile, layout and input settings.
func (m Model) WithConfig(cfg config.Config) Model {
	m.profile = cfg.ResolvedProfile()
	m.fitter = layout.NewFitter(cfg.UI.SmallBreakpoint)
	m.repeat = input.NewRepeatDetector(cfg.InitialRepeatDelay(), cfg.RepeatWindow())
	m.refit()
	return m
}

// WithTheme replaces the theme.
func (m Model) WithTheme(t Theme) Model {
	m.theme = t
	return m
}

// WithWatcher enables live reload of the content file at path.
func (m Model) WithWatcher(w *watcher.Watcher, path string) Model {
	m.watcher = w
	m.contentPath = path
	return m
}

func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return WatchContentCmd(m.watcher, m.contentPath)
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.refit()
		m.layoutBody()

	case noteReleaseMsg:
		m.state.Release(msg.press)

	case layoutSettleMsg:
		if m.refit() {
			m.layoutBody()
		}

	case audioReadyMsg:
		if m.hasPending {
			m.synth.Play(m.pendingNote)
			m.hasPending = false
		}

	case ContentReloadedMsg:
		if msg.Err != nil {
			debug.Log("ui: content reload failed: %v", msg.Err)
			m.setStatus(fmt.Sprintf("Content reload failed: %v", msg.Err), true)
		} else if msg.Registry != nil {
			m.registry = msg.Registry
			m.setStatus("Content reloaded", false)
			m.layoutBody()
		}
		if m.watcher != nil {
			cmds = append(cmds, WatchContentCmd(m.watcher, m.contentPath))
		}

	case tea.BlurMsg:
		m.synth.Suspend()
		m.repeat.Reset()

	case tea.FocusMsg:
		m.repeat.Reset()

	case tea.KeyMsg:
		cmds = append(cmds, m.activateAudio())
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		cmds = append(cmds, m.activateAudio())
		m, cmd = m.handleMouse(msg)
		cmds = append(cmds, cmd)

	default:
		if m.search.Focused() {
			m.search, cmd = m.search.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// activateAudio starts the one-time output activation on the first gesture.
func (m *Model) activateAudio() tea.Cmd {
	if m.audioRequested {
		return nil
	}
	m.audioRequested = true
	done := m.synth.Activate()
	return func() tea.Msg {
		<-done
		return audioReadyMsg{}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		r := msg.Runes[0]
		ev := input.FromRune(r)
		ev.Editable = m.search.Focused()
		ev.Repeat = m.repeat.Observe(r)
		if p, ok := m.router.Key(ev); ok {
			debug.Log("ui: key %q -> %s", r, p.Note)
			return m.onNotePlayed(p)
		}
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.state.Dismiss()
	case "tab":
		return m.togglePanel()
	case "t":
		m.toggleTheme()
	case "m":
		m.toggleMute()
	case "1":
		m.copyToClipboard("phone", m.profile.Phone)
	case "2":
		m.copyToClipboard("email", m.profile.Email)
	case "3":
		m.copyToClipboard("link", m.profile.Link)
	case "/":
		m.search.SetValue("")
		return m, m.search.Focus()
	case "up", "down", "pgup", "pgdown", "home", "end", "j", "k":
		if m.state.IsOpen() {
			var cmd tea.Cmd
			m.body, cmd = m.body.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.Blur()
		m.search.SetValue("")
		return m, nil
	case tea.KeyEnter:
		query := m.search.Value()
		m.search.Blur()
		m.search.SetValue("")
		sec, ok := m.findSection(query)
		if !ok {
			m.setStatus(fmt.Sprintf("No section matches %q", query), true)
			return m, nil
		}
		if p, ok := m.router.Click(int(sec.Note)); ok {
			return m.onNotePlayed(p)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// findSection returns the first section, in note order, whose label, id or
// title contains query.
func (m Model) findSection(query string) (resume.Section, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return resume.Section{}, false
	}
	for _, s := range resume.Sections() {
		title := ""
		if c, ok := m.registry.Lookup(s.ID); ok {
			title = c.Title
		}
		if strings.Contains(strings.ToLower(s.Label), q) ||
			strings.Contains(s.ID.String(), q) ||
			strings.Contains(strings.ToLower(title), q) {
			return s, true
		}
	}
	return resume.Section{}, false
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.state.IsOpen() {
		var cmd tea.Cmd
		if tea.MouseEvent(msg).IsWheel() {
			m.body, cmd = m.body.Update(msg)
			return m, cmd
		}
		if interaction.PrimaryDismisses(msg.Button) {
			m.state.Dismiss()
		}
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y == chipRow {
		if c, ok := chipAt(m.chips(), msg.X); ok {
			return m.runChip(c)
		}
	}
	if idx, ok := m.keyAt(msg.X, msg.Y); ok {
		if p, ok := m.router.Click(idx); ok {
			debug.Log("ui: click key %d -> %s", idx, p.Note)
			return m.onNotePlayed(p)
		}
	}
	return m, nil
}

// onNotePlayed is the single handler both input paths converge on.
func (m Model) onNotePlayed(p input.Play) (Model, tea.Cmd) {
	press := m.state.Press(p)
	if m.synth.Ready() {
		m.synth.Play(p.Note)
	} else if m.audioRequested {
		m.pendingNote, m.hasPending = p.Note, true
	}
	if p.HasSection {
		m.body.GotoTop()
		m.layoutBody()
	}
	return m, releaseCmd(press)
}

func (m Model) runChip(c chip) (Model, tea.Cmd) {
	switch c.action {
	case chipCopyPhone:
		m.copyToClipboard("phone", m.profile.Phone)
	case chipCopyEmail:
		m.copyToClipboard("email", m.profile.Email)
	case chipCopyLink:
		m.copyToClipboard("link", m.profile.Link)
	case chipTheme:
		m.toggleTheme()
	case chipMute:
		m.toggleMute()
	case chipKeys:
		return m.togglePanel()
	}
	return m, nil
}

func (m Model) togglePanel() (Model, tea.Cmd) {
	if !m.isSmall() {
		return m, nil
	}
	m.panelOpen = !m.panelOpen
	return m, settleCmd()
}

func (m *Model) toggleTheme() {
	m.theme = m.theme.Toggled()
	if m.theme.IsDark() {
		m.setStatus("Theme: dark", false)
	} else {
		m.setStatus("Theme: light", false)
	}
	m.layoutBody()
}

func (m *Model) toggleMute() {
	m.synth.SetMuted(!m.synth.Muted())
	if m.synth.Muted() {
		m.setStatus("Sound muted", false)
	} else {
		m.setStatus("Sound on", false)
	}
}

func (m *Model) copyToClipboard(what, value string) {
	if value == "" {
		m.setStatus(fmt.Sprintf("No %s configured", what), true)
		return
	}
	if err := writeClipboard(value); err != nil {
		m.setStatus(fmt.Sprintf("❌ Clipboard error: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("📋 Copied %s to clipboard", what), false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.statusMsg, m.statusIsError = s, isErr
}

func (m Model) isSmall() bool {
	return layout.IsSmall(m.width, m.fitter.Breakpoint())
}

func (m Model) gateShown() bool {
	return m.isSmall() && layout.IsPortrait(m.width, m.height)
}

// keyboardShown reports whether the key row is on screen.
func (m Model) keyboardShown() bool {
	if m.gateShown() {
		return false
	}
	return !m.isSmall() || m.panelOpen
}

func (m Model) inPanel() bool {
	return m.isSmall() && m.panelOpen
}

func (m Model) availableWidth() int {
	w := m.width - 2*keyboardMargin
	if m.inPanel() {
		w -= 2
	}
	return w
}

func (m *Model) refit() bool {
	return m.fitter.Fit(layout.Viewport{
		Width:     m.width,
		Height:    m.height,
		Available: m.availableWidth(),
	})
}

// keyboardOrigin is the screen cell of the key row's top-left corner.
func (m Model) keyboardOrigin() (x, y int) {
	rowW := m.fitter.Geometry().Width(m.fitter.Scale())
	if m.inPanel() {
		return max(0, (m.width-rowW-2)/2) + 1, KeyboardTop + 1
	}
	return max(0, (m.width-rowW)/2), KeyboardTop
}

// keyboardBottom is the first row below the keyboard area.
func (m Model) keyboardBottom() int {
	if !m.keyboardShown() {
		return KeyboardTop + 1
	}
	h := m.fitter.Geometry().Height(m.fitter.Scale())
	if m.inPanel() {
		h += 2
	}
	return KeyboardTop + h
}

func (m Model) keyAt(x, y int) (int, bool) {
	if !m.keyboardShown() {
		return -1, false
	}
	ox, oy := m.keyboardOrigin()
	return m.fitter.Geometry().HitTest(x-ox, y-oy, m.fitter.Scale())
}

func (m Model) chips() []chip {
	p := m.profile
	theme := "◐ Dark"
	if !m.theme.IsDark() {
		theme = "◑ Light"
	}
	sound := "♪ On"
	if m.synth.Muted() {
		sound = "♪ Off"
	}
	chips := []chip{
		{key: "1", text: "☎ " + p.Phone, action: chipCopyPhone},
		{key: "2", text: "✉ " + p.Email, action: chipCopyEmail},
		{key: "3", text: "↗ " + p.LinkLabel, action: chipCopyLink},
		{key: "t", text: theme, action: chipTheme},
		{key: "m", text: sound, action: chipMute},
	}
	if m.isSmall() {
		chips = append(chips, chip{key: "tab", text: "♪ Keys", action: chipKeys})
	}
	return layoutChips(chips)
}

// modalRect returns the first row and the row count available to the modal.
// It sits below the keyboard when there is room and covers it otherwise.
func (m Model) modalRect() (top, rows int) {
	footer := m.height - 1
	below := m.keyboardBottom() + 1
	if footer-below >= minModalHeight {
		return below, footer - below
	}
	return KeyboardTop, max(0, footer-KeyboardTop)
}

func (m Model) modalWidth() int {
	return max(20, min(m.width-4, 84))
}

// layoutBody re-renders the active section into the body viewport for the
// current size and theme.
func (m *Model) layoutBody() {
	id, open := m.state.Active()
	if !open {
		return
	}
	w := m.modalWidth() - 4 // border and padding
	m.body.Width = w

	text := "Content not available"
	if c, ok := m.registry.Lookup(id); ok {
		text = m.md.render(c, w, m.theme.IsDark())
	}
	m.body.SetContent(text)

	_, rows := m.modalRect()
	room := max(1, rows-4) // border, title, spacer
	m.body.Height = max(1, min(room, m.body.TotalLineCount()))
}
