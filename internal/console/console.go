// Package console hosts the dispatcher: an interactive Bubble Tea prompt
// with scrollback and history, and a line mode for scripts and pipes.
package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vane-tools/vanectl/internal/dispatchers"
	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/ui"
	"github.com/vane-tools/vanectl/internal/ui/style"
)

const (
	maxScrollback = 2000
	maxHistory    = 500
)

// Dispatcher runs command lines and renders their diagnostics.
type Dispatcher interface {
	DispatchLine(sender domain.Sender, line string) dispatchers.Result
	Render(res dispatchers.Result) string
}

type keyMap struct {
	Submit   key.Binding
	Prev     key.Binding
	Next     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Submit:   key.NewBinding(key.WithKeys("enter")),
	Prev:     key.NewBinding(key.WithKeys("up", "ctrl+p")),
	Next:     key.NewBinding(key.WithKeys("down", "ctrl+n")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc", "ctrl+d")),
}

// Model is the interactive console.
type Model struct {
	dispatcher Dispatcher
	sender     domain.Sender
	out        *ui.Buffer

	input textinput.Model
	view  viewport.Model
	ready bool

	scrollback []string

	history []string
	// recall indexes history while browsing; len(history) means the draft.
	recall int
	draft  string

	quitting bool
}

// New creates a console that dispatches as sender. Command output written
// to out is moved into the scrollback after every line.
func New(d Dispatcher, sender domain.Sender, out *ui.Buffer) Model {
	input := textinput.New()
	input.Prompt = style.Prompt(sender.DisplayName() + "> ")
	input.Placeholder = "type help"
	input.Focus()

	return Model{
		dispatcher: d,
		sender:     sender,
		out:        out,
		input:      input,
		view:       viewport.New(80, 20),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-2, 1)
		m.input.Width = max(msg.Width-len(m.sender.DisplayName())-3, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Submit):
			m.submit()
			return m, nil
		case key.Matches(msg, keys.Prev):
			m.browse(-1)
			return m, nil
		case key.Matches(msg, keys.Next):
			m.browse(1)
			return m, nil
		case key.Matches(msg, keys.PageUp), key.Matches(msg, keys.PageDown):
			var cmd tea.Cmd
			m.view, cmd = m.view.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.view.View() + "\n" + m.input.View()
}

func (m *Model) submit() {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.recall = len(m.history)
	m.draft = ""
	if line == "" {
		return
	}

	m.remember(line)
	m.append(style.Muted("> ") + line)

	res := m.dispatcher.DispatchLine(m.sender, line)
	if out := m.out.Drain(); out != "" {
		m.append(strings.TrimRight(out, "\n"))
	}
	if diag := m.dispatcher.Render(res); diag != "" {
		m.append(strings.TrimRight(diag, "\n"))
	}
	m.refresh()
}

func (m *Model) remember(line string) {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
	}
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.recall = len(m.history)
}

// browse moves through history; moving past the newest entry restores
// the line being typed.
func (m *Model) browse(delta int) {
	if len(m.history) == 0 {
		return
	}
	if m.recall == len(m.history) {
		m.draft = m.input.Value()
	}

	m.recall = min(max(m.recall+delta, 0), len(m.history))
	if m.recall == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.recall])
	}
	m.input.CursorEnd()
}

func (m *Model) append(text string) {
	m.scrollback = append(m.scrollback, strings.Split(text, "\n")...)
	if len(m.scrollback) > maxScrollback {
		m.scrollback = m.scrollback[len(m.scrollback)-maxScrollback:]
	}
}

func (m *Model) refresh() {
	m.view.SetContent(strings.Join(m.scrollback, "\n"))
	m.view.GotoBottom()
}

// Scrollback returns the lines shown above the prompt.
func (m Model) Scrollback() []string {
	return m.scrollback
}

// Run starts the interactive console and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
