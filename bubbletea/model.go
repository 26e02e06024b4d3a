package bubbletea

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/neoxbridge"
	"github.com/fwojciec/neoxbridge/command"
	"github.com/fwojciec/neoxbridge/format"
)

var _ tea.Model = Model{}

// ErrTurnCancelled is shown when Ctrl+C interrupts a running turn.
var ErrTurnCancelled = errors.New("request cancelled")

// Model is the Bubble Tea model for the neoxbridge chat.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model
	// Spinner animates the status line while a turn runs.
	Spinner spinner.Model

	handle  HandleFunc
	session *neoxbridge.Session
	network string
	theme   neoxbridge.Theme
	styles  Styles

	blocks []MessageBlock

	// wallet and pending mirror the session between turns, so View never
	// reads the session while a turn owns it.
	wallet  string
	pending bool

	running bool
	cancel  context.CancelFunc
	ready   bool
}

// New creates a Model that answers input with handle. An empty session
// history opens with the welcome message; otherwise the history is
// replayed.
func New(handle HandleFunc, session *neoxbridge.Session, network string, theme neoxbridge.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about balances, transfers, security..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := NewStyles(theme)
	sp.Style = styles.Accent

	return Model{
		Input:   ti,
		Spinner: sp,
		handle:  handle,
		session: session,
		network: network,
		theme:   theme,
		styles:  styles,
		wallet:  session.WalletAddress(),
		pending: session.Pending != nil,
	}
}

// Running returns whether a turn is in flight.
func (m Model) Running() bool { return m.running }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case TurnDoneMsg:
		m.running = false
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		if errors.Is(msg.Err, context.Canceled) {
			m.blocks = append(m.blocks, NewErrorBlock(ErrTurnCancelled, m.styles))
		} else {
			m.blocks = append(m.blocks, NewResponseBlock(msg.Response.Message, msg.Response.Success, m.theme, m.styles))
		}
		m.wallet = m.session.WalletAddress()
		m.pending = m.session.Pending != nil
		m = m.refresh()
		return m, m.Input.Focus()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputH := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := max(msg.Height-inputH-statusHeight-borderHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m = m.renderSession()
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Input.Width = msg.Width
	return m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.running {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submitInput(text)
	}

	// Character keys go to the input only; 'j'/'k' would otherwise scroll.
	if m.running {
		return m, nil
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	if command.Parse(text) == command.Quit {
		return m, tea.Quit
	}

	m.blocks = append(m.blocks, NewUserMessageBlock(text, m.styles))
	m = m.refresh()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.running = true
	m.Input.Blur()

	return m, tea.Batch(runTurn(ctx, m.handle, m.session, text), m.Spinner.Tick)
}

// renderSession creates blocks from the session history.
func (m Model) renderSession() Model {
	msgs := m.session.History.Messages()
	if len(msgs) == 0 {
		m.blocks = append(m.blocks, NewResponseBlock(format.Welcome(), true, m.theme, m.styles))
		return m
	}
	for _, msg := range msgs {
		switch msg.Role {
		case neoxbridge.RoleUser:
			m.blocks = append(m.blocks, NewUserMessageBlock(msg.Text, m.styles))
		case neoxbridge.RoleAssistant:
			m.blocks = append(m.blocks, NewResponseBlock(msg.Text, true, m.theme, m.styles))
		}
	}
	return m
}

func (m Model) refresh() Model {
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

func (m Model) statusLine() string {
	if m.running {
		return m.Spinner.View() + " " + m.styles.Muted.Render("Working... Ctrl+C to cancel")
	}
	parts := []string{m.styles.Accent.Render(m.network)}
	if m.wallet != "" {
		parts = append(parts, m.styles.Muted.Render("wallet "+m.wallet))
	}
	if m.pending {
		parts = append(parts, m.styles.Warning.Render("transfer awaiting confirmation"))
	}
	parts = append(parts, m.styles.Muted.Render("Enter to send, Ctrl+C to quit"))
	return strings.Join(parts, m.styles.Muted.Render(" · "))
}

// runTurn answers text off the UI goroutine.
func runTurn(ctx context.Context, handle HandleFunc, s *neoxbridge.Session, text string) tea.Cmd {
	return func() tea.Msg {
		resp := handle(ctx, s, text)
		return TurnDoneMsg{Response: resp, Err: ctx.Err()}
	}
}
