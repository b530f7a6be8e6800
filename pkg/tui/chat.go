package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"github.com/webpen/webpen-cli/pkg/chat"
	"github.com/webpen/webpen-cli/pkg/models"
	"github.com/webpen/webpen-cli/pkg/utils"
)

// ChatModel is the chat pane: an ephemeral message log backed by the
// generation endpoint, with fenced code block extraction for applying
// assistant replies to the selected file.
type ChatModel struct {
	client  *chat.Client
	session chat.Session

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model
	renderer *glamour.TermRenderer

	model      string
	modelNames []string
	sending    bool
	seq        int

	pendingCode string
	pendingLang string

	width  int
	height int
}

// NewChat builds the chat pane and its transport client from settings.
func NewChat(settings models.ChatSettings) *ChatModel {
	client := chat.NewClient(settings.Endpoint, time.Duration(settings.TimeoutSeconds)*time.Second)
	client.SetSampling(settings.Temperature, settings.TopP)

	input := textinput.New()
	input.Placeholder = "ask the model..."
	input.CharLimit = 0

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &ChatModel{
		client:   client,
		input:    input,
		viewport: viewport.New(0, 0),
		spin:     spin,
		model:    settings.Model,
	}
}

// Init starts the initial connection attempt.
func (m *ChatModel) Init() tea.Cmd {
	return m.connectCmd()
}

// PendingCode returns the code block extracted from the latest assistant
// reply, if one is waiting to be applied.
func (m *ChatModel) PendingCode() (string, bool) {
	return m.pendingCode, m.pendingCode != ""
}

// ClearPendingCode drops the extracted block after it has been applied.
func (m *ChatModel) ClearPendingCode() {
	m.pendingCode = ""
	m.pendingLang = ""
}

// SetSize updates the pane dimensions.
func (m *ChatModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 4
	m.viewport.Width = width - 2
	if h := height - 5; h > 0 {
		m.viewport.Height = h
	}

	// Glamour wraps to a fixed width, so the renderer follows the pane.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.viewport.Width),
	)
	if err == nil {
		m.renderer = renderer
	}
	m.refreshViewport()
}

// Focus gives keyboard focus to the prompt input.
func (m *ChatModel) Focus() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

// Blur removes keyboard focus from the prompt input.
func (m *ChatModel) Blur() {
	m.input.Blur()
}

func (m *ChatModel) connectCmd() tea.Cmd {
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		names, err := client.Connect(context.Background())
		return connectResultMsg{models: names, err: err}
	})
}

func (m *ChatModel) generateCmd(seq, userIdx int, prompt string) tea.Cmd {
	client, model := m.client, m.model
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		reply, err := client.Generate(context.Background(), model, prompt)
		return generateResultMsg{seq: seq, userIdx: userIdx, reply: reply, err: err}
	})
}

// HandleConnectResult applies the outcome of a connection attempt.
func (m *ChatModel) HandleConnectResult(msg connectResultMsg) tea.Cmd {
	if msg.err != nil {
		return statusCmd(fmt.Sprintf("Chat endpoint unreachable: %v", msg.err))
	}

	m.modelNames = msg.models
	if m.model == "" && len(msg.models) > 0 {
		m.model = msg.models[0]
	}
	if len(msg.models) == 0 {
		return statusCmd("Connected, but the endpoint offers no models")
	}
	return statusCmd(fmt.Sprintf("Connected · %d models · using %s", len(msg.models), m.model))
}

// HandleGenerateResult applies the outcome of a generation request.
// Replies from an abandoned exchange are discarded.
func (m *ChatModel) HandleGenerateResult(msg generateResultMsg) tea.Cmd {
	if msg.seq != m.seq {
		return nil
	}
	m.sending = false

	if msg.err != nil {
		m.session.Resolve(msg.userIdx, chat.StatusFailed)
		m.refreshViewport()
		return statusCmd(fmt.Sprintf("Send failed: %v", msg.err))
	}

	m.session.Resolve(msg.userIdx, chat.StatusDelivered)
	m.session.AppendAssistant(msg.reply)
	m.refreshViewport()
	m.viewport.GotoBottom()

	if code, lang, ok := chat.ExtractCodeBlock(msg.reply); ok {
		m.pendingCode = code
		m.pendingLang = lang
		label := lang
		if label == "" {
			label = "code"
		}
		return statusCmd(fmt.Sprintf("Reply contains a %s block — ctrl+a applies it to the current file", label))
	}
	return nil
}

// Update handles input while the chat pane is focused.
func (m *ChatModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.sending && m.client.State() != chat.StateConnecting {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.send()
		case "ctrl+r":
			return m.connectCmd()
		case "ctrl+a":
			if code, ok := m.PendingCode(); ok {
				return func() tea.Msg { return applyCodeMsg{code: code} }
			}
			return statusCmd("No code block waiting to be applied")
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

// send dispatches the prompt in the input field. A send in flight blocks
// further sends; there is no queueing and no automatic retry.
func (m *ChatModel) send() tea.Cmd {
	prompt := strings.TrimSpace(m.input.Value())
	if prompt == "" || m.sending {
		return nil
	}
	if m.model == "" {
		return statusCmd("No model selected — is the endpoint reachable? (ctrl+r to retry)")
	}

	m.input.SetValue("")
	userIdx := m.session.AppendUser(prompt)
	m.sending = true
	m.seq++
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m.generateCmd(m.seq, userIdx, prompt)
}

// refreshViewport re-renders the message log.
func (m *ChatModel) refreshViewport() {
	if m.viewport.Width <= 0 {
		return
	}

	var b strings.Builder
	for i, msg := range m.session.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		switch msg.Role {
		case chat.RoleUser:
			label := userLabelStyle.Render("you")
			switch msg.Status {
			case chat.StatusPending:
				label += dimStyle.Render(" …")
			case chat.StatusFailed:
				label += failedStyle.Render(" ✗ failed")
			}
			b.WriteString(label)
			b.WriteString("\n")
			b.WriteString(wordwrap.String(msg.Content, m.viewport.Width))
			b.WriteString("\n")
		case chat.RoleAssistant:
			b.WriteString(assistantLabelStyle.Render(m.model))
			b.WriteString("\n")
			b.WriteString(m.renderMarkdown(msg.Content))
			b.WriteString("\n")
		}
	}
	m.viewport.SetContent(b.String())
}

func (m *ChatModel) renderMarkdown(content string) string {
	if m.renderer != nil {
		if out, err := m.renderer.Render(content); err == nil {
			return strings.TrimRight(out, "\n") + "\n"
		}
	}
	return wordwrap.String(content, m.viewport.Width)
}

// badge renders the connection state indicator for the pane title.
func (m *ChatModel) badge() string {
	state := m.client.State()
	label := "● " + state.String()
	switch state {
	case chat.StateConnected:
		return badgeConnectedStyle.Render(label)
	case chat.StateConnecting:
		return badgeConnectingStyle.Render(label)
	case chat.StateError:
		return badgeErrorStyle.Render(label)
	default:
		return badgeOffStyle.Render(label)
	}
}

// View renders the chat pane body.
func (m *ChatModel) View() string {
	var b strings.Builder

	b.WriteString(paneTitleStyle.Render("CHAT"))
	b.WriteString("  ")
	b.WriteString(m.badge())
	if m.model != "" {
		b.WriteString(dimStyle.Render("  " + m.model))
	}
	b.WriteString("\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.sending {
		b.WriteString(m.spin.View())
		b.WriteString(dimStyle.Render("waiting for reply..."))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	prompt := m.input.Value()
	hint := "enter send · ctrl+r reconnect · ctrl+a apply code"
	if prompt != "" {
		hint = utils.FormatTokenCount(utils.EstimateTokens(prompt)) + " · " + hint
	}
	b.WriteString(helpStyle.Render(hint))
	return b.String()
}
