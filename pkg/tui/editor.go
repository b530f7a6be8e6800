package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/webpen/webpen-cli/pkg/history"
	"github.com/webpen/webpen-cli/pkg/models"
)

// EditorModel is the editing pane: a textarea over the selected file with
// a bounded undo/redo history of content snapshots.
type EditorModel struct {
	textarea textarea.Model
	hist     *history.History

	fileID      string
	fileName    string
	lastContent string

	historyLimit int
	width        int
	height       int
}

// NewEditor builds an empty editor pane.
func NewEditor(settings models.EditorSettings) *EditorModel {
	ta := textarea.New()
	ta.ShowLineNumbers = settings.ShowLineNumbers
	ta.Prompt = "  "
	ta.CharLimit = 0

	limit := settings.HistoryLimit
	if limit <= 0 {
		limit = history.DefaultLimit
	}

	return &EditorModel{
		textarea:     ta,
		hist:         history.New(limit),
		historyLimit: limit,
	}
}

// Load replaces the buffer with the given file and starts a fresh history
// seeded with the file's current content.
func (m *EditorModel) Load(node *models.FileNode) {
	if node == nil || node.IsFolder() {
		return
	}
	m.fileID = node.ID
	m.fileName = node.Name
	m.lastContent = node.Content
	m.textarea.SetValue(node.Content)
	m.hist = history.New(m.historyLimit)
	m.hist.Push(node.Content, m.cursorOffset())
}

// Replace swaps the buffer content in place (applied code block, undo),
// recording the change as a single history entry.
func (m *EditorModel) Replace(content string) tea.Cmd {
	m.textarea.SetValue(content)
	m.lastContent = content
	m.hist.Push(content, m.cursorOffset())
	return m.changedCmd()
}

// Unload clears the buffer, for when the loaded file is deleted.
func (m *EditorModel) Unload() {
	m.fileID = ""
	m.fileName = ""
	m.lastContent = ""
	m.textarea.SetValue("")
	m.hist = history.New(m.historyLimit)
}

// FileID returns the id of the loaded file, or "".
func (m *EditorModel) FileID() string {
	return m.fileID
}

// SetSize updates the pane dimensions.
func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.textarea.SetWidth(width - 2)
	if h := height - 3; h > 0 {
		m.textarea.SetHeight(h)
	}
}

// Focus gives keyboard focus to the textarea.
func (m *EditorModel) Focus() tea.Cmd {
	return m.textarea.Focus()
}

// Blur removes keyboard focus from the textarea.
func (m *EditorModel) Blur() {
	m.textarea.Blur()
}

// cursorOffset converts the textarea's row/column cursor into an offset
// into the buffer content.
func (m *EditorModel) cursorOffset() int {
	lines := strings.Split(m.textarea.Value(), "\n")
	row := m.textarea.Line()
	if row >= len(lines) {
		row = len(lines) - 1
	}

	offset := 0
	for i := 0; i < row; i++ {
		offset += len(lines[i]) + 1
	}
	return offset + m.textarea.LineInfo().ColumnOffset
}

// Update handles input while the editor pane is focused.
func (m *EditorModel) Update(msg tea.Msg) tea.Cmd {
	if m.fileID == "" {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+z":
			return m.undo()
		case "ctrl+y":
			return m.redo()
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)

	if content := m.textarea.Value(); content != m.lastContent {
		m.lastContent = content
		m.hist.Push(content, m.cursorOffset())
		return tea.Batch(cmd, m.changedCmd())
	}
	return cmd
}

func (m *EditorModel) undo() tea.Cmd {
	entry, ok := m.hist.Undo()
	if !ok {
		return statusCmd("Nothing to undo")
	}
	m.restore(entry)
	return tea.Batch(statusCmd("Undone"), m.changedCmd())
}

func (m *EditorModel) redo() tea.Cmd {
	entry, ok := m.hist.Redo()
	if !ok {
		return statusCmd("Nothing to redo")
	}
	m.restore(entry)
	return tea.Batch(statusCmd("Redone"), m.changedCmd())
}

// restore puts a snapshot back into the buffer without pushing a new
// history entry.
func (m *EditorModel) restore(entry history.Entry) {
	m.textarea.SetValue(entry.Content)
	m.lastContent = entry.Content
}

func (m *EditorModel) changedCmd() tea.Cmd {
	id, content := m.fileID, m.lastContent
	return func() tea.Msg { return contentChangedMsg{id: id, content: content} }
}

// View renders the editor pane body.
func (m *EditorModel) View() string {
	var b strings.Builder

	title := "EDITOR"
	if m.fileName != "" {
		title = fmt.Sprintf("EDITOR · %s", m.fileName)
	}
	b.WriteString(paneTitleStyle.Render(title))

	var marks []string
	if m.hist.CanUndo() {
		marks = append(marks, "undo")
	}
	if m.hist.CanRedo() {
		marks = append(marks, "redo")
	}
	if len(marks) > 0 {
		b.WriteString(dimStyle.Render("  (" + strings.Join(marks, "/") + ")"))
	}
	b.WriteString("\n")

	if m.fileID == "" {
		b.WriteString(dimStyle.Render("  select a file to edit"))
		return b.String()
	}

	b.WriteString(m.textarea.View())
	return b.String()
}
