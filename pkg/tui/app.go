package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/webpen/webpen-cli/pkg/models"
	"github.com/webpen/webpen-cli/pkg/workspace"
)

type pane int

const (
	paneExplorer pane = iota
	paneEditor
	panePreview
	paneChat
	paneCount
)

const statusClearAfter = 4 * time.Second

// App is the root TUI model: four panes over one shared workspace tree.
type App struct {
	settings *models.Settings
	tree     *workspace.Tree

	explorer *ExplorerModel
	editor   *EditorModel
	preview  *PreviewModel
	chat     *ChatModel
	confirm  *ConfirmationModel

	active    pane
	statusMsg string
	width     int
	height    int
}

// NewApp seeds the session workspace and wires up the panes.
func NewApp(settings *models.Settings) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	tree := workspace.Seed()

	a := &App{
		settings: settings,
		tree:     tree,
		explorer: NewExplorer(tree),
		editor:   NewEditor(settings.Editor),
		preview:  NewPreview(settings.Preview),
		chat:     NewChat(settings.Chat),
		confirm:  NewConfirmation(),
		active:   paneExplorer,
	}

	if id := a.explorer.SelectedID(); id != "" {
		a.editor.Load(tree.Find(id))
	}
	a.preview.Refresh(tree)

	return a
}

func (a *App) Init() tea.Cmd {
	return a.chat.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		a.statusMsg = ""
		return a, nil

	case connectResultMsg:
		return a, a.chat.HandleConnectResult(msg)

	case generateResultMsg:
		return a, a.chat.HandleGenerateResult(msg)

	case fileSelectedMsg:
		a.editor.Load(a.tree.Find(msg.id))
		return a, nil

	case contentChangedMsg:
		return a, a.applyContentChange(msg)

	case deleteRequestMsg:
		a.requestDelete(msg)
		return a, nil

	case applyCodeMsg:
		return a, a.applyCode(msg.code)

	case spinner.TickMsg:
		return a, a.chat.Update(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Remaining messages (cursor blinks and the like) go to the panes
	// that hold input components.
	return a, tea.Batch(
		a.editor.Update(msg),
		a.chat.Update(msg),
	)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.confirm.Active() {
		return a, a.confirm.Update(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "tab":
		return a, a.setActive((a.active + 1) % paneCount)
	case "shift+tab":
		return a, a.setActive((a.active + paneCount - 1) % paneCount)
	}

	switch a.active {
	case paneExplorer:
		return a, a.explorer.Update(msg)
	case paneEditor:
		return a, a.editor.Update(msg)
	case panePreview:
		return a, a.preview.Update(msg)
	case paneChat:
		return a, a.chat.Update(msg)
	}
	return a, nil
}

func (a *App) setActive(p pane) tea.Cmd {
	a.active = p
	a.editor.Blur()
	a.chat.Blur()

	switch p {
	case paneEditor:
		return a.editor.Focus()
	case paneChat:
		return a.chat.Focus()
	}
	return nil
}

// applyContentChange propagates an editor change into the tree and, when
// auto refresh is on, into the preview.
func (a *App) applyContentChange(msg contentChangedMsg) tea.Cmd {
	err := a.tree.Update(msg.id, func(n *models.FileNode) {
		n.Content = msg.content
	})
	if err != nil {
		return statusCmd(fmt.Sprintf("Edit lost: %v", err))
	}

	if a.settings.Preview.AutoRefresh {
		a.preview.Refresh(a.tree)
	}
	return nil
}

// requestDelete confirms and performs a node deletion, demoting the
// selection to the first remaining sibling.
func (a *App) requestDelete(msg deleteRequestMsg) {
	node := a.tree.Find(msg.id)
	if node == nil {
		return
	}

	label := msg.name
	if node.IsFolder() {
		label += "/ and everything in it"
	}

	a.confirm.Show(ConfirmationConfig{
		Message:     fmt.Sprintf("Delete %s?", label),
		Destructive: true,
	}, func() tea.Cmd {
		fallback := a.tree.NextSelection(msg.id)
		if !a.tree.Delete(msg.id) {
			return statusCmd("Already gone")
		}

		a.explorer.Refresh()
		a.explorer.Select(fallback)

		if a.editor.FileID() == msg.id || a.tree.Find(a.editor.FileID()) == nil {
			if next := a.tree.Find(fallback); next != nil && !next.IsFolder() {
				a.editor.Load(next)
			} else {
				a.editor.Unload()
			}
		}

		a.preview.Refresh(a.tree)
		return statusCmd(fmt.Sprintf("Deleted %s", msg.name))
	}, nil)
}

// applyCode replaces the selected file's content with an extracted
// assistant code block, feeding the normal edit path.
func (a *App) applyCode(code string) tea.Cmd {
	id := a.editor.FileID()
	if id == "" {
		return statusCmd("No file selected to apply the code block to")
	}
	node := a.tree.Find(id)
	if node == nil {
		return statusCmd("Selected file no longer exists")
	}

	a.chat.ClearPendingCode()
	return tea.Batch(
		a.editor.Replace(code),
		statusCmd(fmt.Sprintf("Applied code block to %s", node.Name)),
	)
}

// layout distributes the window between the panes: explorer column,
// editor/preview column, chat column, one status line at the bottom.
func (a *App) layout() {
	if a.width == 0 || a.height == 0 {
		return
	}

	paneHeight := a.height - 3
	if paneHeight < 4 {
		paneHeight = 4
	}

	explorerWidth := a.width / 5
	if explorerWidth < 24 {
		explorerWidth = 24
	}
	chatWidth := a.width * 3 / 10
	if chatWidth < 30 {
		chatWidth = 30
	}
	middleWidth := a.width - explorerWidth - chatWidth
	if middleWidth < 20 {
		middleWidth = 20
	}

	editorHeight := paneHeight * 3 / 5
	previewHeight := paneHeight - editorHeight

	a.explorer.SetSize(explorerWidth-2, paneHeight-2)
	a.editor.SetSize(middleWidth-2, editorHeight-2)
	a.preview.SetSize(middleWidth-2, previewHeight-2)
	a.chat.SetSize(chatWidth-2, paneHeight-2)
}

func (a *App) pane(p pane, content string, width, height int) string {
	style := paneStyle
	if a.active == p && !a.confirm.Active() {
		style = activePaneStyle
	}
	return style.Width(width - 2).Height(height - 2).Render(content)
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	paneHeight := a.height - 3
	if paneHeight < 4 {
		paneHeight = 4
	}
	explorerWidth := a.width / 5
	if explorerWidth < 24 {
		explorerWidth = 24
	}
	chatWidth := a.width * 3 / 10
	if chatWidth < 30 {
		chatWidth = 30
	}
	middleWidth := a.width - explorerWidth - chatWidth
	if middleWidth < 20 {
		middleWidth = 20
	}
	editorHeight := paneHeight * 3 / 5
	previewHeight := paneHeight - editorHeight

	left := a.pane(paneExplorer, a.explorer.View(), explorerWidth, paneHeight)
	middle := lipgloss.JoinVertical(lipgloss.Left,
		a.pane(paneEditor, a.editor.View(), middleWidth, editorHeight),
		a.pane(panePreview, a.preview.View(), middleWidth, previewHeight),
	)
	right := a.pane(paneChat, a.chat.View(), chatWidth, paneHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, middle, right)

	statusLine := a.statusMsg
	if a.confirm.Active() {
		statusLine = a.confirm.View()
	}
	if statusLine == "" {
		statusLine = helpStyle.Render("tab next pane · ctrl+c quit")
		return lipgloss.JoinVertical(lipgloss.Left, body, statusLine)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, statusBarStyle.Render(statusLine))
}
