package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/webpen/webpen-cli/pkg/files"
	"github.com/webpen/webpen-cli/pkg/models"
	"github.com/webpen/webpen-cli/pkg/workspace"
)

// entryMode tracks which inline input the explorer is collecting.
type entryMode int

const (
	entryNone entryMode = iota
	entryNewFile
	entryNewFolder
	entryRename
	entryImport
)

type treeRow struct {
	id    string
	name  string
	kind  models.NodeKind
	depth int
}

// ExplorerModel is the workspace pane: a flattened view of the file tree
// with filtering and inline create/rename/import inputs.
type ExplorerModel struct {
	tree       *workspace.Tree
	rows       []treeRow
	cursor     int
	selectedID string

	filter    textinput.Model
	filtering bool

	input textinput.Model
	mode  entryMode

	width  int
	height int
}

// NewExplorer builds the explorer over the given tree and selects the
// first file in display order.
func NewExplorer(tree *workspace.Tree) *ExplorerModel {
	filter := textinput.New()
	filter.Placeholder = "filter files..."
	filter.CharLimit = 64

	input := textinput.New()
	input.CharLimit = workspace.MaxNameLength

	e := &ExplorerModel{
		tree:   tree,
		filter: filter,
		input:  input,
	}
	e.refresh()
	for _, r := range e.rows {
		if r.kind == models.KindFile {
			e.selectRow(r.id)
			break
		}
	}
	return e
}

// SelectedID returns the id of the selected node, or "".
func (e *ExplorerModel) SelectedID() string {
	return e.selectedID
}

// Select moves the selection to the given node id.
func (e *ExplorerModel) Select(id string) {
	e.selectRow(id)
}

// SetSize updates the pane dimensions.
func (e *ExplorerModel) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.filter.Width = width - 4
	e.input.Width = width - 4
}

// refresh rebuilds the visible rows from the (possibly filtered) tree.
func (e *ExplorerModel) refresh() {
	source := e.tree
	if query := e.filter.Value(); query != "" {
		source = e.tree.Filter(workspace.NameContains(query))
	}

	e.rows = e.rows[:0]
	source.Walk(func(n *models.FileNode, depth int) bool {
		e.rows = append(e.rows, treeRow{id: n.ID, name: n.Name, kind: n.Kind, depth: depth})
		return true
	})

	if e.cursor >= len(e.rows) {
		e.cursor = len(e.rows) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

func (e *ExplorerModel) selectRow(id string) {
	e.selectedID = id
	for i, r := range e.rows {
		if r.id == id {
			e.cursor = i
			return
		}
	}
}

func (e *ExplorerModel) cursorRow() (treeRow, bool) {
	if e.cursor < 0 || e.cursor >= len(e.rows) {
		return treeRow{}, false
	}
	return e.rows[e.cursor], true
}

// Update handles input while the explorer pane is focused.
func (e *ExplorerModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if e.mode != entryNone {
		return e.updateEntry(keyMsg)
	}
	if e.filtering {
		return e.updateFilter(keyMsg)
	}

	switch keyMsg.String() {
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(e.rows)-1 {
			e.cursor++
		}
	case "enter":
		if row, ok := e.cursorRow(); ok && row.kind == models.KindFile {
			e.selectedID = row.id
			return func() tea.Msg { return fileSelectedMsg{id: row.id} }
		}
	case "/":
		e.filtering = true
		e.filter.Focus()
		return textinput.Blink
	case "n":
		return e.startEntry(entryNewFile, "new file name...")
	case "N":
		return e.startEntry(entryNewFolder, "new folder name...")
	case "r":
		row, ok := e.cursorRow()
		if !ok {
			return nil
		}
		cmd := e.startEntry(entryRename, "rename to...")
		e.input.SetValue(row.name)
		return cmd
	case "i":
		return e.startEntry(entryImport, "path of file to import...")
	case "x":
		return e.exportSelected()
	case "d":
		if row, ok := e.cursorRow(); ok {
			return func() tea.Msg { return deleteRequestMsg{id: row.id, name: row.name} }
		}
	}
	return nil
}

func (e *ExplorerModel) startEntry(mode entryMode, placeholder string) tea.Cmd {
	e.mode = mode
	e.input.Placeholder = placeholder
	e.input.SetValue("")
	e.input.Focus()
	return textinput.Blink
}

func (e *ExplorerModel) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		e.filtering = false
		e.filter.Blur()
		e.filter.SetValue("")
		e.refresh()
		return nil
	case "enter":
		e.filtering = false
		e.filter.Blur()
		return nil
	}

	var cmd tea.Cmd
	e.filter, cmd = e.filter.Update(msg)
	e.refresh()
	return cmd
}

func (e *ExplorerModel) updateEntry(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		e.mode = entryNone
		e.input.Blur()
		return nil
	case "enter":
		mode := e.mode
		value := strings.TrimSpace(e.input.Value())
		e.mode = entryNone
		e.input.Blur()
		return e.commitEntry(mode, value)
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

// commitEntry applies a finished inline input. Validation failures leave
// the tree untouched and surface as status messages.
func (e *ExplorerModel) commitEntry(mode entryMode, value string) tea.Cmd {
	if value == "" {
		return nil
	}

	parentID := e.containerFor(e.selectedID)

	switch mode {
	case entryNewFile:
		node, err := e.tree.Create(value, parentID, "")
		if err != nil {
			return statusCmd(err.Error())
		}
		e.refresh()
		e.selectRow(node.ID)
		return tea.Batch(
			statusCmd(fmt.Sprintf("Created %s", node.Name)),
			func() tea.Msg { return fileSelectedMsg{id: node.ID} },
		)

	case entryNewFolder:
		node, err := e.tree.CreateFolder(value, parentID)
		if err != nil {
			return statusCmd(err.Error())
		}
		e.refresh()
		e.selectRow(node.ID)
		return statusCmd(fmt.Sprintf("Created %s/", node.Name))

	case entryRename:
		row, ok := e.cursorRow()
		if !ok {
			return nil
		}
		if err := e.tree.Rename(row.id, value); err != nil {
			return statusCmd(err.Error())
		}
		e.refresh()
		return statusCmd(fmt.Sprintf("Renamed to %s", value))

	case entryImport:
		return e.importFrom(value, parentID)
	}
	return nil
}

// containerFor picks the folder new nodes land in: the selected folder, or
// the selected file's parent, or the root.
func (e *ExplorerModel) containerFor(id string) string {
	if id == "" {
		return ""
	}
	node := e.tree.Find(id)
	if node == nil {
		return ""
	}
	if node.IsFolder() {
		return node.ID
	}
	if parent, ok := e.tree.FindParent(id); ok && parent != nil {
		return parent.ID
	}
	return ""
}

func (e *ExplorerModel) importFrom(path, parentID string) tea.Cmd {
	raw, err := os.ReadFile(path)
	if err != nil {
		return statusCmd(fmt.Sprintf("Import failed: %v", err))
	}

	node, err := e.tree.ImportFile(path, raw, parentID)
	if err != nil {
		return statusCmd(fmt.Sprintf("Import failed: %v", err))
	}

	e.refresh()
	e.selectRow(node.ID)
	return tea.Batch(
		statusCmd(fmt.Sprintf("Imported %s (%d bytes)", node.Name, node.Size)),
		func() tea.Msg { return fileSelectedMsg{id: node.ID} },
	)
}

func (e *ExplorerModel) exportSelected() tea.Cmd {
	row, ok := e.cursorRow()
	if !ok {
		return nil
	}
	node := e.tree.Find(row.id)
	if node == nil || node.IsFolder() {
		return statusCmd("Select a file to export")
	}
	if err := files.ExportNode(node, ""); err != nil {
		return statusCmd(fmt.Sprintf("Export failed: %v", err))
	}
	return statusCmd(fmt.Sprintf("Exported %s", node.Name))
}

// Refresh re-derives the rows after an external tree change.
func (e *ExplorerModel) Refresh() {
	e.refresh()
}

// View renders the explorer pane body.
func (e *ExplorerModel) View() string {
	var b strings.Builder

	b.WriteString(paneTitleStyle.Render("FILES"))
	b.WriteString("\n")

	if e.filtering || e.filter.Value() != "" {
		b.WriteString(e.filter.View())
		b.WriteString("\n")
	}

	if len(e.rows) == 0 {
		b.WriteString(dimStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	for i, row := range e.rows {
		indent := strings.Repeat("  ", row.depth)
		icon := "•"
		label := row.name
		if row.kind == models.KindFolder {
			icon = "▸"
			label = folderStyle.Render(row.name)
		}
		line := fmt.Sprintf("%s%s %s", indent, icon, label)

		switch {
		case i == e.cursor:
			line = selectedRowStyle.Render(line)
		case row.id == e.selectedID:
			line = folderStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if e.mode != entryNone {
		b.WriteString("\n")
		b.WriteString(e.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("n new · N folder · r rename · d delete\n/ filter · i import · x export"))
	return b.String()
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(msg) }
}
