package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/webpen/webpen-cli/pkg/files"
	"github.com/webpen/webpen-cli/pkg/models"
	"github.com/webpen/webpen-cli/pkg/preview"
	"github.com/webpen/webpen-cli/pkg/workspace"
)

// PreviewModel is the preview pane: the assembled document source in a
// scrollable viewport, exportable to disk for a real browser.
type PreviewModel struct {
	viewport   viewport.Model
	doc        string
	exportPath string
	settings   models.PreviewSettings

	width  int
	height int
}

// NewPreview builds an empty preview pane.
func NewPreview(settings models.PreviewSettings) *PreviewModel {
	return &PreviewModel{
		viewport:   viewport.New(0, 0),
		exportPath: settings.ExportPath,
		settings:   settings,
	}
}

// Document returns the last assembled document.
func (m *PreviewModel) Document() string {
	return m.doc
}

// Refresh reassembles the document from the workspace.
func (m *PreviewModel) Refresh(tree *workspace.Tree) {
	m.doc = preview.AssembleWorkspace(tree)
	m.setViewportContent()
}

// SetSize updates the pane dimensions.
func (m *PreviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 2
	if h := height - 3; h > 0 {
		m.viewport.Height = h
	}
	m.setViewportContent()
}

func (m *PreviewModel) setViewportContent() {
	if m.viewport.Width <= 0 {
		return
	}
	m.viewport.SetContent(wordwrap.String(m.doc, m.viewport.Width))
}

// Update handles input while the preview pane is focused.
func (m *PreviewModel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "e":
			if err := files.WritePreviewFile(m.doc, m.exportPath); err != nil {
				return statusCmd(fmt.Sprintf("Export failed: %v", err))
			}
			path := m.exportPath
			if path == "" {
				path = files.DefaultPreviewFile
			}
			return statusCmd(fmt.Sprintf("Preview written to %s — open it in a browser", path))
		case "c":
			if err := clipboard.WriteAll(m.doc); err != nil {
				return statusCmd(fmt.Sprintf("Copy failed: %v", err))
			}
			return statusCmd("Preview document copied to clipboard")
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// View renders the preview pane body.
func (m *PreviewModel) View() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("PREVIEW"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d bytes", len(m.doc))))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("e export · c copy"))
	return b.String()
}
