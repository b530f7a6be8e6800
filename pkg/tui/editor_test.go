package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/webpen/webpen-cli/pkg/models"
	"github.com/webpen/webpen-cli/pkg/workspace"
)

func loadedEditor(t *testing.T) (*EditorModel, *models.FileNode) {
	t.Helper()
	tree := workspace.New()
	node, err := tree.Create("index.html", "", "<h1>hello</h1>")
	assert.NoError(t, err)

	e := NewEditor(models.DefaultSettings().Editor)
	e.Load(node)
	return e, node
}

func TestEditorLoadSeedsHistory(t *testing.T) {
	e, node := loadedEditor(t)

	assert.Equal(t, node.ID, e.FileID())
	assert.Equal(t, "<h1>hello</h1>", e.textarea.Value())
	assert.False(t, e.hist.CanUndo())
	assert.False(t, e.hist.CanRedo())
}

func TestEditorLoadIgnoresFolders(t *testing.T) {
	e, node := loadedEditor(t)

	folder := &models.FileNode{ID: "f", Name: "src", Kind: models.KindFolder}
	e.Load(folder)

	assert.Equal(t, node.ID, e.FileID())
}

func TestEditorReplaceEmitsContentChange(t *testing.T) {
	e, node := loadedEditor(t)

	cmd := e.Replace("<h1>applied</h1>")
	assert.NotNil(t, cmd)

	msg, ok := cmd().(contentChangedMsg)
	assert.True(t, ok)
	assert.Equal(t, node.ID, msg.id)
	assert.Equal(t, "<h1>applied</h1>", msg.content)
	assert.True(t, e.hist.CanUndo())
}

func TestEditorUndoRedoRestoresSnapshots(t *testing.T) {
	e, _ := loadedEditor(t)

	e.Replace("v2")
	e.Replace("v3")

	cmd := e.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.NotNil(t, cmd)
	assert.Equal(t, "v2", e.textarea.Value())

	e.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "<h1>hello</h1>", e.textarea.Value())

	// Past the first snapshot there is nothing left to undo.
	e.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "<h1>hello</h1>", e.textarea.Value())

	e.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "v2", e.textarea.Value())
	e.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "v3", e.textarea.Value())
}

func TestEditorUndoDoesNotPushNewEntry(t *testing.T) {
	e, _ := loadedEditor(t)
	e.Replace("v2")

	e.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.True(t, e.hist.CanRedo())

	// Restoring a snapshot must not have recorded a fresh entry, so redo
	// still reaches the newer content.
	e.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "v2", e.textarea.Value())
	assert.False(t, e.hist.CanRedo())
}

func TestEditorUnload(t *testing.T) {
	e, _ := loadedEditor(t)
	e.Replace("v2")

	e.Unload()

	assert.Empty(t, e.FileID())
	assert.Empty(t, e.textarea.Value())
	assert.False(t, e.hist.CanUndo())
}

func TestEditorIgnoresInputWithoutFile(t *testing.T) {
	e := NewEditor(models.DefaultSettings().Editor)

	cmd := e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.Empty(t, e.textarea.Value())
}
