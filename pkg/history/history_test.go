package history

import (
	"strconv"
	"testing"
)

func TestPushUndoRedo(t *testing.T) {
	h := New(50)
	h.Push("A", 1)
	h.Push("B", 2)
	h.Push("C", 3)

	if !h.CanUndo() {
		t.Fatal("expected CanUndo after three pushes")
	}

	entry, ok := h.Undo()
	if !ok || entry.Content != "B" {
		t.Fatalf("first undo = %q, %v; want B, true", entry.Content, ok)
	}

	entry, ok = h.Undo()
	if !ok || entry.Content != "A" {
		t.Fatalf("second undo = %q, %v; want A, true", entry.Content, ok)
	}

	if _, ok := h.Undo(); ok {
		t.Fatal("undo at head should report false")
	}

	entry, ok = h.Redo()
	if !ok || entry.Content != "B" {
		t.Fatalf("redo = %q, %v; want B, true", entry.Content, ok)
	}
}

func TestPushAfterUndoDiscardsRedoTail(t *testing.T) {
	h := New(50)
	h.Push("A", 0)
	h.Push("B", 0)
	h.Push("C", 0)

	h.Undo()
	h.Undo() // now at A

	h.Push("D", 0)

	if h.CanRedo() {
		t.Fatal("push after undo must clear the redo stack")
	}
	if _, ok := h.Redo(); ok {
		t.Fatal("redo after divergent push should report false")
	}
	if h.Len() != 2 {
		t.Fatalf("Len() = %d; want 2 (A, D)", h.Len())
	}

	entry, ok := h.Undo()
	if !ok || entry.Content != "A" {
		t.Fatalf("undo after divergent push = %q, %v; want A, true", entry.Content, ok)
	}
}

func TestBoundDropsOldestEntries(t *testing.T) {
	h := New(50)
	for i := 0; i < 60; i++ {
		h.Push("entry-"+strconv.Itoa(i), i)
	}

	if h.Len() != 50 {
		t.Fatalf("Len() = %d; want 50", h.Len())
	}

	current, ok := h.Current()
	if !ok || current.CursorPos != 59 {
		t.Fatalf("cursor should sit at the newest entry, got %+v, %v", current, ok)
	}

	// Walk all the way back: the oldest surviving entry is the 11th push.
	var last Entry
	for {
		entry, ok := h.Undo()
		if !ok {
			break
		}
		last = entry
	}
	if last.CursorPos != 10 {
		t.Fatalf("oldest surviving entry cursor = %d; want 10", last.CursorPos)
	}
}

func TestDuplicatePushIsIgnored(t *testing.T) {
	h := New(10)
	h.Push("same", 0)
	h.Push("same", 5)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", h.Len())
	}
	current, _ := h.Current()
	if current.CursorPos != 5 {
		t.Fatalf("duplicate push should refresh cursor position, got %d", current.CursorPos)
	}
}

func TestEmptyHistory(t *testing.T) {
	h := New(0) // falls back to DefaultLimit

	if h.CanUndo() || h.CanRedo() {
		t.Fatal("empty history should allow neither undo nor redo")
	}
	if _, ok := h.Current(); ok {
		t.Fatal("empty history has no current entry")
	}
	if _, ok := h.Undo(); ok {
		t.Fatal("undo on empty history should report false")
	}
	if _, ok := h.Redo(); ok {
		t.Fatal("redo on empty history should report false")
	}
}
