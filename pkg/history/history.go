// Package history implements a bounded linear undo/redo log of editor
// content snapshots. Entries before the cursor form the undo stack and
// entries after it form the redo stack; a divergent push clears the redo
// stack, and the oldest entries are dropped once the bound is reached.
package history

// DefaultLimit is the bound used when New is given a non-positive limit.
const DefaultLimit = 50

// Entry is one content snapshot.
type Entry struct {
	Content   string
	CursorPos int
}

// History is a bounded undo/redo buffer. The zero value is not usable;
// construct with New.
type History struct {
	entries []Entry
	cursor  int
	limit   int
}

// New returns an empty history bounded at limit entries.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Push records a new snapshot. If content matches the entry at the cursor
// only the stored cursor position is refreshed. Otherwise any redo entries
// past the cursor are discarded, the snapshot is appended, and the oldest
// entries are dropped if the buffer would exceed its bound.
func (h *History) Push(content string, cursor int) {
	if len(h.entries) > 0 && h.entries[h.cursor].Content == content {
		h.entries[h.cursor].CursorPos = cursor
		return
	}

	if len(h.entries) > 0 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, Entry{Content: content, CursorPos: cursor})

	if overflow := len(h.entries) - h.limit; overflow > 0 {
		h.entries = append(h.entries[:0:0], h.entries[overflow:]...)
	}
	h.cursor = len(h.entries) - 1
}

// Undo steps the cursor back and returns the entry now pointed to.
// It reports false, leaving the buffer untouched, when at the head.
func (h *History) Undo() (Entry, bool) {
	if !h.CanUndo() {
		return Entry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo steps the cursor forward and returns the entry now pointed to.
// It reports false, leaving the buffer untouched, when at the tail.
func (h *History) Redo() (Entry, bool) {
	if !h.CanRedo() {
		return Entry{}, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// CanUndo reports whether an earlier snapshot exists.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether a later snapshot exists.
func (h *History) CanRedo() bool {
	return len(h.entries) > 0 && h.cursor < len(h.entries)-1
}

// Current returns the entry at the cursor, if any.
func (h *History) Current() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[h.cursor], true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.entries)
}
