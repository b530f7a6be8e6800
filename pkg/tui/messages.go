package tui

// Messages for communication between panes

// StatusMsg shows a transient message in the status bar.
type StatusMsg string

type clearStatusMsg struct{}

// fileSelectedMsg is emitted by the explorer when a file gains selection.
type fileSelectedMsg struct {
	id string
}

// contentChangedMsg is emitted by the editor after the buffer diverges
// from the tree's copy of the file.
type contentChangedMsg struct {
	id      string
	content string
}

// deleteRequestMsg asks the app to confirm and perform a node deletion.
type deleteRequestMsg struct {
	id   string
	name string
}

// applyCodeMsg asks the app to replace the selected file's content with a
// code block extracted from an assistant reply.
type applyCodeMsg struct {
	code string
}

// connectResultMsg carries the outcome of an endpoint connection attempt.
type connectResultMsg struct {
	models []string
	err    error
}

// generateResultMsg carries the outcome of a generation request. seq
// guards against a late-arriving reply being applied to a newer exchange.
type generateResultMsg struct {
	seq     int
	userIdx int
	reply   string
	err     error
}
