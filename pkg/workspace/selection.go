package workspace

// NextSelection returns the id of the node that should become selected
// after the node with the given id is deleted: the first remaining sibling
// in the same container, or "" when none remains. Call it before Delete,
// while the doomed node is still in place.
func (t *Tree) NextSelection(id string) string {
	parent, ok := t.FindParent(id)
	if !ok {
		return ""
	}

	siblings := t.Roots
	if parent != nil {
		siblings = parent.Children
	}
	for _, s := range siblings {
		if s.ID != id {
			return s.ID
		}
	}
	return ""
}
