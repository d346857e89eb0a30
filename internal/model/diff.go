package model

// ChangeType represents the kind of window-set change detected.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeRenamed ChangeType = "renamed"
)

// WindowChange is one difference between two enumerations.
type WindowChange struct {
	Type   ChangeType `yaml:"type"            json:"type"`
	Handle Handle     `yaml:"hwnd"            json:"hwnd"`
	Title  string     `yaml:"title"           json:"title"`
	Was    string     `yaml:"was,omitempty"   json:"was,omitempty"`
}

// DiffWindows compares two enumerations. Windows are matched by handle, so a
// recycled handle with a new title shows up as a rename.
func DiffWindows(prev, curr []MatchedWindow) []WindowChange {
	prevMap := make(map[Handle]MatchedWindow, len(prev))
	for _, w := range prev {
		prevMap[w.Handle] = w
	}
	currMap := make(map[Handle]bool, len(curr))

	var changes []WindowChange
	for _, w := range curr {
		currMap[w.Handle] = true
		old, ok := prevMap[w.Handle]
		switch {
		case !ok:
			changes = append(changes, WindowChange{Type: ChangeAdded, Handle: w.Handle, Title: w.Title})
		case old.Title != w.Title:
			changes = append(changes, WindowChange{Type: ChangeRenamed, Handle: w.Handle, Title: w.Title, Was: old.Title})
		}
	}
	for _, w := range prev {
		if !currMap[w.Handle] {
			changes = append(changes, WindowChange{Type: ChangeRemoved, Handle: w.Handle, Title: w.Title})
		}
	}
	return changes
}
