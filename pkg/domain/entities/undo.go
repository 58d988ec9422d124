package entities

// UndoKind tags the mutation an UndoEntry reverts
type UndoKind int

const (
	UndoAdded UndoKind = iota
	UndoRemoved
)

// String method for UndoKind enum
func (k UndoKind) String() string {
	switch k {
	case UndoAdded:
		return "add"
	case UndoRemoved:
		return "remove"
	default:
		return "unknown"
	}
}

// UndoEntry describes the inverse of one mutation.
// For UndoAdded only Name is set; reverting deletes the name.
// For UndoRemoved, Snapshot holds a copy of the deleted record.
type UndoEntry struct {
	Kind     UndoKind
	Name     ItemName
	Snapshot ItemRecord
}

// NewAddedEntry records that name was just inserted
func NewAddedEntry(name ItemName) UndoEntry {
	return UndoEntry{Kind: UndoAdded, Name: name}
}

// NewRemovedEntry records that snapshot was just deleted
func NewRemovedEntry(snapshot ItemRecord) UndoEntry {
	return UndoEntry{Kind: UndoRemoved, Name: snapshot.Name, Snapshot: snapshot}
}
