package services

import (
	"github.com/vsinha/stockmgr/pkg/domain/entities"
	"github.com/vsinha/stockmgr/pkg/domain/repositories"
)

// UndoLedger is a LIFO stack of inverse mutations. Entries are never pruned,
// so repeated undo walks back through every recorded add and remove.
type UndoLedger struct {
	entries []entities.UndoEntry
}

// NewUndoLedger creates an empty ledger
func NewUndoLedger() *UndoLedger {
	return &UndoLedger{}
}

// PushAdd records that name was just inserted or overwritten
func (l *UndoLedger) PushAdd(name entities.ItemName) {
	l.entries = append(l.entries, entities.NewAddedEntry(name))
}

// PushRemove records that snapshot was just deleted. The record is held by
// value so later changes to the live store do not affect it.
func (l *UndoLedger) PushRemove(snapshot entities.ItemRecord) {
	l.entries = append(l.entries, entities.NewRemovedEntry(snapshot))
}

// Len returns the number of entries waiting to be undone
func (l *UndoLedger) Len() int {
	return len(l.entries)
}

// Peek returns the most recent entry without consuming it
func (l *UndoLedger) Peek() (entities.UndoEntry, bool) {
	if len(l.entries) == 0 {
		return entities.UndoEntry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// PopAndRevert consumes the most recent entry and applies its inverse to repo.
// Reverting an add deletes the name if it is still present. Reverting a
// remove re-inserts the snapshot, replacing whatever holds that name now.
// Reverting never records a new entry.
func (l *UndoLedger) PopAndRevert(repo repositories.ItemRepository) (entities.UndoEntry, error) {
	entry, ok := l.Peek()
	if !ok {
		return entities.UndoEntry{}, entities.ErrNothingToUndo
	}
	l.entries = l.entries[:len(l.entries)-1]

	switch entry.Kind {
	case entities.UndoAdded:
		if _, exists := repo.Get(entry.Name); exists {
			if _, err := repo.Remove(entry.Name); err != nil {
				return entry, err
			}
		}
	case entities.UndoRemoved:
		repo.Add(entry.Snapshot)
	}

	return entry, nil
}
