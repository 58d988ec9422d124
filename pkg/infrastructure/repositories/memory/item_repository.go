package memory

import (
	"fmt"

	"github.com/vsinha/stockmgr/pkg/domain/entities"
	"github.com/vsinha/stockmgr/pkg/domain/repositories"
)

// ItemRepository provides in-memory item storage that remembers insertion order
type ItemRepository struct {
	items    []entities.ItemRecord
	itemsMap map[entities.ItemName]int
}

// NewItemRepository creates a new in-memory item repository
func NewItemRepository(expectedItems int) *ItemRepository {
	return &ItemRepository{
		items:    make([]entities.ItemRecord, 0, expectedItems),
		itemsMap: make(map[entities.ItemName]int, expectedItems),
	}
}

// Verify interface compliance
var _ repositories.ItemRepository = (*ItemRepository)(nil)

// LoadItems loads records into the repository. Later records overwrite
// earlier ones with the same name.
func (r *ItemRepository) LoadItems(records []entities.ItemRecord) {
	for _, record := range records {
		r.Add(record)
	}
}

// Add inserts a record, or replaces every field of an existing one in place
func (r *ItemRepository) Add(record entities.ItemRecord) {
	if index, exists := r.itemsMap[record.Name]; exists {
		r.items[index] = record
		return
	}
	r.itemsMap[record.Name] = len(r.items)
	r.items = append(r.items, record)
}

// Remove deletes an item and returns the record it held
func (r *ItemRepository) Remove(name entities.ItemName) (entities.ItemRecord, error) {
	index, exists := r.itemsMap[name]
	if !exists {
		return entities.ItemRecord{}, fmt.Errorf("%w: %s", entities.ErrNotFound, name)
	}

	removed := r.items[index]
	r.items = append(r.items[:index], r.items[index+1:]...)
	delete(r.itemsMap, name)

	// Shift the index of every item stored after the removed one
	for i := index; i < len(r.items); i++ {
		r.itemsMap[r.items[i].Name] = i
	}

	return removed, nil
}

// Get returns the record stored under name
func (r *ItemRepository) Get(name entities.ItemName) (entities.ItemRecord, bool) {
	index, exists := r.itemsMap[name]
	if !exists {
		return entities.ItemRecord{}, false
	}
	return r.items[index], true
}

// All returns a copy of every record in insertion order
func (r *ItemRepository) All() []entities.ItemRecord {
	items := make([]entities.ItemRecord, len(r.items))
	copy(items, r.items)
	return items
}

// Len returns the number of items held
func (r *ItemRepository) Len() int {
	return len(r.items)
}
