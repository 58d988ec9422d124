package testing

import (
	"github.com/vsinha/stockmgr/pkg/domain/entities"
	"github.com/vsinha/stockmgr/pkg/domain/repositories"
	"github.com/vsinha/stockmgr/pkg/infrastructure/repositories/memory"
)

// PantryRecords returns a small kitchen inventory covering every report:
// low stock, overdue and malformed expiry dates, shared categories and
// tied popularity scores.
func PantryRecords() []entities.ItemRecord {
	return []entities.ItemRecord{
		{Name: "Apples", Quantity: 12, Category: "Produce", Expiry: "2024-01-05", Popularity: 7},
		{Name: "Milk", Quantity: 2, Category: "Dairy", Expiry: "2024-01-01", Popularity: 9},
		{Name: "Flour", Quantity: 900, Category: "Baking", Expiry: "", Popularity: 3},
		{Name: "Yogurt", Quantity: 5, Category: "Dairy", Expiry: "2023-12-30", Popularity: 7},
		{Name: "Bread", Quantity: 1, Category: "Baking", Expiry: "not-a-date", Popularity: 4},
	}
}

// BuildPantryTestData builds a repository holding PantryRecords
func BuildPantryTestData() *memory.ItemRepository {
	records := PantryRecords()
	repo := memory.NewItemRepository(len(records))
	repo.LoadItems(records)
	return repo
}

// MemoryStore is an in-memory ItemPersistence that records every save.
// Setting SaveErr makes subsequent saves fail.
type MemoryStore struct {
	Records []entities.ItemRecord
	Saves   int
	LoadErr error
	SaveErr error
}

// Verify interface compliance
var _ repositories.ItemPersistence = (*MemoryStore)(nil)

// NewMemoryStore creates a store pre-populated with records
func NewMemoryStore(records []entities.ItemRecord) *MemoryStore {
	return &MemoryStore{Records: append([]entities.ItemRecord(nil), records...)}
}

// Load returns a copy of the last saved records
func (s *MemoryStore) Load() ([]entities.ItemRecord, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return append([]entities.ItemRecord(nil), s.Records...), nil
}

// Save replaces the stored records
func (s *MemoryStore) Save(records []entities.ItemRecord) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Records = append([]entities.ItemRecord(nil), records...)
	s.Saves++
	return nil
}
