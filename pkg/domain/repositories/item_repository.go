package repositories

import "github.com/vsinha/stockmgr/pkg/domain/entities"

// ItemRepository is the authoritative in-memory set of inventory items
type ItemRepository interface {
	// Add inserts or overwrites the record stored under record.Name
	Add(record entities.ItemRecord)
	// Remove deletes name and returns the prior record, or entities.ErrNotFound
	Remove(name entities.ItemName) (entities.ItemRecord, error)
	Get(name entities.ItemName) (entities.ItemRecord, bool)
	// All returns copies of every record in insertion order
	All() []entities.ItemRecord
	Len() int
}

// ItemPersistence reads and writes the full item set to durable storage
type ItemPersistence interface {
	Load() ([]entities.ItemRecord, error)
	Save(records []entities.ItemRecord) error
}
