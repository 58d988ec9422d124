package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/stockmgr/pkg/application/dto"
	"github.com/vsinha/stockmgr/pkg/application/services/reports"
	"github.com/vsinha/stockmgr/pkg/domain/entities"
	"github.com/vsinha/stockmgr/pkg/domain/repositories"
	domainservices "github.com/vsinha/stockmgr/pkg/domain/services"
	"github.com/vsinha/stockmgr/pkg/infrastructure/repositories/memory"
)

// ServiceConfig holds the collaborators an InventoryService needs besides storage
type ServiceConfig struct {
	// Logger receives mutation and persistence events; nil disables logging
	Logger *zap.Logger
	// Now supplies the reference instant for expiry reports; nil means time.Now
	Now func() time.Time
}

// InventoryService owns one inventory session: the record store, its durable
// file and the undo ledger. Every mutation updates the store, records its
// inverse (add and remove only) and rewrites the durable file as one unit.
type InventoryService struct {
	repo   repositories.ItemRepository
	store  repositories.ItemPersistence
	ledger *domainservices.UndoLedger
	logger *zap.Logger
	now    func() time.Time
}

// NewInventoryService creates a service over an already populated repository
func NewInventoryService(repo repositories.ItemRepository, store repositories.ItemPersistence, config ServiceConfig) *InventoryService {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &InventoryService{
		repo:   repo,
		store:  store,
		ledger: domainservices.NewUndoLedger(),
		logger: logger,
		now:    now,
	}
}

// OpenInventory loads the durable file into a fresh in-memory store and
// returns a service over it. A missing file starts an empty inventory.
func OpenInventory(store repositories.ItemPersistence, config ServiceConfig) (*InventoryService, error) {
	records, err := store.Load()
	if err != nil {
		return nil, err
	}

	repo := memory.NewItemRepository(len(records))
	repo.LoadItems(records)

	service := NewInventoryService(repo, store, config)
	service.logger.Debug("inventory loaded", zap.Int("items", repo.Len()))
	return service, nil
}

// AddItem inserts the record, replacing any existing item with the same name
func (s *InventoryService) AddItem(record entities.ItemRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid item %q: %w", record.Name, err)
	}

	s.repo.Add(record)
	s.ledger.PushAdd(record.Name)
	s.logger.Debug("item added",
		zap.String("name", string(record.Name)),
		zap.Int64("quantity", int64(record.Quantity)),
		zap.String("category", record.Category))

	return s.save()
}

// RemoveItem deletes the named item and returns what it held
func (s *InventoryService) RemoveItem(name entities.ItemName) (entities.ItemRecord, error) {
	removed, err := s.repo.Remove(name)
	if err != nil {
		return entities.ItemRecord{}, err
	}

	s.ledger.PushRemove(removed)
	s.logger.Debug("item removed", zap.String("name", string(name)))

	return removed, s.save()
}

// Undo reverts the most recent add or remove. The revert itself is not
// recorded, so it cannot be undone.
func (s *InventoryService) Undo() (entities.UndoEntry, error) {
	entry, err := s.ledger.PopAndRevert(s.repo)
	if err != nil {
		if errors.Is(err, entities.ErrNothingToUndo) {
			return entry, err
		}
		return entry, fmt.Errorf("failed to undo %s of %s: %w", entry.Kind, entry.Name, err)
	}

	s.logger.Debug("undo applied",
		zap.Stringer("action", entry.Kind),
		zap.String("name", string(entry.Name)),
		zap.Int("remaining", s.ledger.Len()))

	return entry, s.save()
}

// UndoDepth returns how many mutations can still be undone
func (s *InventoryService) UndoDepth() int {
	return s.ledger.Len()
}

// GetItem looks up a single item
func (s *InventoryService) GetItem(name entities.ItemName) (entities.ItemRecord, bool) {
	return s.repo.Get(name)
}

// ListItems returns every item in insertion order
func (s *InventoryService) ListItems() []entities.ItemRecord {
	return s.repo.All()
}

// RestockSuggestion lists items below threshold, lowest quantity first
func (s *InventoryService) RestockSuggestion(threshold entities.Quantity) []entities.RestockCandidate {
	return reports.RestockSuggestion(s.repo.All(), threshold)
}

// ExpiryAlert lists items expiring within daysThreshold days of now
func (s *InventoryService) ExpiryAlert(daysThreshold int) []entities.ExpiryAlert {
	return reports.ExpiryAlert(s.repo.All(), daysThreshold, s.now())
}

// HighDemand lists the topN most popular items
func (s *InventoryService) HighDemand(topN int) []entities.ItemRecord {
	return reports.HighDemand(s.repo.All(), topN)
}

// CategorySummary counts items per category with percentage shares
func (s *InventoryService) CategorySummary() dto.CategorySummary {
	return dto.NewCategorySummary(reports.CategorySummary(s.repo.All()))
}

// save rewrites the durable file. On failure the in-memory change stays
// applied and the error is returned for the caller to treat as fatal.
func (s *InventoryService) save() error {
	if err := s.store.Save(s.repo.All()); err != nil {
		s.logger.Error("failed to persist inventory", zap.Error(err))
		return err
	}
	return nil
}
