package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/stockmgr/pkg/domain/entities"
	"github.com/vsinha/stockmgr/pkg/domain/repositories"
)

// Header is the column layout of the items file
var Header = []string{"name", "quantity", "category", "expiry", "popularity"}

// ItemStore persists the full item set to a single CSV file.
// Every Save truncates and rewrites the file in place, so a crash part way
// through a write can leave it truncated.
type ItemStore struct {
	path string
}

// NewItemStore creates a store backed by the CSV file at path
func NewItemStore(path string) *ItemStore {
	return &ItemStore{path: path}
}

// Verify interface compliance
var _ repositories.ItemPersistence = (*ItemStore)(nil)

// Path returns the backing file path
func (s *ItemStore) Path() string {
	return s.path
}

// Load reads every record from the file. A missing file is a first run and
// yields no records and no error.
func (s *ItemStore) Load() ([]entities.ItemRecord, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, entities.NewPersistenceError("load", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, entities.NewPersistenceError("load", s.path, fmt.Errorf("failed to read items CSV: %w", err))
	}

	if len(rows) == 0 {
		return nil, nil
	}

	if !validateHeader(rows[0], Header) {
		return nil, entities.NewPersistenceError("load", s.path,
			fmt.Errorf("items CSV header mismatch. Expected: %v, Got: %v", Header, rows[0]))
	}

	records := make([]entities.ItemRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(Header) {
			return nil, entities.NewPersistenceError("load", s.path,
				fmt.Errorf("items CSV row %d: expected %d columns, got %d", i+2, len(Header), len(row)))
		}

		record, err := parseItemRecord(row)
		if err != nil {
			return nil, entities.NewPersistenceError("load", s.path, fmt.Errorf("items CSV row %d: %w", i+2, err))
		}

		records = append(records, record)
	}

	return records, nil
}

// Save rewrites the whole file from records, in the order given
func (s *ItemStore) Save(records []entities.ItemRecord) (err error) {
	file, err := os.Create(s.path)
	if err != nil {
		return entities.NewPersistenceError("save", s.path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = entities.NewPersistenceError("save", s.path, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(Header); err != nil {
		return entities.NewPersistenceError("save", s.path, err)
	}

	for _, record := range records {
		row := []string{
			string(record.Name),
			strconv.FormatInt(int64(record.Quantity), 10),
			record.Category,
			record.Expiry,
			strconv.FormatInt(int64(record.Popularity), 10),
		}
		if err := writer.Write(row); err != nil {
			return entities.NewPersistenceError("save", s.path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return entities.NewPersistenceError("save", s.path, err)
	}

	return nil
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		// A UTF-8 byte order mark may precede the first column
		name := strings.TrimPrefix(actual[i], "\ufeff")
		if strings.ToLower(strings.TrimSpace(name)) != col {
			return false
		}
	}

	return true
}

func parseItemRecord(row []string) (entities.ItemRecord, error) {
	quantity, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
	if err != nil {
		return entities.ItemRecord{}, fmt.Errorf("invalid quantity: %s", row[1])
	}

	popularity, err := strconv.ParseInt(strings.TrimSpace(row[4]), 10, 64)
	if err != nil {
		return entities.ItemRecord{}, fmt.Errorf("invalid popularity: %s", row[4])
	}

	record := entities.ItemRecord{
		Name:       entities.ItemName(row[0]),
		Quantity:   entities.Quantity(quantity),
		Category:   row[2],
		Expiry:     row[3],
		Popularity: entities.Popularity(popularity),
	}
	if err := record.Validate(); err != nil {
		return entities.ItemRecord{}, fmt.Errorf("invalid item %q: %w", row[0], err)
	}

	return record, nil
}
