package entities

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// ExpiryLayout is the calendar date layout used for item expiry dates
const ExpiryLayout = "2006-01-02"

// ItemName is the unique key of an inventory item
type ItemName string

// Quantity represents a non-negative count of units on hand
type Quantity int64

// Popularity is a demand score; higher means more in demand
type Popularity int64

// ItemRecord represents one inventory entry
type ItemRecord struct {
	Name       ItemName   `json:"name" yaml:"name"`
	Quantity   Quantity   `json:"quantity" yaml:"quantity"`
	Category   string     `json:"category" yaml:"category"`
	Expiry     string     `json:"expiry" yaml:"expiry"`
	Popularity Popularity `json:"popularity" yaml:"popularity"`
}

// NewItemRecord creates a validated ItemRecord
func NewItemRecord(name ItemName, quantity Quantity, category, expiry string, popularity Popularity) (*ItemRecord, error) {
	record := &ItemRecord{
		Name:       name,
		Quantity:   quantity,
		Category:   category,
		Expiry:     expiry,
		Popularity: popularity,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// Validate checks the record invariants. The expiry string is not checked
// here: malformed dates are stored verbatim and skipped by expiry queries.
func (r ItemRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Quantity, validation.Min(Quantity(0))),
	)
}

// ExpiryDate parses the stored expiry string.
// It returns ErrNoExpiry for an empty field and ErrMalformedExpiry when the
// value is not a YYYY-MM-DD date.
func (r ItemRecord) ExpiryDate() (time.Time, error) {
	raw := strings.TrimSpace(r.Expiry)
	if raw == "" {
		return time.Time{}, ErrNoExpiry
	}
	date, err := time.Parse(ExpiryLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q for item %s", ErrMalformedExpiry, r.Expiry, r.Name)
	}
	return date, nil
}

// DaysUntilExpiry returns the whole number of calendar days from today to the
// expiry date. Already-expired items yield negative values.
func (r ItemRecord) DaysUntilExpiry(today time.Time) (int, error) {
	expiry, err := r.ExpiryDate()
	if err != nil {
		return 0, err
	}
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(expiry.Sub(start).Hours() / 24), nil
}

// String renders the record the way the stock listing shows it
func (r ItemRecord) String() string {
	return fmt.Sprintf("%s | Qty: %d | Category: %s | Expiry: %s | Popularity: %d",
		r.Name, r.Quantity, r.Category, r.Expiry, r.Popularity)
}
