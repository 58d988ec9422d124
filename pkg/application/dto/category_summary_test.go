package dto

import (
	"testing"

	"github.com/vsinha/stockmgr/pkg/domain/entities"
)

func TestNewCategorySummary(t *testing.T) {
	summary := NewCategorySummary([]entities.CategoryCount{
		{Category: "cat1", Count: 2},
		{Category: "cat2", Count: 1},
	})

	if summary.TotalItems != 3 {
		t.Errorf("Expected 3 items, got %d", summary.TotalItems)
	}

	expected := []string{"66.7", "33.3"}
	for i, share := range summary.Categories {
		if share.Share.String() != expected[i] {
			t.Errorf("Category %s: expected share %s, got %s", share.Category, expected[i], share.Share.String())
		}
	}
}

func TestNewCategorySummary_Empty(t *testing.T) {
	summary := NewCategorySummary(nil)
	if summary.TotalItems != 0 || len(summary.Categories) != 0 {
		t.Errorf("Expected empty summary, got %+v", summary)
	}
}
