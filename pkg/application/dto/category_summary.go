package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/stockmgr/pkg/domain/entities"
)

// CategoryShare is one category's item count and its percentage of all items
type CategoryShare struct {
	Category string          `json:"category" yaml:"category"`
	Count    int             `json:"count" yaml:"count"`
	Share    decimal.Decimal `json:"share_percent" yaml:"share_percent"`
}

// CategorySummary is the category report handed to the output layer
type CategorySummary struct {
	TotalItems int             `json:"total_items" yaml:"total_items"`
	Categories []CategoryShare `json:"categories" yaml:"categories"`
}

// NewCategorySummary computes percentage shares, rounded to one decimal place
func NewCategorySummary(counts []entities.CategoryCount) CategorySummary {
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	summary := CategorySummary{
		TotalItems: total,
		Categories: make([]CategoryShare, 0, len(counts)),
	}
	hundred := decimal.NewFromInt(100)
	for _, c := range counts {
		share := decimal.Zero
		if total > 0 {
			share = decimal.NewFromInt(int64(c.Count)).Mul(hundred).DivRound(decimal.NewFromInt(int64(total)), 1)
		}
		summary.Categories = append(summary.Categories, CategoryShare{
			Category: c.Category,
			Count:    c.Count,
			Share:    share,
		})
	}

	return summary
}
