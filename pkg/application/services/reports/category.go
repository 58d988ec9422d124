package reports

import "github.com/vsinha/stockmgr/pkg/domain/entities"

// CategorySummary counts items per category label. Categories appear in the
// order they are first seen in records.
func CategorySummary(records []entities.ItemRecord) []entities.CategoryCount {
	summary := make([]entities.CategoryCount, 0)
	index := make(map[string]int)

	for _, record := range records {
		if i, seen := index[record.Category]; seen {
			summary[i].Count++
			continue
		}
		index[record.Category] = len(summary)
		summary = append(summary, entities.CategoryCount{Category: record.Category, Count: 1})
	}

	return summary
}
