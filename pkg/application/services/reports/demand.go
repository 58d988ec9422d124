package reports

import (
	"sort"

	"github.com/vsinha/stockmgr/pkg/domain/entities"
)

// HighDemand returns at most topN items ranked by popularity, highest first.
// Equal scores are ordered by name. A non-positive topN yields no items.
func HighDemand(records []entities.ItemRecord, topN int) []entities.ItemRecord {
	if topN <= 0 || len(records) == 0 {
		return []entities.ItemRecord{}
	}

	ranked := make([]entities.ItemRecord, len(records))
	copy(ranked, records)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Popularity != ranked[j].Popularity {
			return ranked[i].Popularity > ranked[j].Popularity
		}
		return ranked[i].Name < ranked[j].Name
	})

	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}
