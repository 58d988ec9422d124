package reports

import (
	"sort"

	"github.com/vsinha/stockmgr/pkg/domain/entities"
)

// RestockSuggestion returns every item whose quantity is below threshold,
// lowest quantity first. Equal quantities are ordered by name.
func RestockSuggestion(records []entities.ItemRecord, threshold entities.Quantity) []entities.RestockCandidate {
	candidates := make([]entities.RestockCandidate, 0)
	for _, record := range records {
		if record.Quantity < threshold {
			candidates = append(candidates, entities.RestockCandidate{
				Name:     record.Name,
				Quantity: record.Quantity,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Quantity != candidates[j].Quantity {
			return candidates[i].Quantity < candidates[j].Quantity
		}
		return candidates[i].Name < candidates[j].Name
	})

	return candidates
}
