package reports

import (
	"sort"
	"time"

	"github.com/vsinha/stockmgr/pkg/domain/entities"
)

// ExpiryAlert returns items expiring within daysThreshold days of today,
// most urgent first. Items already past expiry have negative DaysLeft and
// sort ahead of everything else. Records with an empty or malformed expiry
// are skipped.
func ExpiryAlert(records []entities.ItemRecord, daysThreshold int, today time.Time) []entities.ExpiryAlert {
	alerts := make([]entities.ExpiryAlert, 0)
	for _, record := range records {
		daysLeft, err := record.DaysUntilExpiry(today)
		if err != nil {
			continue
		}
		if daysLeft <= daysThreshold {
			alerts = append(alerts, entities.ExpiryAlert{
				Name:     record.Name,
				Expiry:   record.Expiry,
				DaysLeft: daysLeft,
			})
		}
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].DaysLeft != alerts[j].DaysLeft {
			return alerts[i].DaysLeft < alerts[j].DaysLeft
		}
		return alerts[i].Name < alerts[j].Name
	})

	return alerts
}
