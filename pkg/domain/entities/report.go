package entities

// RestockCandidate is an item whose quantity is below the restock threshold
type RestockCandidate struct {
	Name     ItemName `json:"name" yaml:"name"`
	Quantity Quantity `json:"quantity" yaml:"quantity"`
}

// ExpiryAlert is an item expiring within the requested window.
// DaysLeft is negative for items that have already expired.
type ExpiryAlert struct {
	Name     ItemName `json:"name" yaml:"name"`
	Expiry   string   `json:"expiry" yaml:"expiry"`
	DaysLeft int      `json:"days_left" yaml:"days_left"`
}

// CategoryCount is the number of items carrying a category label
type CategoryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}
