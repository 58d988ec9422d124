package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/stockmgr/pkg/application/dto"
	"github.com/vsinha/stockmgr/pkg/domain/entities"
)

func sampleItems() []entities.ItemRecord {
	return []entities.ItemRecord{
		{Name: "Apples", Quantity: 12, Category: "Produce", Expiry: "2024-05-01", Popularity: 7},
		{Name: "Salt", Quantity: 0, Category: "Pantry", Popularity: 2},
	}
}

func TestRenderer_ItemsText(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer("text", &buf).Items(sampleItems()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "\nCurrent Inventory:\n" +
		"Apples | Qty: 12 | Category: Produce | Expiry: 2024-05-01 | Popularity: 7\n" +
		"Salt | Qty: 0 | Category: Pantry | Expiry:  | Popularity: 2\n"
	if buf.String() != expected {
		t.Errorf("Expected:\n%q\ngot:\n%q", expected, buf.String())
	}
}

func TestRenderer_EmptyMessages(t *testing.T) {
	testCases := []struct {
		name     string
		render   func(r *Renderer) error
		expected string
	}{
		{"items", func(r *Renderer) error { return r.Items(nil) }, "Inventory is empty.\n"},
		{"restock", func(r *Renderer) error { return r.Restock(nil) }, "No items need restocking.\n"},
		{"expiry", func(r *Renderer) error { return r.Expiry(3, nil) }, "No items nearing expiry.\n"},
		{"demand", func(r *Renderer) error { return r.Demand(5, nil, true) }, "Inventory is empty.\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tc.render(NewRenderer("text", &buf)); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if buf.String() != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, buf.String())
			}
		})
	}
}

func TestRenderer_ReportsText(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer("text", &buf)

	_ = r.Restock([]entities.RestockCandidate{{Name: "B", Quantity: 2}, {Name: "A", Quantity: 5}})
	_ = r.Expiry(0, []entities.ExpiryAlert{{Name: "Milk", Expiry: "2023-12-31", DaysLeft: -1}})
	_ = r.Demand(5, sampleItems(), false)
	_ = r.Categories(dto.NewCategorySummary([]entities.CategoryCount{{Category: "cat1", Count: 2}, {Category: "cat2", Count: 1}}))

	expected := "Items suggested for restock:\nB | Qty: 2\nA | Qty: 5\n" +
		"Items expiring in next 0 days:\nMilk | Days left: -1\n" +
		"Top 5 high-demand items:\nApples | Popularity: 7\nSalt | Popularity: 2\n" +
		"Category Summary:\ncat1 : 2 (66.7%)\ncat2 : 1 (33.3%)\n"
	if buf.String() != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer("json", &buf).Items(sampleItems()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded []entities.ItemRecord
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Name != "Apples" {
		t.Errorf("Unexpected decoded items: %+v", decoded)
	}
}

func TestRenderer_YAML(t *testing.T) {
	var buf bytes.Buffer
	alerts := []entities.ExpiryAlert{{Name: "Milk", Expiry: "2024-01-01", DaysLeft: 0}}
	if err := NewRenderer("yaml", &buf).Expiry(0, alerts); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded []map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["name"] != "Milk" || decoded[0]["days_left"] != 0 {
		t.Errorf("Unexpected decoded alerts: %v", decoded)
	}
}

func TestRenderer_CSV(t *testing.T) {
	var buf bytes.Buffer
	summary := dto.NewCategorySummary([]entities.CategoryCount{{Category: "Dairy, chilled", Count: 1}})
	if err := NewRenderer("csv", &buf).Categories(summary); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "category,count,share_percent\n\"Dairy, chilled\",1,100\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestRenderer_UnsupportedFormat(t *testing.T) {
	err := NewRenderer("xml", &bytes.Buffer{}).Items(nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported output format") {
		t.Errorf("Expected unsupported format error, got %v", err)
	}
}

func TestRenderer_MessageOnlyInText(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer("json", &buf).Message("Item '%s' added successfully!", "Apples")
	if buf.Len() != 0 {
		t.Errorf("Expected no message in json mode, got %q", buf.String())
	}

	NewRenderer("text", &buf).Message("Item '%s' added successfully!", "Apples")
	if buf.String() != "Item 'Apples' added successfully!\n" {
		t.Errorf("Unexpected message %q", buf.String())
	}
}
