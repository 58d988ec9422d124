package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/stockmgr/pkg/application/dto"
	"github.com/vsinha/stockmgr/pkg/domain/entities"
)

// Renderer writes inventory listings and reports in one output format
type Renderer struct {
	Format string
	Out    io.Writer
}

// NewRenderer creates a renderer for format ("text", "json", "yaml" or "csv")
func NewRenderer(format string, out io.Writer) *Renderer {
	return &Renderer{Format: format, Out: out}
}

// Items renders the full stock listing
func (r *Renderer) Items(items []entities.ItemRecord) error {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			string(item.Name),
			formatInt(int64(item.Quantity)),
			item.Category,
			item.Expiry,
			formatInt(int64(item.Popularity)),
		})
	}

	return r.render(items, func(w io.Writer) {
		if len(items) == 0 {
			fmt.Fprintln(w, "Inventory is empty.")
			return
		}
		fmt.Fprintln(w, "\nCurrent Inventory:")
		for _, item := range items {
			fmt.Fprintln(w, item.String())
		}
	}, []string{"name", "quantity", "category", "expiry", "popularity"}, rows)
}

// Restock renders the restock suggestion report
func (r *Renderer) Restock(candidates []entities.RestockCandidate) error {
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []string{string(c.Name), formatInt(int64(c.Quantity))})
	}

	return r.render(candidates, func(w io.Writer) {
		if len(candidates) == 0 {
			fmt.Fprintln(w, "No items need restocking.")
			return
		}
		fmt.Fprintln(w, "Items suggested for restock:")
		for _, c := range candidates {
			fmt.Fprintf(w, "%s | Qty: %d\n", c.Name, c.Quantity)
		}
	}, []string{"name", "quantity"}, rows)
}

// Expiry renders the expiry alert report for a window of days
func (r *Renderer) Expiry(days int, alerts []entities.ExpiryAlert) error {
	rows := make([][]string, 0, len(alerts))
	for _, a := range alerts {
		rows = append(rows, []string{string(a.Name), a.Expiry, strconv.Itoa(a.DaysLeft)})
	}

	return r.render(alerts, func(w io.Writer) {
		if len(alerts) == 0 {
			fmt.Fprintln(w, "No items nearing expiry.")
			return
		}
		fmt.Fprintf(w, "Items expiring in next %d days:\n", days)
		for _, a := range alerts {
			fmt.Fprintf(w, "%s | Days left: %d\n", a.Name, a.DaysLeft)
		}
	}, []string{"name", "expiry", "days_left"}, rows)
}

// Demand renders the high-demand ranking. inventoryEmpty distinguishes an
// empty store from a request for zero items.
func (r *Renderer) Demand(topN int, items []entities.ItemRecord, inventoryEmpty bool) error {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{string(item.Name), formatInt(int64(item.Popularity))})
	}

	return r.render(items, func(w io.Writer) {
		if inventoryEmpty {
			fmt.Fprintln(w, "Inventory is empty.")
			return
		}
		fmt.Fprintf(w, "Top %d high-demand items:\n", topN)
		for _, item := range items {
			fmt.Fprintf(w, "%s | Popularity: %d\n", item.Name, item.Popularity)
		}
	}, []string{"name", "popularity"}, rows)
}

// Categories renders the category summary
func (r *Renderer) Categories(summary dto.CategorySummary) error {
	rows := make([][]string, 0, len(summary.Categories))
	for _, c := range summary.Categories {
		rows = append(rows, []string{c.Category, strconv.Itoa(c.Count), c.Share.String()})
	}

	return r.render(summary, func(w io.Writer) {
		fmt.Fprintln(w, "Category Summary:")
		for _, c := range summary.Categories {
			fmt.Fprintf(w, "%s : %d (%s%%)\n", c.Category, c.Count, c.Share.String())
		}
	}, []string{"category", "count", "share_percent"}, rows)
}

// Message writes a plain status line. Structured formats stay silent so
// their output remains machine readable.
func (r *Renderer) Message(format string, args ...interface{}) {
	if r.Format != "text" {
		return
	}
	fmt.Fprintf(r.Out, format+"\n", args...)
}

func (r *Renderer) render(data interface{}, text func(io.Writer), header []string, rows [][]string) error {
	switch r.Format {
	case "text":
		text(r.Out)
		return nil
	case "json":
		return r.writeJSON(data)
	case "yaml":
		return r.writeYAML(data)
	case "csv":
		return r.writeCSV(header, rows)
	default:
		return fmt.Errorf("unsupported output format: %s", r.Format)
	}
}

func (r *Renderer) writeJSON(data interface{}) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(r.Out, string(jsonData))
	return err
}

func (r *Renderer) writeYAML(data interface{}) error {
	encoder := yaml.NewEncoder(r.Out)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return encoder.Close()
}

func (r *Renderer) writeCSV(header []string, rows [][]string) error {
	writer := csv.NewWriter(r.Out)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
