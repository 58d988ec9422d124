package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vsinha/stockmgr/pkg/application/services"
	"github.com/vsinha/stockmgr/pkg/domain/entities"
	domainservices "github.com/vsinha/stockmgr/pkg/domain/services"
	"github.com/vsinha/stockmgr/pkg/interfaces/cli/output"
)

// errExit ends the interactive session normally
var errExit = errors.New("exit requested")

// Shell runs the numbered-menu interactive session over one inventory.
// The undo ledger lives for the duration of the session.
type Shell struct {
	service  *services.InventoryService
	renderer *output.Renderer
	scanner  *bufio.Scanner
	out      io.Writer
}

// NewShell creates a shell reading choices from in and writing to out
func NewShell(service *services.InventoryService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		service:  service,
		renderer: output.NewRenderer("text", out),
		scanner:  bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops until the user exits or input ends. Not-found and empty-undo
// conditions are reported and the loop continues; persistence failures end
// the session with an error.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.showMenu()
		choice, ok := s.prompt("Enter your choice: ")
		if !ok {
			return nil
		}

		err := s.dispatch(choice)
		if errors.Is(err, errExit) {
			return nil
		}

		var perr *entities.PersistenceError
		if errors.As(err, &perr) {
			return err
		}
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *Shell) showMenu() {
	fmt.Fprintln(s.out, "\nDynamic Stock Manager")
	fmt.Fprintln(s.out, "1. Add Item")
	fmt.Fprintln(s.out, "2. Remove Item")
	fmt.Fprintln(s.out, "3. Check Stock")
	fmt.Fprintln(s.out, "4. Restock Suggestion")
	fmt.Fprintln(s.out, "5. Expiry Alert")
	fmt.Fprintln(s.out, "6. High-Demand Items")
	fmt.Fprintln(s.out, "7. Category Summary")
	fmt.Fprintln(s.out, "8. Undo Last Action")
	fmt.Fprintln(s.out, "9. Exit")
}

func (s *Shell) dispatch(choice string) error {
	switch strings.TrimSpace(choice) {
	case "1":
		return s.handleAdd()
	case "2":
		return s.handleRemove()
	case "3":
		return s.renderer.Items(s.service.ListItems())
	case "4":
		return s.handleRestock()
	case "5":
		return s.handleExpiry()
	case "6":
		return s.handleDemand()
	case "7":
		return s.renderer.Categories(s.service.CategorySummary())
	case "8":
		return s.handleUndo()
	case "9":
		fmt.Fprintln(s.out, "Exiting...")
		return errExit
	default:
		fmt.Fprintln(s.out, "Invalid option! Please try again.")
		return nil
	}
}

// prompt reads one line; ok is false once input is exhausted
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

// promptNumber reads a line and reduces it to its digits
func (s *Shell) promptNumber(label string) (int64, error) {
	line, ok := s.prompt(label)
	if !ok {
		return 0, errExit
	}
	return domainservices.ExtractNumber(line)
}

func (s *Shell) handleAdd() error {
	name, ok := s.prompt("Enter item name: ")
	if !ok {
		return errExit
	}
	quantity, err := s.promptNumber("Enter quantity (e.g., 900 grams or 5): ")
	if err != nil {
		return err
	}
	category, ok := s.prompt("Enter category: ")
	if !ok {
		return errExit
	}
	expiry, ok := s.prompt("Enter expiry date (YYYY-MM-DD): ")
	if !ok {
		return errExit
	}
	popularity, err := s.promptNumber("Enter popularity score: ")
	if err != nil {
		return err
	}

	record := entities.ItemRecord{
		Name:       entities.ItemName(name),
		Quantity:   entities.Quantity(quantity),
		Category:   category,
		Expiry:     expiry,
		Popularity: entities.Popularity(popularity),
	}
	if err := s.service.AddItem(record); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Item '%s' added successfully!\n", name)
	return nil
}

func (s *Shell) handleRemove() error {
	name, ok := s.prompt("Enter item name to remove: ")
	if !ok {
		return errExit
	}

	_, err := s.service.RemoveItem(entities.ItemName(name))
	if errors.Is(err, entities.ErrNotFound) {
		fmt.Fprintf(s.out, "Item '%s' not found in inventory.\n", name)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Item '%s' removed successfully!\n", name)
	return nil
}

func (s *Shell) handleRestock() error {
	threshold, err := s.promptNumber("Enter minimum quantity threshold: ")
	if err != nil {
		return err
	}
	return s.renderer.Restock(s.service.RestockSuggestion(entities.Quantity(threshold)))
}

func (s *Shell) handleExpiry() error {
	line, ok := s.prompt("Enter number of days to check for expiry: ")
	if !ok {
		return errExit
	}

	days, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintf(s.out, "Invalid number of days: %s\n", line)
		return nil
	}
	return s.renderer.Expiry(days, s.service.ExpiryAlert(days))
}

func (s *Shell) handleDemand() error {
	topN, err := s.promptNumber("Enter number of top items to show: ")
	if err != nil {
		return err
	}

	n := int(topN)
	return s.renderer.Demand(n, s.service.HighDemand(n), len(s.service.ListItems()) == 0)
}

func (s *Shell) handleUndo() error {
	entry, err := s.service.Undo()
	if errors.Is(err, entities.ErrNothingToUndo) {
		fmt.Fprintln(s.out, "No actions to undo.")
		return nil
	}
	if err != nil {
		return err
	}

	switch entry.Kind {
	case entities.UndoAdded:
		fmt.Fprintf(s.out, "Undo: Added item '%s' removed.\n", entry.Name)
	case entities.UndoRemoved:
		fmt.Fprintf(s.out, "Undo: Removed item '%s' restored.\n", entry.Name)
	}
	return nil
}
