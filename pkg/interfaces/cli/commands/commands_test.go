package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/stockmgr/pkg/domain/entities"
)

const seedCSV = "name,quantity,category,expiry,popularity\n" +
	"Apples,5,Produce,2024-01-05,7\n" +
	"Milk,2,Dairy,2024-01-01,9\n" +
	"Flour,8,Baking,,3\n" +
	"Bread,1,Baking,not-a-date,4\n"

func seedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.csv")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return path
}

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand("test", strings.NewReader(input), &out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestAddAndRemoveCommands(t *testing.T) {
	path := seedFile(t, "")

	out, err := run(t, "", "--file", path, "add", "Apples", "900 grams", "-c", "Produce", "-e", "2024-05-01", "-p", "score 7")
	require.NoError(t, err)
	assert.Equal(t, "Item 'Apples' added successfully!\n", out)
	assert.Equal(t, "name,quantity,category,expiry,popularity\nApples,900,Produce,2024-05-01,7\n", readFile(t, path))

	out, err = run(t, "", "--file", path, "remove", "Apples")
	require.NoError(t, err)
	assert.Equal(t, "Item 'Apples' removed successfully!\n", out)
	assert.Equal(t, "name,quantity,category,expiry,popularity\n", readFile(t, path))

	_, err = run(t, "", "--file", path, "remove", "Apples")
	assert.True(t, errors.Is(err, entities.ErrNotFound))
}

func TestReportCommands(t *testing.T) {
	path := seedFile(t, seedCSV)

	out, err := run(t, "", "--file", path, "restock", "--threshold", "6")
	require.NoError(t, err)
	assert.Equal(t, "Items suggested for restock:\nBread | Qty: 1\nMilk | Qty: 2\nApples | Qty: 5\n", out)

	out, err = run(t, "", "--file", path, "expiry", "--days", "0", "--today", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "Items expiring in next 0 days:\nMilk | Days left: 0\n", out)

	out, err = run(t, "", "--file", path, "demand", "--top", "2")
	require.NoError(t, err)
	assert.Equal(t, "Top 2 high-demand items:\nMilk | Popularity: 9\nApples | Popularity: 7\n", out)

	out, err = run(t, "", "--file", path, "categories")
	require.NoError(t, err)
	assert.Equal(t, "Category Summary:\nProduce : 1 (25%)\nDairy : 1 (25%)\nBaking : 2 (50%)\n", out)
}

func TestListCommand_JSON(t *testing.T) {
	path := seedFile(t, seedCSV)

	out, err := run(t, "", "--file", path, "--format", "json", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Apples"`)
	assert.Contains(t, out, `"expiry": "not-a-date"`)
}

func TestExpiryCommand_InvalidToday(t *testing.T) {
	path := seedFile(t, seedCSV)

	_, err := run(t, "", "--file", path, "expiry", "--today", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --today date")
}

func TestCorruptFileIsFatal(t *testing.T) {
	path := seedFile(t, "name,quantity\nApples,1\n")

	_, err := run(t, "", "--file", path, "list")
	require.Error(t, err)

	var perr *entities.PersistenceError
	assert.True(t, errors.As(err, &perr))
}

func TestShell_Session(t *testing.T) {
	path := seedFile(t, "")
	input := strings.Join([]string{
		"1", "Apples", "900 grams", "Produce", "2024-01-05", "7",
		"1", "Milk", "2", "Dairy", "2024-01-01", "9",
		"2", "Ghost",
		"2", "Apples",
		"8",
		"8",
		"8",
		"8",
		"3",
		"42",
		"9",
	}, "\n") + "\n"

	out, err := run(t, input, "--file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Item 'Apples' added successfully!")
	assert.Contains(t, out, "Item 'Ghost' not found in inventory.")
	assert.Contains(t, out, "Item 'Apples' removed successfully!")
	assert.Contains(t, out, "Undo: Removed item 'Apples' restored.")
	assert.Contains(t, out, "Undo: Added item 'Milk' removed.")
	assert.Contains(t, out, "Undo: Added item 'Apples' removed.")
	assert.Contains(t, out, "No actions to undo.")
	assert.Contains(t, out, "Inventory is empty.")
	assert.Contains(t, out, "Invalid option! Please try again.")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))

	assert.Equal(t, "name,quantity,category,expiry,popularity\n", readFile(t, path))
}

func TestShell_Reports(t *testing.T) {
	path := seedFile(t, seedCSV)
	input := "4\n3 units\n6\n10\n7\n5\nabc\n"

	out, err := run(t, input, "--file", path, "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "Items suggested for restock:\nBread | Qty: 1\nMilk | Qty: 2\n")
	assert.Contains(t, out, "Top 10 high-demand items:\nMilk | Popularity: 9\nApples | Popularity: 7\nBread | Popularity: 4\nFlour | Popularity: 3\n")
	assert.Contains(t, out, "Category Summary:\nProduce : 1 (25%)\n")
	assert.Contains(t, out, "Invalid number of days: abc")
}
