package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"zenspend/internal/store"
)

func sampleTransactions() []store.TransactionWithCategory {
	date := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.Local).Unix()
	return []store.TransactionWithCategory{
		{
			Transaction: store.Transaction{
				ID:         2,
				Amount:     50,
				CategoryID: 1,
				Date:       date,
				Note:       "groceries",
				Type:       store.TypeExpense,
			},
			Category: store.Category{ID: 1, Name: "Food"},
		},
		{
			Transaction: store.Transaction{
				ID:         1,
				Amount:     1000,
				CategoryID: 6,
				Date:       date,
				Type:       store.TypeIncome,
			},
			Category: store.Category{ID: 6, Name: "Salary"},
		},
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ToCSV(sampleTransactions(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	header := []string{"ID", "Date", "Type", "Category", "Amount", "Note"}
	for i, col := range header {
		if rows[0][i] != col {
			t.Fatalf("header column %d: got %q, want %q", i, rows[0][i], col)
		}
	}

	first := rows[1]
	if first[0] != "2" || first[2] != "expense" || first[3] != "Food" || first[4] != "50.00" || first[5] != "groceries" {
		t.Fatalf("unexpected first row: %v", first)
	}
	second := rows[2]
	if second[0] != "1" || second[2] != "income" || second[3] != "Salary" || second[4] != "1000.00" || second[5] != "" {
		t.Fatalf("unexpected second row: %v", second)
	}
}

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ToJSON(sampleTransactions(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		ExportedAt   string `json:"exported_at"`
		Count        int    `json:"count"`
		Transactions []struct {
			ID       int64   `json:"id"`
			Type     string  `json:"type"`
			Category string  `json:"category"`
			Amount   float64 `json:"amount"`
			Note     string  `json:"note"`
		} `json:"transactions"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}

	if out.Count != 2 || len(out.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got count=%d len=%d", out.Count, len(out.Transactions))
	}
	if _, err := time.Parse(time.RFC3339, out.ExportedAt); err != nil {
		t.Fatalf("exported_at is not RFC3339: %v", err)
	}
	tx := out.Transactions[0]
	if tx.ID != 2 || tx.Type != "expense" || tx.Category != "Food" || tx.Amount != 50 || tx.Note != "groceries" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
}

func TestToJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := ToJSON(nil, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 0 {
		t.Fatalf("expected count 0, got %d", out.Count)
	}
}
