package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"zenspend/internal/store"
)

type jsonExport struct {
	ExportedAt   string      `json:"exported_at"`
	Count        int         `json:"count"`
	Transactions []jsonEntry `json:"transactions"`
}

type jsonEntry struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note,omitempty"`
}

func ToJSON(txs []store.TransactionWithCategory, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(txs),
	}

	for _, t := range txs {
		out.Transactions = append(out.Transactions, jsonEntry{
			ID:       t.ID,
			Date:     time.Unix(t.Date, 0).Local().Format(time.RFC3339),
			Type:     string(t.Type),
			Category: t.Category.Name,
			Amount:   t.Amount,
			Note:     t.Note,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
