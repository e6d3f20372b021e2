package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"zenspend/internal/store"
)

func ToCSV(txs []store.TransactionWithCategory, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Date", "Type", "Category", "Amount", "Note"}); err != nil {
		return err
	}

	for _, t := range txs {
		row := []string{
			strconv.FormatInt(t.ID, 10),
			time.Unix(t.Date, 0).Local().Format("2006-01-02 15:04"),
			string(t.Type),
			t.Category.Name,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.Note,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
