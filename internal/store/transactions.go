package store

import "fmt"

// InsertTransaction writes a new transaction and returns its id. The
// transaction type must match the type of the referenced category; a
// mismatch is rejected here rather than left to the caller.
func (s *Store) InsertTransaction(amount float64, categoryID int64, dateSeconds int64, note string, typ TxType) (int64, error) {
	cat, err := s.GetCategory(categoryID)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	if cat.Type != typ {
		return 0, fmt.Errorf("insert transaction: type %q does not match category %q type %q", typ, cat.Name, cat.Type)
	}

	res, err := s.db.Exec(
		`INSERT INTO transactions (amount, category_id, date, note, type) VALUES (?, ?, ?, ?, ?)`,
		amount, categoryID, dateSeconds, note, string(typ),
	)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// ListTransactions returns transactions joined with their category, most
// recent first. Ties on date fall back to id descending so pagination
// stays deterministic.
func (s *Store) ListTransactions(limit, offset int) ([]TransactionWithCategory, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.amount, t.category_id, t.date, t.note, t.type,
		       c.id, c.name, c.icon, c.color, c.type
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		ORDER BY t.date DESC, t.id DESC
		LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []TransactionWithCategory
	for rows.Next() {
		var t TransactionWithCategory
		var txType, catType string
		if err := rows.Scan(
			&t.ID, &t.Amount, &t.CategoryID, &t.Date, &t.Note, &txType,
			&t.Category.ID, &t.Category.Name, &t.Category.Icon, &t.Category.Color, &catType,
		); err != nil {
			return nil, err
		}
		t.Type = TxType(txType)
		t.Category.Type = TxType(catType)
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// DeleteTransaction removes the transaction with the given id. A missing
// id is a no-op, not an error.
func (s *Store) DeleteTransaction(id int64) error {
	_, err := s.db.Exec(`DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	return nil
}

// SumByTypeInRange sums transaction amounts of the given type in the
// closed interval [startSeconds, endSeconds]. No matching rows yields 0.
func (s *Store) SumByTypeInRange(typ TxType, startSeconds, endSeconds int64) (float64, error) {
	var total float64
	err := s.db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = ? AND date >= ? AND date <= ?`,
		string(typ), startSeconds, endSeconds,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum %s in range: %w", typ, err)
	}
	return total, nil
}

// CategoryTotalsInRange returns expense totals grouped by category for
// the closed interval, largest total first. Categories with no expense
// rows in the window do not appear.
func (s *Store) CategoryTotalsInRange(startSeconds, endSeconds int64) ([]CategoryTotal, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.color, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.type = 'expense' AND t.date >= ? AND t.date <= ?
		GROUP BY c.id
		ORDER BY total DESC`,
		startSeconds, endSeconds,
	)
	if err != nil {
		return nil, fmt.Errorf("category totals in range: %w", err)
	}
	defer rows.Close()

	var totals []CategoryTotal
	for rows.Next() {
		var ct CategoryTotal
		if err := rows.Scan(&ct.CategoryID, &ct.CategoryName, &ct.CategoryColor, &ct.TotalAmount); err != nil {
			return nil, err
		}
		totals = append(totals, ct)
	}
	return totals, rows.Err()
}

// DailyTotalsInRange returns expense totals grouped by the local
// calendar day-of-month, ascending. Days with no expense rows are
// absent; callers zero-fill.
func (s *Store) DailyTotalsInRange(startSeconds, endSeconds int64) ([]DailyTotal, error) {
	rows, err := s.db.Query(`
		SELECT CAST(strftime('%d', datetime(date, 'unixepoch', 'localtime')) AS INTEGER) AS day,
		       SUM(amount) AS total
		FROM transactions
		WHERE type = 'expense' AND date >= ? AND date <= ?
		GROUP BY day
		ORDER BY day ASC`,
		startSeconds, endSeconds,
	)
	if err != nil {
		return nil, fmt.Errorf("daily totals in range: %w", err)
	}
	defer rows.Close()

	var totals []DailyTotal
	for rows.Next() {
		var dt DailyTotal
		if err := rows.Scan(&dt.Day, &dt.Total); err != nil {
			return nil, err
		}
		totals = append(totals, dt)
	}
	return totals, rows.Err()
}
