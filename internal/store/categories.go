package store

import "fmt"

func (s *Store) ListCategories() ([]Category, error) {
	rows, err := s.db.Query(`SELECT id, name, icon, color, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		var typ string
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &typ); err != nil {
			return nil, err
		}
		c.Type = TxType(typ)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) GetCategory(id int64) (*Category, error) {
	c := &Category{}
	var typ string
	err := s.db.QueryRow(
		`SELECT id, name, icon, color, type FROM categories WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &typ)
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	c.Type = TxType(typ)
	return c, nil
}
