package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath, creates the
// schema if missing and seeds the default categories on first run.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	// Configure pragmas. WAL keeps readers unblocked during writes.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if err := s.seedCategories(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed categories: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS categories (
		id     INTEGER PRIMARY KEY AUTOINCREMENT,
		name   TEXT NOT NULL,
		icon   TEXT NOT NULL,
		color  TEXT NOT NULL,
		type   TEXT NOT NULL CHECK (type IN ('income', 'expense'))
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		amount       REAL NOT NULL CHECK (amount >= 0),
		category_id  INTEGER NOT NULL REFERENCES categories(id),
		date         INTEGER NOT NULL,
		note         TEXT NOT NULL DEFAULT '',
		type         TEXT NOT NULL CHECK (type IN ('income', 'expense'))
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_date     ON transactions(date);
	CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category_id);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// defaultCategories is the fixed seed inserted exactly once when the
// categories table is empty.
var defaultCategories = []Category{
	{Name: "Food", Icon: "coffee", Color: "#FF6B6B", Type: TypeExpense},
	{Name: "Transport", Icon: "truck", Color: "#4ECDC4", Type: TypeExpense},
	{Name: "Bills", Icon: "file-text", Color: "#45B7D1", Type: TypeExpense},
	{Name: "Entertainment", Icon: "film", Color: "#96CEB4", Type: TypeExpense},
	{Name: "Shopping", Icon: "shopping-bag", Color: "#FFEEAD", Type: TypeExpense},
	{Name: "Salary", Icon: "dollar-sign", Color: "#A8E6CF", Type: TypeIncome},
	{Name: "Others", Icon: "box", Color: "#D4A5A5", Type: TypeExpense},
}

func (s *Store) seedCategories() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, c := range defaultCategories {
		_, err := s.db.Exec(
			`INSERT INTO categories (name, icon, color, type) VALUES (?, ?, ?, ?)`,
			c.Name, c.Icon, c.Color, string(c.Type),
		)
		if err != nil {
			return fmt.Errorf("insert category %q: %w", c.Name, err)
		}
	}
	return nil
}

// DefaultDBPath returns ~/.config/zenspend/zenspend.db, overridable via
// the ZENSPEND_DB environment variable.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ZENSPEND_DB"); p != "" {
		return p, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "zenspend", "zenspend.db"), nil
}
