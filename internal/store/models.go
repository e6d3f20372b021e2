package store

// TxType tags a category or transaction as money in or money out.
type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

type Category struct {
	ID    int64
	Name  string
	Icon  string
	Color string
	Type  TxType
}

type Transaction struct {
	ID         int64
	Amount     float64
	CategoryID int64
	Date       int64 // Unix seconds; day bucketing uses local time
	Note       string
	Type       TxType
}

// TransactionWithCategory is the read-only join projection produced by
// list queries; it is never persisted directly.
type TransactionWithCategory struct {
	Transaction
	Category Category
}

// CategoryTotal is a raw expense total per category in a window.
type CategoryTotal struct {
	CategoryID    int64
	CategoryName  string
	CategoryColor string
	TotalAmount   float64
}

// DailyTotal is a raw expense total per local calendar day-of-month.
type DailyTotal struct {
	Day   int
	Total float64
}
