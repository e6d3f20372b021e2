// Package analytics derives dashboard and report figures from raw
// transaction rows for a closed [start, end] Unix-second window.
package analytics

import (
	"time"

	"zenspend/internal/store"
)

// Summary holds income, expense and their difference for one window.
type Summary struct {
	Income  float64
	Expense float64
	Balance float64
}

// CategorySummary is one category's share of the window's expenses.
type CategorySummary struct {
	CategoryID    int64
	CategoryName  string
	CategoryColor string
	TotalAmount   float64
	Percentage    float64
}

// DailyExpense is the expense total for one calendar day of the month.
type DailyExpense struct {
	Day    int
	Amount float64
}

// MonthlySummary computes the income/expense/balance figures for the
// window. An empty transaction set yields all zeros, never an error.
func MonthlySummary(s *store.Store, startSeconds, endSeconds int64) (Summary, error) {
	income, err := s.SumByTypeInRange(store.TypeIncome, startSeconds, endSeconds)
	if err != nil {
		return Summary{}, err
	}
	expense, err := s.SumByTypeInRange(store.TypeExpense, startSeconds, endSeconds)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Income:  income,
		Expense: expense,
		Balance: income - expense,
	}, nil
}

// CategoryBreakdown returns the per-category expense totals with each
// row's percentage of the window total, largest first. The percentage is
// 0 when the window total is 0.
func CategoryBreakdown(s *store.Store, startSeconds, endSeconds int64) ([]CategorySummary, error) {
	totals, err := s.CategoryTotalsInRange(startSeconds, endSeconds)
	if err != nil {
		return nil, err
	}

	var sum float64
	for _, t := range totals {
		sum += t.TotalAmount
	}

	var breakdown []CategorySummary
	for _, t := range totals {
		pct := 0.0
		if sum > 0 {
			pct = t.TotalAmount / sum * 100
		}
		breakdown = append(breakdown, CategorySummary{
			CategoryID:    t.CategoryID,
			CategoryName:  t.CategoryName,
			CategoryColor: t.CategoryColor,
			TotalAmount:   t.TotalAmount,
			Percentage:    pct,
		})
	}
	return breakdown, nil
}

// DailySeries expands the sparse per-day expense totals into one entry
// per day in [1, maxDay]; days without expenses get amount 0.
func DailySeries(s *store.Store, startSeconds, endSeconds int64, maxDay int) ([]DailyExpense, error) {
	totals, err := s.DailyTotalsInRange(startSeconds, endSeconds)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int]float64, len(totals))
	for _, t := range totals {
		byDay[t.Day] = t.Total
	}

	series := make([]DailyExpense, 0, maxDay)
	for day := 1; day <= maxDay; day++ {
		series = append(series, DailyExpense{Day: day, Amount: byDay[day]})
	}
	return series, nil
}

// MonthWindow returns the closed Unix-second interval covering the local
// calendar month containing t.
func MonthWindow(t time.Time) (start, end int64) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	next := first.AddDate(0, 1, 0)
	return first.Unix(), next.Unix() - 1
}

// MaxDay returns how many days the daily series should cover for the
// month containing monthStart: now's day-of-month while the month is
// still running, else the month's full day count.
func MaxDay(monthStart, now time.Time) int {
	if monthStart.Year() == now.Year() && monthStart.Month() == now.Month() {
		return now.Day()
	}
	first := time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, monthStart.Location())
	return first.AddDate(0, 1, -1).Day()
}
