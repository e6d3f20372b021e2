package analytics

import (
	"math"
	"testing"
	"time"

	"zenspend/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func categoryID(t *testing.T, s *store.Store, name string) int64 {
	t.Helper()
	cats, err := s.ListCategories()
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	for _, c := range cats {
		if c.Name == name {
			return c.ID
		}
	}
	t.Fatalf("category %q not seeded", name)
	return 0
}

func localDate(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local).Unix()
}

// ============================================================
// Window math
// ============================================================

func TestMonthWindow(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.Local)
	start, end := MonthWindow(now)

	wantStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local).Unix()
	wantEnd := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local).Unix() - 1
	if start != wantStart {
		t.Fatalf("start: got %d, want %d", start, wantStart)
	}
	if end != wantEnd {
		t.Fatalf("end: got %d, want %d", end, wantEnd)
	}
}

func TestMaxDayCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.Local)
	monthStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
	if got := MaxDay(monthStart, now); got != 14 {
		t.Fatalf("expected 14 for current month, got %d", got)
	}
}

func TestMaxDayPastMonth(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.Local)

	feb := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.Local)
	if got := MaxDay(feb, now); got != 28 {
		t.Fatalf("expected 28 for Feb 2025, got %d", got)
	}

	jan := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)
	if got := MaxDay(jan, now); got != 31 {
		t.Fatalf("expected 31 for Jan, got %d", got)
	}

	leapFeb := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)
	if got := MaxDay(leapFeb, now); got != 29 {
		t.Fatalf("expected 29 for Feb 2024, got %d", got)
	}
}

// ============================================================
// Monthly summary
// ============================================================

func TestMonthlySummary(t *testing.T) {
	s := newTestStore(t)
	food := categoryID(t, s, "Food")
	salary := categoryID(t, s, "Salary")

	d := localDate(2025, time.March, 10)
	s.InsertTransaction(100, salary, d, "", store.TypeIncome)
	s.InsertTransaction(30, food, d, "", store.TypeExpense)

	sum, err := MonthlySummary(s, d-100, d+100)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Income != 100 || sum.Expense != 30 || sum.Balance != 70 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestMonthlySummaryEmpty(t *testing.T) {
	s := newTestStore(t)
	sum, err := MonthlySummary(s, 0, 1<<40)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Income != 0 || sum.Expense != 0 || sum.Balance != 0 {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}

// ============================================================
// Category breakdown
// ============================================================

func TestCategoryBreakdownPercentages(t *testing.T) {
	s := newTestStore(t)
	food := categoryID(t, s, "Food")
	transport := categoryID(t, s, "Transport")
	bills := categoryID(t, s, "Bills")

	d := localDate(2025, time.March, 10)
	s.InsertTransaction(50, food, d, "", store.TypeExpense)
	s.InsertTransaction(30, transport, d, "", store.TypeExpense)
	s.InsertTransaction(20, bills, d, "", store.TypeExpense)

	breakdown, err := CategoryBreakdown(s, d-1, d+1)
	if err != nil {
		t.Fatal(err)
	}
	if len(breakdown) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(breakdown))
	}

	// Largest first.
	if breakdown[0].CategoryID != food || breakdown[0].Percentage != 50 {
		t.Fatalf("unexpected first row: %+v", breakdown[0])
	}

	var total float64
	for _, row := range breakdown {
		total += row.Percentage
	}
	if math.Abs(total-100) > 1e-9 {
		t.Fatalf("percentages should sum to 100, got %v", total)
	}
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	s := newTestStore(t)
	breakdown, err := CategoryBreakdown(s, 0, 1<<40)
	if err != nil {
		t.Fatal(err)
	}
	if len(breakdown) != 0 {
		t.Fatalf("expected empty breakdown, got %d rows", len(breakdown))
	}
}

// ============================================================
// Daily series
// ============================================================

func TestDailySeriesZeroFill(t *testing.T) {
	s := newTestStore(t)
	food := categoryID(t, s, "Food")

	s.InsertTransaction(50, food, localDate(2025, time.March, 15), "", store.TypeExpense)

	start := localDate(2025, time.March, 1)
	end := localDate(2025, time.March, 31)
	series, err := DailySeries(s, start, end, 31)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 31 {
		t.Fatalf("expected 31 entries, got %d", len(series))
	}

	seen := make(map[int]bool)
	for i, e := range series {
		if e.Day != i+1 {
			t.Fatalf("entry %d has day %d", i, e.Day)
		}
		if seen[e.Day] {
			t.Fatalf("duplicate day %d", e.Day)
		}
		seen[e.Day] = true

		want := 0.0
		if e.Day == 15 {
			want = 50
		}
		if e.Amount != want {
			t.Fatalf("day %d: expected %v, got %v", e.Day, want, e.Amount)
		}
	}
}

func TestDailySeriesEmpty(t *testing.T) {
	s := newTestStore(t)
	series, err := DailySeries(s, 0, 1<<40, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 10 {
		t.Fatalf("expected 10 zero entries, got %d", len(series))
	}
	for _, e := range series {
		if e.Amount != 0 {
			t.Fatalf("expected all-zero series, day %d has %v", e.Day, e.Amount)
		}
	}
}
