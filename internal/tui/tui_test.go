package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"zenspend/internal/appstore"
	"zenspend/internal/store"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{}
}

func fakeTxs(n int) []store.TransactionWithCategory {
	txs := make([]store.TransactionWithCategory, n)
	for i := range txs {
		txs[i] = store.TransactionWithCategory{
			Transaction: store.Transaction{ID: int64(n - i), Amount: 1, Type: store.TypeExpense},
			Category:    store.Category{Name: "Food", Color: "#FF6B6B"},
		}
	}
	return txs
}

// ============================================================
// Status line
// ============================================================

func TestStatusFromSnapshot(t *testing.T) {
	tests := []struct {
		reason string
		want   string
	}{
		{appstore.ErrInitFailed, "Database initialization failed"},
		{appstore.ErrQueryFailed, "Failed to load data, try again"},
		{appstore.ErrWriteFailed, "Write failed, please retry"},
		{"", ""},
	}
	for _, tt := range tests {
		got := statusFromSnapshot(appstore.Snapshot{Err: tt.reason})
		if got != tt.want {
			t.Fatalf("reason %q: got %q, want %q", tt.reason, got, tt.want)
		}
	}
}

// ============================================================
// Helpers
// ============================================================

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("a very long note indeed", 10); got != "a very lo…" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.Local).Unix()
	if got := formatDate(d); got != "Mar 05" {
		t.Fatalf("got %q", got)
	}
	if got := formatDateFull(d); got != "Mar 05, 2025" {
		t.Fatalf("got %q", got)
	}
}

func TestViewNames(t *testing.T) {
	if got := len(viewNames()); got != 4 {
		t.Fatalf("expected 4 views, got %d", got)
	}
}

// ============================================================
// Analytics month navigation
// ============================================================

func TestAnalyticsMonthWindow(t *testing.T) {
	m := analyticsModel{offset: 0}
	start, end := m.monthWindow()

	if start.Day() != 1 || start.Hour() != 0 || start.Minute() != 0 {
		t.Fatalf("window should start at the first midnight, got %v", start)
	}
	if want := start.AddDate(0, 1, 0).Add(-time.Second); !end.Equal(want) {
		t.Fatalf("window end: got %v, want %v", end, want)
	}
}

func TestAnalyticsMonthWindowOffset(t *testing.T) {
	current := analyticsModel{offset: 0}
	back := analyticsModel{offset: 2}

	currentStart, _ := current.monthWindow()
	backStart, backEnd := back.monthWindow()

	if want := currentStart.AddDate(0, -2, 0); !backStart.Equal(want) {
		t.Fatalf("offset 2 start: got %v, want %v", backStart, want)
	}
	if !backEnd.Before(currentStart) {
		t.Fatal("a past window must end before the current one starts")
	}
}

func TestAnalyticsNavigationClampsAtCurrentMonth(t *testing.T) {
	m := analyticsModel{}

	m, _ = m.update(keyMsg("left"))
	if m.offset != 1 {
		t.Fatalf("left should go one month back, offset %d", m.offset)
	}

	m, _ = m.update(keyMsg("right"))
	if m.offset != 0 {
		t.Fatalf("right should return, offset %d", m.offset)
	}

	m, _ = m.update(keyMsg("right"))
	if m.offset != 0 {
		t.Fatalf("must not navigate past the current month, offset %d", m.offset)
	}
}

// ============================================================
// History paging
// ============================================================

func TestHistoryDataOffsetGuard(t *testing.T) {
	m := historyModel{offset: 20}

	// A stale page for a different offset is dropped.
	m, _ = m.update(historyDataMsg{txs: fakeTxs(5), offset: 0})
	if len(m.txs) != 0 {
		t.Fatal("stale page should be ignored")
	}

	m, _ = m.update(historyDataMsg{txs: fakeTxs(5), offset: 20})
	if len(m.txs) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(m.txs))
	}
}

func TestHistoryCursorClampedToPage(t *testing.T) {
	m := historyModel{cursor: 10}
	m, _ = m.update(historyDataMsg{txs: fakeTxs(3)})
	if m.cursor != 2 {
		t.Fatalf("cursor should clamp to last row, got %d", m.cursor)
	}
}

func TestHistoryCursorMovement(t *testing.T) {
	m := historyModel{txs: fakeTxs(3)}

	m, _ = m.update(keyMsg("up"))
	if m.cursor != 0 {
		t.Fatalf("cursor must not go above the first row, got %d", m.cursor)
	}

	m, _ = m.update(keyMsg("down"))
	m, _ = m.update(keyMsg("down"))
	m, _ = m.update(keyMsg("down"))
	if m.cursor != 2 {
		t.Fatalf("cursor must stop at the last row, got %d", m.cursor)
	}
}

func TestHistoryPaging(t *testing.T) {
	m := historyModel{txs: fakeTxs(historyPageSize), cursor: 4}

	m, cmd := m.update(keyMsg("right"))
	if m.offset != historyPageSize || m.cursor != 0 {
		t.Fatalf("next page: offset %d cursor %d", m.offset, m.cursor)
	}
	if cmd == nil {
		t.Fatal("paging forward should trigger a refresh")
	}

	m, _ = m.update(keyMsg("left"))
	if m.offset != 0 {
		t.Fatalf("previous page: offset %d", m.offset)
	}

	m, _ = m.update(keyMsg("left"))
	if m.offset != 0 {
		t.Fatalf("offset must not go negative, got %d", m.offset)
	}
}

func TestHistoryNoNextPageWhenPartial(t *testing.T) {
	m := historyModel{txs: fakeTxs(7)}
	m, cmd := m.update(keyMsg("right"))
	if m.offset != 0 || cmd != nil {
		t.Fatal("a partial page is the last page")
	}
}

// ============================================================
// Theme
// ============================================================

func TestApplyTheme(t *testing.T) {
	orig := colorPrimary
	t.Cleanup(func() {
		colorPrimary = orig
		applyTheme("light")
		colorPrimary = orig
	})

	applyTheme("mint-dark")
	if colorPrimary != themePrimaries["mint-dark"] {
		t.Fatalf("accent not applied, got %v", colorPrimary)
	}

	applyTheme("no-such-theme")
	if colorPrimary != themePrimaries["mint-dark"] {
		t.Fatal("unknown theme must leave the accent unchanged")
	}
}
