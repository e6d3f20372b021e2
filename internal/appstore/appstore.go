// Package appstore holds the single mutable snapshot the presentation
// layer observes. Every mutation re-derives the affected snapshot fields
// from the database before it returns, so observers never see a stale
// view after a command completes.
package appstore

import (
	"log/slog"
	"sync"
	"time"

	"zenspend/internal/analytics"
	"zenspend/internal/store"
)

// Reason codes recorded in Snapshot.Err. The UI turns these into
// user-facing messages; they never carry raw error text.
const (
	ErrInitFailed  = "init_failed"
	ErrQueryFailed = "query_failed"
	ErrWriteFailed = "write_failed"
)

// Snapshot is the complete state visible to the presentation layer.
// Slice fields are replaced wholesale on each fetch and never mutated in
// place, so a returned Snapshot stays valid after later operations.
type Snapshot struct {
	Categories         []store.Category
	RecentTransactions []store.TransactionWithCategory
	MonthlySummary     analytics.Summary
	CategorySummary    []analytics.CategorySummary
	DailyExpenses      []analytics.DailyExpense
	Loading            bool
	Err                string
	LastUpdated        time.Time
}

// Store mediates all reads and writes between the UI and the database.
// Commands never return errors; failures are reduced to a reason code in
// the snapshot and logged (the previous good snapshot fields survive).
type Store struct {
	db     *store.Store
	logger *slog.Logger
	now    func() time.Time

	mu   sync.RWMutex
	snap Snapshot
	subs []chan struct{}
}

func New(db *store.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Snapshot returns a copy of the current state.
func (a *Store) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap
}

// Subscribe returns a channel that receives one signal per snapshot
// replacement. The channel is buffered; slow observers coalesce signals
// rather than blocking commands.
func (a *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	a.mu.Lock()
	a.subs = append(a.subs, ch)
	a.mu.Unlock()
	return ch
}

func (a *Store) notify() {
	a.mu.RLock()
	subs := a.subs
	a.mu.RUnlock()
	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// begin marks the start of an operation: loading set, stale error
// cleared. finish is its guaranteed counterpart, deferred by every
// command so Loading resets even on failure.
func (a *Store) begin() {
	a.mu.Lock()
	a.snap.Loading = true
	a.snap.Err = ""
	a.mu.Unlock()
	a.notify()
}

func (a *Store) finish() {
	a.mu.Lock()
	a.snap.Loading = false
	a.mu.Unlock()
	a.notify()
}

func (a *Store) fail(op, reason string, err error) {
	a.logger.Error("appstore operation failed", "op", op, "reason", reason, "err", err)
	a.mu.Lock()
	a.snap.Err = reason
	a.mu.Unlock()
}

// Initialize loads the category list and the dashboard data. It is
// idempotent; calling it again simply re-runs the same sequence.
func (a *Store) Initialize() {
	a.begin()
	defer a.finish()

	categories, err := a.db.ListCategories()
	if err != nil {
		a.fail("initialize", ErrInitFailed, err)
		return
	}

	a.mu.Lock()
	a.snap.Categories = categories
	a.mu.Unlock()

	if err := a.refreshDashboard(); err != nil {
		a.fail("initialize: dashboard", ErrQueryFailed, err)
	}
}

// FetchDashboardData replaces the recent transaction list and the
// current month's summary together.
func (a *Store) FetchDashboardData() {
	a.begin()
	defer a.finish()

	if err := a.refreshDashboard(); err != nil {
		a.fail("fetch dashboard", ErrQueryFailed, err)
	}
}

// AddNewTransaction inserts a transaction and re-fetches the dashboard
// before returning. Validation is the caller's concern.
func (a *Store) AddNewTransaction(amount float64, categoryID int64, date time.Time, note string, typ store.TxType) {
	a.begin()
	defer a.finish()

	if _, err := a.db.InsertTransaction(amount, categoryID, date.Unix(), note, typ); err != nil {
		a.fail("add transaction", ErrWriteFailed, err)
		return
	}
	if err := a.refreshDashboard(); err != nil {
		a.fail("add transaction: refresh", ErrQueryFailed, err)
	}
}

// RemoveTransaction deletes a transaction and re-fetches the dashboard
// before returning.
func (a *Store) RemoveTransaction(id int64) {
	a.begin()
	defer a.finish()

	if err := a.db.DeleteTransaction(id); err != nil {
		a.fail("remove transaction", ErrWriteFailed, err)
		return
	}
	if err := a.refreshDashboard(); err != nil {
		a.fail("remove transaction: refresh", ErrQueryFailed, err)
	}
}

// FetchAnalytics replaces the category breakdown and daily expense
// series for the given month window together. The store keeps no notion
// of which month is "current"; it reflects the last requested window.
func (a *Store) FetchAnalytics(monthStart, monthEnd time.Time) {
	a.begin()
	defer a.finish()

	start, end := monthStart.Unix(), monthEnd.Unix()
	breakdown, err := analytics.CategoryBreakdown(a.db, start, end)
	if err != nil {
		a.fail("fetch analytics: breakdown", ErrQueryFailed, err)
		return
	}
	maxDay := analytics.MaxDay(monthStart, a.now())
	series, err := analytics.DailySeries(a.db, start, end, maxDay)
	if err != nil {
		a.fail("fetch analytics: daily series", ErrQueryFailed, err)
		return
	}

	a.mu.Lock()
	a.snap.CategorySummary = breakdown
	a.snap.DailyExpenses = series
	a.snap.LastUpdated = a.now()
	a.mu.Unlock()
}

// refreshDashboard queries first and swaps the snapshot fields in one
// critical section, so a failed query leaves the previous values intact
// and observers never see a half-updated dashboard.
func (a *Store) refreshDashboard() error {
	start, end := analytics.MonthWindow(a.now())

	transactions, err := a.db.ListTransactions(10, 0)
	if err != nil {
		return err
	}
	summary, err := analytics.MonthlySummary(a.db, start, end)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.snap.RecentTransactions = transactions
	a.snap.MonthlySummary = summary
	a.snap.LastUpdated = a.now()
	a.mu.Unlock()
	return nil
}
