package tui

import (
	"time"

	"zenspend/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewHistory
	viewAnalytics
	viewSettings
)

func viewNames() []string {
	return []string{"tab.dashboard", "tab.history", "tab.analytics", "tab.settings"}
}

// --- Messages ---

// cacheUpdatedMsg signals that the app store replaced its snapshot.
type cacheUpdatedMsg struct{}

type statusMsg struct {
	text    string
	isError bool
}

type historyDataMsg struct {
	txs    []store.TransactionWithCategory
	offset int
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDate(unixSeconds int64) string {
	return time.Unix(unixSeconds, 0).Local().Format("Jan 02")
}

func formatDateFull(unixSeconds int64) string {
	return time.Unix(unixSeconds, 0).Local().Format("Jan 02, 2006")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
