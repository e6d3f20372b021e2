package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zenspend/internal/appstore"
	"zenspend/internal/i18n"
	"zenspend/internal/settings"
	"zenspend/internal/store"
)

const historyPageSize = 20

// historyModel lists the full transaction history page by page. The
// listing reads the store directly (the one read-only exception);
// deletes still go through the app store.
type historyModel struct {
	cache  *appstore.Store
	db     *store.Store
	prefs  *settings.Store
	width  int
	height int

	txs    []store.TransactionWithCategory
	offset int
	cursor int
}

func newHistoryModel(cache *appstore.Store, db *store.Store, prefs *settings.Store) historyModel {
	return historyModel{
		cache: cache,
		db:    db,
		prefs: prefs,
	}
}

func (m *historyModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m historyModel) refresh() tea.Cmd {
	offset := m.offset
	return func() tea.Msg {
		txs, err := m.db.ListTransactions(historyPageSize, offset)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return historyDataMsg{txs: txs, offset: offset}
	}
}

func (m historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyDataMsg:
		if msg.offset == m.offset {
			m.txs = msg.txs
			if m.cursor >= len(m.txs) {
				m.cursor = max(0, len(m.txs)-1)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.txs)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Right):
			if len(m.txs) == historyPageSize {
				m.offset += historyPageSize
				m.cursor = 0
				return m, m.refresh()
			}
		case key.Matches(msg, keys.Left):
			if m.offset > 0 {
				m.offset = max(0, m.offset-historyPageSize)
				m.cursor = 0
				return m, m.refresh()
			}
		case key.Matches(msg, keys.Delete):
			if len(m.txs) > 0 {
				id := m.txs[m.cursor].ID
				return m, func() tea.Msg {
					m.cache.RemoveTransaction(id)
					return nil
				}
			}
		}
	}
	return m, nil
}

func (m historyModel) view() string {
	w := m.width - 4
	title := titleStyle.Render(i18n.T("tab.history"))

	if len(m.txs) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render(i18n.T("no_transactions")),
		)
		return panelStyle.Width(w).Render(content)
	}

	prefs := m.prefs.Current()

	var rows []string
	page := m.offset/historyPageSize + 1
	rows = append(rows, fmt.Sprintf("%s  %s", title, mutedStyle.Render(fmt.Sprintf("page %d", page))))
	rows = append(rows, "")

	for i, t := range m.txs {
		row := renderTransactionRow(t, prefs)
		if i == m.cursor {
			row = "> " + strings.TrimPrefix(row, "  ")
			row = selectedItemStyle.Render(row)
		}
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  d: delete  ←/→: page  ↑/↓: move"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
