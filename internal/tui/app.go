package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zenspend/internal/appstore"
	"zenspend/internal/export"
	"zenspend/internal/i18n"
	"zenspend/internal/settings"
	"zenspend/internal/store"
)

// App is the root Bubble Tea model. All mutations go through the app
// store; the raw store is touched only for the read-only history
// listing and export.
type App struct {
	cache   *appstore.Store
	db      *store.Store
	prefs   *settings.Store
	updates <-chan struct{}

	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	dashboard dashboardModel
	history   historyModel
	analytics analyticsModel
	settings  settingsModel

	help   help.Model
	status string
}

func NewApp(cache *appstore.Store, db *store.Store, prefs *settings.Store) App {
	h := help.New()
	h.ShowAll = false

	applyTheme(prefs.Current().Theme)

	return App{
		cache:      cache,
		db:         db,
		prefs:      prefs,
		updates:    cache.Subscribe(),
		activeView: viewDashboard,
		dashboard:  newDashboardModel(cache, prefs),
		history:    newHistoryModel(cache, db, prefs),
		analytics:  newAnalyticsModel(cache, prefs),
		settings:   newSettingsModel(prefs),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.initCache(),
		a.waitForUpdate(),
	)
}

func (a App) initCache() tea.Cmd {
	return func() tea.Msg {
		a.cache.Initialize()
		return cacheUpdatedMsg{}
	}
}

// waitForUpdate blocks on the app store's subscription channel and
// re-arms itself from Update on every signal.
func (a App) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		<-a.updates
		return cacheUpdatedMsg{}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.history.setSize(a.width, contentHeight)
		a.analytics.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case cacheUpdatedMsg:
		snap := a.cache.Snapshot()
		a.status = statusFromSnapshot(snap)
		a.dashboard.setSnapshot(snap)
		a.analytics.setSnapshot(snap)
		var cmd tea.Cmd
		if a.activeView == viewHistory && !snap.Loading {
			// A mutation may have changed the page under the cursor.
			cmd = a.history.refresh()
		}
		return a, tea.Batch(a.waitForUpdate(), cmd)

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, a.dashboard.refresh()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewHistory
			return a, a.history.refresh()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewAnalytics
			return a, a.analytics.refresh()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSettings
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 4
			return a, a.refreshCurrentView()
		}

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil

	case settingsSavedMsg:
		a.status = "Settings saved"
		applyTheme(a.prefs.Current().Theme)
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewHistory:
		a.history, cmd = a.history.update(msg)
	case viewAnalytics:
		a.analytics, cmd = a.analytics.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.refresh()
	case viewHistory:
		return a.history.refresh()
	case viewAnalytics:
		return a.analytics.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewHistory:
		content = a.history.view()
	case viewAnalytics:
		content = a.analytics.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames() {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(i18n.T(name)))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(i18n.T(name)))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("zenspend")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	loading := ""
	if a.cache.Snapshot().Loading {
		loading = warningStyle.Render(" ◌")
	}

	left := footerStyle.Render(helpView)
	right := loading + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		// Whole history, newest first. SQLite treats a negative LIMIT as
		// unlimited but a huge positive one is unambiguous.
		const allRows = 1<<31 - 1
		txs, err := a.db.ListTransactions(allRows, 0)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("zenspend-export-%s.csv", dateStr))
			if err := export.ToCSV(txs, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("zenspend-export-%s.json", dateStr))
			if err := export.ToJSON(txs, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}

// statusFromSnapshot maps the app store's reason codes to user-facing
// messages.
func statusFromSnapshot(snap appstore.Snapshot) string {
	switch snap.Err {
	case appstore.ErrInitFailed:
		return "Database initialization failed"
	case appstore.ErrQueryFailed:
		return "Failed to load data, try again"
	case appstore.ErrWriteFailed:
		return "Write failed, please retry"
	}
	return ""
}
