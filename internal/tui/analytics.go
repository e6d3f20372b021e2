package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zenspend/internal/appstore"
	"zenspend/internal/currency"
	"zenspend/internal/i18n"
	"zenspend/internal/settings"
)

// analyticsModel shows the per-day expense chart and the category
// breakdown for one month, navigable month by month.
type analyticsModel struct {
	cache  *appstore.Store
	prefs  *settings.Store
	width  int
	height int

	offset int // months back from the current one (0 = current)
	snap   appstore.Snapshot

	chart barchart.Model
}

func newAnalyticsModel(cache *appstore.Store, prefs *settings.Store) analyticsModel {
	return analyticsModel{
		cache: cache,
		prefs: prefs,
		chart: barchart.New(60, 12),
	}
}

func (m *analyticsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *analyticsModel) setSnapshot(snap appstore.Snapshot) {
	m.snap = snap
	m.buildChart()
}

// monthWindow returns the closed local-month interval for the selected
// offset.
func (m analyticsModel) monthWindow() (time.Time, time.Time) {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	first = first.AddDate(0, -m.offset, 0)
	last := first.AddDate(0, 1, 0).Add(-time.Second)
	return first, last
}

func (m analyticsModel) refresh() tea.Cmd {
	start, end := m.monthWindow()
	return func() tea.Msg {
		m.cache.FetchAnalytics(start, end)
		return nil
	}
}

func (m analyticsModel) update(msg tea.Msg) (analyticsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			m.offset++
			return m, m.refresh()
		case key.Matches(msg, keys.Right):
			if m.offset > 0 {
				m.offset--
				return m, m.refresh()
			}
		}
	}
	return m, nil
}

func (m *analyticsModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if m.height > 30 {
		chartHeight = 14
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	barStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	var bars []barchart.BarData
	for _, d := range m.snap.DailyExpenses {
		// Label every fifth day so 31 bars stay readable.
		label := ""
		if d.Day == 1 || d.Day%5 == 0 {
			label = strconv.Itoa(d.Day)
		}
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: strconv.Itoa(d.Day), Value: d.Amount, Style: barStyle},
			},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m analyticsModel) view() string {
	w := m.width - 4

	start, _ := m.monthWindow()
	monthLabel := titleStyle.Render(start.Format("January 2006"))
	nav := mutedStyle.Render("←/→: month")

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(i18n.T("tab.analytics")), "  ", monthLabel, "  ", nav,
	)

	chartTitle := mutedStyle.Render(i18n.T("spending_by_day"))
	chartView := m.chart.View()

	tableView := m.renderBreakdown(w)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartTitle, chartView, "", tableView,
		),
	)
}

func (m analyticsModel) renderBreakdown(w int) string {
	title := mutedStyle.Render(i18n.T("spending_by_category"))

	if len(m.snap.CategorySummary) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("  "+i18n.T("no_expenses")),
		)
	}

	prefs := m.prefs.Current()

	var rows []string
	rows = append(rows, title)
	for _, c := range m.snap.CategorySummary {
		colorDot := lipgloss.NewStyle().Foreground(lipgloss.Color(c.CategoryColor)).Render("●")
		amount := currency.Format(c.TotalAmount, prefs.Currency, prefs.NumberFormat)
		bar := strings.Repeat("█", int(c.Percentage/100*20+0.5))
		rows = append(rows, fmt.Sprintf("  %s %-16s %12s %5.1f%%  %s",
			colorDot, truncate(c.CategoryName, 16), amount, c.Percentage,
			highlightStyle.Render(bar),
		))
	}

	return strings.Join(rows, "\n")
}
