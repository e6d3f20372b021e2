package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"zenspend/internal/appstore"
	"zenspend/internal/currency"
	"zenspend/internal/i18n"
	"zenspend/internal/settings"
	"zenspend/internal/store"
)

type dashboardModel struct {
	cache  *appstore.Store
	prefs  *settings.Store
	width  int
	height int

	snap appstore.Snapshot

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formAmount   *string
	formCategory *int64
	formDate     *string
	formNote     *string
}

func newDashboardModel(cache *appstore.Store, prefs *settings.Store) dashboardModel {
	amount, note, date := "", "", ""
	var categoryID int64
	return dashboardModel{
		cache:        cache,
		prefs:        prefs,
		formAmount:   &amount,
		formCategory: &categoryID,
		formDate:     &date,
		formNote:     &note,
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d *dashboardModel) setSnapshot(snap appstore.Snapshot) {
	d.snap = snap
}

func (d dashboardModel) refresh() tea.Cmd {
	return func() tea.Msg {
		d.cache.FetchDashboardData()
		return nil
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Add):
			return d.showAddForm()
		}
	}
	return d, nil
}

func (d dashboardModel) showAddForm() (dashboardModel, tea.Cmd) {
	if len(d.snap.Categories) == 0 {
		return d, func() tea.Msg {
			return statusMsg{text: "Categories not loaded yet", isError: true}
		}
	}

	*d.formAmount = ""
	*d.formCategory = d.snap.Categories[0].ID
	*d.formDate = time.Now().Format("2006-01-02")
	*d.formNote = ""

	// The transaction type is taken from the chosen category, so a
	// type/category mismatch cannot be entered here.
	catOptions := make([]huh.Option[int64], len(d.snap.Categories))
	for i, c := range d.snap.Categories {
		label := fmt.Sprintf("%s (%s)", c.Name, i18n.T(string(c.Type)))
		catOptions[i] = huh.NewOption(label, c.ID)
	}

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(i18n.T("amount")).Value(d.formAmount),
			huh.NewSelect[int64]().Title(i18n.T("category")).Options(catOptions...).Value(d.formCategory),
			huh.NewInput().Title(i18n.T("date")+" (YYYY-MM-DD)").Value(d.formDate),
			huh.NewInput().Title(i18n.T("note")).Value(d.formNote),
		),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) updateForm(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		return d, d.submitForm()
	}

	return d, cmd
}

func (d dashboardModel) submitForm() tea.Cmd {
	amount, err := strconv.ParseFloat(strings.TrimSpace(*d.formAmount), 64)
	if err != nil || amount < 0 {
		return func() tea.Msg {
			return statusMsg{text: "Invalid amount", isError: true}
		}
	}

	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(*d.formDate), time.Local)
	if err != nil {
		return func() tea.Msg {
			return statusMsg{text: "Invalid date, use YYYY-MM-DD", isError: true}
		}
	}
	// Noon keeps the row inside the chosen local day.
	date = date.Add(12 * time.Hour)

	var cat *store.Category
	for i := range d.snap.Categories {
		if d.snap.Categories[i].ID == *d.formCategory {
			cat = &d.snap.Categories[i]
			break
		}
	}
	if cat == nil {
		return func() tea.Msg {
			return statusMsg{text: "Unknown category", isError: true}
		}
	}

	categoryID, note, typ := cat.ID, *d.formNote, cat.Type
	return func() tea.Msg {
		d.cache.AddNewTransaction(amount, categoryID, date, note, typ)
		return nil
	}
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	w := d.width - 4

	if d.formActive && d.form != nil {
		title := titleStyle.Render(i18n.T("add_transaction"))
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", d.form.View())
		return activePanelStyle.Width(w).Render(content)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		d.renderSummaryPanel(w),
		d.renderRecentPanel(w),
	)
}

func (d dashboardModel) renderSummaryPanel(w int) string {
	prefs := d.prefs.Current()
	format := func(v float64) string {
		return currency.Format(v, prefs.Currency, prefs.NumberFormat)
	}

	sum := d.snap.MonthlySummary
	income := successStyle.Render(format(sum.Income))
	expense := errorStyle.Render(format(sum.Expense))
	balance := highlightStyle.Render(format(sum.Balance))

	row := fmt.Sprintf("%s %s    %s %s    %s %s",
		mutedStyle.Render(i18n.T("income")), income,
		mutedStyle.Render(i18n.T("expense")), expense,
		mutedStyle.Render(i18n.T("balance")), balance,
	)

	monthLabel := titleStyle.Render(time.Now().Format("January 2006"))

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, monthLabel, "", row),
	)
}

func (d dashboardModel) renderRecentPanel(w int) string {
	title := titleStyle.Render(i18n.T("recent_transactions"))

	if len(d.snap.RecentTransactions) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render(i18n.T("no_transactions")),
			"",
			mutedStyle.Render("Press a to add one"),
		)
		return panelStyle.Width(w).Render(content)
	}

	prefs := d.prefs.Current()

	var rows []string
	rows = append(rows, title)
	for _, t := range d.snap.RecentTransactions {
		rows = append(rows, renderTransactionRow(t, prefs))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  a: add  2: history"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// renderTransactionRow is shared by the dashboard and history views.
func renderTransactionRow(t store.TransactionWithCategory, prefs settings.Settings) string {
	colorDot := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Category.Color)).Render("●")

	amount := currency.Format(t.Amount, prefs.Currency, prefs.NumberFormat)
	if t.Type == store.TypeExpense {
		amount = errorStyle.Render("-" + amount)
	} else {
		amount = successStyle.Render("+" + amount)
	}

	note := ""
	if t.Note != "" {
		note = mutedStyle.Render("  " + truncate(t.Note, 24))
	}

	return fmt.Sprintf("  %s %s  %-16s %12s%s",
		colorDot, formatDate(t.Date), truncate(t.Category.Name, 16), amount, note,
	)
}
