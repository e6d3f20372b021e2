package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"zenspend/internal/i18n"
	"zenspend/internal/settings"
)

type settingsSavedMsg struct{}

var (
	currencyChoices = []string{"USD", "EUR", "GBP", "IDR", "JPY"}
	themeChoices    = []string{
		"light", "dark", "system",
		"lavender-light", "lavender-dark",
		"mint-light", "mint-dark",
		"sky-light", "sky-dark",
	}
	styleChoices = []string{"default", "minimal"}
)

type settingsModel struct {
	prefs  *settings.Store
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	currency     *string
	numberFormat *string
	language     *string
	theme        *string
	style        *string
}

func newSettingsModel(prefs *settings.Store) settingsModel {
	cur, nf, lang, theme, style := "", "", "", "", ""
	return settingsModel{
		prefs:        prefs,
		currency:     &cur,
		numberFormat: &nf,
		language:     &lang,
		theme:        &theme,
		style:        &style,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	current := s.prefs.Current()
	*s.currency = current.Currency
	*s.numberFormat = current.NumberFormat
	*s.language = current.Language
	*s.theme = current.Theme
	*s.style = current.Style

	curOptions := make([]huh.Option[string], len(currencyChoices))
	for i, c := range currencyChoices {
		curOptions[i] = huh.NewOption(c, c)
	}
	themeOptions := make([]huh.Option[string], len(themeChoices))
	for i, t := range themeChoices {
		themeOptions[i] = huh.NewOption(t, t)
	}
	styleOptions := make([]huh.Option[string], len(styleChoices))
	for i, st := range styleChoices {
		styleOptions[i] = huh.NewOption(st, st)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Currency").Options(curOptions...).Value(s.currency),
			huh.NewSelect[string]().Title("Number format").
				Options(
					huh.NewOption("1,234.56", "dot"),
					huh.NewOption("1.234,56", "comma"),
				).Value(s.numberFormat),
			huh.NewSelect[string]().Title("Language").
				Options(
					huh.NewOption("English", "en"),
					huh.NewOption("Bahasa Indonesia", "id"),
				).Value(s.language),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Theme").Options(themeOptions...).Value(s.theme),
			huh.NewSelect[string]().Title("Style").Options(styleOptions...).Value(s.style),
		),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, s.save()
	}

	return s, cmd
}

// save writes every changed preference through the settings store.
func (s settingsModel) save() tea.Cmd {
	cur, nf, lang := *s.currency, *s.numberFormat, *s.language
	theme, style := *s.theme, *s.style
	return func() tea.Msg {
		setters := []func() error{
			func() error { return s.prefs.SetCurrency(cur) },
			func() error { return s.prefs.SetNumberFormat(nf) },
			func() error { return s.prefs.SetLanguage(lang) },
			func() error { return s.prefs.SetTheme(theme) },
			func() error { return s.prefs.SetStyle(style) },
		}
		for _, set := range setters {
			if err := set(); err != nil {
				return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
			}
		}
		return settingsSavedMsg{}
	}
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render(i18n.T("tab.settings"))
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	current := s.prefs.Current()
	items := []struct{ label, value string }{
		{"Currency", current.Currency},
		{"Number format", current.NumberFormat},
		{"Language", current.Language},
		{"Theme", current.Theme},
		{"Style", current.Style},
	}

	var rows []string
	rows = append(rows, titleStyle.Render(i18n.T("tab.settings")))
	rows = append(rows, "")
	for _, it := range items {
		label := lipgloss.NewStyle().Width(18).Render(it.label)
		rows = append(rows, fmt.Sprintf("  %s %s", label, highlightStyle.Render(it.value)))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
